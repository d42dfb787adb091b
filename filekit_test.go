package filekit

import (
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstevens/filekit/fsys"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		kit := New()

		assert.Equal(t, fsys.Default, kit.fs)
		assert.NotNil(t, kit.logger)
		assert.NotNil(t, kit.metrics)
		assert.NotNil(t, kit.rng)
	})

	t.Run("NilOptionValuesFallBack", func(t *testing.T) {
		kit := New(
			WithFileSystem(nil),
			WithLogger(nil),
			WithMetricsCollector(nil),
			WithRand(nil),
		)

		assert.Equal(t, fsys.Default, kit.fs)
		assert.NotNil(t, kit.logger)
		assert.IsType(t, NoopMetricsCollector{}, kit.metrics)
		assert.NotNil(t, kit.rng)
	})

	t.Run("WithRand", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		kit := New(WithRand(rng))
		assert.Same(t, rng, kit.rng)
	})

	t.Run("FreshSeedsDiffer", func(t *testing.T) {
		a := New()
		b := New()

		// Astronomically unlikely to collide when seeding from entropy.
		assert.NotEqual(t, a.rng.Int63(), b.rng.Int63())
	})
}

func TestRandIntN_Concurrent(t *testing.T) {
	kit := New(WithRandomSeed(3))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				n := kit.randIntN(10)
				if n < 0 || n >= 10 {
					t.Errorf("randIntN out of range: %d", n)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestDefaultKit(t *testing.T) {
	assert.Same(t, defaultKit(), defaultKit())
}

func TestPackageLevelFuncs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")

	require.NoError(t, AppendString(path, "alpha\nbeta\n"))
	require.NoError(t, Append(path, []byte("gamma\n")))

	lines, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lines)

	word, err := PickRandom(path)
	require.NoError(t, err)
	assert.Contains(t, lines, word)

	names, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"words.txt"}, names)

	numsPath := filepath.Join(dir, "nums.txt")
	require.NoError(t, AppendString(numsPath, "1\n2\n"))

	nums, err := LoadInts(numsPath)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nums)

	many, err := LoadMany(context.Background(), []string{path, numsPath})
	require.NoError(t, err)
	require.Len(t, many, 2)

	fromReader, err := LoadReader(strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, fromReader)

	f, err := OpenInput(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out, err := OpenOutput(filepath.Join(dir, "fresh.txt"))
	require.NoError(t, err)
	require.NoError(t, out.Close())
}
