package filekit

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/dstevens/filekit/fsys"
)

// Kit bundles the filesystem, logger, metrics collector and random
// source used by the file operations. Construct with New; the zero value
// is not usable.
//
// A Kit is safe for concurrent use. Operations are synchronous and
// stateless beyond the filesystem: each call opens what it needs and
// closes it before returning.
type Kit struct {
	fs      fsys.FileSystem
	logger  *Logger
	metrics MetricsCollector

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New creates a Kit. Without options it operates on the local
// filesystem, stays quiet, and seeds its random source once from the OS
// entropy pool.
func New(optFns ...Option) *Kit {
	o := applyOptions(optFns)

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(randomSeed()))
	}

	return &Kit{
		fs:      o.fs,
		logger:  o.logger,
		metrics: o.metricsCollector,
		rng:     rng,
	}
}

// randomSeed draws a seed from the OS entropy pool, falling back to the
// clock if that fails.
func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// randIntN returns a uniform int in [0, n). The shared generator is
// mutex-guarded so concurrent picks stay safe.
func (k *Kit) randIntN(n int) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.rng.Intn(n)
}

var (
	defaultOnce sync.Once
	defaultInst *Kit
)

// defaultKit returns the lazily created Kit behind the package-level
// functions.
func defaultKit() *Kit {
	defaultOnce.Do(func() {
		defaultInst = New()
	})
	return defaultInst
}

// Load reads the file at path into a token slice using the package
// default Kit. See Kit.Load.
func Load(path string, optFns ...LoadOption) ([]string, error) {
	return defaultKit().Load(path, optFns...)
}

// LoadInts parses the file at path into an int slice using the package
// default Kit. See Kit.LoadInts.
func LoadInts(path string, optFns ...LoadOption) ([]int, error) {
	return defaultKit().LoadInts(path, optFns...)
}

// LoadReader tokenizes r using the package default Kit. See
// Kit.LoadReader.
func LoadReader(r io.Reader, optFns ...LoadOption) ([]string, error) {
	return defaultKit().LoadReader(r, optFns...)
}

// LoadMany loads several files concurrently using the package default
// Kit. See Kit.LoadMany.
func LoadMany(ctx context.Context, paths []string, optFns ...LoadOption) ([][]string, error) {
	return defaultKit().LoadMany(ctx, paths, optFns...)
}

// PickRandom returns a uniformly random token from the file at path
// using the package default Kit. See Kit.PickRandom.
func PickRandom(path string, optFns ...PickOption) (string, error) {
	return defaultKit().PickRandom(path, optFns...)
}

// ListFiles lists the files directly inside dir using the package
// default Kit. See Kit.ListFiles.
func ListFiles(dir string, optFns ...ListOption) ([]string, error) {
	return defaultKit().ListFiles(dir, optFns...)
}

// Append appends content to the file at path using the package default
// Kit. See Kit.Append.
func Append(path string, content []byte, optFns ...AppendOption) error {
	return defaultKit().Append(path, content, optFns...)
}

// AppendString appends content to the file at path using the package
// default Kit. See Kit.AppendString.
func AppendString(path, content string, optFns ...AppendOption) error {
	return defaultKit().AppendString(path, content, optFns...)
}

// OpenInput opens path for reading using the package default Kit. See
// Kit.OpenInput.
func OpenInput(path string) (fsys.File, error) {
	return defaultKit().OpenInput(path)
}

// OpenOutput creates or truncates path for writing using the package
// default Kit. See Kit.OpenOutput.
func OpenOutput(path string) (fsys.File, error) {
	return defaultKit().OpenOutput(path)
}
