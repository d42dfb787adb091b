package scan

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string, sep byte) []string {
	t.Helper()

	tz := NewTokenizer(strings.NewReader(input), sep)

	var tokens []string
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return tokens
		}
		require.NoError(t, err)
		tokens = append(tokens, tok)
	}
}

func TestTokenizer_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   byte
		want  []string
	}{
		{name: "terminated lines", input: "a\nb\nc\n", sep: '\n', want: []string{"a", "b", "c"}},
		{name: "unterminated tail", input: "a\nb\nc", sep: '\n', want: []string{"a", "b", "c"}},
		{name: "custom separator", input: "part1|part2|part3", sep: '|', want: []string{"part1", "part2", "part3"}},
		{name: "interior empty kept", input: "a\n\nb\n", sep: '\n', want: []string{"a", "", "b"}},
		{name: "single separator", input: "\n", sep: '\n', want: []string{""}},
		{name: "empty input", input: "", sep: '\n', want: nil},
		{name: "only separators", input: ";;;", sep: ';', want: []string{"", "", ""}},
		{name: "separator not present", input: "one two", sep: '\n', want: []string{"one two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, collect(t, tt.input, tt.sep))
		})
	}
}

func TestTokenizer_NextAfterEOF(t *testing.T) {
	tz := NewTokenizer(strings.NewReader("last"), '\n')

	tok, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, "last", tok)

	_, err = tz.Next()
	require.Equal(t, io.EOF, err)

	// Stays exhausted.
	_, err = tz.Next()
	require.Equal(t, io.EOF, err)
}

func TestTokenizer_LongToken(t *testing.T) {
	// Longer than any internal buffering.
	long := strings.Repeat("x", 1<<20)
	tokens := collect(t, long+"\nshort\n", '\n')
	require.Len(t, tokens, 2)
	require.Equal(t, long, tokens[0])
	require.Equal(t, "short", tokens[1])
}
