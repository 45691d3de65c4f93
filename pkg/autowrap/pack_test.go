package autowrap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packString(s string, maxcpl int) ([]Word, []Segment) {
	words := Tokenize([]rune(s))
	return words, Pack(words, maxcpl)
}

func TestLineLength(t *testing.T) {
	words := Tokenize([]rune("one two three"))
	assert.Equal(t, 0, LineLength(Segment{Index: 1, Length: 0}, words))
	assert.Equal(t, 3, LineLength(Segment{Index: 1, Length: 1}, words))
	assert.Equal(t, 13, LineLength(Segment{Index: 0, Length: 3}, words))
}

func TestPackNoWords(t *testing.T) {
	_, lines := packString("", 10)
	assert.Empty(t, lines)
	_, lines = packString("   ", 10)
	assert.Empty(t, lines)
}

func TestPackExactFit(t *testing.T) {
	_, lines := packString("one two three", 7)
	require.Equal(t, 2, len(lines))
	assert.Equal(t, Segment{Index: 0, Length: 2}, lines[0])
	assert.Equal(t, Segment{Index: 2, Length: 1}, lines[1])
}

func TestPackSingleLine(t *testing.T) {
	words, lines := packString(fox, 100)
	require.Equal(t, 1, len(lines))
	assert.Equal(t, Segment{Index: 0, Length: len(words)}, lines[0])
}

func TestPackMultiLine(t *testing.T) {
	_, lines := packString(fox, 10)
	assert.Equal(t, []Segment{
		{Index: 0, Length: 2}, // The quick
		{Index: 2, Length: 2}, // brown fox
		{Index: 4, Length: 2}, // jumps over
		{Index: 6, Length: 2}, // the lazy
		{Index: 8, Length: 1}, // dog
	}, lines)
}

func TestPackOverflowingWord(t *testing.T) {
	_, lines := packString("aaaaaaaaaaaa", 5)
	assert.Equal(t, []Segment{{Index: 0, Length: 1}}, lines)
}

func TestPackOverflowingWordInTheMiddle(t *testing.T) {
	_, lines := packString("a bbbbbbbb c", 3)
	assert.Equal(t, []Segment{
		{Index: 0, Length: 1},
		{Index: 1, Length: 1},
		{Index: 2, Length: 1},
	}, lines)
}

func TestPackCapOfOne(t *testing.T) {
	_, lines := packString("a b cc d", 1)
	require.Equal(t, 4, len(lines))
	for idx, line := range lines {
		assert.Equal(t, Segment{Index: idx, Length: 1}, line)
	}
}

func TestPackPartition(t *testing.T) {
	for _, text := range sampleTexts {
		words := Tokenize([]rune(text))
		for maxcpl := 1; maxcpl <= 30; maxcpl++ {
			lines := Pack(words, maxcpl)
			requirePartition(t, lines, len(words))
			for _, line := range lines {
				if line.Length > 1 {
					assert.LessOrEqual(t, LineLength(line, words), maxcpl, "text %q, cap %d", text, maxcpl)
				}
			}
		}
	}
}

func TestPackShortTextIsOneLine(t *testing.T) {
	for _, text := range sampleTexts {
		words := Tokenize([]rune(text))
		if len(words) == 0 {
			continue
		}
		total := len(strings.Join(strings.Fields(text), " "))
		lines := Pack(words, total)
		assert.Equal(t, []Segment{{Index: 0, Length: len(words)}}, lines, "text %q", text)
	}
}

// requirePartition checks that the lines cover the word indices [0, n) in
// order, each exactly once.
func requirePartition(t *testing.T, lines []Segment, n int) {
	t.Helper()
	next := 0
	for _, line := range lines {
		require.Equal(t, next, line.Index)
		require.Greater(t, line.Length, 0)
		next += line.Length
	}
	require.Equal(t, n, next)
}
