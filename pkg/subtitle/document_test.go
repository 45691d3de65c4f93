package subtitle

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleSRT = "\ufeff1\r\n00:00:01,000 --> 00:00:03,000\r\nThe quick brown fox\r\njumps over the lazy dog\r\n\r\n" +
	"2\n00:00:04,000 --> 00:00:05,500\nHello\n\n\n" +
	"3\n00:00:06,000 --> 00:00:07,000\n"

func TestParseSRT(t *testing.T) {
	doc, err := ParseSRT(strings.NewReader(sampleSRT))
	require.NoError(t, err)
	assert.Equal(t, FormatSRT, doc.Format)
	require.Equal(t, 3, len(doc.Cues))
	assert.Equal(t, Cue{Index: 1, Timing: "00:00:01,000 --> 00:00:03,000", Text: "The quick brown fox\njumps over the lazy dog"}, doc.Cues[0])
	assert.Equal(t, Cue{Index: 2, Timing: "00:00:04,000 --> 00:00:05,500", Text: "Hello"}, doc.Cues[1])
	assert.Equal(t, Cue{Index: 3, Timing: "00:00:06,000 --> 00:00:07,000", Text: ""}, doc.Cues[2])
}

func TestParseSRTEmpty(t *testing.T) {
	doc, err := ParseSRT(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Cues)
}

func TestParseSRTBadIndex(t *testing.T) {
	_, err := ParseSRT(strings.NewReader("one\n00:00:01,000 --> 00:00:02,000\nhi\n"))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseSRTMissingTiming(t *testing.T) {
	_, err := ParseSRT(strings.NewReader("1\nhi\n"))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseSRT(strings.NewReader("1\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestWriteSRT(t *testing.T) {
	doc, err := ParseSRT(strings.NewReader(sampleSRT))
	require.NoError(t, err)
	doc.Cues[1].Text = "Hello \n"
	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.Equal(t, "1\n00:00:01,000 --> 00:00:03,000\nThe quick brown fox\njumps over the lazy dog\n\n"+
		"2\n00:00:04,000 --> 00:00:05,500\nHello\n\n"+
		"3\n00:00:06,000 --> 00:00:07,000\n\n\n", buf.String())

	again, err := ParseSRT(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, len(again.Cues))
	assert.Equal(t, "Hello", again.Cues[1].Text)
}

func TestParseParagraphs(t *testing.T) {
	doc, err := ParseParagraphs(strings.NewReader("\n\nfirst line\nsecond line\n\n  \nthird\n"))
	require.NoError(t, err)
	assert.Equal(t, FormatText, doc.Format)
	require.Equal(t, 2, len(doc.Cues))
	assert.Equal(t, Cue{Index: 1, Text: "first line\nsecond line"}, doc.Cues[0])
	assert.Equal(t, Cue{Index: 2, Text: "third"}, doc.Cues[1])

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.Equal(t, "first line\nsecond line\n\nthird\n", buf.String())
}

func TestParseDispatch(t *testing.T) {
	doc, err := Parse(strings.NewReader("a\n\nb\n"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, 2, len(doc.Cues))

	doc, err = Parse(strings.NewReader(sampleSRT), FormatSRT)
	require.NoError(t, err)
	assert.Equal(t, 3, len(doc.Cues))

	_, err = Parse(strings.NewReader(""), Format("ass"))
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, FormatSRT, FormatFromPath("movie.SRT"))
	assert.Equal(t, FormatText, FormatFromPath("notes.txt"))
	assert.Equal(t, FormatText, FormatFromPath(""))

	f, err := ParseFormat("SRT")
	require.NoError(t, err)
	assert.Equal(t, FormatSRT, f)
	_, err = ParseFormat("vtt")
	assert.Error(t, err)
}
