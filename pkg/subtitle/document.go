package subtitle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/coredhcp/coredhcp/logger"
)

var log = logger.GetLogger("subtitle")

// ErrMalformed is returned when the input cannot be parsed.
var ErrMalformed = errors.New("malformed subtitle file")

// Format is the on-disk format of a document.
type Format string

// Supported formats.
const (
	// FormatSRT is the SubRip format: numbered cues with a timing line.
	FormatSRT Format = "srt"
	// FormatText is plain text, one block per paragraph.
	FormatText Format = "text"
)

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSRT, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("unknown format '%s', must be one of %v", s, []Format{FormatSRT, FormatText})
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		return FormatSRT
	}
	return FormatText
}

// Cue is a single block of text. For plain text documents Index is the
// position of the paragraph and Timing is empty.
type Cue struct {
	Index  int
	Timing string
	Text   string
}

// Document is a sequence of cues read from a subtitle or text file.
type Document struct {
	Format Format
	Cues   []Cue
}

// Parse reads a document in the given format.
func Parse(r io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatSRT:
		return ParseSRT(r)
	case FormatText:
		return ParseParagraphs(r)
	default:
		return nil, fmt.Errorf("unknown format '%s'", format)
	}
}

// readLines returns the lines of r with line endings and a leading byte
// order mark removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ParseParagraphs reads plain text. Every run of non-blank lines is a cue.
func ParseParagraphs(r io.Reader) (*Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	doc := Document{Format: FormatText}
	var para []string
	flush := func() {
		if len(para) > 0 {
			doc.Cues = append(doc.Cues, Cue{Index: len(doc.Cues) + 1, Text: strings.Join(para, "\n")})
			para = nil
		}
	}
	for _, line := range lines {
		if isBlank(line) {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()
	log.Debugf("Parsed %d paragraphs", len(doc.Cues))
	return &doc, nil
}

// Write serializes the document in its format. Trailing spaces and newlines
// are dropped from the cue text, since a blank line would end the cue.
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for idx, c := range d.Cues {
		text := strings.TrimRight(c.Text, " \n")
		var err error
		switch d.Format {
		case FormatSRT:
			_, err = fmt.Fprintf(bw, "%d\n%s\n%s\n\n", c.Index, c.Timing, text)
		case FormatText:
			if idx > 0 {
				_, err = bw.WriteString("\n")
			}
			if err == nil {
				_, err = fmt.Fprintf(bw, "%s\n", text)
			}
		default:
			return fmt.Errorf("unknown format '%s'", d.Format)
		}
		if err != nil {
			return fmt.Errorf("failed to write cue %d: %w", c.Index, err)
		}
	}
	return bw.Flush()
}
