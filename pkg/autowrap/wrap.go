package autowrap

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coredhcp/coredhcp/logger"
)

var log = logger.GetLogger("autowrap")

// Errors returned by the wrapping functions.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptySelection  = errors.New("no text blocks to wrap")
)

// Mode selects how words are distributed over lines.
type Mode int

// Supported wrapping modes.
const (
	// Wide fits as many words on each line as possible.
	Wide Mode = iota
	// Evenly makes lines of a similar length.
	Evenly
)

var modeNames = map[Mode]string{
	Wide:   "wide",
	Evenly: "evenly",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name, ignoring case.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return Wide, fmt.Errorf("%w: unknown wrap mode '%s'", ErrInvalidArgument, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("%w: unknown wrap mode %d", ErrInvalidArgument, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ModeNames returns the names accepted by ParseMode.
func ModeNames() []string {
	return []string{Wide.String(), Evenly.String()}
}

// WrapText reflows text into lines of at most maxcpl characters, breaking
// only at spaces and newlines. The returned text has the same number of
// characters as the input: separators are turned into spaces, or into
// newlines where a line ends.
func WrapText(text string, maxcpl int, mode Mode) (string, error) {
	if maxcpl < 1 {
		return "", fmt.Errorf("%w: max characters per line must be at least 1, got %d", ErrInvalidArgument, maxcpl)
	}
	if _, ok := modeNames[mode]; !ok {
		return "", fmt.Errorf("%w: unknown wrap mode %d", ErrInvalidArgument, int(mode))
	}
	if text == "" {
		return "", nil
	}
	// converting to runes would silently replace invalid bytes with U+FFFD
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidArgument)
	}
	runes := []rune(text)
	words := Tokenize(runes)
	lines := Pack(words, maxcpl)
	if mode == Evenly {
		Balance(lines, words, maxcpl)
	}
	log.Debugf("Wrapped %d words into %d lines (max %d characters per line, mode %s)", len(words), len(lines), maxcpl, mode)
	return string(Rebuild(runes, words, lines)), nil
}

// Lines is like WrapText, but returns the wrapped text as a list of lines.
func Lines(text string, maxcpl int, mode Mode) ([]string, error) {
	wrapped, err := WrapText(text, maxcpl, mode)
	if err != nil {
		return nil, err
	}
	if wrapped == "" {
		return nil, nil
	}
	return strings.Split(wrapped, "\n"), nil
}
