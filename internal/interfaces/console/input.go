package console

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-roster/internal/platform/textfold"
)

// lineReader reads whole lines so oversized input never spills into the
// next prompt.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF.
func (l *lineReader) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readText reads a line and cuts it to max runes.
func (l *lineReader) readText(max int) (string, error) {
	line, err := l.readLine()
	if err != nil {
		return "", err
	}

	return textfold.Truncate(line, max), nil
}

// readInt reads a line holding a single integer. ok is false when the line
// is not a number.
func (l *lineReader) readInt() (value int, ok bool, err error) {
	line, err := l.readLine()
	if err != nil {
		return 0, false, err
	}

	value, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, false, nil
	}

	return value, true, nil
}
