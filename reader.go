package mtietool

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a TIE input line which does not contain a valid
// finite number.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: not a valid number", e.Line, e.Text)
}

// ReadSamples reads TIE values from r, one number per line.
// Blank lines and comment lines starting with "#" or "//" are
// skipped. If there is an error, it may be of type *ParseError.
func ReadSamples(r io.Reader) ([]Value, error) {
	var values []Value
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "//") {
			continue
		}

		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &ParseError{Line: line, Text: text}
		}
		values = append(values, Value(f))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
