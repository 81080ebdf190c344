package mtietool

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

type RequiredOptionError struct {
	fs     *flag.FlagSet
	option string
}

func newRequiredOptionError(fs *flag.FlagSet, option string) *RequiredOptionError {
	return &RequiredOptionError{fs: fs, option: option}
}

func (e *RequiredOptionError) Error() string {
	return fmt.Sprintf("option --%s is required.", e.option)
}

func (e *RequiredOptionError) Usage() {
	e.fs.Usage()
}

var errUnknownFormat = errors.New(`format must be "text" or "whisper"`)
var errWhisperNeedsInputFile = errors.New("whisper format input cannot be read from standard input")
var errCountTooSmall = errors.New("count must be at least 2")
var errThresholdOutOfBounds = errors.New("threshold must be at least 1")
