package mtietool

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Input formats accepted by the compute and plot commands.
const (
	FormatText    = "text"
	FormatWhisper = "whisper"
)

// ComputeCommand calculates MTIE from TIE input data and prints one
// "<interval> <mtie>" line per observation interval.
type ComputeCommand struct {
	Input     string
	Format    string
	Threshold int
	Jobs      int
	TextOut   string
}

func (c *ComputeCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.StringVarP(&c.Input, "input", "i", "", "file containing the TIE input data (default: standard input)")
	fs.StringVar(&c.Format, "format", "", `input format, "text" or "whisper" (default: "whisper" for .wsp files, "text" otherwise)`)
	fs.IntVar(&c.Threshold, "threshold", DefaultThreshold, "largest sample count computed exhaustively; longer series use the dyadic algorithm")
	fs.IntVar(&c.Jobs, "jobs", 0, "concurrent interval scans (0 = number of CPUs)")
	fs.StringVar(&c.TextOut, "text-out", "-", "text output. empty means no output, - means stdout, other means output file.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.Threshold < 1 {
		return errThresholdOutOfBounds
	}
	return validateFormat(c.Format)
}

func (c *ComputeCommand) Execute() error {
	values, err := readTIEInput(c.Input, c.Format)
	if err != nil {
		return err
	}

	engine, err := NewEngine(c.Threshold, c.Jobs)
	if err != nil {
		return err
	}
	results, err := engine.Compute(NewSampleSeries(values))
	if err != nil {
		return err
	}

	return withTextOutWriter(c.TextOut, func(w io.Writer) error {
		return results.Print(w)
	})
}

func validateFormat(format string) error {
	switch format {
	case "", FormatText, FormatWhisper:
		return nil
	default:
		return errUnknownFormat
	}
}

// readTIEInput reads TIE samples from the input file, or from
// standard input when the filename is empty.
func readTIEInput(input, format string) ([]Value, error) {
	if format == "" {
		if strings.HasSuffix(input, ".wsp") {
			format = FormatWhisper
		} else {
			format = FormatText
		}
	}

	if format == FormatWhisper {
		if input == "" {
			return nil, errWhisperNeedsInputFile
		}
		return ReadWhisperSamples(input)
	}

	if input == "" {
		return ReadSamples(os.Stdin)
	}
	file, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("could not read file %q: %w", input, err)
	}
	defer file.Close()
	return ReadSamples(file)
}
