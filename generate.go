package mtietool

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"time"

	flag "github.com/spf13/pflag"
)

// GenerateCommand writes a synthetic TIE series in text format,
// modeled as a random walk with optional white noise. It is meant for
// testing and demos.
type GenerateCommand struct {
	Count   int
	Wander  float64
	Noise   float64
	Seed    int64
	TextOut string
}

func (c *GenerateCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.IntVarP(&c.Count, "count", "n", 4096, "number of TIE samples to generate")
	fs.Float64Var(&c.Wander, "wander", 1.0, "random walk step amplitude")
	fs.Float64Var(&c.Noise, "noise", 0.1, "white noise amplitude added to each sample")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed (0 = random)")
	fs.StringVar(&c.TextOut, "text-out", "-", "text output. empty means no output, - means stdout, other means output file.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.Count < 2 {
		return errCountTooSmall
	}
	return nil
}

func (c *GenerateCommand) Execute() error {
	seed := c.Seed
	if seed == 0 {
		seed = newRandSeed()
	}
	rnd := rand.New(rand.NewSource(seed))

	return withTextOutWriter(c.TextOut, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "# synthetic TIE series: count=%d wander=%g noise=%g seed=%d\n",
			c.Count, c.Wander, c.Noise, seed); err != nil {
			return err
		}

		var tie float64
		for i := 0; i < c.Count; i++ {
			tie += (2*rnd.Float64() - 1) * c.Wander
			v := Value(tie + (2*rnd.Float64()-1)*c.Noise)
			if _, err := fmt.Fprintf(w, "%s\n", v); err != nil {
				return err
			}
		}
		return nil
	})
}

func newRandSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]))
}
