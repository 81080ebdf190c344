package mtietool

import (
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	flag "github.com/spf13/pflag"
)

// PlotCommand renders MTIE results as an HTML line chart.
type PlotCommand struct {
	Input     string
	Format    string
	Threshold int
	Out       string
	Title     string
}

func (c *PlotCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.StringVarP(&c.Input, "input", "i", "", "file containing the TIE input data (default: standard input)")
	fs.StringVar(&c.Format, "format", "", `input format, "text" or "whisper" (default: "whisper" for .wsp files, "text" otherwise)`)
	fs.IntVar(&c.Threshold, "threshold", DefaultThreshold, "largest sample count computed exhaustively; longer series use the dyadic algorithm")
	fs.StringVarP(&c.Out, "out", "o", "", "output HTML filename (ex. mtie.html)")
	fs.StringVar(&c.Title, "title", "MTIE", "chart title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.Out == "" {
		return newRequiredOptionError(fs, "out")
	}
	if c.Threshold < 1 {
		return errThresholdOutOfBounds
	}
	return validateFormat(c.Format)
}

func (c *PlotCommand) Execute() error {
	values, err := readTIEInput(c.Input, c.Format)
	if err != nil {
		return err
	}

	engine, err := NewEngine(c.Threshold, 0)
	if err != nil {
		return err
	}
	results, err := engine.Compute(NewSampleSeries(values))
	if err != nil {
		return err
	}

	file, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer file.Close()
	return renderResultsChart(file, c.Title, results)
}

func renderResultsChart(w *os.File, title string, results Results) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "interval (samples)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "MTIE"}),
	)

	labels := make([]string, len(results))
	data := make([]opts.LineData, len(results))
	for i, r := range results {
		labels[i] = strconv.Itoa(r.Interval)
		data[i] = opts.LineData{Value: float64(r.Value)}
	}
	line.SetXAxis(labels)
	line.AddSeries("MTIE", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}),
	)

	return line.Render(w)
}
