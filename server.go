package mtietool

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"
)

// ServerCommand serves MTIE calculations over HTTP.
//
// POST /mtie accepts TIE input data in text format as the request body
// and responds with one "<interval> <mtie>" line per observation
// interval. An optional "threshold" query parameter overrides the
// engine threshold for that request.
type ServerCommand struct {
	Addr      string
	Threshold int
	Jobs      int
}

type app struct {
	threshold int
	jobs      int
}

type httpError struct {
	statusText string
	statusCode int
	cause      error
}

func (c *ServerCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&c.Addr, "addr", ":8080", "listen address")
	fs.IntVar(&c.Threshold, "threshold", DefaultThreshold, "largest sample count computed exhaustively; longer series use the dyadic algorithm")
	fs.IntVar(&c.Jobs, "jobs", 0, "concurrent interval scans per request (0 = number of CPUs)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.Threshold < 1 {
		return errThresholdOutOfBounds
	}
	return nil
}

func (c *ServerCommand) Execute() error {
	a := &app{
		threshold: c.Threshold,
		jobs:      c.Jobs,
	}
	http.HandleFunc("/mtie", wrapHandler(a.handleMtie))
	s := &http.Server{
		Addr:           c.Addr,
		Handler:        nil,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	return s.ListenAndServe()
}

func wrapHandler(h func(w http.ResponseWriter, r *http.Request) error) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			log.Printf("error returned from handler: %v", err)
			var hErr *httpError
			if !errors.As(err, &hErr) {
				hErr = newHTTPError(http.StatusInternalServerError, err)
			}
			hErr.WriteTo(w)
		}
	}
}

func (a *app) handleMtie(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return newHTTPError(http.StatusMethodNotAllowed, errors.New("use POST with TIE input data as the request body"))
	}

	threshold := a.threshold
	if v := r.URL.Query().Get("threshold"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil || t < 1 {
			return newHTTPError(http.StatusBadRequest,
				fmt.Errorf("invalid positive integer %q for \"threshold\" parameter", v))
		}
		threshold = t
	}

	values, err := ReadSamples(r.Body)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return newHTTPError(http.StatusBadRequest, perr)
		}
		return err
	}

	engine, err := NewEngine(threshold, a.jobs)
	if err != nil {
		return err
	}
	results, err := engine.Compute(NewSampleSeries(values))
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return newHTTPError(http.StatusBadRequest, err)
		}
		return err
	}

	w.Header().Set("Content-Type", "text/plain")
	return results.Print(w)
}

func newHTTPError(statusCode int, err error) *httpError {
	return &httpError{
		statusText: http.StatusText(statusCode),
		statusCode: statusCode,
		cause:      err,
	}
}

func (e *httpError) Error() string {
	if e.cause == nil {
		return e.statusText
	}
	return fmt.Sprintf("%s: %s", e.statusText, e.cause)
}

func (e *httpError) Unwrap() error {
	return e.cause
}

func (e *httpError) WriteTo(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	http.Error(w, e.Error(), e.statusCode)
}
