package mtietool

import (
	"fmt"
	"math"
	"time"

	whisper "github.com/go-graphite/go-whisper"
)

// ReadWhisperSamples reads a TIE series from a Graphite whisper
// archive. It fetches the highest-resolution archive over its full
// retention and drops empty points, preserving sample order.
func ReadWhisperSamples(filename string) ([]Value, error) {
	db, err := whisper.Open(filename)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	now := int(time.Now().Unix())
	from := now - db.Retentions()[0].MaxRetention()
	ts, err := db.Fetch(from, now)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		return nil, fmt.Errorf("no data points in whisper file %s", filename)
	}

	var values []Value
	for _, v := range ts.Values() {
		if math.IsNaN(v) {
			continue
		}
		values = append(values, Value(v))
	}
	return values, nil
}
