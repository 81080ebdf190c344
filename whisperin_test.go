package mtietool

import (
	"path/filepath"
	"testing"
	"time"

	whisper "github.com/go-graphite/go-whisper"
)

func TestReadWhisperSamples(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tie.wsp")
	retentions, err := whisper.ParseRetentionDefs("1s:60s")
	if err != nil {
		t.Fatal(err)
	}
	db, err := whisper.Create(filename, retentions, whisper.Last, 0)
	if err != nil {
		t.Fatal(err)
	}

	now := int(time.Now().Unix())
	points := []struct {
		ago   int
		value float64
	}{
		{ago: 10, value: 0.5},
		{ago: 9, value: 1.5},
		{ago: 8, value: 2.5},
	}
	for _, p := range points {
		if err := db.Update(p.value, now-p.ago); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	values, err := ReadWhisperSamples(filename)
	if err != nil {
		t.Fatal(err)
	}
	want := []Value{0.5, 1.5, 2.5}
	if !valuesEqual(values, want) {
		t.Errorf("samples unmatch, got=%v, want=%v", values, want)
	}
}

func TestReadWhisperSamplesMissingFile(t *testing.T) {
	_, err := ReadWhisperSamples(filepath.Join(t.TempDir(), "no_such_file.wsp"))
	if err == nil {
		t.Error("want an error for a missing whisper file")
	}
}
