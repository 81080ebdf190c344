package mtietool

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "tie.txt")

	c := &GenerateCommand{}
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	args := []string{"-n", "100", "--seed", "42", "--text-out", output}
	if err := c.Parse(fs, args); err != nil {
		t.Fatal(err)
	}
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	values, err := ReadSamples(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 100 {
		t.Errorf("sample count unmatch, got=%d, want=%d", len(values), 100)
	}
}

func TestGenerateCommandSeedDeterminism(t *testing.T) {
	dir := t.TempDir()

	generate := func(output string) []byte {
		t.Helper()
		c := &GenerateCommand{
			Count:   50,
			Wander:  1.0,
			Noise:   0.1,
			Seed:    7,
			TextOut: output,
		}
		if err := c.Execute(); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	first := generate(filepath.Join(dir, "a.txt"))
	second := generate(filepath.Join(dir, "b.txt"))
	if string(first) != string(second) {
		t.Error("outputs unmatch for the same seed")
	}
}

func TestGenerateCommandCountTooSmall(t *testing.T) {
	for _, count := range []string{"0", "1", "-5"} {
		c := &GenerateCommand{}
		fs := flag.NewFlagSet("generate", flag.ContinueOnError)
		err := c.Parse(fs, []string{"--count", count})
		if !errors.Is(err, errCountTooSmall) {
			t.Errorf("unexpected error for count %s, got=%v, want=%v", count, err, errCountTooSmall)
		}
	}
}
