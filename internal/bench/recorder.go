// Package bench times full pipeline runs over a list of limits and records
// the results as limit,time_seconds CSV rows.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Measurement is the outcome of one timed run.
type Measurement struct {
	Limit   int
	Primes  int
	Stages  int
	Elapsed time.Duration
}

// Recorder receives measurements as they are taken.
type Recorder interface {
	Record(m Measurement) error
}

// CSVRecorder writes a header on first use and one row per measurement.
type CSVRecorder struct {
	w           *csv.Writer
	wroteHeader bool
}

func NewCSVRecorder(w io.Writer) *CSVRecorder {
	return &CSVRecorder{w: csv.NewWriter(w)}
}

func (r *CSVRecorder) Record(m Measurement) error {
	if !r.wroteHeader {
		if err := r.w.Write([]string{"limit", "time_seconds"}); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		r.wroteHeader = true
	}

	row := []string{
		strconv.Itoa(m.Limit),
		strconv.FormatFloat(m.Elapsed.Seconds(), 'f', 8, 64),
	}
	if err := r.w.Write(row); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}

	// flush per row so a crashed sweep keeps what it measured
	r.w.Flush()
	return r.w.Error()
}
