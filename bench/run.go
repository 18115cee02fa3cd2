package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/marben/mandelgrid/eval"
)

// Timing is one measured evaluation run.
type Timing struct {
	Threads int
	Points  int
	Run     int
	Seconds float64
}

// Metric is the per-thread-count aggregate. Speedup is relative to the
// single-thread mean (or the smallest measured thread count when the suite
// has no nthreads=1 entry); Efficiency is Speedup divided by the thread
// count.
type Metric struct {
	Threads     int
	Points      int
	MeanSeconds float64
	Speedup     float64
	Efficiency  float64
}

// Collect runs the suite and returns one Timing per (thread count, run).
// Output goes to a discarding sink, so the measurement includes formatting
// cost but no real I/O, same as the original harness piping stdout to the
// null device.
func (s *Suite) Collect() ([]Timing, error) {
	var timings []Timing
	for _, nt := range s.Threads {
		for r := 1; r <= s.Runs; r++ {
			log.Printf("suite %s: nthreads=%d npoints=%d run=%d/%d", s.Name, nt, s.Npoints, r, s.Runs)

			cfg := eval.Config{Threads: nt, Points: s.Npoints}
			sink := eval.NewCSVSink(io.Discard)

			start := time.Now()
			if err := eval.Run(cfg, sink); err != nil {
				return nil, fmt.Errorf("nthreads=%d run=%d: %w", nt, r, err)
			}
			elapsed := time.Since(start).Seconds()

			log.Printf("suite %s: nthreads=%d run=%d took %.6fs", s.Name, nt, r, elapsed)
			timings = append(timings, Timing{Threads: nt, Points: s.Npoints, Run: r, Seconds: elapsed})
		}
	}
	return timings, nil
}

// Aggregate reduces raw timings to one Metric per thread count, sorted by
// thread count ascending.
func Aggregate(timings []Timing) []Metric {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	points := make(map[int]int)
	for _, t := range timings {
		sums[t.Threads] += t.Seconds
		counts[t.Threads]++
		points[t.Threads] = t.Points
	}

	threads := make([]int, 0, len(sums))
	for nt := range sums {
		threads = append(threads, nt)
	}
	sort.Ints(threads)
	if len(threads) == 0 {
		return nil
	}

	means := make(map[int]float64, len(threads))
	for _, nt := range threads {
		means[nt] = sums[nt] / float64(counts[nt])
	}

	base, ok := means[1]
	if !ok {
		base = means[threads[0]]
	}

	metrics := make([]Metric, 0, len(threads))
	for _, nt := range threads {
		speedup := base / means[nt]
		metrics = append(metrics, Metric{
			Threads:     nt,
			Points:      points[nt],
			MeanSeconds: means[nt],
			Speedup:     speedup,
			Efficiency:  speedup / float64(nt),
		})
	}
	return metrics
}

// WriteTimings writes the raw timing rows in the harness CSV layout.
func WriteTimings(w io.Writer, rows []Timing) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"nthreads", "npoints", "run_index", "time"}); err != nil {
		return err
	}
	for _, t := range rows {
		rec := []string{
			fmt.Sprintf("%d", t.Threads),
			fmt.Sprintf("%d", t.Points),
			fmt.Sprintf("%d", t.Run),
			fmt.Sprintf("%.6f", t.Seconds),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMetrics writes the aggregated metric rows in the harness CSV layout.
func WriteMetrics(w io.Writer, rows []Metric) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"nthreads", "npoints", "mean_time", "acceleration", "efficiency"}); err != nil {
		return err
	}
	for _, m := range rows {
		rec := []string{
			fmt.Sprintf("%d", m.Threads),
			fmt.Sprintf("%d", m.Points),
			fmt.Sprintf("%.6f", m.MeanSeconds),
			fmt.Sprintf("%.6f", m.Speedup),
			fmt.Sprintf("%.6f", m.Efficiency),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
