// bench runs the scaling suites from an HCL file and writes per-suite
// timing and metric CSVs, the inputs the plotting tooling consumes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/marben/mandelgrid/bench"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	suitePath := flag.String("suite", "bench.hcl", "path to the HCL suite file")
	outDir := flag.String("out", "results", "directory for the CSV reports")
	flag.Parse()

	suites, err := bench.LoadSuites(*suitePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	for _, s := range suites {
		timings, err := s.Collect()
		if err != nil {
			return fmt.Errorf("suite %q: %w", s.Name, err)
		}

		timingsPath := filepath.Join(*outDir, fmt.Sprintf("timings_%s.csv", s.Name))
		if err := writeCSV(timingsPath, func(f *os.File) error {
			return bench.WriteTimings(f, timings)
		}); err != nil {
			return err
		}
		log.Printf("suite %s: raw timings saved to %s", s.Name, timingsPath)

		metricsPath := filepath.Join(*outDir, fmt.Sprintf("metrics_%s.csv", s.Name))
		if err := writeCSV(metricsPath, func(f *os.File) error {
			return bench.WriteMetrics(f, bench.Aggregate(timings))
		}); err != nil {
			return err
		}
		log.Printf("suite %s: metrics saved to %s", s.Name, metricsPath)
	}
	return nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
