// Package bench measures how the grid evaluator scales with its thread
// count. Suites are declared in HCL; each suite runs the evaluator several
// times per thread count and reports raw timings plus speedup/efficiency
// metrics as CSV.
package bench

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Suite is one scaling experiment: a fixed grid resolution swept across a
// list of thread counts, each repeated Runs times.
//
//	suite "task1" {
//	  npoints = 5000
//	  threads = [1, 2, 4, 8, cpus]
//	  runs    = 10
//	}
type Suite struct {
	Name    string `hcl:"name,label"`
	Npoints int    `hcl:"npoints"`
	Threads []int  `hcl:"threads"`
	Runs    int    `hcl:"runs,optional"`
}

type suiteFile struct {
	Suites []*Suite `hcl:"suite,block"`
}

// evalContext exposes the variables suites may reference. cpus lets a suite
// scale its thread list to the machine it runs on.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// LoadSuites parses and validates the suite definitions in the given file.
func LoadSuites(path string) ([]*Suite, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeSuites(src, path)
}

func decodeSuites(src []byte, filename string) ([]*Suite, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var root suiteFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}
	if len(root.Suites) == 0 {
		return nil, fmt.Errorf("%s defines no suites", filename)
	}

	for _, s := range root.Suites {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("suite %q: %w", s.Name, err)
		}
	}
	return root.Suites, nil
}

func (s *Suite) validate() error {
	if s.Npoints < 2 {
		return fmt.Errorf("npoints must be at least 2 (got %d)", s.Npoints)
	}
	if len(s.Threads) == 0 {
		return fmt.Errorf("threads list is empty")
	}
	for _, t := range s.Threads {
		if t < 1 {
			return fmt.Errorf("thread counts must be positive (got %d)", t)
		}
	}
	if s.Runs == 0 {
		s.Runs = 1
	}
	if s.Runs < 0 {
		return fmt.Errorf("runs must be positive (got %d)", s.Runs)
	}
	return nil
}
