// server is a live viewer for the grid evaluator. It serves a canvas page
// from ./static and streams the in-set points of one evaluation run over a
// websocket to every browser that connects. All computation stays in this
// process; the websocket only carries the result stream.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/marben/mandelgrid/eval"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	httpAddr := flag.String("http", ":8080", "listen address for the viewer")
	threads := flag.Int("threads", runtime.NumCPU(), "worker count per evaluation")
	npoints := flag.Int("npoints", 1000, "grid resolution per axis")
	regionName := flag.String("region", "full", "region to sample, one of: "+regionNames())
	flag.Parse()

	region, ok := regions[*regionName]
	if !ok {
		return fmt.Errorf("unknown region %q, expected one of: %s", *regionName, regionNames())
	}

	cfg := eval.Config{
		Threads: *threads,
		Points:  *npoints,
		Region:  region,
	}

	srv := webServer(*httpAddr, cfg)
	log.Printf("viewer listening on http://localhost%s (region %q, %d points, %d threads)",
		*httpAddr, *regionName, *npoints, *threads)
	return srv.ListenAndServe()
}
