package main

import (
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/mandelgrid/eval"
)

// webServer builds the viewer's HTTP server: the canvas page from ./static
// plus the /ws streaming endpoint.
func webServer(addr string, cfg eval.Config) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler runs one evaluation per connection and streams the
// result records to the browser. The stream carries the same CSV framing as
// the CLI, batched into text messages so a megapoint run does not turn into
// a million tiny frames.
func websocketHandler(cfg eval.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("got connection from: %s", r.RemoteAddr)
		sink := newStreamSink(r.Context(), c)

		start := time.Now()
		if err := eval.Run(cfg, sink); err != nil {
			log.Printf("err: evaluation for %s: %v", r.RemoteAddr, err)
			c.Close(websocket.StatusInternalError, "evaluation failed")
			return
		}
		if err := sink.flush(); err != nil {
			log.Printf("err: final flush for %s: %v", r.RemoteAddr, err)
			return
		}

		log.Printf("streamed %d points to %s in %.3fs", sink.points, r.RemoteAddr, time.Since(start).Seconds())
		c.Close(websocket.StatusNormalClosure, "done")
	}
}
