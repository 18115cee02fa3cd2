package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/coder/websocket"
)

// flushEvery is the number of records gathered into one websocket message.
const flushEvery = 256

// streamSink implements eval.Sink over a websocket connection. Records are
// buffered and shipped in batches; eval.Run serializes the calls, so no
// locking is needed here.
type streamSink struct {
	ctx     context.Context
	conn    *websocket.Conn
	buf     bytes.Buffer
	pending int
	points  int
}

func newStreamSink(ctx context.Context, conn *websocket.Conn) *streamSink {
	return &streamSink{ctx: ctx, conn: conn}
}

// Header ships the schema line on its own so the browser sees it before any
// records arrive.
func (s *streamSink) Header() error {
	s.buf.WriteString("x,y\n")
	return s.flush()
}

func (s *streamSink) Point(x, y float64) error {
	fmt.Fprintf(&s.buf, "%.10f,%.10f\n", x, y)
	s.points++
	s.pending++
	if s.pending >= flushEvery {
		return s.flush()
	}
	return nil
}

func (s *streamSink) flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	err := s.conn.Write(s.ctx, websocket.MessageText, s.buf.Bytes())
	s.buf.Reset()
	s.pending = 0
	return err
}
