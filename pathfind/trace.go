package pathfind

import (
	"errors"
	"sync"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// ErrStreamClosed is returned by Stream.Visit after Close or Stop, which
// aborts the search that feeds it.
var ErrStreamClosed = errors.New("pathfind: trace stream closed")

// Recorder collects the visitation trace into a slice.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	cells []gridgraph.Cell
}

// Visit appends c. It matches the WithOnVisit hook signature.
func (r *Recorder) Visit(c gridgraph.Cell) error {
	r.mu.Lock()
	r.cells = append(r.cells, c)
	r.mu.Unlock()
	return nil
}

// Option returns WithOnVisit(r.Visit).
func (r *Recorder) Option() Option {
	return WithOnVisit(r.Visit)
}

// Cells returns a copy of the trace recorded so far.
func (r *Recorder) Cells() []gridgraph.Cell {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]gridgraph.Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Stream turns the visitation trace into a channel without ever blocking the
// producer: Visit appends to an unbounded buffer and a pump goroutine feeds
// C() in order. Close flushes the buffer and then closes C(); Stop drops
// whatever is pending and closes C() right away.
type Stream struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []gridgraph.Cell
	closed bool
	out    chan gridgraph.Cell
	done   chan struct{}
	once   sync.Once
}

// NewStream starts the pump goroutine. Callers must eventually Close or Stop.
func NewStream() *Stream {
	s := &Stream{
		out:  make(chan gridgraph.Cell),
		done: make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.pump()
	return s
}

// C returns the receive side of the stream.
func (s *Stream) C() <-chan gridgraph.Cell {
	return s.out
}

// Visit enqueues c. It never blocks on the consumer.
func (s *Stream) Visit(c gridgraph.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	s.buf = append(s.buf, c)
	s.cond.Signal()
	return nil
}

// Option returns WithOnVisit(s.Visit).
func (s *Stream) Option() Option {
	return WithOnVisit(s.Visit)
}

// Close marks the end of the trace; buffered cells are still delivered.
func (s *Stream) Close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Stop abandons the stream: pending cells are discarded.
func (s *Stream) Stop() {
	s.once.Do(func() { close(s.done) })
	s.mu.Lock()
	s.closed = true
	s.buf = nil
	s.cond.Broadcast()
	s.mu.Unlock()
}

func (s *Stream) pump() {
	defer close(s.out)
	for {
		s.mu.Lock()
		for len(s.buf) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.buf) == 0 {
			s.mu.Unlock()
			return
		}
		c := s.buf[0]
		s.buf = s.buf[1:]
		s.mu.Unlock()

		select {
		case s.out <- c:
		case <-s.done:
			return
		}
	}
}
