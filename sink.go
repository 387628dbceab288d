package parallelprobe

import (
	"fmt"
	"io"
	"sync"
)

// Sink collects line-oriented probe output.
//
// Each Emit produces exactly one line: the line is recorded in order and,
// when the sink wraps a writer, written through immediately. Sink is safe
// for concurrent use; lines from concurrent emitters are serialized but
// their relative order is whatever the scheduler produced.
type Sink struct {
	mu    sync.Mutex
	w     io.Writer
	lines []string
}

// NewSink returns a sink that writes each emitted line to w.
// A nil w records lines without writing them anywhere.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Emit formats one output line and records it.
// A trailing newline is appended on write; format should not include one.
func (s *Sink) Emit(format string, args ...any) {
	line := fmt.Sprintf(format, args...)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	if s.w != nil {
		fmt.Fprintln(s.w, line)
	}
}

// Lines returns a copy of all emitted lines in emission order.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines emitted so far.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
