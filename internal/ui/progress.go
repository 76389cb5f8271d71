package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress counts completed steps of a multi-package operation and prints
// a "[n/total]" line per step. Safe for use from the command goroutine and
// any log writers sharing the output.
type Progress struct {
	out       io.Writer
	total     int
	completed atomic.Int32
	mu        sync.Mutex
}

// NewProgress creates a progress counter for total steps.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Step marks one step completed and prints its label with the counter.
func (p *Progress) Step(label string) {
	n := int(p.completed.Add(1))
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", n, p.total, label)
}

// Log prints an informational message without advancing the counter.
func (p *Progress) Log(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
