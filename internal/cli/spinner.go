package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows "n/N gauges" progress for a dashboard batch on stderr.
// It stops on its own when ctx is cancelled.
type Spinner struct {
	label string
	total int
	done  atomic.Int64
	out   io.Writer

	ctx      context.Context
	cancel   context.CancelFunc
	started  bool
	stopOnce sync.Once
	stopped  chan struct{}

	mu    sync.Mutex
	width int
}

// newBatchSpinner creates a spinner for a batch of total gauges.
func newBatchSpinner(ctx context.Context, label string, total int) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		label:   label,
		total:   total,
		out:     os.Stderr,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Advance records one finished gauge. Safe for concurrent use.
func (s *Spinner) Advance() {
	s.done.Add(1)
}

// Message is the current progress line without the frame.
func (s *Spinner) Message() string {
	done := min(int(s.done.Load()), s.total)
	return fmt.Sprintf("%s %d/%d gauges...", s.label, done, s.total)
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.started = true
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Stop ends the animation and clears the line. Calling it again is a no-op.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		if s.started {
			<-s.stopped
		}
		s.clearLine()
	})
}

func (s *Spinner) draw(frame string) {
	msg := s.Message()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = max(s.width, len(msg)+2)
	fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(msg))
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
	}
}
