package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates the progress of a breadth-first enumeration on one
// terminal line: the distance being expanded and the number of elements
// discovered against the node budget.
type Spinner struct {
	out   io.Writer
	limit int

	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once

	mu         sync.Mutex
	radius     int
	discovered int
	width      int // widest line drawn so far, for clearing
}

// startSpinner starts a spinner for an enumeration with the given node budget.
// It stops and clears its line by itself when ctx is canceled.
func startSpinner(ctx context.Context, out io.Writer, limit int) *Spinner {
	spinCtx, cancel := context.WithCancel(ctx)
	s := &Spinner{
		out:        out,
		limit:      limit,
		parent:     ctx,
		ctx:        spinCtx,
		cancel:     cancel,
		stopped:    make(chan struct{}),
		discovered: 1,
	}
	go s.run()
	return s
}

// Layer records that the enumeration reached a new distance. It matches
// the cayley.EnumerateOptions.OnLayer callback.
func (s *Spinner) Layer(radius, discovered int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.radius, s.discovered = radius, discovered
}

func (s *Spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			s.draw(spinnerFrames[i%len(spinnerFrames)])
		}
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := fmt.Sprintf("Enumerating radius %d, %d/%d elements", s.radius, s.discovered, s.limit)
	if n := utf8.RuneCountInString(msg) + 2; n > s.width {
		s.width = n
	}
	fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(msg))
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
	s.width = 0
}

// Stop stops the animation and clears the line. It may be called more than once.
func (s *Spinner) Stop() {
	s.once.Do(s.cancel)
	<-s.stopped
}

// StopWithError stops the spinner and prints message as an error.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError(s.out, "%s", message)
}

// Cancelled reports whether the spinner stopped because its parent context
// was canceled rather than by Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
