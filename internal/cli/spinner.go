package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/wordcast/pkg/pipeline"
)

// spiralFrames trace a quarter turn each, like the placement spiral.
var spiralFrames = []string{"◜", "◝", "◞", "◟"}

// Spinner shows the current pipeline stage on a single terminal line until
// stopped or until its context is done.
type Spinner struct {
	w       io.Writer
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	mu      sync.Mutex
	message string
	width   int // widest line drawn, for clearing
	started bool
}

// newSpinnerWithContext creates a stderr spinner that stops drawing when ctx
// is done.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

func newSpinnerTo(ctx context.Context, w io.Writer, message string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		message: message,
	}
}

// Start begins the animation. Calling it more than once has no effect.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			s.draw(spiralFrames[i%len(spiralFrames)])
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

// SetMessage replaces the text shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stage updates the message for a pipeline stage.
func (s *Spinner) Stage(stage string, words int, formats []string) {
	s.SetMessage(stageMessage(stage, words, formats))
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.message)
	s.width = max(s.width, len(s.message)+2)
	fmt.Fprintf(s.w, "\r%s", line)
}

// Stop stops the spinner and clears its line. It is safe to call more than
// once, and on a spinner that was never started.
func (s *Spinner) Stop() {
	s.cancel()
	s.once.Do(func() { close(s.done) })

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.stopped
	}
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's parent context is done.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

// stageMessage describes what the pipeline is doing in a stage.
func stageMessage(stage string, words int, formats []string) string {
	switch stage {
	case pipeline.StageLayout:
		return fmt.Sprintf("Placing %d words...", words)
	case pipeline.StageRender:
		if len(formats) == 0 {
			return "Rendering..."
		}
		return fmt.Sprintf("Rendering %s...", strings.Join(formats, ", "))
	}
	return stage + "..."
}
