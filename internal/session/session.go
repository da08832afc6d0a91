package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iburimskiy/sound-orbit/internal/engine"
)

// ErrAudioAcquisition is wrapped around any failure to open the audio input.
var ErrAudioAcquisition = errors.New("microphone permission denied or unavailable")

// State of the session.
type State int

const (
	Idle State = iota
	Starting
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Input is a live audio source.
type Input interface {
	Analyze() engine.Frame
	SetPaused(paused bool)
	Close() error
}

// Acquirer opens the audio input. It may block; the session calls it on its
// own goroutine.
type Acquirer interface {
	Acquire(ctx context.Context) (Input, error)
}

// AcquirerFunc adapts a function to Acquirer.
type AcquirerFunc func(ctx context.Context) (Input, error)

func (f AcquirerFunc) Acquire(ctx context.Context) (Input, error) { return f(ctx) }

type result struct {
	input Input
	err   error
}

// Session drives Idle -> Starting -> Running <-> Paused. All methods are
// meant to be called from the frame loop; only acquisition runs elsewhere.
type Session struct {
	acquirer Acquirer
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	input   Input
	closed  bool
	results chan result
}

func New(acquirer Acquirer, log *slog.Logger) *Session {
	return &Session{
		acquirer: acquirer,
		log:      log,
		results:  make(chan result, 1),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Input returns the acquired input, or nil before acquisition succeeds.
func (s *Session) Input() Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Start requests the audio input. It only has an effect in Idle and reports
// whether an acquisition was started.
func (s *Session) Start(ctx context.Context) bool {
	s.mu.Lock()
	if s.state != Idle || s.closed {
		s.mu.Unlock()
		return false
	}
	s.state = Starting
	s.mu.Unlock()

	s.log.Info("requesting audio input")
	go func() {
		in, err := s.acquirer.Acquire(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			// nobody will poll any more
			if err == nil && in != nil {
				_ = in.Close()
			}
			return
		}
		// buffered and only one acquisition is ever in flight
		s.results <- result{input: in, err: err}
	}()
	return true
}

// Poll collects a finished acquisition. It returns an error wrapping
// ErrAudioAcquisition when the input could not be opened, in which case the
// session is back in Idle.
func (s *Session) Poll() error {
	select {
	case r := <-s.results:
		s.mu.Lock()
		defer s.mu.Unlock()
		if r.err != nil {
			s.state = Idle
			s.log.Error("audio input unavailable", "error", r.err)
			return fmt.Errorf("%w: %w", ErrAudioAcquisition, r.err)
		}
		s.input = r.input
		s.state = Running
		s.log.Info("audio input running")
		return nil
	default:
		return nil
	}
}

// TogglePause switches between Running and Paused. It does nothing in any
// other state.
func (s *Session) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case Running:
		s.state = Paused
	case Paused:
		s.state = Running
	default:
		return
	}
	s.input.SetPaused(s.state == Paused)
	s.log.Info("toggled pause", "state", s.state)
}

// Frame returns this tick's audio when running. The frame loop steps the
// engine only when ok is true, so a paused session leaves engine state as is.
func (s *Session) Frame() (f engine.Frame, ok bool) {
	s.mu.Lock()
	in, running := s.input, s.state == Running
	s.mu.Unlock()
	if !running {
		return engine.Frame{}, false
	}
	return in.Analyze(), true
}

// Close releases the input if one was acquired. An acquisition still in
// flight closes its input as soon as it completes.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	select {
	case r := <-s.results:
		if r.err == nil && r.input != nil && s.input == nil {
			s.input = r.input
		}
	default:
	}
	s.state = Idle
	if s.input == nil {
		return nil
	}
	err := s.input.Close()
	s.input = nil
	return err
}
