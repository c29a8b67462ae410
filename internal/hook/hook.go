// Package hook installs a process-wide low-level mouse hook and forwards
// primary-button presses to a registered callback, regardless of which
// application owns the clicked window.
package hook

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"window-pin/internal/logging"
)

// ErrActive is returned by Install while a hook is already installed. The
// hook is a single process-wide resource; the first install wins and stays.
var ErrActive = errors.New("pointer hook already installed")

// Service owns the process-wide pointer hook. The hook procedure runs on a
// dedicated OS thread that does nothing but pump that thread's message queue;
// the registered callback is invoked from hook context and must only hand the
// event off with a non-blocking channel send, since blocking there stalls
// pointer delivery for the whole system.
type Service struct {
	log *logging.Logger

	mu       sync.Mutex
	running  bool
	threadID uint32
	done     chan struct{}

	faults chan error
}

// New creates the hook service. Nothing is installed until Install is called.
func New(log *logging.Logger) *Service {
	return &Service{
		log:    log,
		faults: make(chan error, 1),
	}
}

// Faults delivers at most one error when the hook thread dies unexpectedly,
// so a supervisor can notice a dead hook instead of a silently inert pin
// mode.
func (s *Service) Faults() <-chan error {
	return s.faults
}

func (s *Service) reportFault(err error) {
	s.log.Warn("pointer hook fault", zap.Error(err))
	select {
	case s.faults <- err:
	default:
	}
}
