// Package zorder moves windows between the topmost and normal z-order bands.
package zorder

import "errors"

// ErrInvalidHandle is returned when the target window no longer exists. The
// condition is recoverable; callers are expected to drop their bookkeeping
// for the window and carry on.
var ErrInvalidHandle = errors.New("window handle is no longer valid")

// Service applies and removes the always-on-top attribute.
type Service struct{}

// New creates a new z-order service.
func New() *Service {
	return &Service{}
}
