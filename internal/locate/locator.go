// Package locate resolves screen coordinates to top-level window handles.
package locate

import "errors"

// ErrNoWindowAtPoint is returned when no window occupies the queried point.
var ErrNoWindowAtPoint = errors.New("no window at point")

// Service answers point-to-window queries. All methods are pure queries with
// no side effects on the windows involved.
type Service struct{}

// New creates a new locator service.
func New() *Service {
	return &Service{}
}
