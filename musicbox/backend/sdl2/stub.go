//go:build !sdl2

package sdl2

import (
	"errors"

	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/debug"
)

// ErrUnavailable is returned when the binary was built without SDL2.
var ErrUnavailable = errors.New("SDL2 backend not available - build with -tags sdl2 to enable")

// Backend stub for when SDL2 is not available
type Backend struct{}

func New(maxLED uint8) *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.BackendConfig) error {
	return ErrUnavailable
}

func (s *Backend) Update(frame *debug.Frame) ([]backend.InputEvent, error) {
	return nil, ErrUnavailable
}

func (s *Backend) Cleanup() error {
	return nil
}
