package app

import (
	"errors"

	"go.uber.org/zap"

	"perspectiveview/internal/core"
	"perspectiveview/internal/perspective"
)

// FrameWriter persists the commands of each drawn frame.
type FrameWriter interface {
	WriteFrame(cmds []perspective.Command) error
}

// Session drives a scene independently of the window toolkit: it advances
// ticks, draws frames onto a surface and optionally records them.
type Session struct {
	scene   core.Scene
	rec     FrameWriter
	log     *zap.Logger
	lastErr string

	ticks   int
	frames  int
	dropped int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRecorder records every drawn frame to w.
func WithRecorder(w FrameWriter) SessionOption {
	return func(s *Session) { s.rec = w }
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(l *zap.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession wraps scene.
func NewSession(scene core.Scene, opts ...SessionOption) *Session {
	s := &Session{scene: scene, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scene returns the driven scene.
func (s *Session) Scene() core.Scene { return s.scene }

// Tick advances the scene by one step.
func (s *Session) Tick(in core.Input) {
	s.scene.Step(in)
	s.ticks++
}

type readiness interface{ Ready() bool }

// Draw renders one frame onto surface and records it. A failed frame draws
// nothing; the error is returned and logged once until a frame succeeds.
func (s *Session) Draw(surface perspective.Surface) error {
	err := s.draw(surface)
	if err != nil {
		s.dropped++
		if msg := err.Error(); msg != s.lastErr {
			s.lastErr = msg
			s.log.Warn("frame not drawn", zap.Int("tick", s.ticks), zap.Error(err))
		}
		return err
	}
	if s.lastErr != "" {
		s.log.Info("frames resumed", zap.Int("tick", s.ticks), zap.Int("dropped", s.dropped))
		s.lastErr = ""
	}
	s.frames++
	return nil
}

func (s *Session) draw(surface perspective.Surface) error {
	if surface == nil {
		return perspective.ErrSurfaceUnavailable
	}
	if rs, ok := surface.(readiness); ok && !rs.Ready() {
		return perspective.ErrSurfaceUnavailable
	}
	cmds, err := s.scene.Frame()
	if err != nil {
		return err
	}
	perspective.Replay(surface, cmds)
	if s.rec != nil {
		if err := s.rec.WriteFrame(cmds); err != nil {
			// the frame is on screen; only the recording failed.
			s.log.Error("record frame", zap.Error(err))
			s.rec = nil
		}
	}
	return nil
}

// Stats reports ticks, drawn frames and dropped frames.
func (s *Session) Stats() (ticks, frames, dropped int) {
	return s.ticks, s.frames, s.dropped
}

// IsSurfaceError reports whether err only means the surface was not ready.
func IsSurfaceError(err error) bool {
	return errors.Is(err, perspective.ErrSurfaceUnavailable)
}
