package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects appended fx hooks so tests can invoke
// OnStart/OnStop directly instead of running the app.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when a component requests shutdown.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies without blocking; repeated calls are collapsed.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
