package subprocess

import (
	"log/slog"
	"sync"
)

// registry is the process-wide defaults cell. The current record is never
// modified in place; updates replace it and push the old one on the stack.
type registry struct {
	mu      sync.Mutex
	current *Defaults
	scopes  []*Scope
}

var global = newRegistry()

func newRegistry() *registry {
	return &registry{current: New()}
}

func (r *registry) snapshot() *Defaults {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *registry) update(opts ...UpdateOption) (*Scope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := r.current.Copy()
	if err := updated.Update(opts...); err != nil {
		return nil, err
	}

	scope := &Scope{
		registry: r,
		saved:    r.current,
		depth:    len(r.scopes),
	}
	r.scopes = append(r.scopes, scope)
	r.current = updated

	return scope, nil
}

// Scope is an active update of the process-wide defaults, created by
// UpdateDefaults. Restore puts back the defaults that were in effect before
// it.
type Scope struct {
	registry *registry
	saved    *Defaults
	depth    int
	restored bool
}

// Restore reinstates the defaults saved when the scope was acquired.
// Scopes unwind in stack order: restoring a scope that still has active
// inner scopes restores those too. Restore is idempotent.
func (s *Scope) Restore() {
	r := s.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.restored {
		return
	}

	if inner := len(r.scopes) - s.depth - 1; inner > 0 {
		slog.Default().Warn("restoring subprocess defaults over active inner scopes", "inner", inner)
	}

	for i := len(r.scopes) - 1; i >= s.depth; i-- {
		r.scopes[i].restored = true
	}
	r.scopes = r.scopes[:s.depth]
	r.current = s.saved
}

// UpdateDefaults replaces the process-wide defaults with a modified copy and
// returns a Scope that restores the previous ones. Fields without an option
// keep their value. If any option fails, nothing changes and no scope is
// acquired.
//
// Defer the restore immediately so it happens on every exit path:
//
//	scope, err := subprocess.UpdateDefaults(subprocess.SetCwd(dir))
//	if err != nil {
//		return err
//	}
//	defer scope.Restore()
func UpdateDefaults(opts ...UpdateOption) (*Scope, error) {
	return global.update(opts...)
}

// InScope runs fn with the process-wide defaults updated by opts, restoring
// them afterwards whether fn returns normally, returns an error or panics.
func InScope(fn func() error, opts ...UpdateOption) error {
	scope, err := UpdateDefaults(opts...)
	if err != nil {
		return err
	}
	defer scope.Restore()

	return fn()
}

// Current returns a copy of the process-wide defaults.
func Current() *Defaults {
	return global.snapshot().Copy()
}

// With starts a call against the process-wide defaults in effect now.
// Later updates do not affect the returned Call.
func With(opts ...CallOption) *Call {
	return global.snapshot().With(opts...)
}

// Run executes a command using the process-wide defaults. See Call.Run.
func Run(args ...any) (*Result, error) {
	return With().Run(args...)
}

// StdoutText runs a command using the process-wide defaults and returns its
// standard output. See Call.StdoutText.
func StdoutText(args ...any) (string, error) {
	return With().StdoutText(args...)
}

// StdoutLines runs a command using the process-wide defaults and returns its
// standard output as lines. See Call.StdoutLines.
func StdoutLines(args ...any) ([]string, error) {
	return With().StdoutLines(args...)
}
