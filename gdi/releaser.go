package gdi

import (
	"errors"
	"fmt"
)

// Releaser is a stack of pending resource releases. Releases are pushed in
// acquisition order and run in reverse order by Unwind.
//
// The zero value is an empty stack, ready to use.
type Releaser struct {
	pending []pendingRelease
}

type pendingRelease struct {
	name    string
	release func() error
}

// Push registers the release function for a resource which has just been
// acquired.
func (r *Releaser) Push(name string, release func() error) {
	if release == nil {
		return
	}
	r.pending = append(r.pending, pendingRelease{name: name, release: release})
}

// Len returns the number of pending releases.
func (r *Releaser) Len() int {
	return len(r.pending)
}

// Unwind runs all pending releases, last pushed first, and empties the
// stack. Every release runs exactly once, even if earlier ones fail.
//
// Release failures happen during cleanup, after the outcome of the
// operation has been decided. They are traced and returned (joined) for
// diagnostics, but callers usually do not treat them as the operation's
// error.
func (r *Releaser) Unwind() error {
	var errs []error
	for len(r.pending) > 0 {
		top := r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]
		tracer().Debugf("releasing %s", top.name)
		if err := top.release(); err != nil {
			tracer().Errorf("release of %s failed: %v", top.name, err)
			errs = append(errs, fmt.Errorf("release %s: %w", top.name, err))
		}
	}
	return errors.Join(errs...)
}
