package nav

import "sync"

// Navigator performs a navigation to an application path. Implementations
// bridge to whatever drives the UI: a router, a terminal screen switch, a
// redirect response.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the [Navigator] interface.
type NavigatorFunc func(path string)

// Navigate implements [Navigator].
func (f NavigatorFunc) Navigate(path string) { f(path) }

// NoOpNavigator ignores every navigation. It is the default.
type NoOpNavigator struct{}

// Navigate implements [Navigator].
func (NoOpNavigator) Navigate(string) {}

// Recorder remembers every navigation in order. Useful in tests and in UIs
// that drain navigations from their own loop.
type Recorder struct {
	mu    sync.Mutex
	paths []string
}

// Navigate implements [Navigator].
func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// Paths returns a copy of the recorded navigations in order.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Last returns the most recent navigation, if any.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.paths) == 0 {
		return "", false
	}
	return r.paths[len(r.paths)-1], true
}
