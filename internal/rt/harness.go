package rt

import "golang.org/x/sync/errgroup"

// SpawnVM implements vmThread(parent, fn, arg): allocate a child VM
// sized like parent, deep-copy arg into its heap, then run fn on a
// fresh goroutine and terminate the child when fn returns.
func SpawnVM(parent *VM, name string, fn func(child *VM, arg Value)) func(arg Value) *VM {
	return func(arg Value) *VM {
		child := NewVM(name, parent.StackMax, parent.Heap.size, parent.inboxCap)
		copied := deepCopy(parent, child, arg)
		go func() {
			fn(child, copied)
			child.Terminate()
		}()
		return child
	}
}

// Harness fans a fixed set of VM workloads out over goroutines and
// joins them using errgroup. Every runtime fault still exits the
// process directly via fatal(), since there is no recoverable error at
// that layer; Harness.Wait's error return is for workloads that fail in
// an ordinary, non-fatal Go sense (a malformed program argument, a
// context cancellation), not runtime faults.
type Harness struct {
	g *errgroup.Group
}

// NewHarness returns an empty Harness ready for Go.
func NewHarness() *Harness {
	return &Harness{g: &errgroup.Group{}}
}

// Go schedules one workload. The first non-nil error returned by any
// workload is what Wait reports; the rest still run to completion.
func (h *Harness) Go(work func() error) { h.g.Go(work) }

// Wait blocks until every scheduled workload has returned, reporting the
// first error (if any).
func (h *Harness) Wait() error { return h.g.Wait() }
