package rt_test

import (
	"errors"
	"testing"

	"github.com/vexlang/vexrt/internal/rt"
)

func TestSpawnVMDeepCopiesArgAndRunsConcurrently(t *testing.T) {
	parent := newVM(t)
	done := make(chan string, 1)

	launch := rt.SpawnVM(parent, "worker", func(child *rt.VM, arg rt.Value) {
		done <- child.GetStr(arg)
	})
	launch(parent.MakeString("payload"))

	if got := <-done; got != "payload" {
		t.Fatalf("child saw %q, want %q", got, "payload")
	}
}

func TestHarnessWaitReportsFirstError(t *testing.T) {
	h := rt.NewHarness()
	boom := errors.New("boom")

	h.Go(func() error { return nil })
	h.Go(func() error { return boom })

	if err := h.Wait(); err != boom {
		t.Fatalf("Wait() = %v, want %v", err, boom)
	}
}
