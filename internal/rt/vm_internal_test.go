package rt

import (
	"os"
	"testing"
)

// withFatalCapture swaps exitFunc and stderr for the duration of fn so a
// fatal path can be exercised without killing the test binary.
func withFatalCapture(t *testing.T, fn func()) (exitCode int, stderrText string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	oldExit, oldStderr := exitFunc, stderr
	called := -1
	exitFunc = func(code int) { called = code }
	stderr = w
	defer func() {
		exitFunc, stderr = oldExit, oldStderr
	}()

	fn()

	w.Close()
	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	r.Close()
	return called, string(buf[:n])
}

func TestPushPastStackMaxIsFatal(t *testing.T) {
	vm := NewVM("overflow-test", 2, 4096, 4)
	defer vm.Terminate()

	code, msg := withFatalCapture(t, func() {
		vm.Push(MakeInt(1))
		vm.Push(MakeInt(2))
		vm.Push(MakeInt(3)) // exceeds StackMax=2
	})

	if code != ExitCode {
		t.Errorf("exit code = %d, want %d", code, ExitCode)
	}
	if msg == "" {
		t.Error("expected a fatal message on stderr")
	}
	if len(vm.Stack) != 2 {
		t.Errorf("Stack grew past StackMax: len=%d", len(vm.Stack))
	}
}

func TestRecvOnTerminatedVMWithNoMessagesIsFatal(t *testing.T) {
	vm := NewVM("recv-fatal-test", 4, 4096, 4)
	vm.Terminate()

	code, _ := withFatalCapture(t, func() {
		vm.RecvMessage()
	})

	if code != ExitCode {
		t.Errorf("exit code = %d, want %d", code, ExitCode)
	}
}
