package rt

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ExitCode is the process exit status for every fatal runtime
// condition.
const ExitCode = -1

// exitFunc and stderr are swapped out by tests so a fatal path can be
// exercised without actually killing the test binary.
var (
	exitFunc = os.Exit
	stderr   = os.Stderr
)

// fatal prints f to the standard error stream and exits with ExitCode.
// There is no return: every call site in this package is on a path
// considered unrecoverable.
func fatal(f *RuntimeFault) {
	printFatal(f.Code, f.Message)
	exitFunc(ExitCode)
}

func fatalf(code FaultCode, format string, args ...any) {
	printFatal(code, fmt.Sprintf(format, args...))
	exitFunc(ExitCode)
}

// printFatal writes the diagnostic, colorized when stderr is a
// terminal.
func printFatal(code FaultCode, message string) {
	isTTY := term.IsTerminal(int(stderr.Fd()))
	if isTTY {
		bold := color.New(color.FgRed, color.Bold)
		bold.Fprintf(stderr, "fatal %s: ", code)
		fmt.Fprintln(stderr, message)
		return
	}
	fmt.Fprintf(stderr, "fatal %s: %s\n", code, message)
}
