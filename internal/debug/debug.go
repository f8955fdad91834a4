//go:build debug

// Package debug includes debugging helpers for the tree's internal invariants.
//
// Builds tagged with "debug" pay for goroutine-tagged assertion logging;
// release builds compile Assert and Log down to no-ops.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/timandy/routine"
)

// Enabled is true when the binary was built with the debug tag.
const Enabled = true

var tls = routine.NewThreadLocal[testing.TB]()

// WithTesting routes Log output through t.Log instead of stderr for the
// lifetime of the returned restore function.
func WithTesting(t testing.TB) func() {
	t.Helper()

	prev := tls.Get()
	tls.Set(t)

	return func() { tls.Set(prev) }
}

// Log prints a debug trace tagged with the calling goroutine and call site.
func Log(operation, format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)

	buf := new(strings.Builder)

	fmt.Fprintf(buf, "%s:%d [g%04d] %s: ", filepath.Base(file), line, routine.Goid(), operation)
	fmt.Fprintf(buf, format, args...)

	if t := tls.Get(); t != nil {
		t.Helper()
		t.Log(buf.String())

		return
	}

	buf.WriteByte('\n')
	_, _ = os.Stderr.WriteString(buf.String())
}

// Assert panics if cond is false. It only runs in debug builds; release
// builds compile calls to this function down to a no-op.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("art: internal assertion failed: "+format, args...))
	}
}
