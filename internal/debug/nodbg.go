//go:build !debug

package debug

import "testing"

// Enabled is true when the binary was built with the debug tag.
const Enabled = false

func Log(string, string, ...any) {}

func Assert(bool, string, ...any) {}

// WithTesting is a no-op outside of debug builds.
func WithTesting(t testing.TB) func() { return func() {} }
