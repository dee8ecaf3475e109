// Package mtest contains helpers shared by the module's tests.
package mtest

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewLogger returns a logger that writes through t.Log,
// so output is attributed to the test and shown only on failure or -v.
func NewLogger(t testing.TB) *slog.Logger {
	return slogt.New(t)
}
