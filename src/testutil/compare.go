package testutil

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets cmp look at the unexported fields of the containers.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Diff returns a human readable diff between want and got, or "" if they are
// structurally equal.
func Diff(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, append([]cmp.Option{exportAll}, opts...)...)
}

// Equal reports whether want and got are structurally equal.
func Equal(want, got any, opts ...cmp.Option) bool {
	return cmp.Equal(want, got, append([]cmp.Option{exportAll}, opts...)...)
}
