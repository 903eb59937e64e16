package queryops

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func reflectValue(v any) reflect.Value {
	return reflect.ValueOf(v)
}

func stringValues[T ~string](m map[string]T) map[string]string {
	res := make(map[string]string, len(m))
	for k, v := range m {
		res[k] = string(v)
	}
	return res
}

func mustLookup(t *testing.T, name string) Operator {
	t.Helper()
	op, ok := Lookup(name)
	require.True(t, ok, name)
	return op
}
