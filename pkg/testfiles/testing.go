package testfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TempFile creates an empty temporary file and removes it when the test finishes.
func (f *Files) TempFile(t testing.TB, prefix string) string {
	t.Helper()

	path, err := f.TempPath(prefix, true)
	require.NoError(t, err, "create temp file")

	t.Cleanup(func() {
		assert.NoError(t, f.CleanupFile(path), "cleanup temp file %q", path)
	})

	return path
}

// RandomFile creates a temporary file holding n random bytes and removes it
// when the test finishes.
func (f *Files) RandomFile(t testing.TB, prefix string, n int) string {
	t.Helper()

	path := f.TempFile(t, prefix)
	require.NoError(t, f.WriteBytes(path, f.RandomBytes(n)), "fill temp file %q", path)

	return path
}

// TempFile calls Default().TempFile.
func TempFile(t testing.TB, prefix string) string {
	t.Helper()
	return std.TempFile(t, prefix)
}

// RandomFile calls Default().RandomFile.
func RandomFile(t testing.TB, prefix string, n int) string {
	t.Helper()
	return std.RandomFile(t, prefix, n)
}
