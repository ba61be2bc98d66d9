package app

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"
	"github.com/shini4i/test-utils/internal/mocks"
	"github.com/shini4i/test-utils/pkg/testfiles"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTempDir = "/tmp"

func setupTestLogger(t *testing.T, name string) *logging.Logger {
	logger := logging.MustGetLogger(name)
	logging.SetBackend(logging.NewLogBackend(io.Discard, "", 0))
	t.Cleanup(func() {
		logging.SetBackend(logging.NewLogBackend(os.Stdout, "", 0))
	})
	return logger
}

// newMemApp builds an App over an in-memory filesystem and returns it with its output buffer.
func newMemApp(t *testing.T) (*App, afero.Fs, *bytes.Buffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testTempDir, 0o755))

	out := &bytes.Buffer{}
	appInstance, err := New(NewConfig(WithTempDirBase(testTempDir), WithSeed(1)), Dependencies{
		FS:     fs,
		Logger: setupTestLogger(t, "app-test"),
		Out:    out,
		Checksum: func(io.Reader) (string, error) {
			return "sum", nil
		},
	})
	require.NoError(t, err)

	return appInstance, fs, out
}

func newMockApp(t *testing.T, store *mocks.MockFileStore, globber *mocks.MockGlobber) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	deps := Dependencies{
		FS:     afero.NewMemMapFs(),
		Store:  store,
		Logger: setupTestLogger(t, "app-mock"),
		Out:    out,
	}
	if globber != nil {
		deps.Globber = globber
	}

	appInstance, err := New(NewConfig(), deps)
	require.NoError(t, err)

	return appInstance, out
}

func TestNewRequiresLogger(t *testing.T) {
	_, err := New(NewConfig(), Dependencies{})
	assert.EqualError(t, err, "logger must be provided")
}

func TestNewDefaults(t *testing.T) {
	appInstance, err := New(NewConfig(), Dependencies{Logger: setupTestLogger(t, "app-defaults")})
	require.NoError(t, err)

	assert.IsType(t, &afero.OsFs{}, appInstance.fs)
	assert.IsType(t, &testfiles.Files{}, appInstance.store)
	assert.Equal(t, os.Stdout, appInstance.out)
}

func TestTemp(t *testing.T) {
	appInstance, fs, out := newMemApp(t)

	require.NoError(t, appInstance.Temp("fixture", true))

	path := strings.TrimSpace(out.String())
	assert.Regexp(t, `^fixture-[A-Za-z0-9]{8}$`, filepath.Base(path))
	assert.Equal(t, testTempDir, filepath.Dir(path))

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTempWithoutCreate(t *testing.T) {
	appInstance, fs, out := newMemApp(t)

	require.NoError(t, appInstance.Temp("ghost", false))

	exists, err := afero.Exists(fs, strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteAppendRead(t *testing.T) {
	appInstance, _, out := newMemApp(t)
	path := filepath.Join(testTempDir, "data.txt")

	require.NoError(t, appInstance.Write(path, Payload{Data: "hello"}))
	require.NoError(t, appInstance.Append(path, Payload{Data: ", world"}))
	require.NoError(t, appInstance.Read(path, true))

	assert.Equal(t, "hello, world", out.String())
}

func TestReadSummary(t *testing.T) {
	appInstance, fs, out := newMemApp(t)
	path := filepath.Join(testTempDir, "data.txt")
	require.NoError(t, afero.WriteFile(fs, path, []byte("hello"), 0o644))

	require.NoError(t, appInstance.Read(path, false))

	assert.Equal(t, path+"\t5\tsum\n", out.String())
}

func TestReadSummaryWithRealChecksum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	out := &bytes.Buffer{}
	appInstance, err := New(NewConfig(WithTempDirBase(dir)), Dependencies{
		Logger: setupTestLogger(t, "app-checksum"),
		Out:    out,
	})
	require.NoError(t, err)

	require.NoError(t, appInstance.Read(path, false))
	assert.Equal(t, path+"\t5\t2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824\n", out.String())
}

func TestReadSummaryHashesReadBytes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mem/hello.txt", []byte("hello"), 0o644))

	out := &bytes.Buffer{}
	appInstance, err := New(NewConfig(WithTempDirBase("/mem")), Dependencies{
		FS:     fs,
		Logger: setupTestLogger(t, "app-mem-checksum"),
		Out:    out,
	})
	require.NoError(t, err)

	require.NoError(t, appInstance.Read("/mem/hello.txt", false))
	assert.Equal(t, "/mem/hello.txt\t5\t2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824\n", out.String())
}

func TestReadMissing(t *testing.T) {
	appInstance, _, out := newMemApp(t)

	err := appInstance.Read(filepath.Join(testTempDir, "missing"), false)
	assert.True(t, testfiles.IsNotExist(err))
	assert.Empty(t, out.String())
}

func TestAppendRandomPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockFileStore(ctrl)
	appInstance, _ := newMockApp(t, store, nil)

	random := []byte{1, 2, 3, 4}
	gomock.InOrder(
		store.EXPECT().RandomBytes(4).Return(random),
		store.EXPECT().AppendBytes("/tmp/blob", random).Return(nil),
	)

	assert.NoError(t, appInstance.Append("/tmp/blob", Payload{Random: 4}))
}

func TestWritePropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockFileStore(ctrl)
	appInstance, _ := newMockApp(t, store, nil)

	writeErr := &testfiles.FileError{Op: testfiles.OpWrite, Path: "/tmp/x", Err: errors.New("denied")}
	store.EXPECT().WriteBytes("/tmp/x", []byte("data")).Return(writeErr)

	assert.ErrorIs(t, appInstance.Write("/tmp/x", Payload{Data: "data"}), writeErr)
}

func TestCleanupStopsAtFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockFileStore(ctrl)
	appInstance, _ := newMockApp(t, store, nil)

	removeErr := errors.New("permission denied")
	gomock.InOrder(
		store.EXPECT().CleanupFile("/tmp/a").Return(nil),
		store.EXPECT().CleanupFile("/tmp/b").Return(removeErr),
	)

	err := appInstance.Cleanup([]string{"/tmp/a", "/tmp/b", "/tmp/c"})
	assert.ErrorIs(t, err, removeErr)
}

func TestSweep(t *testing.T) {
	t.Run("removes every match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockFileStore(ctrl)
		globber := mocks.NewMockGlobber(ctrl)
		appInstance, _ := newMockApp(t, store, globber)

		globber.EXPECT().Glob("/tmp/t-*").Return([]string{"/tmp/t-AAAAAAAA", "/tmp/t-BBBBBBBB"}, nil)
		store.EXPECT().CleanupFile("/tmp/t-AAAAAAAA").Return(nil)
		store.EXPECT().CleanupFile("/tmp/t-BBBBBBBB").Return(nil)

		assert.NoError(t, appInstance.Sweep("/tmp/t-*"))
	})

	t.Run("no matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockFileStore(ctrl)
		globber := mocks.NewMockGlobber(ctrl)
		appInstance, _ := newMockApp(t, store, globber)

		globber.EXPECT().Glob(gomock.Any()).Return([]string{}, nil)

		assert.NoError(t, appInstance.Sweep("/tmp/none-*"))
	})

	t.Run("skips directories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockFileStore(ctrl)
		globber := mocks.NewMockGlobber(ctrl)
		appInstance, _ := newMockApp(t, store, globber)
		require.NoError(t, appInstance.fs.MkdirAll("/tmp/t-dir", 0o755))

		globber.EXPECT().Glob("/tmp/t-*").Return([]string{"/tmp/t-dir", "/tmp/t-AAAAAAAA"}, nil)
		store.EXPECT().CleanupFile("/tmp/t-AAAAAAAA").Return(nil)

		assert.NoError(t, appInstance.Sweep("/tmp/t-*"))
	})

	t.Run("nested tree on disk", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.bin"), []byte("b"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "a.bin"), []byte("a"), 0o644))

		appInstance, err := New(NewConfig(WithTempDirBase(dir)), Dependencies{
			Logger: setupTestLogger(t, "app-sweep-disk"),
			Out:    &bytes.Buffer{},
		})
		require.NoError(t, err)

		require.NoError(t, appInstance.Sweep(filepath.Join(dir, "**", "*")))

		assert.NoFileExists(t, filepath.Join(dir, "b.bin"))
		assert.NoFileExists(t, filepath.Join(sub, "a.bin"))
		assert.DirExists(t, sub)
	})

	t.Run("glob failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockFileStore(ctrl)
		globber := mocks.NewMockGlobber(ctrl)
		appInstance, _ := newMockApp(t, store, globber)

		globber.EXPECT().Glob(gomock.Any()).Return(nil, errors.New("bad pattern"))

		assert.ErrorContains(t, appInstance.Sweep("/tmp/["), "failed to expand")
	})
}

func TestDiff(t *testing.T) {
	appInstance, fs, out := newMemApp(t)
	src := filepath.Join(testTempDir, "src.txt")
	dst := filepath.Join(testTempDir, "dst.txt")
	require.NoError(t, afero.WriteFile(fs, src, []byte("line one\nold line\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, dst, []byte("line one\nnew line\n"), 0o644))

	require.NoError(t, appInstance.Diff(src, dst))

	diff := out.String()
	assert.Contains(t, diff, "--- "+src)
	assert.Contains(t, diff, "+++ "+dst)
	assert.Contains(t, diff, "-old line")
	assert.Contains(t, diff, "+new line")
}

func TestDiffIdentical(t *testing.T) {
	appInstance, fs, out := newMemApp(t)
	src := filepath.Join(testTempDir, "a.txt")
	dst := filepath.Join(testTempDir, "b.txt")
	require.NoError(t, afero.WriteFile(fs, src, []byte("same\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, dst, []byte("same\n"), 0o644))

	require.NoError(t, appInstance.Diff(src, dst))
	assert.Empty(t, out.String())
}

func TestDiffMissingFile(t *testing.T) {
	appInstance, _, _ := newMemApp(t)

	err := appInstance.Diff("/tmp/nope", "/tmp/nope-either")
	assert.True(t, testfiles.IsNotExist(err))
}
