// Package testfiles provides helpers for creating, filling, reading and
// removing throwaway files in tests.
//
// Every operation is a single synchronous call against an [afero.Fs]. Handles
// opened by an operation are closed before it returns. Failures are returned
// as [*FileError] values carrying the failing phase and the affected path;
// nothing is retried or logged.
//
//	files := testfiles.New(testfiles.WithSeed(42))
//	path, err := files.TempPath("fixture", true)
//	if err != nil {
//	    return err
//	}
//	defer files.CleanupFile(path)
//
//	err = files.AppendBytes(path, []byte("payload"))
package testfiles

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 8
	filePerm       = 0o644
)

// Files performs file operations against a filesystem, generating names and
// filler data from its own random source.
type Files struct {
	fs      afero.Fs
	tempDir string

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// Option configures a Files during construction.
type Option func(*Files)

// WithFs replaces the filesystem operations run against.
func WithFs(fs afero.Fs) Option {
	return func(f *Files) {
		if fs != nil {
			f.fs = fs
		}
	}
}

// WithTempDir overrides the directory temporary paths are generated in.
func WithTempDir(dir string) Option {
	return func(f *Files) {
		if dir != "" {
			f.tempDir = dir
		}
	}
}

// WithRand sets the random source used for file names and random bytes.
func WithRand(r *rand.Rand) Option {
	return func(f *Files) {
		if r != nil {
			f.rnd = r
		}
	}
}

// WithSeed makes names and random bytes reproducible for the given seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New creates a Files on the OS filesystem rooted at os.TempDir unless
// overridden by opts.
func New(opts ...Option) *Files {
	f := &Files{
		fs:      afero.NewOsFs(),
		tempDir: os.TempDir(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.rnd == nil {
		f.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return f
}

// Fs returns the filesystem f operates on.
func (f *Files) Fs() afero.Fs {
	return f.fs
}

// TempDir returns the directory temporary paths are generated in.
func (f *Files) TempDir() string {
	return f.tempDir
}

// TempPath returns a path named "<prefix>-<8 alphanumerics>" inside the temp
// directory. When create is true an empty file is created at that path.
func (f *Files) TempPath(prefix string, create bool) (string, error) {
	return f.TempPathIn(f.tempDir, prefix, create)
}

// TempPathIn is TempPath for an explicit directory. An empty dir means the
// temp directory. The directory itself is never created.
func (f *Files) TempPathIn(dir, prefix string, create bool) (string, error) {
	if dir == "" {
		dir = f.tempDir
	}

	path := filepath.Join(dir, prefix+"-"+f.suffix())
	if !create {
		return path, nil
	}

	file, err := f.fs.Create(path)
	if err != nil {
		return "", newFileError(OpCreate, path, err)
	}
	if err := file.Close(); err != nil {
		return "", newFileError(OpCreate, path, err)
	}

	return path, nil
}

// WriteBytes replaces the contents of path with data, creating the file if needed.
func (f *Files) WriteBytes(path string, data []byte) error {
	if err := afero.WriteFile(f.fs, path, data, filePerm); err != nil {
		return newFileError(OpWrite, path, err)
	}
	return nil
}

// AppendBytes appends data to path, creating the file if needed. No data is
// left buffered once it returns; it does not fsync.
func (f *Files) AppendBytes(path string, data []byte) error {
	file, err := f.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return newFileError(OpAppendOpen, path, err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return newFileError(OpAppendWrite, path, err)
	}

	// Writes are unbuffered; releasing the handle is the flush.
	if err := file.Close(); err != nil {
		return newFileError(OpAppendFlush, path, err)
	}

	return nil
}

// ReadBytes returns the entire contents of path.
func (f *Files) ReadBytes(path string) ([]byte, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, newFileError(OpReadOpen, path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, newFileError(OpRead, path, err)
	}

	return data, nil
}

// CleanupFile removes the file at path. A missing file is not an error, a
// directory is.
func (f *Files) CleanupFile(path string) error {
	info, err := f.lstat(path)
	switch {
	case IsNotExist(err):
		return nil
	case err != nil:
		return newFileError(OpRemove, path, err)
	case info.IsDir():
		return newFileError(OpRemove, path, ErrIsDirectory)
	}

	if err := f.fs.Remove(path); err != nil && !IsNotExist(err) {
		return newFileError(OpRemove, path, err)
	}

	return nil
}

// RandomBytes returns n bytes from the random source. Non-positive n yields an
// empty slice.
func (f *Files) RandomBytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}

	b := make([]byte, n)

	f.mu.Lock()
	defer f.mu.Unlock()
	// (*rand.Rand).Read never fails.
	_, _ = f.rnd.Read(b)

	return b
}

func (f *Files) suffix() string {
	b := make([]byte, suffixLength)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range b {
		b[i] = suffixAlphabet[f.rnd.Intn(len(suffixAlphabet))]
	}

	return string(b)
}

// lstat avoids following a symlink so that a link to a directory is removed
// like any other file.
func (f *Files) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := f.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return f.fs.Stat(path)
}
