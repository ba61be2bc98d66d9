package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/codingsince1985/checksum"
	"github.com/op/go-logging"
	"github.com/shini4i/test-utils/cmd/test-utils/utils"
	"github.com/shini4i/test-utils/internal/ports"
	"github.com/shini4i/test-utils/pkg/testfiles"
	"github.com/spf13/afero"
)

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	FS       afero.Fs
	Store    ports.FileStore
	Globber  ports.Globber
	Logger   *logging.Logger
	Out      io.Writer
	Checksum func(r io.Reader) (string, error)
}

// App runs temporary file operations requested from the command line.
type App struct {
	cfg      Config
	fs       afero.Fs
	store    ports.FileStore
	globber  ports.Globber
	logger   *logging.Logger
	out      io.Writer
	checksum func(r io.Reader) (string, error)
}

// Payload selects the bytes written by write and append: Random bytes when
// positive, Data otherwise.
type Payload struct {
	Data   string
	Random int
}

// New constructs an App using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*App, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}

	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Store == nil {
		opts := []testfiles.Option{
			testfiles.WithFs(deps.FS),
			testfiles.WithTempDir(cfg.TempDirBase),
		}
		if cfg.Seed != 0 {
			opts = append(opts, testfiles.WithSeed(cfg.Seed))
		}
		deps.Store = testfiles.New(opts...)
	}
	if deps.Globber == nil {
		deps.Globber = utils.CustomGlobber{}
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Checksum == nil {
		deps.Checksum = checksum.SHA256sumReader
	}

	return &App{
		cfg:      cfg,
		fs:       deps.FS,
		store:    deps.Store,
		globber:  deps.Globber,
		logger:   deps.Logger,
		out:      deps.Out,
		checksum: deps.Checksum,
	}, nil
}

// Temp prints a fresh temporary path, creating the file when requested.
func (a *App) Temp(prefix string, create bool) error {
	path, err := a.store.TempPath(prefix, create)
	if err != nil {
		return err
	}

	if create {
		a.logger.Debugf("▶ Created empty file [%s]", cyan(path))
	}

	_, err = fmt.Fprintln(a.out, path)
	return err
}

// Write replaces the contents of path with the payload.
func (a *App) Write(path string, payload Payload) error {
	data := a.resolve(payload)
	if err := a.store.WriteBytes(path, data); err != nil {
		return err
	}

	a.logger.Infof("===> Wrote %d bytes to [%s]", len(data), cyan(path))
	return nil
}

// Append adds the payload to the end of path.
func (a *App) Append(path string, payload Payload) error {
	data := a.resolve(payload)
	if err := a.store.AppendBytes(path, data); err != nil {
		return err
	}

	a.logger.Infof("===> Appended %d bytes to [%s]", len(data), cyan(path))
	return nil
}

// Read prints the contents of path when raw is set, or its size and SHA-256 otherwise.
func (a *App) Read(path string, raw bool) error {
	data, err := a.store.ReadBytes(path)
	if err != nil {
		return err
	}

	if raw {
		_, err = a.out.Write(data)
		return err
	}

	sum, err := a.checksum(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to checksum %s: %w", path, err)
	}

	_, err = fmt.Fprintf(a.out, "%s\t%d\t%s\n", path, len(data), sum)
	return err
}

// Cleanup removes every path, stopping at the first failure. Missing files are skipped silently.
func (a *App) Cleanup(paths []string) error {
	for _, path := range paths {
		if err := a.store.CleanupFile(path); err != nil {
			return err
		}
		a.logger.Debugf("▶ Removed [%s]", cyan(path))
	}
	return nil
}

// Sweep removes every file matching pattern and reports how many were handled.
// Matched directories are left in place.
func (a *App) Sweep(pattern string) error {
	found, err := a.globber.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", pattern, err)
	}

	matches := make([]string, 0, len(found))
	for _, path := range found {
		if a.isDir(path) {
			a.logger.Debugf("▶ Skipping directory [%s]", cyan(path))
			continue
		}
		matches = append(matches, path)
	}

	if len(matches) == 0 {
		a.logger.Infof("No files matched [%s]", cyan(pattern))
		return nil
	}

	if err := a.Cleanup(matches); err != nil {
		return err
	}

	a.logger.Infof("===> Swept %d files matching [%s]", len(matches), cyan(pattern))
	return nil
}

// isDir reports whether path is a directory, without following symlinks.
// Paths that cannot be inspected are left for CleanupFile to judge.
func (a *App) isDir(path string) bool {
	var (
		info os.FileInfo
		err  error
	)
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err = lstater.LstatIfPossible(path)
	} else {
		info, err = a.fs.Stat(path)
	}
	return err == nil && info.IsDir()
}

func (a *App) resolve(payload Payload) []byte {
	if payload.Random > 0 {
		return a.store.RandomBytes(payload.Random)
	}
	return []byte(payload.Data)
}
