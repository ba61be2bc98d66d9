package app

import (
	"fmt"

	"github.com/shini4i/test-utils/internal/helpers"
	"github.com/shini4i/test-utils/internal/models"
)

// Fixture materializes every file described by the manifest and prints the
// created paths in manifest order. Files created before a failure are removed.
func (a *App) Fixture(manifestPath string) (err error) {
	manifest, err := helpers.LoadManifest(a.fs, manifestPath)
	if err != nil {
		return err
	}

	a.logger.Infof("===> Creating %d fixtures from [%s]", len(manifest.Files), cyan(manifestPath))

	created := make([]string, 0, len(manifest.Files))
	defer func() {
		if err == nil {
			return
		}
		for _, path := range created {
			if cleanupErr := a.store.CleanupFile(path); cleanupErr != nil {
				a.logger.Warningf("Could not remove fixture [%s]: %s", path, cleanupErr)
			}
		}
	}()

	for idx, fixture := range manifest.Files {
		path, createErr := a.materialize(fixture, &created)
		if createErr != nil {
			return fmt.Errorf("fixture #%d (%s): %w", idx+1, fixture.Prefix, createErr)
		}
		a.logger.Debugf("▶ %s", cyan(path))
	}

	for _, path := range created {
		if _, err = fmt.Fprintln(a.out, path); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) materialize(fixture models.Fixture, created *[]string) (string, error) {
	path, err := a.tempPath(fixture)
	if err != nil {
		return "", err
	}
	*created = append(*created, path)

	if fixture.Content != "" || fixture.Random > 0 {
		if err := a.store.WriteBytes(path, a.resolve(Payload{Data: fixture.Content, Random: fixture.Random})); err != nil {
			return path, err
		}
	}

	for _, chunk := range fixture.Append {
		if err := a.store.AppendBytes(path, []byte(chunk)); err != nil {
			return path, err
		}
	}

	return path, nil
}

func (a *App) tempPath(fixture models.Fixture) (string, error) {
	if fixture.Dir == "" {
		return a.store.TempPath(fixture.Prefix, true)
	}

	if err := a.fs.MkdirAll(fixture.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", fixture.Dir, err)
	}
	return a.store.TempPathIn(fixture.Dir, fixture.Prefix, true)
}
