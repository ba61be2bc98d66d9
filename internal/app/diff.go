package app

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Diff prints a unified diff turning the contents of src into dst.
func (a *App) Diff(src, dst string) error {
	diff, err := a.unifiedDiff(src, dst)
	if err != nil {
		return err
	}

	if diff == "" {
		a.logger.Infof("No difference between [%s] and [%s]", cyan(src), cyan(dst))
		return nil
	}

	_, err = fmt.Fprint(a.out, diff)
	return err
}

func (a *App) unifiedDiff(src, dst string) (string, error) {
	srcFile, err := a.store.ReadBytes(src)
	if err != nil {
		return "", err
	}
	dstFile, err := a.store.ReadBytes(dst)
	if err != nil {
		return "", err
	}

	edits := myers.ComputeEdits(span.URIFromPath(src), string(srcFile), string(dstFile))

	return fmt.Sprint(gotextdiff.ToUnified(src, dst, string(srcFile), edits)), nil
}
