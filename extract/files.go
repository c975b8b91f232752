package extract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
}

// Files expands paths into the list of files to read. Directories are walked
// recursively and contribute files whose extension is configured; hidden
// directories and node_modules are skipped. Files named explicitly are always
// included, and [Stdin] is passed through unchanged.
//
// Paths and subdirectories that cannot be read are logged at warn level and
// skipped. Their errors wrap [ErrReadInput] and are joined into the returned
// error, which accompanies the files that could be resolved. Only a context
// error aborts the expansion.
func (e *Extractor) Files(ctx context.Context, paths []string) ([]string, error) {
	var (
		files []string
		errs  []error
	)

	for _, p := range paths {
		err := ctx.Err()
		if err != nil {
			return nil, err
		}

		if p == Stdin {
			files = append(files, p)
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			errs = append(errs, e.skip(p, err))
			continue
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		found, walkErrs, err := e.walk(ctx, p)
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
		errs = append(errs, walkErrs...)
	}

	return files, errors.Join(errs...)
}

// walk returns the matching files under root along with the read errors of
// any entries it had to skip. The final error is set only when ctx is done.
func (e *Extractor) walk(ctx context.Context, root string) ([]string, []error, error) {
	var (
		files []string
		errs  []error
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		ctxErr := ctx.Err()
		if ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			errs = append(errs, e.skip(path, err))

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				e.logger.Debug("skip directory", slog.String("path", path))

				return filepath.SkipDir
			}

			return nil
		}

		if e.extensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return files, errs, nil
}

// skip logs an unreadable path and returns its wrapped error.
func (e *Extractor) skip(path string, err error) error {
	err = fmt.Errorf("%w: %w", ErrReadInput, err)
	e.logger.Warn("skip unreadable input",
		slog.String("file", path),
		slog.Any("error", err),
	)

	return err
}
