package analysis

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// listFiles walks the tree under dir (relative to the runner root) and returns
// root-relative, slash-separated paths of every file whose name ends with one
// of the suffixes. The walk is lexical, so the result order is deterministic.
// A missing dir yields no entries and no error.
func (r *Runner) listFiles(ctx context.Context, dir string, suffixes []string) ([]string, error) {
	var found []string

	start := filepath.Join(r.root, filepath.FromSlash(dir))
	err := filepath.WalkDir(start, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == start && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !hasAnySuffix(d.Name(), suffixes) {
			return nil
		}

		rel, err := filepath.Rel(r.root, p)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files under %s: %w", dir, err)
	}
	return found, nil
}

// loadContent reads the full text of the file at the root-relative path.
// A missing file reads as empty content, which makes every containment check
// against it false. Invalid byte sequences are replaced rather than reported,
// so a binary or mis-encoded file never aborts the scan. Any other I/O
// failure does.
func (r *Runner) loadContent(relPath string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(relPath)))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", relPath, err)
	}

	clean, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", relPath, err)
	}
	return string(clean), nil
}

// aggregateContent concatenates the text of every file under dir whose name
// ends with one of the suffixes, with a newline after each file. Directories
// whose root-relative path contains one of the skipNames are skipped whole,
// which keeps the scan out of build output and dependency caches.
func (r *Runner) aggregateContent(ctx context.Context, dir string, suffixes, skipNames []string) (string, error) {
	var sb strings.Builder

	start := filepath.Join(r.root, filepath.FromSlash(dir))
	err := filepath.WalkDir(start, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == start && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(r.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			for _, name := range skipNames {
				if strings.Contains(rel, name) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !hasAnySuffix(d.Name(), suffixes) {
			return nil
		}

		content, err := r.loadContent(rel)
		if err != nil {
			return err
		}
		sb.WriteString(content)
		sb.WriteByte('\n')
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to aggregate content under %s: %w", dir, err)
	}
	return sb.String(), nil
}
