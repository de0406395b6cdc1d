package fileset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

var skipDirs = map[string]bool{
	".git": true,
	".svn": true,
	".hg":  true,
}

// Matcher implements domain.FileMatcher with gitignore-style patterns, so
// includes may use ** to span directories. Symlinks are not followed.
type Matcher struct{}

func New() *Matcher {
	return &Matcher{}
}

// Match walks dir and returns the slash-separated relative paths of regular
// files matched by any include, sorted.
func (m *Matcher) Match(dir string, includes []string) ([]string, error) {
	if len(includes) == 0 {
		return nil, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	patterns := make([]gitignore.Pattern, 0, len(includes))
	for _, inc := range includes {
		patterns = append(patterns, gitignore.ParsePattern(strings.TrimPrefix(inc, "/"), nil))
	}
	matcher := gitignore.NewMatcher(patterns)

	var matched []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matcher.Match(strings.Split(rel, "/"), false) {
			matched = append(matched, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matched)
	return matched, nil
}
