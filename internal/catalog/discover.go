package catalog

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MaterialsPrefix is the URL prefix under which document files are served.
const MaterialsPrefix = "/materials/"

// DefaultInclude matches the files considered training material.
var DefaultInclude = []string{"**/*.pdf"}

// FilePath maps a record path such as "/materials/Module 1 Notes.pdf" to its
// file under the materials directory. ok is false for paths outside the
// materials prefix or ones that try to escape the directory.
func FilePath(materialsDir, docPath string) (string, bool) {
	rel, ok := strings.CutPrefix(docPath, MaterialsPrefix)
	if !ok || rel == "" {
		return "", false
	}
	rel = path.Clean("/" + rel)[1:]
	if rel == "" || !fs.ValidPath(rel) {
		return "", false
	}
	return filepath.Join(materialsDir, filepath.FromSlash(rel)), true
}

// Discover lists the files under dir matching include and not matching
// exclude. Paths are relative to dir and use forward slashes.
func Discover(dir string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchesAny(rel, include) && !matchesAny(rel, exclude) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Unreferenced returns the discovered files no catalog record points to.
func (c *Catalog) Unreferenced(files []string) []string {
	referenced := map[string]bool{}
	for _, r := range c.Records() {
		if rel, ok := strings.CutPrefix(r.Path, MaterialsPrefix); ok {
			referenced[rel] = true
		}
	}

	var out []string
	for _, f := range files {
		if !referenced[f] {
			out = append(out, f)
		}
	}
	return out
}

// matchesAny checks relPath against doublestar globs, trying the base name
// too so "*.pdf" matches nested files.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, path.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}
