// Package resolver finds a requested file across an ordered list of root
// directories. The first root holding a regular file at the requested
// relative path wins.
package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// traversalPattern rejects any query that walks up through a separator.
// A bare trailing ".." is not caught; it can only name a directory, which
// never resolves.
const traversalPattern = "../"

// Roots is an ordered, read-only list of absolute root directories.
// The zero value has no roots and resolves nothing.
type Roots struct {
	dirs []string
}

// Result describes a successful resolution.
type Result struct {
	Index int
	Root  string
	Path  string
}

// NewRoots makes every directory absolute and freezes the order.
func NewRoots(dirs ...string) (Roots, error) {
	abs := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return Roots{}, err
		}

		abs = append(abs, absDir)
	}

	return Roots{dirs: abs}, nil
}

func (r Roots) Len() int {
	return len(r.dirs)
}

func (r Roots) At(i int) string {
	return r.dirs[i]
}

// All returns a copy of the root list.
func (r Roots) All() []string {
	out := make([]string, len(r.dirs))
	copy(out, r.dirs)

	return out
}

// Resolve searches the roots from index 0 upward.
func (r Roots) Resolve(query string) (Result, bool) {
	return Resolve(query, r)
}

// Resolve returns the first root that contains a regular file at query.
// Missing paths, directories, special files and stat failures all count as
// a miss for that root and the search moves on.
func Resolve(query string, roots Roots) (Result, bool) {
	if isTraversal(query) {
		return Result{}, false
	}

	for i, root := range roots.dirs {
		if path, ok := ResolveIn(query, root); ok {
			return Result{Index: i, Root: root, Path: path}, true
		}
	}

	return Result{}, false
}

// ResolveIn checks a single root.
func ResolveIn(query, root string) (string, bool) {
	if isTraversal(query) {
		return "", false
	}

	candidate := filepath.Join(root, query)

	info, err := os.Stat(candidate)
	if err != nil {
		return "", false
	}

	if !info.Mode().IsRegular() {
		return "", false
	}

	return candidate, true
}

func isTraversal(query string) bool {
	return strings.Contains(query, traversalPattern)
}
