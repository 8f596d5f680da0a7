package domain

import (
	"maps"
	"path"
	"slices"
	"strings"
)

// BuildKey identifies a builder across runs: its kind plus a stable id within that kind.
type BuildKey struct {
	Kind string
	UID  string
}

// NewBuildKey creates a BuildKey.
func NewBuildKey(kind, uid string) BuildKey {
	return BuildKey{Kind: kind, UID: uid}
}

// String returns "kind/uid".
func (k BuildKey) String() string {
	return k.Kind + "/" + k.UID
}

// Every escape starts with an underscore, so distinct keys never share a directory.
var dirNameReplacer = strings.NewReplacer("_", "_u", "/", "_s", `\`, "_b", ":", "_c")

// DirName returns a filesystem safe name derived from String.
func (k BuildKey) DirName() string {
	return dirNameReplacer.Replace(k.String())
}

// TargetRelativePath is an output path split into the root it is relative to and the path below it.
type TargetRelativePath struct {
	RelativeRoot string
	RelativePath string
}

// NewTargetRelativePath creates a TargetRelativePath.
func NewTargetRelativePath(root, rel string) TargetRelativePath {
	return TargetRelativePath{RelativeRoot: root, RelativePath: rel}
}

// String joins root and path with a forward slash.
func (p TargetRelativePath) String() string {
	return path.Join(p.RelativeRoot, p.RelativePath)
}

// FileNameWithoutExtension returns the final path element without its extension.
func (p TargetRelativePath) FileNameWithoutExtension() string {
	base := path.Base(strings.ReplaceAll(p.RelativePath, `\`, "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// TargetPathSet is a set of target relative paths.
// The zero value is not usable; use NewTargetPathSet.
type TargetPathSet map[TargetRelativePath]struct{}

// NewTargetPathSet creates a set holding the given paths.
func NewTargetPathSet(paths ...TargetRelativePath) TargetPathSet {
	s := make(TargetPathSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p.
func (s TargetPathSet) Add(p TargetRelativePath) {
	s[p] = struct{}{}
}

// Contains reports whether p is in the set.
func (s TargetPathSet) Contains(p TargetRelativePath) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of paths.
func (s TargetPathSet) Len() int { return len(s) }

// Union adds every path of other to s.
func (s TargetPathSet) Union(other TargetPathSet) {
	maps.Copy(s, other)
}

// Equal reports whether both sets hold the same paths.
func (s TargetPathSet) Equal(other TargetPathSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Sorted returns the paths ordered by root, then path.
func (s TargetPathSet) Sorted() []TargetRelativePath {
	out := slices.Collect(maps.Keys(s))
	slices.SortFunc(out, func(a, b TargetRelativePath) int {
		if c := strings.Compare(a.RelativeRoot, b.RelativeRoot); c != 0 {
			return c
		}
		return strings.Compare(a.RelativePath, b.RelativePath)
	})
	return out
}
