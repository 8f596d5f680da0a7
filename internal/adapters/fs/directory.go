package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Directory = (*LocalDirectory)(nil)

// LocalDirectory implements ports.Directory on the OS filesystem.
type LocalDirectory struct {
	root   string
	walker *Walker
}

// NewLocalDirectory creates a directory rooted at root. Relative roots are made absolute.
func NewLocalDirectory(root string, walker *Walker) (*LocalDirectory, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", root)
	}
	if walker == nil {
		walker = NewWalker()
	}
	return &LocalDirectory{root: filepath.Clean(abs), walker: walker}, nil
}

// Path implements ports.Directory.
func (d *LocalDirectory) Path() string { return d.root }

func (d *LocalDirectory) resolve(rel string) (string, error) {
	abs := filepath.Join(d.root, filepath.FromSlash(rel))
	if abs != d.root && !strings.HasPrefix(abs, d.root+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrPathOutsideRoot, "failed to resolve path"), "path", rel)
	}
	return abs, nil
}

// ChildDirectories implements ports.Directory. A missing directory has no children.
func (d *LocalDirectory) ChildDirectories() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDirectoryListFailed.Error()), "path", d.root)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Files implements ports.Directory.
func (d *LocalDirectory) Files() ([]string, error) {
	var files []string
	for path := range d.walker.WalkFiles(d.root, nil) {
		rel, err := d.RelativePath(path)
		if err != nil {
			return nil, err
		}
		files = append(files, rel)
	}
	slices.Sort(files)
	return files, nil
}

// Exists implements ports.Directory.
func (d *LocalDirectory) Exists(rel string) bool {
	abs, err := d.resolve(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(abs)
	return err == nil
}

// FileSize implements ports.Directory.
func (d *LocalDirectory) FileSize(rel string) (int64, error) {
	abs, err := d.resolve(rel)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", abs)
	}
	return info.Size(), nil
}

// OpenRead implements ports.Directory.
func (d *LocalDirectory) OpenRead(rel string) (io.ReadCloser, error) {
	abs, err := d.resolve(rel)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs) //nolint:gosec // Path is confined to the directory root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", abs)
	}
	return f, nil
}

// Create implements ports.Directory.
func (d *LocalDirectory) Create(rel string) (io.WriteCloser, error) {
	abs, err := d.resolve(rel)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(abs), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCreateFailed.Error()), "path", abs)
	}
	//nolint:gosec // Path is confined to the directory root
	f, err := os.OpenFile(abs, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCreateFailed.Error()), "path", abs)
	}
	return f, nil
}

// ChildDirectory implements ports.Directory.
func (d *LocalDirectory) ChildDirectory(name string, create bool) (ports.Directory, error) {
	abs, err := d.resolve(name)
	if err != nil {
		return nil, err
	}

	if create {
		if err := os.MkdirAll(abs, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", abs)
		}
	} else {
		info, err := os.Stat(abs)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", abs)
		}
		if !info.IsDir() {
			return nil, zerr.With(zerr.New("not a directory"), "path", abs)
		}
	}

	return &LocalDirectory{root: abs, walker: d.walker}, nil
}

// RelativePath implements ports.Directory.
func (d *LocalDirectory) RelativePath(file string) (string, error) {
	rel, err := filepath.Rel(d.root, file)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", file)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrPathOutsideRoot, "failed to resolve relative path"), "path", file)
	}
	return filepath.ToSlash(rel), nil
}

// Remove implements ports.Directory.
func (d *LocalDirectory) Remove(rel string) error {
	abs, err := d.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(abs); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", abs)
	}
	return nil
}
