package ports

import "io"

// Directory is a filesystem directory with paths addressed relative to it, using forward slashes.
//
//go:generate mockgen -source=directory.go -destination=mocks/mock_directory.go -package=mocks
type Directory interface {
	// Path returns the absolute path of the directory.
	Path() string
	// ChildDirectories returns the names of the direct subdirectories, sorted.
	ChildDirectories() ([]string, error)
	// Files returns all files below the directory as sorted relative paths.
	Files() ([]string, error)
	// Exists reports whether the relative path exists.
	Exists(rel string) bool
	// FileSize returns the size of a file.
	FileSize(rel string) (int64, error)
	// OpenRead opens a file for reading.
	OpenRead(rel string) (io.ReadCloser, error)
	// Create creates or truncates a file, creating parent directories as needed.
	Create(rel string) (io.WriteCloser, error)
	// ChildDirectory returns a subdirectory, optionally creating it.
	ChildDirectory(name string, create bool) (Directory, error)
	// RelativePath returns the path of an absolute file relative to the directory.
	RelativePath(file string) (string, error)
	// Remove deletes a file or a directory tree. Missing paths are not an error.
	Remove(rel string) error
}
