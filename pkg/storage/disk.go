// Package storage provides the filesystem abstraction behind the image
// gallery. One driver ships: the local filesystem. The Disk interface
// stays narrow so tests can substitute a temporary directory.
//
// Quick start:
//
//	disk := storage.NewLocal(config.ImageDir())
//	disk.PutStream("car12_1756400000.jpg", f)
//	data, _ := disk.Get("car12_1756400000.jpg")
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the content at path.
	Get(path string) ([]byte, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// Delete removes path. Deleting a missing path is not an error.
	Delete(path string) error

	// AllFiles lists every file under directory, recursively, as
	// slash-separated paths relative to the disk root.
	AllFiles(directory string) ([]string, error)

	// Root returns the absolute root directory of the disk.
	Root() string
}
