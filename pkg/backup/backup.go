// Package backup archives the whole dataset — the SQLite database file
// plus the image gallery — into a single zip, and restores it again.
// Restore overwrites whatever is in place; callers confirm first.
package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carstock/carstock/pkg/storage"
)

// Create writes a zip at archivePath containing the database file and
// every gallery file. The database is stored under its base name; the
// gallery keeps its directory name so Restore lands files back where
// the application looks for them.
func Create(archivePath, dbFile string, disk storage.Disk) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("backup: create %s: %w", archivePath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	if _, err := os.Stat(dbFile); err == nil {
		if err := addFile(zw, dbFile, filepath.Base(dbFile)); err != nil {
			return err
		}
	}

	galleryDir := filepath.Base(disk.Root())
	files, err := disk.AllFiles("")
	if err != nil {
		return fmt.Errorf("backup: list gallery: %w", err)
	}
	for _, rel := range files {
		data, err := disk.Get(rel)
		if err != nil {
			return fmt.Errorf("backup: read gallery file: %w", err)
		}
		w, err := zw.Create(galleryDir + "/" + rel)
		if err != nil {
			return fmt.Errorf("backup: add %s: %w", rel, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("backup: write %s: %w", rel, err)
		}
	}

	return nil
}

// Restore extracts an archive produced by Create into destDir,
// overwriting existing files.
func Restore(archivePath, destDir string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("backup: open %s: %w", archivePath, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if err := extractOne(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

func addFile(zw *zip.Writer, src, arcname string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("backup: open %s: %w", src, err)
	}
	defer f.Close()

	w, err := zw.Create(arcname)
	if err != nil {
		return fmt.Errorf("backup: add %s: %w", arcname, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("backup: write %s: %w", arcname, err)
	}
	return nil
}

func extractOne(f *zip.File, destDir string) error {
	// Reject paths that would escape destDir.
	target := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("backup: illegal path %q in archive", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("backup: mkdir for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("backup: open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("backup: create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("backup: extract %s: %w", f.Name, err)
	}
	return nil
}
