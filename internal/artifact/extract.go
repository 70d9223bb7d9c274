package artifact

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractZip extracts a driver archive into destDir.
//
// Modern archives wrap their contents in a single top-level directory
// (chromedriver-win64/, chromedriver-linux64/, ...); legacy archives
// hold the driver at the root. When every entry shares one top-level
// directory it is stripped, so both layouts extract to the same flat
// shape the cache expects.
func ExtractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	// Create destination directory
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	strip := commonTopDir(reader.File)

	for _, file := range reader.File {
		name := file.Name
		if strip != "" {
			name = strings.TrimPrefix(name, strip+"/")
			if name == "" {
				// The wrapper directory entry itself
				continue
			}
		}

		target := filepath.Join(destDir, filepath.FromSlash(name))

		// Security check: prevent path traversal
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal file path: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}
			continue
		}

		if err := extractFile(file, target); err != nil {
			return err
		}
	}

	return nil
}

// extractFile writes one archive entry to target, preserving its mode.
func extractFile(file *zip.File, target string) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create parent dir for %s: %w", target, err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", file.Name, err)
	}
	defer src.Close()

	// Archives built on systems without unix permissions store mode 0
	mode := file.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create file %s: %w", target, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("write file %s: %w", target, err)
	}

	return out.Close()
}

// commonTopDir returns the single top-level directory every archive
// entry lives under, or "" when entries sit at the root or under
// multiple directories.
func commonTopDir(files []*zip.File) string {
	top := ""

	for _, file := range files {
		// A bare directory entry like "chromedriver-win64/" has an
		// empty remainder and still counts as living under first.
		first, _, found := strings.Cut(file.Name, "/")
		if !found {
			// Root-level file: nothing to strip
			return ""
		}

		if top == "" {
			top = first
			continue
		}
		if first != top {
			return ""
		}
	}

	return top
}
