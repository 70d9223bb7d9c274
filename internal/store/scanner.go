// Package store inspects the local driver cache and reconciles it against
// the resolved upstream catalog: a one-level scan of major-version
// directories, a diff producing the missing-version report, and an
// optional download pass through an injected collaborator.
package store

import (
	"fmt"
	"os"
)

// ScanMajors lists the immediate subdirectories of root and returns the
// set of directory names found. Each name is taken as "this major
// version's artifact is believed present"; nothing below one level is
// inspected.
//
// A nonexistent root means nothing has been downloaded yet and yields an
// empty set, not an error.
func ScanMajors(root string) (map[string]bool, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("scan driver directory: %w", err)
	}

	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		present[entry.Name()] = true
	}

	return present, nil
}
