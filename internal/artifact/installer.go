package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"

	"github.com/avadel/chromedrv/internal/catalog"
)

const (
	// lockFileName is the file lock guarding a cache root. Concurrent
	// invocations installing into the same root serialize on it.
	lockFileName = ".chromedrv.lock"

	// lockRetryDelay is how often a blocked install re-checks the lock.
	lockRetryDelay = 250 * time.Millisecond

	// archiveTempName is the transient archive file inside the cache
	// root while an install is in flight. It lives outside the version
	// directory so a failed download leaves no trace of the version.
	archiveTempName = "chromedriver_tmp.zip"
)

// Installer downloads driver archives and installs their contents into
// the cache layout <root>/<major>.0/. It implements store.Downloader.
type Installer struct {
	client *Client
	log    logrus.FieldLogger
}

// NewInstaller creates a new installer using the given HTTP client.
func NewInstaller(client *Client, log logrus.FieldLogger) *Installer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Installer{client: client, log: log}
}

// Download retrieves the record's archive and installs it under
// root/<major>.0/, holding a file lock on the root for the duration so
// concurrent runs cannot clobber each other's target directories.
func (i *Installer) Download(ctx context.Context, rec catalog.Record, root string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create driver directory: %w", err)
	}

	lock := flock.New(filepath.Join(root, lockFileName))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock driver directory: %w", err)
	}
	if !locked {
		return fmt.Errorf("driver directory is locked by another process")
	}
	defer lock.Unlock()

	destDir := filepath.Join(root, rec.MajorDir())

	i.log.WithFields(logrus.Fields{
		"version": rec.Version,
		"url":     rec.DownloadURL,
		"dest":    destDir,
	}).Debug("downloading driver archive")

	// The version directory's presence tells the scanner the driver is
	// installed, so it must not appear until there is a complete
	// archive to unpack into it.
	archivePath := filepath.Join(root, archiveTempName)
	if err := i.client.DownloadToFile(ctx, rec.DownloadURL, archivePath); err != nil {
		return fmt.Errorf("download driver: %w", err)
	}
	defer os.Remove(archivePath)

	_, statErr := os.Stat(destDir)
	freshDir := os.IsNotExist(statErr)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create version directory: %w", err)
	}

	if err := ExtractZip(archivePath, destDir); err != nil {
		if freshDir {
			os.RemoveAll(destDir)
		}
		return fmt.Errorf("extract driver: %w", err)
	}

	return nil
}
