package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/avadel/chromedrv/internal/catalog"
)

// Downloader is the collaborator the engine drives for each missing
// record. Implementations own transport, retries and extraction; the
// engine only decides what to request. Downloads for distinct records
// must not interfere with each other's target directories.
type Downloader interface {
	// Download retrieves the record's artifact and installs it under
	// root/<major>.0/.
	Download(ctx context.Context, rec catalog.Record, root string) error
}

// Missing describes one catalog record whose major directory is absent
// from the local cache.
type Missing struct {
	Record catalog.Record
	// Dir is the expected directory name under the cache root, e.g. "114.0".
	Dir string
}

// Failure pairs a missing record with the download error it produced.
type Failure struct {
	Missing Missing
	Err     error
}

// Report aggregates a reconciliation run. Per-record download failures
// are collected here rather than aborting the run.
type Report struct {
	// Missing is every candidate whose major directory was absent,
	// in candidate order.
	Missing []Missing
	// Installed are the missing records the downloader completed.
	Installed []Missing
	// Failed are the missing records the downloader could not complete.
	Failed []Failure
}

// Engine diffs resolved catalog candidates against the local cache.
type Engine struct {
	downloader Downloader
	log        logrus.FieldLogger
}

// NewEngine creates a reconciliation engine. The downloader may be nil
// when the caller only wants the missing report.
func NewEngine(downloader Downloader, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{downloader: downloader, log: log}
}

// MissingFrom computes the missing report: every candidate whose major
// directory is not in the present set, preserving candidate order. The
// candidates are expected to be filtered and ordered upstream, so with a
// latest-per-major candidate list the report holds at most one entry per
// major.
func (e *Engine) MissingFrom(candidates []catalog.Record, present map[string]bool) []Missing {
	var missing []Missing
	for _, rec := range candidates {
		dir := rec.MajorDir()
		if present[dir] {
			continue
		}
		missing = append(missing, Missing{Record: rec, Dir: dir})
	}
	return missing
}

// Reconcile scans root, computes the missing report, and - when a
// downloader was injected - attempts every missing record. A failed
// download is recorded and does not stop the remaining candidates.
func (e *Engine) Reconcile(ctx context.Context, candidates []catalog.Record, root string) (*Report, error) {
	present, err := ScanMajors(root)
	if err != nil {
		return nil, err
	}

	report := &Report{Missing: e.MissingFrom(candidates, present)}

	if e.downloader == nil {
		return report, nil
	}

	for _, m := range report.Missing {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		log := e.log.WithFields(logrus.Fields{
			"version":  m.Record.Version,
			"platform": m.Record.Platform,
			"arch":     m.Record.Arch,
			"source":   m.Record.Source,
		})

		log.Info("downloading missing driver")
		if err := e.downloader.Download(ctx, m.Record, root); err != nil {
			log.WithError(err).Warn("driver download failed")
			report.Failed = append(report.Failed, Failure{Missing: m, Err: err})
			continue
		}

		report.Installed = append(report.Installed, m)
	}

	return report, nil
}

// FormatMissingReport renders the missing report for user display.
func FormatMissingReport(missing []Missing) string {
	if len(missing) == 0 {
		return "No missing drivers found.\n"
	}

	var sb strings.Builder
	sb.Grow(64 + len(missing)*80)

	fmt.Fprintf(&sb, "Found %d missing driver(s):\n", len(missing))
	for i, m := range missing {
		legacy := ""
		if m.Record.Source == catalog.SourceLegacy {
			legacy = " [legacy]"
		}
		fmt.Fprintf(&sb, "%d. %s (full version: %s, %s/%s)%s\n",
			i+1, m.Dir, m.Record.Version, m.Record.Platform, m.Record.Arch, legacy)
	}

	return sb.String()
}
