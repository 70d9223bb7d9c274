package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avadel/chromedrv/internal/catalog"
	"github.com/avadel/chromedrv/internal/platform"
)

// filterFlags are the catalog restriction flags shared by subcommands.
type filterFlags struct {
	platform string
	arch     string
	version  string
	latest   bool
	noLegacy bool
}

// register adds the shared flags to a command. The --version flag is
// optional because `missing` filters by platform and arch only.
func (f *filterFlags) register(cmd *cobra.Command, withVersion bool) {
	cmd.Flags().StringVar(&f.platform, "platform", "", "filter by platform (windows or linux)")
	cmd.Flags().StringVar(&f.arch, "arch", "", "filter by architecture (x86 or x64)")
	if withVersion {
		cmd.Flags().StringVar(&f.version, "version", "", "filter by version prefix or exact version (e.g. '114' or '114.0.5735.90')")
	}
	cmd.Flags().BoolVar(&f.latest, "latest", false, "keep only the latest version of each major version")
	cmd.Flags().BoolVar(&f.noLegacy, "no-legacy", false, "exclude legacy chromedriver versions")
}

// toFilter parses the flag values into a catalog filter. When defaults
// is non-nil, detected host values fill in whatever the user left unset.
func (f *filterFlags) toFilter(defaults *platform.Info) (catalog.Filter, error) {
	plat, err := catalog.ParsePlatform(f.platform)
	if err != nil {
		return catalog.Filter{}, err
	}

	arch, err := catalog.ParseArch(f.arch)
	if err != nil {
		return catalog.Filter{}, err
	}

	if defaults != nil {
		if plat == catalog.PlatformAny {
			plat = defaults.Platform
		}
		if arch == catalog.ArchAny {
			arch = defaults.Arch
		}
	}

	return catalog.Filter{
		Platform:       plat,
		Arch:           arch,
		Version:        f.version,
		LatestPerMajor: f.latest,
		NoLegacy:       f.noLegacy,
	}, nil
}

// hostDefaults detects the host platform for use as flag defaults.
// Detection failure is not fatal; it only means there are no defaults.
func (a *app) hostDefaults(ctx context.Context) *platform.Info {
	info, err := a.detector.Detect(ctx)
	if err != nil {
		a.log.WithError(err).Debug("host platform detection failed")
		return nil
	}
	return info
}

// fetchCatalogs retrieves and parses both upstream catalogs. A failure
// in one source degrades to a warning as long as another source still
// contributes; only losing every enabled source is an error.
func (a *app) fetchCatalogs(ctx context.Context, includeLegacy bool) (modern, legacy []catalog.Record, err error) {
	endpoints := a.endpoints()

	var sourceErrs []error

	modern, merr := a.fetchModern(ctx, endpoints.ModernURL)
	if merr != nil {
		a.log.WithError(merr).Warn("modern catalog unavailable, continuing without it")
		sourceErrs = append(sourceErrs, merr)
	}

	enabled := 1
	if includeLegacy {
		enabled = 2

		var lerr error
		legacy, lerr = a.fetchLegacy(ctx, endpoints.LegacyURL)
		if lerr != nil {
			a.log.WithError(lerr).Warn("legacy catalog unavailable, continuing without it")
			sourceErrs = append(sourceErrs, lerr)
		}
	}

	if len(sourceErrs) == enabled {
		return nil, nil, fmt.Errorf("no catalog source available: %w", errors.Join(sourceErrs...))
	}

	return modern, legacy, nil
}

func (a *app) fetchModern(ctx context.Context, url string) ([]catalog.Record, error) {
	data, err := a.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	records, skipped, err := catalog.ParseModern(data)
	if err != nil {
		return nil, err
	}

	a.logSkipped(catalog.SourceModern, skipped)
	return records, nil
}

func (a *app) fetchLegacy(ctx context.Context, url string) ([]catalog.Record, error) {
	data, err := a.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	records, skipped, err := catalog.ParseLegacy(data, url)
	if err != nil {
		return nil, err
	}

	a.logSkipped(catalog.SourceLegacy, skipped)
	return records, nil
}

// logSkipped surfaces dropped catalog entries as diagnostics. Skips are
// expected (both listings carry non-driver entries), so they stay at
// debug level.
func (a *app) logSkipped(source catalog.Source, skipped []catalog.Skipped) {
	if len(skipped) == 0 {
		return
	}

	a.log.WithField("source", source).Debugf("skipped %d catalog entries", len(skipped))
	for _, s := range skipped {
		a.log.WithField("source", source).Debugf("  %s: %s", s.Entry, s.Reason)
	}
}
