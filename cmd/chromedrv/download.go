package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/avadel/chromedrv/internal/artifact"
	"github.com/avadel/chromedrv/internal/catalog"
)

var majorOnlyPattern = regexp.MustCompile(`^\d+$`)

func newDownloadCmd(a *app) *cobra.Command {
	var flags filterFlags
	var output string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download a specific driver version",
		Long: `Download one driver build into the output directory, under a
subdirectory named after its major version (e.g. 114.0/).

--version selects an exact version, or with --latest a bare major
number (e.g. '114') resolves to the newest build of that major.
Platform and architecture default to the detected host values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.toFilter(a.hostDefaults(cmd.Context()))
			if err != nil {
				return err
			}

			if filter.Platform == catalog.PlatformAny {
				return fmt.Errorf("no --platform given and host detection found none (supported: windows, linux)")
			}
			if filter.Arch == catalog.ArchAny {
				filter.Arch = catalog.ArchX64
			}

			rec, err := a.selectRecord(cmd, filter)
			if err != nil || rec == nil {
				return err
			}

			installer := artifact.NewInstaller(a.client, a.log)
			fmt.Fprintf(cmd.OutOrStdout(), "Downloading ChromeDriver version %s...\n", rec.Version)
			if err := installer.Download(cmd.Context(), *rec, output); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ChromeDriver %s installed to %s/%s\n",
				rec.Version, output, rec.MajorDir())
			return nil
		},
	}

	flags.register(cmd, true)
	if err := cmd.MarkFlagRequired("version"); err != nil {
		panic(err)
	}
	cmd.Flags().StringVar(&output, "output", "", "output directory (default \"./drivers\")")

	// The configured default is resolved at run time, after viper has
	// loaded config file and environment.
	cmd.PreRun = func(*cobra.Command, []string) {
		if output == "" {
			output = a.config.GetString("output_dir")
		}
	}

	return cmd
}

// selectRecord resolves the requested version to a single record, or nil
// when nothing matched (reported to the user, not an error).
func (a *app) selectRecord(cmd *cobra.Command, filter catalog.Filter) (*catalog.Record, error) {
	// A bare major with --latest means "the newest build of that major";
	// anything else is an exact version match.
	latestOfMajor := filter.LatestPerMajor && majorOnlyPattern.MatchString(filter.Version)
	if !latestOfMajor {
		filter.LatestPerMajor = false
	}

	modern, legacy, err := a.fetchCatalogs(cmd.Context(), !filter.NoLegacy)
	if err != nil {
		return nil, err
	}

	records := catalog.Resolve(modern, legacy, filter)

	// Without --latest the version is exact: a bare prefix like "114"
	// is "not found", never a silent pick of the newest match.
	if !latestOfMajor {
		n := 0
		for _, r := range records {
			if r.Version == filter.Version {
				records[n] = r
				n++
			}
		}
		records = records[:n]
	}

	if len(records) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No version found matching %s for %s/%s\n",
			filter.Version, filter.Platform, filter.Arch)
		return nil, nil
	}

	rec := records[len(records)-1]
	if latestOfMajor {
		fmt.Fprintf(cmd.OutOrStdout(), "Using latest version: %s\n", rec.Version)
	}

	return &rec, nil
}
