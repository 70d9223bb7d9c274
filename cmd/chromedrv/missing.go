package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avadel/chromedrv/internal/artifact"
	"github.com/avadel/chromedrv/internal/catalog"
	"github.com/avadel/chromedrv/internal/store"
)

func newMissingCmd(a *app) *cobra.Command {
	var flags filterFlags
	var dir string
	var download bool

	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Report driver versions absent from a local directory",
		Long: `Compare a local driver directory against the resolved catalog and list
every version whose major directory (e.g. 114.0/) is absent. With
--download, the missing drivers are fetched and installed; a failed
download is reported and does not stop the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.toFilter(a.hostDefaults(cmd.Context()))
			if err != nil {
				return err
			}

			modern, legacy, err := a.fetchCatalogs(cmd.Context(), !filter.NoLegacy)
			if err != nil {
				return err
			}

			candidates := catalog.Resolve(modern, legacy, filter)

			var downloader store.Downloader
			if download {
				downloader = artifact.NewInstaller(a.client, a.log)
			}

			engine := store.NewEngine(downloader, a.log)
			report, rerr := engine.Reconcile(cmd.Context(), candidates, dir)
			if report == nil {
				return rerr
			}

			// An interrupted run still reports what it managed to do.
			writeReconcileReport(cmd.OutOrStdout(), report, download)

			if rerr != nil {
				return rerr
			}
			if download && len(report.Failed) > 0 {
				return fmt.Errorf("%d of %d downloads failed", len(report.Failed), len(report.Missing))
			}

			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVar(&dir, "dir", "", "directory containing existing drivers")
	cmd.Flags().BoolVar(&download, "download", false, "download the missing drivers")
	if err := cmd.MarkFlagRequired("dir"); err != nil {
		panic(err)
	}

	return cmd
}

// writeReconcileReport renders a reconcile outcome, complete or partial.
func writeReconcileReport(out io.Writer, report *store.Report, download bool) {
	fmt.Fprint(out, store.FormatMissingReport(report.Missing))

	if !download || len(report.Missing) == 0 {
		return
	}

	fmt.Fprintf(out, "\nInstalled %d of %d missing driver(s).\n",
		len(report.Installed), len(report.Missing))
	for _, f := range report.Failed {
		fmt.Fprintf(out, "  failed %s: %v\n", f.Missing.Record.Version, f.Err)
	}
}
