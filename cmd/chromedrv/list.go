package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avadel/chromedrv/internal/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available driver versions",
		Long: `List every driver version both catalogs offer, optionally narrowed by
platform, architecture and version. Without filters the full merged
catalog is shown, ordered by major and version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.toFilter(nil)
			if err != nil {
				return err
			}

			modern, legacy, err := a.fetchCatalogs(cmd.Context(), !filter.NoLegacy)
			if err != nil {
				return err
			}

			records := catalog.Resolve(modern, legacy, filter)
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No versions found with the specified filters.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Available versions (%d):\n", len(records))
			for i, r := range records {
				legacyTag := ""
				if r.Source == catalog.SourceLegacy {
					legacyTag = " [legacy]"
				}
				fmt.Fprintf(out, "%d. Version: %s - Platform: %s (%s)%s\n",
					i+1, r.Version, r.Platform, r.Arch, legacyTag)
			}

			return nil
		},
	}

	flags.register(cmd, true)

	return cmd
}
