package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avadel/chromedrv/internal/artifact"
	"github.com/avadel/chromedrv/internal/catalog"
	"github.com/avadel/chromedrv/internal/platform"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

// app carries the shared collaborators every subcommand needs.
type app struct {
	log      *logrus.Logger
	client   *artifact.Client
	detector platform.Detector
	config   *viper.Viper

	verbose bool
}

func newApp() *app {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &app{
		log:      log,
		client:   artifact.NewClient(),
		detector: platform.NewDetector(),
		config:   viper.New(),
	}
}

func newRootCmd() *cobra.Command {
	a := newApp()

	cmd := &cobra.Command{
		Use:   "chromedrv",
		Short: "Manage a local cache of platform-specific ChromeDriver builds",
		Long: `chromedrv resolves ChromeDriver versions across both upstream catalogs
(the Chrome-for-Testing JSON index and the legacy storage bucket), filters
them by platform, architecture and version, and keeps a local directory of
drivers - one subdirectory per major version - in sync with the catalog.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
			return a.loadConfig()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newDownloadCmd(a))
	cmd.AddCommand(newMissingCmd(a))

	return cmd
}

// loadConfig wires defaults, an optional config file, and CHROMEDRV_*
// environment variables. The upstream endpoints live here rather than at
// the call sites so tests and mirror users can redirect them.
func (a *app) loadConfig() error {
	a.config.SetDefault("modern_url", catalog.DefaultModernURL)
	a.config.SetDefault("legacy_url", catalog.DefaultLegacyURL)
	a.config.SetDefault("output_dir", "./drivers")

	a.config.SetEnvPrefix("chromedrv")
	a.config.AutomaticEnv()

	a.config.SetConfigName("config")
	a.config.AddConfigPath("$HOME/.config/chromedrv")
	if err := a.config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// endpoints returns the configured upstream catalog locations.
func (a *app) endpoints() catalog.Endpoints {
	return catalog.Endpoints{
		ModernURL: a.config.GetString("modern_url"),
		LegacyURL: a.config.GetString("legacy_url"),
	}
}
