package main

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/supasite/config"
	"github.com/vcrobe/supasite/internal/logging"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "sitectl - static hosting and routing tools for the site",
		Long:          `sitectl writes the files the static host serves next to the wasm binary, serves them locally the way the host does, and shows how paths resolve to pages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetRawLogLevel(opts.logLevel)
			return opts.load()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "site config file (.yaml, .yml or .toml); the embedded config when empty")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(
		newExportCmd(opts),
		newServeCmd(opts),
		newResolveCmd(opts),
		newRoutesCmd(opts),
		newRenderCmd(opts),
	)
	return root
}

func (o *options) load() error {
	if o.configPath == "" {
		o.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}
