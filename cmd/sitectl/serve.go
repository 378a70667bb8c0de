package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcrobe/supasite/hosting"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		port     string
		dir      string
		noExport bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the exported files the way the static host does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = opts.cfg.OutDir
			}
			if !noExport {
				if err := hosting.Export(opts.cfg, dir, time.Now()); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on port %s\n", dir, port)
			return hosting.ListenAndServe(ctx, ":"+port, hosting.NewServer(dir))
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "9010", "port to run the server on")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to serve; out_dir from the config when empty")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "serve dir as it is instead of exporting into it first")
	return cmd
}
