package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcrobe/supasite/hosting"
)

func newExportCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write index.html, 404.html, sitemap.xml and the stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = opts.cfg.OutDir
			}
			if err := hosting.Export(opts.cfg, out, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported site files to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory; out_dir from the config when empty")
	return cmd
}
