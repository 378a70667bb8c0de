package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vcrobe/supasite/browser"
	"github.com/vcrobe/supasite/internal/app"
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/vdom"
)

func newRoutesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROUTE\tPATH\tURL")
			for _, r := range append(router.Routes(), router.NotFound) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r, r.Path(), opts.cfg.URL(r.Path()))
			}
			return w.Flush()
		},
	}
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>",
		Short: "Print the route a location resolves to, after fallback recovery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := browser.ParseLocation(args[0])
			path := router.RecoverPath(loc.Pathname, loc.Search)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", router.ResolveURL(path), path)
			return nil
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render <url>",
		Short: "Print the HTML the site mounts for a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, route, err := app.Render(opts.cfg, args[0])
			if err != nil {
				return err
			}
			out, err := vdom.HTMLString(tree)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "<!-- %s -->\n%s\n", route, out)
			return nil
		},
	}
}
