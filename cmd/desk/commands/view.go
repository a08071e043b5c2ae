package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/desk/internal/app"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/ui/style"
	"go.trai.ch/desk/internal/ui/tree"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [name]",
		Short: "Load a view and print its element tree, the main view by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			repeat, _ := cmd.Flags().GetInt("repeat")

			name := domain.MainViewName
			if len(args) == 1 {
				name = args[0]
			}

			results, err := c.app.ShowView(cmd.Context(), name, app.ShowOptions{
				NoCache: noCache,
				Repeat:  repeat,
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, r := range results {
				if r.Cached {
					p.line(style.Dot, style.Iris, "%s from cache (digest %016x)", r.View.ID, r.View.Digest)
				} else {
					p.line(style.Check, style.Green, "%s constructed (digest %016x)", r.View.ID, r.View.Digest)
				}
			}

			return tree.NewRenderer(cmd.OutOrStdout()).Render(results[len(results)-1].View)
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the view cache and construct the view")
	cmd.Flags().IntP("repeat", "r", 1, "Number of times the view is loaded")
	return cmd
}

func (c *CLI) newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the available views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := c.app.ListViews()
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, info := range infos {
				if info.Cached {
					p.line(style.Dot, style.Iris, "%s (cached)", info.ID)
				} else {
					p.line(style.Circle, style.Mist, "%s", info.ID)
				}
			}
			return nil
		},
	}
}

func (c *CLI) newPreloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preload [views...]",
		Short: "Load views into the cache, all of them when none are named",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Preload(cmd.Context(), args)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).line(style.Check, style.Green, "preloaded %d views", n)
			return nil
		},
	}
}
