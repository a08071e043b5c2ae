// Package commands implements the CLI commands for desk.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/desk/internal/app"
	"go.trai.ch/desk/internal/build"
)

// Builder constructs the application from the configuration at configPath.
// An empty path selects the default lookup in the working directory.
type Builder func(ctx context.Context, configPath string) (*app.App, error)

// CLI represents the command line interface for desk.
type CLI struct {
	app     *app.App
	builder Builder
	rootCmd *cobra.Command
}

// New creates a new CLI instance. The application is built by builder once
// the flags of the invoked command are parsed.
func New(builder Builder) *CLI {
	rootCmd := &cobra.Command{
		Use:           "desk",
		Short:         "Load trading desk views and validate amounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to desk.yaml or the directory to search for it")

	c := &CLI{
		builder: builder,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.initApp

	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newViewsCmd())
	rootCmd.AddCommand(c.newPreloadCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newOfferCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) initApp(cmd *cobra.Command, args []string) error {
	if c.app != nil {
		return nil
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if cmd.DisableFlagParsing {
		raw, err := parseAmountArgs(args)
		if err != nil {
			return err
		}
		if raw.help {
			return nil
		}
		configPath = raw.configPath
	}

	a, err := c.builder(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and cobra's error output.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
