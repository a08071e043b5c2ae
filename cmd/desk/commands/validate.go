package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/ui/tree"
	"go.trai.ch/zerr"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <amount>...",
		Short: "Validate currency amounts against the configured network",
		// Negative amounts look like shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseAmountArgs(args)
			if err != nil {
				return err
			}
			if raw.help {
				return cmd.Help()
			}
			if err := cobra.MinimumNArgs(1)(cmd, raw.values); err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())

			rejected := 0
			for i, result := range c.app.Validate(raw.values) {
				p.result(raw.values[i], result)
				if !result.Valid {
					rejected++
				}
			}

			if rejected > 0 {
				return zerr.With(zerr.Wrap(domain.ErrInvalidAmount, "validation failed"), "rejected", rejected)
			}
			return nil
		},
	}
}

func (c *CLI) newOfferCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "offer <amount>",
		Short:              "Enter an amount into the create-offer form and print the form",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseAmountArgs(args)
			if err != nil {
				return err
			}
			if raw.help {
				return cmd.Help()
			}
			if err := cobra.ExactArgs(1)(cmd, raw.values); err != nil {
				return err
			}
			amount := raw.values[0]

			view, result, err := c.app.Offer(cmd.Context(), amount)
			if err != nil {
				return err
			}

			newPrinter(cmd.OutOrStdout()).result(amount, result)
			if err := tree.NewRenderer(cmd.OutOrStdout()).Render(view); err != nil {
				return err
			}

			if !result.Valid {
				return zerr.With(zerr.Wrap(domain.ErrInvalidAmount, "offer rejected"), "reason", string(result.Reason))
			}
			return nil
		},
	}
}
