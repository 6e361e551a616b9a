package cmd

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nexcard/nexcard/cmd/nexcard-cli/internal/output"
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/spf13/cobra"
)

var validate = validator.New()

func newCardsCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List and manage saved cards",
		Long: `The cards command works on the cards of one user.

Examples:
  # List every card, newest first
  nexcard-cli cards list

  # Search titles, names and companies
  nexcard-cli cards list --query director

  # Only bold cards, alphabetically, as JSON
  nexcard-cli cards list --theme bold --sort name --format json

  # Copy a card
  nexcard-cli cards duplicate 1`,
	}
	cmd.AddCommand(newCardsListCmd(o), newCardsDuplicateCmd(o))
	return cmd
}

func newCardsListCmd(o *options) *cobra.Command {
	var (
		q      cards.Query
		sort   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Sort = cards.SortOrder(sort)
			if err := validate.Struct(q); err != nil {
				return fmt.Errorf("invalid filter: %w", err)
			}
			if err := output.CheckFormat(format); err != nil {
				return err
			}

			svc, release, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			list, err := svc.List(cmd.Context(), o.user, q)
			if err != nil {
				return err
			}
			return output.Cards(cmd.OutOrStdout(), list, format)
		},
	}
	cmd.Flags().StringVarP(&q.Search, "query", "q", "", "search text")
	cmd.Flags().StringVar(&sort, "sort", string(cards.SortNewest), "order: newest, oldest or name")
	cmd.Flags().StringVar(&q.Theme, "theme", cards.ThemeAll, "only cards with this theme")
	cmd.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (table, json)")
	return cmd
}

func newCardsDuplicateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Copy a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			dup, err := svc.Duplicate(cmd.Context(), o.user, args[0])
			if cards.IsNotFound(err) {
				return fmt.Errorf("card %s not found", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %q (id %s)\n", dup.Title, dup.ID)
			return nil
		},
	}
}
