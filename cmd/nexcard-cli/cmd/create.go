package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/theme"
	"github.com/nexcard/nexcard/internal/tui"
	"github.com/nexcard/nexcard/internal/wizard"
	"github.com/spf13/cobra"
)

func newCreateCmd(o *options) *cobra.Command {
	var themeID string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card with the interactive wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if themeID != "" && !theme.Default().Known(domain.Theme(themeID)) {
				return fmt.Errorf("unknown theme %q", themeID)
			}
			svc, release, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			ctrl := wizard.New(svc.Saver(o.user, ""))
			if themeID != "" {
				if err := ctrl.EditField("theme", themeID); err != nil {
					return err
				}
			}

			id, err := tui.Run(cmd.Context(), ctrl,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			if id == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing was saved.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved card %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&themeID, "theme", "", "preselect a theme")
	return cmd
}
