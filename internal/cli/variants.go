package cli

import (
	"encoding/json"
	"os"

	"shufflegrid/internal/model"

	"github.com/spf13/cobra"
)

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// newVariantCmds returns one subcommand per built-in screen, so
// `shufflegrid bomb` opens the game directly without the menu.
func newVariantCmds(app *App) []*cobra.Command {
	var cmds []*cobra.Command
	for _, v := range model.Variants {
		v := v
		cmds = append(cmds, &cobra.Command{
			Use:   v.Slug,
			Short: v.Blurb,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTUI(app, v.Slug)
			},
		})
	}
	return cmds
}

func newVariantsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the built-in screens as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			if app.PrettyJSON {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(map[string]any{"variants": model.Variants})
		},
	}
}
