package cli

import (
	"strings"

	"shufflegrid/internal/tui"

	"github.com/spf13/cobra"
)

// App carries the persistent flag values shared by all commands.
type App struct {
	Seed       int64
	Theme      string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "shufflegrid",
		Short:        "Drag-and-drop grid toys for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the menu
  shufflegrid

  # Jump straight into a screen
  shufflegrid boxes
  shufflegrid bomb

  # Reproducible bomb placement
  shufflegrid bomb --seed 7
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive menu.
			if len(args) == 0 {
				return runTUI(app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Int64Var(&app.Seed, "seed", 0, "Random seed (0 = time-based); fixes bomb placement for the game")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("SHUFFLEGRID_TUI_THEME", ""), "Force background theme (light|dark|auto)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	for _, c := range newVariantCmds(app) {
		cmd.AddCommand(c)
	}
	cmd.AddCommand(newVariantsCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(app *App, variant string) error {
	return tui.Run(tui.Options{
		Variant: variant,
		Seed:    app.Seed,
		Theme:   app.Theme,
	})
}
