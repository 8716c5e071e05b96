package cmd

import (
	"github.com/OpenTraceLab/menukit/internal/ui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Open a menu document in a preview window",
	Long: `Build a menu document and show it in a window. Top level menus
open as dropdowns; selected items are listed in the activity log.

Examples:
  menukit preview editor.xml
  menukit preview --shape bar -v bar.kdl`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&shapeName, "shape", "s", "", "container shape: menu, bar or context")
	previewCmd.Flags().StringVarP(&formatName, "format", "f", "", "markup syntax: xml, sexp, kdl or kry")
}

func runPreview(cmd *cobra.Command, args []string) error {
	c, err := buildFile(args[0], shapeName, formatName, settings.Strict)
	if err != nil {
		return err
	}
	logger.Debug("ui: launching preview", "file", args[0], "shape", c.Shape())
	return ui.Run(c, ui.Options{
		Source:   args[0],
		Width:    settings.Preview.Width,
		Height:   settings.Preview.Height,
		DarkMode: settings.Preview.DarkMode,
		Logger:   logger,
	})
}
