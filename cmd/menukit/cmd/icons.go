package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/spf13/cobra"
)

var exportDir string

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List the built-in icon names",
	Long: `List the names usable as "icons:<Name>" icon references.
With --export each icon is also written as a PNG at the configured size.

Examples:
  menukit icons
  menukit icons --export /tmp/icons --icon-size 32`,
	Args: cobra.NoArgs,
	RunE: runIcons,
}

func init() {
	rootCmd.AddCommand(iconsCmd)

	iconsCmd.Flags().StringVar(&exportDir, "export", "", "write each icon as PNG into this directory")
}

func runIcons(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if exportDir != "" {
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return err
		}
	}
	for _, name := range icon.Names() {
		fmt.Fprintf(out, "%s:%s\n", icon.MaterialScheme, name)
		if exportDir == "" {
			continue
		}
		if err := exportIcon(name); err != nil {
			return err
		}
	}
	return nil
}

func exportIcon(name string) error {
	img, err := icon.Material(name, settings.IconSize)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(exportDir, name+".png"))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
