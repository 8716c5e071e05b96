package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/OpenTraceLab/menukit/internal/watch"
	"github.com/OpenTraceLab/menukit/pkg/menu"
	"github.com/spf13/cobra"
)

var (
	shapeName  string
	formatName string
	asJSON     bool
	watchFile  bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Build a menu document and print the tree",
	Long: `Parse a menu document and print the resulting tree. The shape
defaults to the one the root tag names.

Examples:
  menukit build editor.xml
  menukit build --shape context --json tray.kdl
  menukit build --format sexp menu.txt
  menukit build --watch editor.xml           # Reprint on every save`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&shapeName, "shape", "s", "", "container shape: menu, bar or context")
	buildCmd.Flags().StringVarP(&formatName, "format", "f", "", "markup syntax: xml, sexp, kdl or kry")
	buildCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	buildCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "rebuild and print whenever the file changes")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := printBuild(cmd, args[0]); err != nil {
		return err
	}
	if !watchFile {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	err := watch.File(ctx, args[0], watch.DefaultDelay, func() {
		fmt.Fprintln(cmd.OutOrStdout())
		if err := printBuild(cmd, args[0]); err != nil {
			logger.Error("build: rebuild failed", "file", args[0], "err", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printBuild(cmd *cobra.Command, path string) error {
	c, err := buildFile(path, shapeName, formatName, settings.Strict)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := menu.MarshalJSON(c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return menu.Fprint(out, c)
}
