package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/OpenTraceLab/menukit/pkg/menu"
	"github.com/OpenTraceLab/menukit/pkg/tray"
	"github.com/spf13/cobra"
)

var (
	trayTitle   string
	trayTooltip string
	trayIcon    string
)

var trayCmd = &cobra.Command{
	Use:   "tray <file>",
	Short: "Mount a context menu in the system tray",
	Long: `Build a menu document and mount it as the popup menu of a tray
icon. Selected items are printed as "id<TAB>label". Menus and menu bars are
mounted by their top level entries. Stop with Ctrl+C.

Examples:
  menukit tray tray.xml
  menukit tray --icon icons:ActionSettings --tooltip "My tool" tray.kdl`,
	Args: cobra.ExactArgs(1),
	RunE: runTray,
}

func init() {
	rootCmd.AddCommand(trayCmd)

	trayCmd.Flags().StringVarP(&formatName, "format", "f", "", "markup syntax: xml, sexp, kdl or kry")
	trayCmd.Flags().StringVar(&trayTitle, "title", "", "text next to the tray icon")
	trayCmd.Flags().StringVar(&trayTooltip, "tooltip", "", "tray icon hover text")
	trayCmd.Flags().StringVar(&trayIcon, "icon", "", "tray icon reference")
}

// asContextMenu returns the nodes of c as a popup menu.
func asContextMenu(c menu.Container) *menu.ContextMenu {
	if cm, ok := c.(*menu.ContextMenu); ok {
		return cm
	}
	return &menu.ContextMenu{Items: c.Nodes()}
}

func runTray(cmd *cobra.Command, args []string) error {
	if !tray.Supported() {
		return errors.New("system tray is not supported on this platform")
	}
	c, err := buildFile(args[0], "", formatName, settings.Strict)
	if err != nil {
		return err
	}

	opts := []tray.Option{tray.WithLogger(logger)}
	title, tooltip, iconRef := settings.Tray.Title, settings.Tray.Tooltip, settings.Tray.Icon
	if cmd.Flags().Changed("title") {
		title = trayTitle
	}
	if cmd.Flags().Changed("tooltip") {
		tooltip = trayTooltip
	}
	if cmd.Flags().Changed("icon") {
		iconRef = trayIcon
	}
	opts = append(opts, tray.WithTitle(title), tray.WithTooltip(tooltip))
	if iconRef != "" {
		ic, err := newResolver().Resolve(iconRef, false)
		if err != nil {
			logger.Warn("tray: icon unavailable", "ref", iconRef, "err", err)
		} else {
			opts = append(opts, tray.WithIcon(ic))
		}
	}

	t := tray.New(tray.NewSystray(), opts...)
	if err := t.SetMenu(asContextMenu(c)); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	t.OnSelect(func(s tray.Selection) {
		fmt.Fprintf(out, "%s\t%s\n", s.ID, s.Label)
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
