package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/menukit/pkg/menu"
	"github.com/spf13/cobra"
)

// errInvalid is returned when validate finds problems.
var errInvalid = errors.New("document has problems")

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check menu documents strictly",
	Long: `Build each document in strict mode and report root mismatches,
unknown elements and duplicate identifiers. Exits non-zero on problems.

Examples:
  menukit validate editor.xml tray.kdl`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&shapeName, "shape", "s", "", "container shape: menu, bar or context")
	validateCmd.Flags().StringVarP(&formatName, "format", "f", "", "markup syntax: xml, sexp, kdl or kry")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		var problems []string
		c, err := buildFile(path, shapeName, formatName, true)
		if err != nil {
			problems = append(problems, err.Error())
		} else if dups := menu.DuplicateIDs(c); len(dups) > 0 {
			problems = append(problems, "duplicate ids: "+strings.Join(dups, ", "))
		}

		if len(problems) > 0 {
			failed++
			for _, p := range problems {
				fmt.Fprintf(out, "✗ %s: %s\n", path, p)
			}
			continue
		}
		leaves, seps, groups := menu.Count(c)
		fmt.Fprintf(out, "✓ %s: %s, %d items, %d separators, %d menus\n",
			path, c.Shape(), leaves, seps, groups)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(args), errInvalid)
	}
	return nil
}
