package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/tui"
)

func init() {
	rootCmd.AddCommand(shortcutsCmd)
	shortcutsCmd.Flags().BoolP("json", "j", false, "Print the shortcuts as JSON")
	shortcutsCmd.SetOut(os.Stdout)
}

// filterShortcuts keeps the shortcuts whose action, group or keys fuzzily match filter.
func filterShortcuts(shortcuts []tui.Shortcut, filter string) []tui.Shortcut {
	if filter == "" {
		return shortcuts
	}

	return lo.Filter(shortcuts, func(s tui.Shortcut, _ int) bool {
		return fuzzy.MatchFold(filter, s.Action) ||
			fuzzy.MatchFold(filter, s.Group) ||
			fuzzy.MatchFold(filter, s.Keys)
	})
}

var shortcutsCmd = &cobra.Command{
	Use:     "shortcuts [filter]",
	Short:   "List the keyboard shortcuts of the player",
	Args:    cobra.MaximumNArgs(1),
	Example: "  vidplay shortcuts vol",
	Run: func(cmd *cobra.Command, args []string) {
		var filter string
		if len(args) == 1 {
			filter = args[0]
		}

		shortcuts := filterShortcuts(tui.Shortcuts(), filter)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(shortcuts))
			return
		}

		if len(shortcuts) == 0 {
			handleErr(fmt.Errorf("no shortcuts match %q", filter))
		}

		width := lo.Max(lo.Map(shortcuts, func(s tui.Shortcut, _ int) int { return len(s.Action) }))
		for _, s := range shortcuts {
			cmd.Printf("%s  %-*s  %s\n",
				style.Faint(fmt.Sprintf("%-8s", s.Group)),
				width, s.Action,
				style.Fg(color.Purple)(s.Keys),
			)
		}
	},
}
