package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/duskswap/internal/reconciler"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the managed theme directories",
	Long:  `Display which theme directories exist and what a reconcile would do.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := newReconciler()
		if err != nil {
			return err
		}

		result, err := rec.Status(context.Background(), &reconciler.StatusRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Theme Directories")
		PrintLabelValue("Base", result.Base)
		PrintLabelValue("Dark candidate", presence(result.State.Dark))
		PrintLabelValue("Light candidate", presence(result.State.Light))
		PrintLabelValue("Active slot", presence(result.State.Active))
		PrintLabelValue("Overflow slot", presence(result.State.Overflow))
		PrintLabelValue("Next run", string(result.Outcome))

		if len(result.Pending) > 0 {
			fmt.Println()
			PrintInfo(fmt.Sprintf("Pending %s:", PrintCount(len(result.Pending), "move", "moves")))
			moves := make([]string, 0, len(result.Pending))
			for _, mv := range result.Pending {
				moves = append(moves, fmt.Sprintf("%s: %s -> %s", mv.Kind, mv.From, mv.To))
			}
			PrintList(moves, 1)
		}

		for _, warn := range result.Warnings {
			PrintWarning(warn)
		}

		return nil
	},
}

func presence(exists bool) string {
	if exists {
		return "present"
	}
	return "absent"
}
