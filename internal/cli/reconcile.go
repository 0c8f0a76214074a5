package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/duskswap/internal/reconciler"
)

var reconcileDryRun bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Resolve theme candidates and promote one to the active slot",
	Long: `Resolve a dark/light candidate conflict and promote the remaining
candidate to the active slot. Equivalent to invoking duskswap with no
arguments, with the addition of --dry-run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(reconcileDryRun)
	},
}

func runReconcile(dryRun bool) error {
	rec, err := newReconciler()
	if err != nil {
		return err
	}

	ctx := context.Background()
	req := &reconciler.ReconcileRequest{
		DryRun: dryRun,
	}

	result, err := rec.Reconcile(ctx, req)
	if err != nil {
		return err
	}

	for _, warn := range result.Warnings {
		PrintWarning(warn)
	}

	if dryRun {
		if len(result.Moves) == 0 {
			PrintInfo("Nothing to move")
			return nil
		}
		PrintInfo(fmt.Sprintf("Would perform %s:", PrintCount(len(result.Moves), "move", "moves")))
		moves := make([]string, 0, len(result.Moves))
		for _, mv := range result.Moves {
			moves = append(moves, fmt.Sprintf("%s: %s -> %s", mv.Kind, mv.From, mv.To))
		}
		PrintList(moves, 1)
		return nil
	}

	for _, mv := range result.Moves {
		switch mv.Kind {
		case reconciler.MoveRelocate:
			PrintSuccess(fmt.Sprintf("Relocated %s to %s", mv.From, mv.To))
		case reconciler.MovePromote:
			PrintSuccess(fmt.Sprintf("Promoted %s to %s", mv.From, mv.To))
		}
	}

	if result.Outcome == reconciler.OutcomeSettled {
		PrintInfo("Active theme already in place; nothing to do")
	}

	return nil
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Show what would be moved without moving")
}
