package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/critfall/dmscreen/internal/orchestrators/campaign"
)

var (
	applyPlayerID    int
	applyConditionID int
	applyLength      int
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a condition to a player",
	RunE:  runApply,
}

var roundCmd = &cobra.Command{
	Use:   "round",
	Short: "Advance the combat round, ticking condition durations down",
	RunE:  runRound,
}

func init() {
	applyCmd.Flags().IntVar(&applyPlayerID, "player", 0, "player id")
	applyCmd.Flags().IntVar(&applyConditionID, "condition", 0, "condition id")
	applyCmd.Flags().IntVar(&applyLength, "rounds", 1, "duration in rounds")
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	if _, err := a.orchestrator.Resume(cmd.Context(), &campaign.ResumeInput{Profile: a.cfg.Profile}); err != nil {
		return err
	}

	out, err := a.orchestrator.ApplyCondition(cmd.Context(), &campaign.ApplyConditionInput{
		PlayerID:        applyPlayerID,
		ConditionID:     applyConditionID,
		ConditionLength: applyLength,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Applied condition %d to player %d for %d rounds\n",
		out.PlayerCondition.ConditionID,
		out.PlayerCondition.PlayerID,
		out.PlayerCondition.ConditionLength)
	return nil
}

func runRound(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	if _, err := a.orchestrator.Resume(cmd.Context(), &campaign.ResumeInput{Profile: a.cfg.Profile}); err != nil {
		return err
	}

	out, err := a.orchestrator.AdvanceRound(cmd.Context(), &campaign.AdvanceRoundInput{})
	if err != nil {
		return err
	}

	fmt.Printf("Round %d: %d conditions still active\n", out.Round, out.ActiveConditions)
	return nil
}
