package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/critfall/dmscreen/internal/errors"
	"github.com/critfall/dmscreen/internal/orchestrators/campaign"
)

var listGameID int

var listCmd = &cobra.Command{
	Use:   "list [games|players|monsters|conditions]",
	Short: "List loaded campaign records",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listGameID, "game", 0, "restrict players and monsters to one game")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	if _, err := a.orchestrator.Resume(cmd.Context(), &campaign.ResumeInput{Profile: a.cfg.Profile}); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	switch args[0] {
	case "games":
		fmt.Fprintln(w, "ID\tNAME")
		for _, g := range a.store.Games() {
			fmt.Fprintf(w, "%d\t%s\n", g.ID, g.Name)
		}

	case "players":
		players := a.store.Players()
		if listGameID != 0 {
			players = a.store.PlayersOfGame(listGameID)
		}
		fmt.Fprintln(w, "ID\tCHARACTER\tCLASS\tLVL\tHP\tAC\tGAME\tSHOWN")
		for _, p := range players {
			game, ok := a.store.GameName(p.GameID)
			if !ok {
				game = fmt.Sprintf("#%d", p.GameID)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d/%d\t%d\t%s\t%v\n",
				p.ID, p.Character, p.CharacterClass, p.Level,
				p.CurrentHP, p.TotalHP, p.ArmorClass, game, p.Displayed)
		}

	case "monsters":
		monsters := a.store.Monsters()
		if listGameID != 0 {
			monsters = a.store.MonstersOfGame(listGameID)
		}
		fmt.Fprintln(w, "ID\tNAME\tSIZE\tAC\tHP\tGAME\tSHOWN")
		for _, m := range monsters {
			game, ok := a.store.GameName(m.GameID)
			if !ok {
				game = fmt.Sprintf("#%d", m.GameID)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%v\n",
				m.ID, m.Name, m.Size, m.ArmorClass, m.HitPoints, game, m.Displayed)
		}

	case "conditions":
		fmt.Fprintln(w, "ID\tNAME")
		for _, c := range a.store.SelectableConditions() {
			fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
		}

	default:
		return errors.InvalidArgumentf("unknown collection %q (want games, players, monsters or conditions)", args[0])
	}

	return nil
}
