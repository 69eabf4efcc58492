package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/gameguild/gg-client/internal/client/leaderboard"
	"github.com/gameguild/gg-client/internal/models"
)

func (c *Cli) runLeaderboard(ctx context.Context, args []string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: gg leaderboard <friends|global> [limit]")
	}

	opts := leaderboard.Options{}
	if len(args) > 1 {
		limit, err := strconv.Atoi(args[1])
		if err != nil || limit <= 0 {
			return fmt.Errorf("invalid limit: %s", args[1])
		}
		opts.Limit = limit
	}

	var (
		rows []models.LeaderboardRow
		err  error
	)
	switch args[0] {
	case "friends":
		c.io.Println("=== Friends Leaderboard ===")
		rows, err = c.leaderboard.Friends(ctx, opts)
	case "global":
		c.io.Println("=== Global Leaderboard ===")
		rows, err = c.leaderboard.Global(ctx, opts)
	default:
		return fmt.Errorf("unknown leaderboard scope: %s", args[0])
	}
	if err != nil {
		return err
	}

	c.io.Println()
	if len(rows) == 0 {
		c.io.Println("Leaderboard is empty.")
		return nil
	}

	// Выравниваем колонки; io реализует io.Writer
	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tCOMPLETED\tACHIEVEMENTS\tSCORE")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n",
			row.Rank, row.User.DisplayName(), row.CompletedGames, row.Achievements, row.Score)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render leaderboard: %w", err)
	}

	return nil
}
