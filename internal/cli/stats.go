package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lovedays/internal/client"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats, err := ctx.API.Stats(context.Background())
	if errors.Is(err, client.ErrNotConfigured) {
		return fmt.Errorf("no couple configured yet, run the tui to set up")
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s ❤ %s\n", stats.Couple.Partner1Name, stats.Couple.Partner2Name)
	fmt.Printf("Together for %d days (%d năm %d tháng %d ngày)\n",
		stats.Elapsed.Days,
		stats.Breakdown.Years, stats.Breakdown.RemainingMonths, stats.Breakdown.RemainingDays)
	fmt.Printf("Milestones: %d/%d reached\n", stats.Milestones.ReachedCount, stats.Milestones.TotalCount)
	if next := stats.Milestones.Next; next != nil {
		fmt.Printf("Next: %s %s in %d days\n", next.Icon, next.Label, stats.Milestones.DaysRemaining)
	}
	if stats.Quote != "" {
		fmt.Printf("\n“%s”\n", stats.Quote)
	}
	return nil
}
