package cli

import (
	"context"
	"fmt"
)

// Overview fetches and prints the dashboard statistics.
func (a *App) Overview(ctx context.Context) error {
	o, err := a.gw.RefreshOverview(ctx)
	if err != nil {
		a.printStatus()
		return err
	}

	fmt.Fprintf(a.out, "Users:               %d\n", o.Users)
	fmt.Fprintf(a.out, "Total revenue:       %.2f\n", o.TotalRevenue)
	fmt.Fprintf(a.out, "Pending withdrawals: %d\n", o.PendingWithdrawals)
	return nil
}
