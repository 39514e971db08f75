package cli

import (
	"context"
	"fmt"
	"strconv"
)

// ShowSettings fetches and prints the global platform settings.
func (a *App) ShowSettings(ctx context.Context) error {
	s, err := a.gw.RefreshSettings(ctx)
	if err != nil {
		a.printStatus()
		return err
	}

	maintenance := "off"
	if s.Maintenance {
		maintenance = "on"
	}
	fmt.Fprintf(a.out, "Maintenance mode: %s\n", maintenance)
	fmt.Fprintf(a.out, "Conversion rate:  %g\n", s.Conversion)
	return nil
}

// EditSettings interactively collects and saves the global settings.
// Saving settings is routine configuration work, not destructive, so there
// is no confirmation step.
func (a *App) EditSettings(ctx context.Context) error {
	maintenance, err := getYesNo(a.reader, "Enable maintenance mode?", a.out)
	if err != nil {
		return err
	}
	conversionText, err := getSimpleText(a.reader, "Conversion rate", a.out)
	if err != nil {
		return err
	}
	conversion, err := strconv.ParseFloat(conversionText, 64)
	if err != nil {
		fmt.Fprintln(a.out, "The conversion rate must be a number.")
		return err
	}

	if err := a.gw.SaveSettings(ctx, maintenance, conversion); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printStatus()
	return nil
}
