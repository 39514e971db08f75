package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Tasks fetches and prints the earning task list.
func (a *App) Tasks(ctx context.Context) error {
	list, err := a.gw.RefreshTasks(ctx)
	if err != nil {
		a.printStatus()
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No tasks found.")
		return nil
	}

	fmt.Fprintf(a.out, "%-12s %-30s %10s\n", "ID", "TITLE", "REWARD")
	for _, t := range list {
		fmt.Fprintf(a.out, "%-12s %-30s %10.2f\n", t.ID, t.Title, t.Reward)
	}
	return nil
}

// AddTask interactively collects a task draft and creates it. Creating a
// task is not destructive, so there is no confirmation step.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Task title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Task description", a.out)
	if err != nil {
		return err
	}
	rewardText, err := getSimpleText(a.reader, "Reward", a.out)
	if err != nil {
		return err
	}
	reward, err := strconv.ParseFloat(rewardText, 64)
	if err != nil {
		fmt.Fprintln(a.out, "The reward must be a number.")
		return err
	}

	if err := a.gw.CreateTask(ctx, title, description, reward); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printStatus()
	return nil
}
