package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	planFlags maximaFlags
	planWeek  int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Вывести программу тренировок с рабочими весами",
	Long: `Выводит 8-недельную программу с весами, рассчитанными от введённых максимумов.
Упражнения, для которых максимум не указан, выводятся без веса.`,
	Example: "  strengthbot plan --bench 100 --squat 140 --deadlift 180 --week 2",
	Args:    cobra.NoArgs,
	RunE:    runPlan,
}

func init() {
	planFlags.register(planCmd)
	planCmd.Flags().IntVarP(&planWeek, "week", "w", 0, "Номер недели (0 — вся программа)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	maxima, err := planFlags.maxima()
	if err != nil {
		return err
	}
	a, err := newApp(planFlags.mode)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	out := cmd.OutOrStdout()
	if planWeek == 0 {
		fmt.Fprint(out, a.renderer.All(maxima))
		return nil
	}

	text, err := a.renderer.Week(maxima, planWeek)
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}
