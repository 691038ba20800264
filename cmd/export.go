package main

import (
	"fmt"

	"strengthbot/internal/excel"

	"github.com/spf13/cobra"
)

var (
	exportFlags maximaFlags
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Сохранить программу тренировок в Excel",
	Example: "  strengthbot export --bench 100 --squat 140 --out plan.xlsx",
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

func init() {
	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "plan.xlsx", "Путь к файлу .xlsx")
}

func runExport(cmd *cobra.Command, args []string) error {
	maxima, err := exportFlags.maxima()
	if err != nil {
		return err
	}
	a, err := newApp(exportFlags.mode)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	f, err := excel.ExportPlan(a.renderer, maxima)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(exportOut); err != nil {
		return fmt.Errorf("ошибка сохранения %s: %w", exportOut, err)
	}
	a.log.Info("План сохранён", "path", exportOut)
	return nil
}
