package main

import (
	"fmt"

	"strengthbot/internal/plan"
	"strengthbot/internal/training"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	catalogMax       float64
	catalogIntensity string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [упражнение]",
	Short: "Показать каталог упражнений или рассчитать вес для одного упражнения",
	Example: `  strengthbot catalog
  strengthbot catalog "жим лёжа" --max 100 --intensity средняя`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().Float64Var(&catalogMax, "max", 0, "Максимум основного упражнения, кг")
	catalogCmd.Flags().StringVarP(&catalogIntensity, "intensity", "i", "средняя", "Интенсивность (легкая/средняя/тяжелая)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.log.Sync()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		name := args[0]
		if _, ok := a.catalog.Known(name); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "%q нет в каталоге, используется профиль по умолчанию\n", name)
		}
		if catalogMax <= 0 {
			fmt.Fprintf(out, "%s: %s\n", name, plan.NoBenchmarkText)
			return nil
		}
		p, err := a.engine.Prescribe(catalogMax, catalogIntensity, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", name, p)
		return nil
	}

	fmt.Fprintln(out, catalogTable(a.catalog))
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// catalogTable отрисовывает профили упражнений в алфавитном порядке
func catalogTable(catalog *training.Catalog) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Упражнение", "Основное", "Коэф.", "Мин", "Макс", "Шаг").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, name := range catalog.Names() {
		p := catalog.Lookup(name)
		t.Row(
			name,
			p.Lift.Title(),
			fmt.Sprintf("%.2f", p.Scale),
			fmt.Sprintf("%.1f", p.MinWeight),
			fmt.Sprintf("%.1f", p.MaxWeight),
			fmt.Sprintf("%.1f", p.Increment),
		)
	}
	return t.String()
}
