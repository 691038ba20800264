package main

import (
	"fmt"
	"os"

	"strengthbot/internal/config"
	"strengthbot/internal/logger"
	"strengthbot/internal/plan"
	"strengthbot/internal/schedule"
	"strengthbot/internal/training"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:           "strengthbot",
		Short:         "Telegram-бот с программой тренировок и расчётом рабочих весов",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd, planCmd, exportCmd, catalogCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app содержит общие зависимости команд
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	catalog  *training.Catalog
	engine   *training.Engine
	renderer *plan.Renderer
}

// newApp загружает конфигурацию, каталог и расписание.
// Непустой mode переопределяет PRESCRIPTION_MODE.
func newApp(mode string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if mode != "" {
		m, err := training.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		cfg.PrescriptionMode = m
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки каталога упражнений: %w", err)
	}
	sched, err := schedule.Default()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки расписания: %w", err)
	}

	engine := training.NewEngine(catalog, cfg.PrescriptionMode)
	return &app{
		cfg:      cfg,
		log:      log,
		catalog:  catalog,
		engine:   engine,
		renderer: plan.NewRenderer(engine, sched),
	}, nil
}

// maximaFlags описывает флаги максимумов для plan и export
type maximaFlags struct {
	bench, squat, deadlift float64
	mode                   string
}

func (f *maximaFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.bench, "bench", 0, "Максимум в жиме лёжа, кг")
	cmd.Flags().Float64Var(&f.squat, "squat", 0, "Максимум в приседе, кг")
	cmd.Flags().Float64Var(&f.deadlift, "deadlift", 0, "Максимум в становой тяге, кг")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Режим расчёта (range/point), по умолчанию из PRESCRIPTION_MODE")
}

func (f *maximaFlags) maxima() (training.Maxima, error) {
	m := training.Maxima{BenchPress: f.bench, Squat: f.squat, Deadlift: f.deadlift}
	for _, lift := range training.Lifts {
		if m.For(lift) < 0 {
			return m, fmt.Errorf("%w: максимум %s отрицательный", training.ErrInvalidInput, lift)
		}
	}
	return m, nil
}
