package main

import (
	"os/signal"
	"syscall"

	"strengthbot/internal/bot"
	"strengthbot/internal/repository"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить Telegram-бота",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.log.Sync()

	if err := a.cfg.RequireBotToken(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, a.cfg.DBDriver, a.cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Maxima.Init(ctx); err != nil {
		return err
	}
	a.log.Info("База данных подключена", "driver", a.cfg.DBDriver)

	api, err := tgbotapi.NewBotAPI(a.cfg.BotToken)
	if err != nil {
		return err
	}
	api.Debug = a.cfg.BotDebug
	a.log.Info("Бот авторизован", "username", api.Self.UserName,
		"mode", a.cfg.PrescriptionMode, "exercises", a.catalog.Len())

	b := bot.New(api, repo.Maxima, a.renderer, a.log, a.cfg.OneRepMaxFormula)
	if err := b.RegisterCommands(); err != nil {
		a.log.Warn("Не удалось зарегистрировать команды", "error", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	b.Run(ctx, updates)
	a.log.Info("Бот остановлен")
	return nil
}
