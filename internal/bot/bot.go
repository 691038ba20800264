package bot

import (
	"context"
	"time"

	"strengthbot/internal/logger"
	"strengthbot/internal/plan"
	"strengthbot/internal/training"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// storageTimeout ограничивает время одного обращения к хранилищу
const storageTimeout = 10 * time.Second

// Sender отправляет сообщения в Telegram. *tgbotapi.BotAPI удовлетворяет интерфейсу.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// MaximaStore хранит максимумы пользователей
type MaximaStore interface {
	Get(ctx context.Context, userID int64) (training.Maxima, error)
	Save(ctx context.Context, userID int64, m training.Maxima) error
	Delete(ctx context.Context, userID int64) error
}

// Bot представляет Telegram бота
type Bot struct {
	api      Sender
	store    MaximaStore
	plans    *plan.Renderer
	log      *logger.Logger
	sessions *sessionStore
	formula  string // формула оценки 1ПМ по подходу
}

// New создаёт новый экземпляр бота. formula задаёт оценку 1ПМ по подходу, пусто = Бжицки.
func New(api Sender, store MaximaStore, plans *plan.Renderer, log *logger.Logger, formula string) *Bot {
	if formula == "" {
		formula = training.FormulaBrzycki
	}
	return &Bot{
		api:      api,
		store:    store,
		plans:    plans,
		log:      log,
		sessions: newSessionStore(),
		formula:  formula,
	}
}

// RegisterCommands публикует список команд в меню Telegram
func (b *Bot) RegisterCommands() error {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: commandStart, Description: "Ввести максимальные веса"},
		tgbotapi.BotCommand{Command: commandWorkout, Description: "Полный план тренировок"},
		tgbotapi.BotCommand{Command: commandWeek, Description: "Выбрать неделю"},
		tgbotapi.BotCommand{Command: commandMyWeights, Description: "Текущие максимальные веса"},
		tgbotapi.BotCommand{Command: commandReset, Description: "Сбросить и ввести веса заново"},
		tgbotapi.BotCommand{Command: commandExport, Description: "План в Excel"},
		tgbotapi.BotCommand{Command: commandCancel, Description: "Отменить ввод весов"},
		tgbotapi.BotCommand{Command: commandHelp, Description: "Список команд"},
	)
	_, err := b.api.Request(cfg)
	return err
}

// Run обрабатывает обновления до закрытия канала или отмены контекста.
// Обновления обрабатываются последовательно, поэтому доступ к данным
// одного пользователя не пересекается.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate обрабатывает одно обновление
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallbackQuery(ctx, update.CallbackQuery)
		return
	}

	message := update.Message
	if message == nil || message.Chat == nil {
		return
	}

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}
	b.handleMessage(ctx, message)
}

// userID возвращает идентификатор пользователя, под которым хранятся его максимумы
func userID(message *tgbotapi.Message) int64 {
	if message.From != nil {
		return message.From.ID
	}
	return message.Chat.ID
}
