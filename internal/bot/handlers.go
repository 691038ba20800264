package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Команды бота
const (
	commandStart     = "start"
	commandCancel    = "cancel"
	commandWorkout   = "workout"
	commandWeek      = "week"
	commandMyWeights = "my_weights"
	commandReset     = "reset"
	commandHelp      = "help"
	commandExport    = "export"
)

const (
	greetingText = "Привет! Я бот для тренировок. Давай начнём с твоих максимальных результатов."
	menuText     = "Выбери неделю или используй команды:\n" +
		"- /workout — полный план тренировок\n" +
		"- /week — выбрать неделю\n" +
		"- /my_weights — проверить текущие веса\n" +
		"- /reset — ввести максимальные веса заново\n" +
		"- /export — план в Excel\n" +
		"- /help — список всех команд"
	helpText = "Доступные команды:\n" +
		"/start — начать и ввести максимальные веса\n" +
		"/workout — полный план тренировок на 8 недель\n" +
		"/week — выбрать неделю\n" +
		"/my_weights — текущие максимальные веса\n" +
		"/reset — сбросить и ввести веса заново\n" +
		"/export — план тренировок в Excel\n" +
		"/cancel — отменить ввод весов\n" +
		"/help — это сообщение\n\n" +
		"Максимум можно ввести числом (100) или подходом (80x5): тогда он будет рассчитан по формуле."
	unknownCommandText = "Пока я такого не умею =(\nИспользуй /help, чтобы увидеть список команд."
	idleHintText       = "Выбери неделю или используй /help."
)

// handleCommand обрабатывает команды. Команды работают и во время ввода весов.
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	uid := userID(message)

	b.log.Debug("Команда", "user_id", uid, "command", message.Command())

	switch message.Command() {
	case commandStart:
		b.handleStart(chatID, uid)
	case commandCancel:
		b.handleCancel(chatID, uid)
	case commandWorkout:
		b.handleWorkout(ctx, chatID, uid)
	case commandWeek:
		b.sendMessageWithKeyboard(chatID, "Выбери неделю:", b.weekKeyboard())
	case commandMyWeights:
		b.handleMyWeights(ctx, chatID, uid)
	case commandReset:
		b.handleReset(ctx, chatID, uid)
	case commandHelp:
		b.sendMessageWithKeyboard(chatID, helpText, b.weekKeyboard())
	case commandExport:
		b.handleExport(ctx, chatID, uid)
	default:
		b.sendMessage(chatID, unknownCommandText)
	}
}

// handleMessage обрабатывает текст вне команд
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	uid := userID(message)
	if sess, ok := b.sessions.get(uid); ok && sess.awaiting != 0 {
		b.handleBenchmarkInput(ctx, message.Chat.ID, uid, sess, message.Text)
		return
	}
	b.sendMessageWithKeyboard(message.Chat.ID, idleHintText, b.weekKeyboard())
}

func (b *Bot) handleStart(chatID, uid int64) {
	b.sessions.begin(uid)
	b.sendMessage(chatID, greetingText)
	b.sendMessage(chatID, promptText(0))
}

func (b *Bot) handleCancel(chatID, uid int64) {
	if !b.sessions.clear(uid) {
		b.sendMessage(chatID, "Нет активного процесса ввода весов.")
		return
	}
	b.sendMessageWithKeyboard(chatID, "Ввод весов отменён. Используй /start, чтобы начать заново.\n"+menuText, b.weekKeyboard())
}

func (b *Bot) handleMyWeights(ctx context.Context, chatID, uid int64) {
	maxima, err := b.loadMaxima(ctx, uid)
	if err != nil {
		b.sendError(chatID, "Произошла ошибка при получении весов. Попробуйте позже.", err)
		return
	}
	if maxima.IsEmpty() {
		b.sendMessageWithKeyboard(chatID, "Вы ещё не ввели максимальные веса. Используй /start или /reset для ввода.", b.weekKeyboard())
		return
	}
	text := "Текущие максимальные веса:\n" + formatMaxima(maxima) +
		"\nВыбери неделю или используй /reset, чтобы обновить веса."
	b.sendMessageWithKeyboard(chatID, text, b.weekKeyboard())
}

func (b *Bot) handleReset(ctx context.Context, chatID, uid int64) {
	b.sessions.clear(uid)

	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := b.store.Delete(opCtx, uid); err != nil {
		b.sendError(chatID, "Произошла ошибка при сбросе весов. Попробуйте снова.", err)
		return
	}

	b.log.Info("Максимумы сброшены", "user_id", uid)
	b.sessions.begin(uid)
	b.sendMessage(chatID, "Максимальные веса сброшены.")
	b.sendMessage(chatID, promptText(0))
}
