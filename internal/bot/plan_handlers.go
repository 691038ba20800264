package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"strengthbot/internal/excel"
	"strengthbot/internal/plan"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	weekCallbackPrefix = "week_"
	exportFileName     = "программа.xlsx"
)

// handleWorkout отправляет весь план, разбитый на части по лимиту Telegram
func (b *Bot) handleWorkout(ctx context.Context, chatID, uid int64) {
	maxima, err := b.loadMaxima(ctx, uid)
	if err != nil {
		b.sendError(chatID, "Произошла ошибка при получении плана тренировок. Попробуйте позже.", err)
		return
	}

	keyboard := b.weekKeyboard()
	for _, chunk := range splitMessage(b.plans.All(maxima), maxMessageLength) {
		if err := b.sendMessageWithKeyboard(chatID, chunk, keyboard); err != nil {
			return
		}
	}
}

// handleExport отправляет план файлом Excel
func (b *Bot) handleExport(ctx context.Context, chatID, uid int64) {
	maxima, err := b.loadMaxima(ctx, uid)
	if err != nil {
		b.sendError(chatID, "Произошла ошибка при получении плана тренировок. Попробуйте позже.", err)
		return
	}

	data, err := excel.ExportPlanBytes(b.plans, maxima)
	if err != nil {
		b.sendError(chatID, "Не удалось сформировать файл. Попробуйте позже.", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: exportFileName, Bytes: data})
	doc.Caption = "Программа тренировок"
	if _, err := b.api.Send(doc); err != nil {
		b.log.Error("Не удалось отправить файл", "chat_id", chatID, "error", err)
	}
}

// handleCallbackQuery обрабатывает нажатие кнопки недели
func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.log.Warn("Не удалось ответить на callback", "error", err)
	}
	if query.From == nil {
		return
	}

	uid := query.From.ID
	chatID := uid
	if query.Message != nil && query.Message.Chat != nil {
		chatID = query.Message.Chat.ID
	}

	if !strings.HasPrefix(query.Data, weekCallbackPrefix) {
		return
	}
	week, err := strconv.Atoi(strings.TrimPrefix(query.Data, weekCallbackPrefix))
	if err != nil {
		b.sendError(chatID, "Ошибка: Неверный формат номера недели.", err)
		return
	}
	b.sendWeek(ctx, chatID, uid, week)
}

func (b *Bot) sendWeek(ctx context.Context, chatID, uid int64, week int) {
	maxima, err := b.loadMaxima(ctx, uid)
	if err != nil {
		b.sendError(chatID, "Произошла ошибка при получении плана недели. Попробуйте позже.", err)
		return
	}

	text, err := b.plans.Week(maxima, week)
	if errors.Is(err, plan.ErrWeekOutOfRange) {
		b.sendMessage(chatID, "Ошибка: Неделя должна быть от 1 до "+strconv.Itoa(b.plans.Weeks())+".")
		return
	}
	if err != nil {
		b.sendError(chatID, "Произошла ошибка при получении плана недели. Попробуйте позже.", err)
		return
	}

	b.sendMessageWithKeyboard(chatID, text, b.weekKeyboard())
}
