package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"strengthbot/internal/training"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLength is the Telegram limit for a single text message
const maxMessageLength = 4096

// sendError sends error message to user and logs it
func (b *Bot) sendError(chatID int64, userMessage string, err error) {
	if err != nil {
		b.log.Error("Ошибка обработки запроса", "chat_id", chatID, "error", err)
	}
	b.sendMessage(chatID, userMessage)
}

// sendMessage sends message to user with error logging
func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	if err != nil {
		b.log.Error("Не удалось отправить сообщение", "chat_id", chatID, "error", err)
	}
	return err
}

// sendMessageWithKeyboard sends message with inline keyboard
func (b *Bot) sendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := b.api.Send(msg)
	if err != nil {
		b.log.Error("Не удалось отправить сообщение с клавиатурой", "chat_id", chatID, "error", err)
	}
	return err
}

// weekKeyboard builds the week picker: two rows of four buttons
func (b *Bot) weekKeyboard() tgbotapi.InlineKeyboardMarkup {
	const perRow = 4
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for week := 1; week <= b.plans.Weeks(); week++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("Неделя %d", week),
			fmt.Sprintf("%s%d", weekCallbackPrefix, week),
		))
		if len(row) == perRow {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// formatMaxima lists the stored maxima one per line
func formatMaxima(m training.Maxima) string {
	var sb strings.Builder
	for _, lift := range training.Lifts {
		fmt.Fprintf(&sb, "%s: %.1f кг\n", lift.Title(), m.For(lift))
	}
	return sb.String()
}

// splitMessage splits text into chunks of at most limit characters.
// Lines are kept whole unless a single line exceeds the limit.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		lineLen := utf8.RuneCountInString(line)
		if currentLen+lineLen <= limit {
			current.WriteString(line)
			currentLen += lineLen
			continue
		}
		flush()
		for lineLen > limit {
			runes := []rune(line)
			chunks = append(chunks, string(runes[:limit]))
			line = string(runes[limit:])
			lineLen -= limit
		}
		current.WriteString(line)
		currentLen = lineLen
	}
	flush()
	return chunks
}
