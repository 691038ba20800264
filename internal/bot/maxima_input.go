package bot

import (
	"context"
	"fmt"

	"strengthbot/internal/training"
)

// promptText возвращает приглашение ко вводу максимума. 0 означает первый вопрос.
func promptText(lift training.Lift) string {
	switch lift {
	case training.Squat:
		return "Отлично! Теперь введи свой максимальный вес в приседе (в кг) или 'пропустить':"
	case training.Deadlift:
		return "Супер! Введи свой максимальный вес в становой тяге (в кг) или 'пропустить':"
	default:
		return "Введи свой максимальный вес в жиме лёжа (в кг, например, 100 или 80x5) или напиши 'пропустить':"
	}
}

// handleBenchmarkInput обрабатывает ответ на вопрос о максимуме.
// «пропустить» обнуляет текущий и оставшиеся максимумы и завершает ввод.
func (b *Bot) handleBenchmarkInput(ctx context.Context, chatID, uid int64, sess session, text string) {
	if isSkip(text) {
		for lift := sess.awaiting; lift != 0; lift = nextLift(lift) {
			sess.draft = sess.draft.With(lift, 0)
		}
		if !b.finishInput(ctx, chatID, uid, sess.draft) {
			return
		}
		if sess.draft.IsEmpty() {
			b.sendMessageWithKeyboard(chatID, "Вы пропустили ввод весов. План будет без расчёта весов.\n"+menuText, b.weekKeyboard())
			return
		}
		b.sendMessageWithKeyboard(chatID, "Остальные веса пропущены. Сохранено:\n"+formatMaxima(sess.draft)+"\n"+menuText, b.weekKeyboard())
		return
	}

	weight, estimated, err := parseBenchmark(text, b.formula)
	if err != nil {
		b.sendMessage(chatID, fmt.Sprintf("Ошибка: %s Для отмены используй /cancel.", err.Error()))
		return
	}
	if estimated {
		b.sendMessage(chatID, fmt.Sprintf("Расчётный максимум: %.1f кг (%s).", weight, training.FormulaName(b.formula)))
	}

	sess.draft = sess.draft.With(sess.awaiting, weight)
	if next := nextLift(sess.awaiting); next != 0 {
		sess.awaiting = next
		b.sessions.set(uid, sess)
		b.sendMessage(chatID, promptText(next))
		return
	}

	if !b.finishInput(ctx, chatID, uid, sess.draft) {
		return
	}
	b.sendMessageWithKeyboard(chatID, "Отлично, данные сохранены!\n"+formatMaxima(sess.draft)+"\n"+menuText, b.weekKeyboard())
}

// finishInput сохраняет максимумы и завершает ввод. При ошибке ввод остаётся активным.
func (b *Bot) finishInput(ctx context.Context, chatID, uid int64, maxima training.Maxima) bool {
	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := b.store.Save(opCtx, uid, maxima); err != nil {
		b.sendError(chatID, "Произошла ошибка при сохранении данных. Попробуйте снова или используй /cancel.", err)
		return false
	}
	b.sessions.clear(uid)
	b.log.Info("Максимумы сохранены", "user_id", uid,
		"bench_press", maxima.BenchPress, "squat", maxima.Squat, "deadlift", maxima.Deadlift)
	return true
}

// loadMaxima читает максимумы пользователя с ограничением по времени
func (b *Bot) loadMaxima(ctx context.Context, uid int64) (training.Maxima, error) {
	opCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return b.store.Get(opCtx, uid)
}
