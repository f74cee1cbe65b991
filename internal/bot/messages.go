package bot

import "training-poll-bot/internal/models"

const welcomeText = `🏋️ Добро пожаловать в бот учёта тренировок!

Отмечайтесь в ежедневном опросе, следите за абонементом и статистикой посещений.

Выберите нужный раздел:`

const helpText = `📖 Команды бота:

/опрос — опрос на сегодня
/приду — записаться на тренировку
/неприду — отметить, что не придёте
/возможно — отметить "возможно"
/отменить — отменить свою запись

/мойкабинет — личный кабинет
/моя_статистика — статистика посещений
/история — история отметок
/абонемент — текущий абонемент
/моиабонементы — история абонементов
/купить — купить абонемент

/помощь — это сообщение`

const (
	msgSomethingWrong = "😔 Что-то пошло не так, попробуйте ещё раз"
	msgAdminsOnly     = "⛔ Команда доступна только администраторам"
	msgLessonRestored = "↩️ Занятие возвращено на абонемент"
)

func actionLabel(action models.ResponseType) string {
	switch action {
	case models.ResponseYes:
		return "✅ приду"
	case models.ResponseNo:
		return "❌ не приду"
	case models.ResponseMaybe:
		return "🤔 возможно"
	case models.ActionCancel:
		return "🚫 отмена"
	}
	return string(action)
}

func subTypeLabel(subType models.SubscriptionType) string {
	if subType == models.SubscriptionMonthly {
		return "месячный"
	}
	return "разовое занятие"
}

func methodLabel(method models.PaymentMethod) string {
	if method == models.PaymentCash {
		return "наличными"
	}
	return "переводом"
}
