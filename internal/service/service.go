package service

import (
	"training-poll-bot/internal/models"
)

type SubscriptionService interface {
	// EvaluateAttendance решает, допустим ли ответ "приду" по абонементу.
	// При consume=true валидный ответ списывает занятие и сохраняет леджер.
	EvaluateAttendance(userID int64, response models.ResponseType, consume bool) (models.CreditDecision, error)
	// RestoreLesson возвращает занятие на абонемент (смена "приду" на другой ответ).
	// Возврат не ограничен сверху — так вёл себя исходный бот.
	RestoreLesson(userID int64) (bool, error)
	// Replace безусловно затирает абонемент пользователя новым.
	Replace(userID int64, sub *models.Subscription) error
	Get(userID int64) (*models.Subscription, error)
	GetAll() (map[int64]*models.Subscription, error)
	Delete(userID int64) error
}

type PollService interface {
	TodayKey() string
	// Respond применяет ответ к сегодняшнему дню: следит за единственностью
	// имени в списках, дергает абонемент и статистику.
	Respond(userID int64, displayName string, response models.ResponseType) (*models.RespondResult, error)
	// Cancel убирает имя из всех списков дня.
	Cancel(userID int64, displayName string) (*models.CancelResult, error)
	Day(date string) models.PollDay

	// Привязка сообщения опроса к чату и дню.
	MessageRef(chatID int64, date string) (int, bool)
	SetMessageRef(chatID int64, date string, messageID int)
	ChatsWithPoll(date string) []int64
}

type StatsService interface {
	RecordEvent(userID int64, displayName string, action models.ResponseType, date string) error
	// AppendSubscriptionSnapshot пишет слепок абонемента в историю безусловно
	// (ручная выдача и подтверждение покупки).
	AppendSubscriptionSnapshot(userID int64, displayName string, sub *models.Subscription) error
	Get(userID int64) (*models.UserStats, error)
	GetAll() (map[int64]*models.UserStats, error)
	// Wipe сбрасывает счётчики и историю событий, сохраняя имя, дату первого
	// появления и историю абонементов.
	Wipe(userID int64) error
}

type PaymentService interface {
	Create(userID int64, userName string, subType models.SubscriptionType, method models.PaymentMethod) (*models.PendingPayment, error)
	// MarkUserConfirmed — пользователь нажал "я оплатил".
	MarkUserConfirmed(paymentID string) (*models.PendingPayment, error)
	// Confirm удаляет платёж и записывает новый абонемент в леджер.
	Confirm(paymentID string) (*models.PendingPayment, error)
	// Reject удаляет платёж, леджер не трогает.
	Reject(paymentID string) (*models.PendingPayment, error)
	Get(paymentID string) (*models.PendingPayment, error)
	Pending() []*models.PendingPayment
}
