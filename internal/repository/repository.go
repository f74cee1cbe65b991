package repository

import (
	"training-poll-bot/internal/models"
)

// SubscriptionRepository — леджер абонементов, map userId -> Subscription.
// Отсутствие записи — обычный отрицательный результат (nil, nil), не ошибка.
type SubscriptionRepository interface {
	Get(userID int64) (*models.Subscription, error)
	GetAll() (map[int64]*models.Subscription, error)
	Set(userID int64, sub *models.Subscription) error
	Delete(userID int64) error
}

// StatsRepository — статистика посещений, map userId -> UserStats.
type StatsRepository interface {
	Get(userID int64) (*models.UserStats, error)
	GetAll() (map[int64]*models.UserStats, error)
	Set(userID int64, stats *models.UserStats) error
}
