package models

import "time"

type SubscriptionType string

const (
	SubscriptionMonthly SubscriptionType = "monthly"
	SubscriptionSingle  SubscriptionType = "single"
)

// MonthlyDurationDays — срок действия месячного абонемента от даты начала.
const MonthlyDurationDays = 30

// Subscription — активный абонемент пользователя. На пользователя всегда
// не больше одного: покупка нового затирает старый, история остаётся в статистике.
type Subscription struct {
	Type      SubscriptionType `json:"type"`
	Lessons   int              `json:"lessons"`
	Cost      int              `json:"cost"`
	StartDate time.Time        `json:"start_date"`
	LastUsed  *time.Time       `json:"last_used,omitempty"`
}

func (s *Subscription) ExpiresAt() time.Time {
	return s.StartDate.AddDate(0, 0, MonthlyDurationDays)
}

// Истекает только месячный абонемент, разовый живёт до использования.
func (s *Subscription) Expired(now time.Time) bool {
	return s.Type == SubscriptionMonthly && now.After(s.ExpiresAt())
}

func (s *Subscription) Usable(now time.Time) bool {
	return s.Lessons > 0 && !s.Expired(now)
}

// CreditDecision — результат проверки абонемента перед записью на тренировку.
// Невалидный результат не блокирует запись в опрос, только меняет ответ пользователю.
type CreditDecision struct {
	Valid   bool
	Message string
}
