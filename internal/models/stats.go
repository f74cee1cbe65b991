package models

import "time"

// HistoryLimit — сколько последних событий хранится в истории пользователя.
const HistoryLimit = 50

type AttendanceEvent struct {
	Date      string       `json:"date"`
	Action    ResponseType `json:"action"`
	Timestamp time.Time    `json:"timestamp"`
}

// SubscriptionSnapshot — слепок абонемента на момент изменения остатка занятий
// или покупки нового.
type SubscriptionSnapshot struct {
	Type       SubscriptionType `json:"type"`
	Lessons    int              `json:"lessons"`
	Cost       int              `json:"cost"`
	RecordedAt time.Time        `json:"recorded_at"`
}

type UserStats struct {
	Name                string                 `json:"name"`
	TotalTrainings      int                    `json:"total_trainings"`
	Attended            int                    `json:"attended"`
	Missed              int                    `json:"missed"`
	Maybe               int                    `json:"maybe"`
	NoShow              int                    `json:"no_show"`
	History             []AttendanceEvent      `json:"history"`
	SubscriptionHistory []SubscriptionSnapshot `json:"subscription_history"`
	FirstSeen           time.Time              `json:"first_seen"`
	LastActivity        time.Time              `json:"last_activity"`
}
