package models

import "time"

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "pending"
	PaymentWaitingAdmin PaymentStatus = "waiting_admin_confirmation"
)

// PendingPayment — ручной платёж, ожидающий подтверждения администратора.
// Живёт только в памяти: подтверждение и отклонение удаляют запись,
// терминального статуса у неё нет.
type PendingPayment struct {
	ID               string
	UserID           int64
	UserName         string
	SubscriptionType SubscriptionType
	Amount           int
	Lessons          int
	Method           PaymentMethod
	Status           PaymentStatus
	CreatedAt        time.Time
	// ExpiresAt носит справочный характер, никакой фоновой чистки нет.
	ExpiresAt       time.Time
	UserConfirmed   bool
	UserConfirmedAt *time.Time
}
