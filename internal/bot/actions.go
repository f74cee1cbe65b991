package bot

import (
	"strconv"
	"strings"

	"training-poll-bot/internal/models"
)

type actionKind int

const (
	actionUnknown actionKind = iota
	actionPollResponse
	actionPollCancel
	actionUserPanel
	actionUserStats
	actionUserHistory
	actionUserSubscription
	actionBuyMenu
	actionBuySelect
	actionPayMethod
	actionBankDetails
	actionUserPaid
	actionAdminPanel
	actionAdminPayments
	actionAdminUsers
	actionAdminUser
	actionAdminConfirmPayment
	actionAdminRejectPayment
	actionAdminAddSubscription
	actionAdminConfirmAddSubscription
	actionAdminDeleteSubscription
	actionAdminWipeStats
)

// action — разобранные данные callback-кнопки. Строка разбирается один раз,
// дальше обработчики работают только с типизированными полями.
type action struct {
	kind      actionKind
	response  models.ResponseType
	subType   models.SubscriptionType
	method    models.PaymentMethod
	paymentID string
	userID    int64
	discount  bool
}

func parseAction(data string) action {
	switch data {
	case "poll_yes":
		return action{kind: actionPollResponse, response: models.ResponseYes}
	case "poll_no":
		return action{kind: actionPollResponse, response: models.ResponseNo}
	case "poll_maybe":
		return action{kind: actionPollResponse, response: models.ResponseMaybe}
	case "poll_cancel":
		return action{kind: actionPollCancel}
	case "user_panel":
		return action{kind: actionUserPanel}
	case "user_stats":
		return action{kind: actionUserStats}
	case "user_history":
		return action{kind: actionUserHistory}
	case "user_subscription":
		return action{kind: actionUserSubscription}
	case "buy_menu":
		return action{kind: actionBuyMenu}
	case "buy_monthly_select":
		return action{kind: actionBuySelect, subType: models.SubscriptionMonthly}
	case "buy_single_select":
		return action{kind: actionBuySelect, subType: models.SubscriptionSingle}
	case "admin_panel":
		return action{kind: actionAdminPanel}
	case "admin_payments":
		return action{kind: actionAdminPayments}
	case "admin_users":
		return action{kind: actionAdminUsers}
	}

	if rest, ok := strings.CutPrefix(data, "pay_cash_"); ok {
		return action{kind: actionPayMethod, method: models.PaymentCash, subType: parseSubType(rest)}
	}
	if rest, ok := strings.CutPrefix(data, "pay_bank_"); ok {
		return action{kind: actionPayMethod, method: models.PaymentBankTransfer, subType: parseSubType(rest)}
	}
	if rest, ok := strings.CutPrefix(data, "bank_sber_"); ok {
		return action{kind: actionBankDetails, paymentID: rest}
	}
	if rest, ok := strings.CutPrefix(data, "paid_"); ok {
		return action{kind: actionUserPaid, paymentID: rest}
	}
	if rest, ok := strings.CutPrefix(data, "admin_confirm_payment_"); ok {
		return action{kind: actionAdminConfirmPayment, paymentID: rest}
	}
	if rest, ok := strings.CutPrefix(data, "admin_reject_payment_"); ok {
		return action{kind: actionAdminRejectPayment, paymentID: rest}
	}
	if rest, ok := strings.CutPrefix(data, "admin_user_"); ok {
		return action{kind: actionAdminUser, userID: parseUserID(rest)}
	}
	if rest, ok := strings.CutPrefix(data, "admin_add_subscription_"); ok {
		return action{kind: actionAdminAddSubscription, userID: parseUserID(rest)}
	}
	if rest, ok := strings.CutPrefix(data, "admin_confirm_add_subscription_"); ok {
		// admin_confirm_add_subscription_<type>_<userID>_<std|disc>
		parts := strings.Split(rest, "_")
		if len(parts) != 3 {
			return action{kind: actionUnknown}
		}
		return action{
			kind:     actionAdminConfirmAddSubscription,
			subType:  parseSubType(parts[0]),
			userID:   parseUserID(parts[1]),
			discount: parts[2] == "disc",
		}
	}
	if rest, ok := strings.CutPrefix(data, "admin_delete_subscription_"); ok {
		return action{kind: actionAdminDeleteSubscription, userID: parseUserID(rest)}
	}
	if rest, ok := strings.CutPrefix(data, "admin_wipe_stats_"); ok {
		return action{kind: actionAdminWipeStats, userID: parseUserID(rest)}
	}

	return action{kind: actionUnknown}
}

func parseSubType(s string) models.SubscriptionType {
	if s == string(models.SubscriptionMonthly) {
		return models.SubscriptionMonthly
	}
	return models.SubscriptionSingle
}

func parseUserID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}
