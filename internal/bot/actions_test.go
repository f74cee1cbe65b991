package bot

import (
	"testing"

	"training-poll-bot/internal/models"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		data string
		want action
	}{
		{"poll_yes", action{kind: actionPollResponse, response: models.ResponseYes}},
		{"poll_no", action{kind: actionPollResponse, response: models.ResponseNo}},
		{"poll_maybe", action{kind: actionPollResponse, response: models.ResponseMaybe}},
		{"poll_cancel", action{kind: actionPollCancel}},
		{"user_panel", action{kind: actionUserPanel}},
		{"user_stats", action{kind: actionUserStats}},
		{"user_history", action{kind: actionUserHistory}},
		{"user_subscription", action{kind: actionUserSubscription}},
		{"buy_menu", action{kind: actionBuyMenu}},
		{"buy_monthly_select", action{kind: actionBuySelect, subType: models.SubscriptionMonthly}},
		{"buy_single_select", action{kind: actionBuySelect, subType: models.SubscriptionSingle}},
		{"pay_cash_monthly", action{kind: actionPayMethod, method: models.PaymentCash, subType: models.SubscriptionMonthly}},
		{"pay_bank_single", action{kind: actionPayMethod, method: models.PaymentBankTransfer, subType: models.SubscriptionSingle}},
		// ID платежа сам содержит подчёркивания.
		{"bank_sber_bank_transfer_1756665000_42", action{kind: actionBankDetails, paymentID: "bank_transfer_1756665000_42"}},
		{"paid_cash_1756665000_42", action{kind: actionUserPaid, paymentID: "cash_1756665000_42"}},
		{"admin_panel", action{kind: actionAdminPanel}},
		{"admin_payments", action{kind: actionAdminPayments}},
		{"admin_users", action{kind: actionAdminUsers}},
		{"admin_user_42", action{kind: actionAdminUser, userID: 42}},
		{"admin_confirm_payment_bank_transfer_1756665000_42", action{kind: actionAdminConfirmPayment, paymentID: "bank_transfer_1756665000_42"}},
		{"admin_reject_payment_cash_1756665000_42", action{kind: actionAdminRejectPayment, paymentID: "cash_1756665000_42"}},
		{"admin_add_subscription_42", action{kind: actionAdminAddSubscription, userID: 42}},
		{"admin_confirm_add_subscription_monthly_42_std", action{kind: actionAdminConfirmAddSubscription, subType: models.SubscriptionMonthly, userID: 42}},
		{"admin_confirm_add_subscription_single_42_disc", action{kind: actionAdminConfirmAddSubscription, subType: models.SubscriptionSingle, userID: 42, discount: true}},
		{"admin_delete_subscription_42", action{kind: actionAdminDeleteSubscription, userID: 42}},
		{"admin_wipe_stats_42", action{kind: actionAdminWipeStats, userID: 42}},
		{"что-то левое", action{kind: actionUnknown}},
		{"", action{kind: actionUnknown}},
		{"admin_confirm_add_subscription_garbage", action{kind: actionUnknown}},
	}

	for _, tt := range tests {
		if got := parseAction(tt.data); got != tt.want {
			t.Errorf("parseAction(%q) = %+v, ожидали %+v", tt.data, got, tt.want)
		}
	}
}
