package bot

import (
	"fmt"
	"sort"

	"training-poll-bot/internal/models"
	payment_service "training-poll-bot/internal/service/payment"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func createPollKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Приду", "poll_yes"),
			tgbotapi.NewInlineKeyboardButtonData("🤔 Возможно", "poll_maybe"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Не приду", "poll_no"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚫 Отменить запись", "poll_cancel"),
		),
	)
}

func createUserPanelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Моя статистика", "user_stats"),
			tgbotapi.NewInlineKeyboardButtonData("📖 История", "user_history"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎫 Мой абонемент", "user_subscription"),
			tgbotapi.NewInlineKeyboardButtonData("💳 Купить", "buy_menu"),
		),
	)
}

func createBuyMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📅 Месячный — %d занятий, %d ₽", payment_service.MonthlyLessons, payment_service.MonthlyPrice),
				"buy_monthly_select",
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("1️⃣ Разовое занятие — %d ₽", payment_service.SinglePrice),
				"buy_single_select",
			),
		),
	)
}

func createPayMethodKeyboard(subType models.SubscriptionType) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💵 Наличными тренеру", "pay_cash_"+string(subType)),
			tgbotapi.NewInlineKeyboardButtonData("🏦 Переводом", "pay_bank_"+string(subType)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", "buy_menu"),
		),
	)
}

func createBankKeyboard(paymentID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏦 Сбербанк", "bank_sber_"+paymentID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Я оплатил", "paid_"+paymentID),
		),
	)
}

func createPaidKeyboard(paymentID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Я оплатил", "paid_"+paymentID),
		),
	)
}

func createAdminPanelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Ожидающие платежи", "admin_payments"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Ученики", "admin_users"),
		),
	)
}

func createAdminPaymentKeyboard(paymentID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Подтвердить", "admin_confirm_payment_"+paymentID),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отклонить", "admin_reject_payment_"+paymentID),
		),
	)
}

func createAdminUserKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	id := fmt.Sprintf("%d", userID)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Выдать абонемент", "admin_add_subscription_"+id),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Удалить абонемент", "admin_delete_subscription_"+id),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Сбросить статистику", "admin_wipe_stats_"+id),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", "admin_users"),
		),
	)
}

func createGrantKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	prefix := "admin_confirm_add_subscription_"
	id := fmt.Sprintf("%d", userID)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📅 Месячный %d ₽", payment_service.MonthlyPrice),
				prefix+"monthly_"+id+"_std",
			),
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("📅 Месячный со скидкой %d ₽", payment_service.MonthlyPriceDiscount),
				prefix+"monthly_"+id+"_disc",
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("1️⃣ Разовое %d ₽", payment_service.SinglePrice),
				prefix+"single_"+id+"_std",
			),
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("1️⃣ Разовое со скидкой %d ₽", payment_service.SinglePriceDiscount),
				prefix+"single_"+id+"_disc",
			),
		),
	)
}

func createUsersKeyboard(users map[int64]*models.UserStats) tgbotapi.InlineKeyboardMarkup {
	ids := make([]int64, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, id := range ids {
		label := fmt.Sprintf("👤 %s (%d)", users[id].Name, id)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("admin_user_%d", id)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", "admin_panel"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
