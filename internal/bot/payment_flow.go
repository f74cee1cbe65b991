package bot

import (
	"fmt"
	"log"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/models/config"
	payment_service "training-poll-bot/internal/service/payment"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) showBuyMenu(chatID int64) {
	text := "💳 Какой абонемент оформляем?"
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createBuyMenuKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки меню покупки: %v", err)
	}
}

func (b *Bot) handleBuySelect(callback *tgbotapi.CallbackQuery, subType models.SubscriptionType) {
	lessons, cost := payment_service.PriceFor(subType, false)

	text := fmt.Sprintf("Абонемент: %s\nЗанятий: %d\nЦена: %d ₽\n\nКак будете оплачивать?",
		subTypeLabel(subType), lessons, cost)

	b.editOrSend(callback, text, createPayMethodKeyboard(subType))
}

func (b *Bot) handlePayMethod(callback *tgbotapi.CallbackQuery, method models.PaymentMethod, subType models.SubscriptionType) {
	payment, err := b.PaymentService.Create(callback.From.ID, displayName(callback.From), subType, method)
	if err != nil {
		log.Printf("Ошибка создания платежа для %d: %v", callback.From.ID, err)
		b.sendPrivate(callback.From.ID, msgSomethingWrong)
		return
	}

	switch method {
	case models.PaymentCash:
		text := fmt.Sprintf("💵 Передайте %d ₽ тренеру на тренировке.\n\nПосле оплаты нажмите кнопку ниже.", payment.Amount)
		b.editOrSend(callback, text, createPaidKeyboard(payment.ID))
	default:
		text := fmt.Sprintf("🏦 Сумма к переводу: %d ₽.\n\nВыберите банк, чтобы получить реквизиты.", payment.Amount)
		b.editOrSend(callback, text, createBankKeyboard(payment.ID))
	}
}

func (b *Bot) handleBankDetails(callback *tgbotapi.CallbackQuery, paymentID string) {
	payment, err := b.PaymentService.Get(paymentID)
	if err != nil || payment == nil {
		b.sendPrivate(callback.From.ID, "Платёж не найден. Начните заново: /купить")
		return
	}

	text := fmt.Sprintf(`🏦 Реквизиты для перевода (Сбербанк):

Номер карты: 2202 20XX XXXX XXXX
Получатель: Тренер
Сумма: %d ₽

В комментарии к переводу ничего указывать не нужно.
После перевода нажмите «Я оплатил».`, payment.Amount)

	b.editOrSend(callback, text, createPaidKeyboard(payment.ID))
}

func (b *Bot) handleUserPaid(callback *tgbotapi.CallbackQuery, paymentID string) {
	payment, err := b.PaymentService.MarkUserConfirmed(paymentID)
	if err != nil {
		log.Printf("Ошибка подтверждения платежа %s: %v", paymentID, err)
		b.sendPrivate(callback.From.ID, msgSomethingWrong)
		return
	}
	if payment == nil {
		b.sendPrivate(callback.From.ID, "Платёж не найден. Начните заново: /купить")
		return
	}

	b.editOrSend(callback, "⏳ Спасибо! Платёж передан администратору на подтверждение.", tgbotapi.InlineKeyboardMarkup{})
	b.notifyAdminsAboutPayment(payment)
}

func (b *Bot) notifyAdminsAboutPayment(payment *models.PendingPayment) {
	text := fmt.Sprintf(`💰 Платёж ожидает подтверждения

Пользователь: %s (%d)
Абонемент: %s, %d занятий
Сумма: %d ₽
Оплата: %s`,
		payment.UserName, payment.UserID,
		subTypeLabel(payment.SubscriptionType), payment.Lessons,
		payment.Amount, methodLabel(payment.Method))

	for _, adminID := range config.AppConfig.Bot.AdminIDs {
		msg := tgbotapi.NewMessage(adminID, text)
		msg.ReplyMarkup = createAdminPaymentKeyboard(payment.ID)
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Не удалось уведомить администратора %d: %v", adminID, err)
		}
	}
}

func (b *Bot) handleAdminConfirmPayment(callback *tgbotapi.CallbackQuery, paymentID string) {
	if !b.isAdmin(callback.From.ID) {
		return
	}

	payment, err := b.PaymentService.Confirm(paymentID)
	if err != nil {
		log.Printf("Ошибка подтверждения платежа %s: %v", paymentID, err)
		b.sendPrivate(callback.From.ID, msgSomethingWrong)
		return
	}
	if payment == nil {
		// Уже обработан другим администратором — молча гасим кнопку.
		return
	}

	b.editOrSend(callback, fmt.Sprintf("✅ Платёж %s подтверждён", payment.ID), tgbotapi.InlineKeyboardMarkup{})

	b.sendPrivate(payment.UserID, fmt.Sprintf(`✅ Оплата подтверждена!

Абонемент активирован: %s, %d занятий.
Хорошей тренировки! 💪`, subTypeLabel(payment.SubscriptionType), payment.Lessons))
}

func (b *Bot) handleAdminRejectPayment(callback *tgbotapi.CallbackQuery, paymentID string) {
	if !b.isAdmin(callback.From.ID) {
		return
	}

	payment, err := b.PaymentService.Reject(paymentID)
	if err != nil {
		log.Printf("Ошибка отклонения платежа %s: %v", paymentID, err)
		return
	}
	if payment == nil {
		return
	}

	b.editOrSend(callback, fmt.Sprintf("❌ Платёж %s отклонён", payment.ID), tgbotapi.InlineKeyboardMarkup{})

	b.sendPrivate(payment.UserID, `❌ Платёж не подтверждён.

Возможные причины: средства не поступили или сумма не совпала.
Свяжитесь с тренером или попробуйте снова: /купить`)
}

// editOrSend правит сообщение с кнопкой; если нечего править — шлёт новое.
func (b *Bot) editOrSend(callback *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup) {
	if callback.Message == nil {
		b.sendPrivate(callback.From.ID, text)
		return
	}

	chatID := callback.Message.Chat.ID
	var err error
	if len(markup.InlineKeyboard) > 0 {
		_, err = b.api.Send(tgbotapi.NewEditMessageTextAndMarkup(chatID, callback.Message.MessageID, text, markup))
	} else {
		_, err = b.api.Send(tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, text))
	}
	if err != nil {
		log.Printf("Ошибка редактирования сообщения в чате %d: %v", chatID, err)
		b.sendMessage(chatID, text)
	}
}
