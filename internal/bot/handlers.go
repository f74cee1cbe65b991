package bot

import (
	"log"
	"strings"

	"training-poll-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Обработка сообщения здесь. Кириллические команды Telegram не регистрирует,
// поэтому роутим по тексту, а не по message.IsCommand().
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	log.Printf("[%s] %s", message.From.UserName, message.Text)

	text := strings.TrimSpace(message.Text)
	if !strings.HasPrefix(text, "/") {
		return
	}

	cmd, args := splitCommand(text)

	switch cmd {
	case "/старт", "/start":
		b.handleStart(message)
	case "/помощь", "/help":
		b.sendMessage(message.Chat.ID, helpText)

	case "/опрос":
		b.handlePollCommand(message)
	case "/приду":
		b.handleResponseCommand(message, models.ResponseYes)
	case "/неприду":
		b.handleResponseCommand(message, models.ResponseNo)
	case "/возможно":
		b.handleResponseCommand(message, models.ResponseMaybe)
	case "/отменить":
		b.handleCancelCommand(message)

	case "/мойкабинет":
		b.showUserPanel(message.Chat.ID, message.From)
	case "/моя_статистика":
		b.showMyStats(message.Chat.ID, message.From.ID)
	case "/история":
		b.showMyHistory(message.Chat.ID, message.From.ID)
	case "/абонемент":
		b.showMySubscription(message.Chat.ID, message.From.ID)
	case "/моиабонементы":
		b.showSubscriptionHistory(message.Chat.ID, message.From.ID)

	case "/купить", "/записаться":
		b.showBuyMenu(message.Chat.ID)

	case "/админ":
		b.showAdminPanel(message)
	case "/ид_чата":
		b.handleChatID(message)
	case "/ид_опросов":
		b.handlePollChats(message)
	case "/msg":
		b.handleAdminMessage(message, args)
	case "/deletesub":
		b.handleDeleteSubscription(message, args)

	default:
		if message.Chat.IsPrivate() {
			b.sendMessage(message.Chat.ID, "Неизвестная команда. Список команд: /помощь")
		}
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.From == nil {
		return
	}

	// Сначала гасим "часики" на кнопке.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("Ошибка ответа на callback: %v", err)
	}

	act := parseAction(callback.Data)

	switch act.kind {
	case actionPollResponse:
		b.handlePollCallback(callback, act.response)
	case actionPollCancel:
		b.handleCancelCallback(callback)

	case actionUserPanel:
		b.showUserPanel(chatIDOf(callback), callback.From)
	case actionUserStats:
		b.showMyStats(chatIDOf(callback), callback.From.ID)
	case actionUserHistory:
		b.showMyHistory(chatIDOf(callback), callback.From.ID)
	case actionUserSubscription:
		b.showMySubscription(chatIDOf(callback), callback.From.ID)

	case actionBuyMenu:
		b.showBuyMenu(chatIDOf(callback))
	case actionBuySelect:
		b.handleBuySelect(callback, act.subType)
	case actionPayMethod:
		b.handlePayMethod(callback, act.method, act.subType)
	case actionBankDetails:
		b.handleBankDetails(callback, act.paymentID)
	case actionUserPaid:
		b.handleUserPaid(callback, act.paymentID)

	case actionAdminPanel:
		b.handleAdminPanelCallback(callback)
	case actionAdminPayments:
		b.handleAdminPayments(callback)
	case actionAdminUsers:
		b.handleAdminUsers(callback)
	case actionAdminUser:
		b.handleAdminUser(callback, act.userID)
	case actionAdminConfirmPayment:
		b.handleAdminConfirmPayment(callback, act.paymentID)
	case actionAdminRejectPayment:
		b.handleAdminRejectPayment(callback, act.paymentID)
	case actionAdminAddSubscription:
		b.handleAdminAddSubscription(callback, act.userID)
	case actionAdminConfirmAddSubscription:
		b.handleAdminConfirmAddSubscription(callback, act.subType, act.userID, act.discount)
	case actionAdminDeleteSubscription:
		b.handleAdminDeleteSubscriptionCallback(callback, act.userID)
	case actionAdminWipeStats:
		b.handleAdminWipeStats(callback, act.userID)
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	if message.Chat.IsPrivate() {
		msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
		msg.ReplyMarkup = createUserPanelKeyboard()
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Ошибка отправки приветствия: %v", err)
		}
		return
	}
	b.sendMessage(message.Chat.ID, "Привет! Опрос на сегодня: /опрос")
}

// splitCommand отделяет команду от аргументов и срезает @botname.
func splitCommand(text string) (string, string) {
	cmd, args, _ := strings.Cut(text, " ")
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	return cmd, strings.TrimSpace(args)
}

// chatIDOf — чат, в котором нажата кнопка; для очень старых сообщений
// Telegram его не присылает, тогда пишем в личку.
func chatIDOf(callback *tgbotapi.CallbackQuery) int64 {
	if callback.Message != nil {
		return callback.Message.Chat.ID
	}
	return callback.From.ID
}
