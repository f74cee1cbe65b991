package poll_service

import (
	"testing"
	"time"

	"training-poll-bot/internal/models"
)

// fakeSubscriptions отвечает по сценарию и считает вызовы.
type fakeSubscriptions struct {
	decision models.CreditDecision
	consumed int
	restored int
}

func (f *fakeSubscriptions) EvaluateAttendance(userID int64, response models.ResponseType, consume bool) (models.CreditDecision, error) {
	if response != models.ResponseYes {
		return models.CreditDecision{Valid: true}, nil
	}
	if consume && f.decision.Valid {
		f.consumed++
	}
	return f.decision, nil
}

func (f *fakeSubscriptions) RestoreLesson(userID int64) (bool, error) {
	f.restored++
	return true, nil
}

func (f *fakeSubscriptions) Replace(userID int64, sub *models.Subscription) error { return nil }
func (f *fakeSubscriptions) Get(userID int64) (*models.Subscription, error)      { return nil, nil }
func (f *fakeSubscriptions) GetAll() (map[int64]*models.Subscription, error)     { return nil, nil }
func (f *fakeSubscriptions) Delete(userID int64) error                           { return nil }

type recordedEvent struct {
	userID int64
	name   string
	action models.ResponseType
	date   string
}

type fakeStats struct {
	events []recordedEvent
}

func (f *fakeStats) RecordEvent(userID int64, displayName string, action models.ResponseType, date string) error {
	f.events = append(f.events, recordedEvent{userID, displayName, action, date})
	return nil
}

func (f *fakeStats) AppendSubscriptionSnapshot(userID int64, displayName string, sub *models.Subscription) error {
	return nil
}
func (f *fakeStats) Get(userID int64) (*models.UserStats, error)      { return nil, nil }
func (f *fakeStats) GetAll() (map[int64]*models.UserStats, error)     { return nil, nil }
func (f *fakeStats) Wipe(userID int64) error                          { return nil }

func newTestPoll(subs *fakeSubscriptions, stats *fakeStats) *pollService {
	svc := NewPollService(subs, stats).(*pollService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 19, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestRespondSingleMembership(t *testing.T) {
	subs := &fakeSubscriptions{decision: models.CreditDecision{Valid: true}}
	svc := newTestPoll(subs, &fakeStats{})

	if _, err := svc.Respond(1, "Иван", models.ResponseYes); err != nil {
		t.Fatalf("Respond(yes): %v", err)
	}

	result, err := svc.Respond(1, "Иван", models.ResponseMaybe)
	if err != nil {
		t.Fatalf("Respond(maybe): %v", err)
	}
	if result.MovedFrom != models.ResponseYes {
		t.Errorf("moved_from = %q, ожидали yes", result.MovedFrom)
	}

	day := svc.Day("2026-08-31")
	if len(day.Yes) != 0 {
		t.Errorf("имя осталось в \"приду\": %v", day.Yes)
	}
	if len(day.Maybe) != 1 || day.Maybe[0] != "Иван" {
		t.Errorf("список \"возможно\": %v", day.Maybe)
	}
}

func TestRespondDuplicateIsNoop(t *testing.T) {
	subs := &fakeSubscriptions{decision: models.CreditDecision{Valid: true}}
	stats := &fakeStats{}
	svc := newTestPoll(subs, stats)

	if _, err := svc.Respond(1, "Иван", models.ResponseYes); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	result, err := svc.Respond(1, "Иван", models.ResponseYes)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}

	if !result.Duplicate {
		t.Error("повторный тот же ответ должен быть помечен как дубль")
	}
	if subs.consumed != 1 {
		t.Errorf("списаний занятий = %d, ожидали 1", subs.consumed)
	}
	if len(stats.events) != 1 {
		t.Errorf("событий в статистике = %d, ожидали 1", len(stats.events))
	}
	if day := svc.Day("2026-08-31"); len(day.Yes) != 1 {
		t.Errorf("список \"приду\": %v", day.Yes)
	}
}

func TestRespondYesToNoRestoresLesson(t *testing.T) {
	subs := &fakeSubscriptions{decision: models.CreditDecision{Valid: true}}
	svc := newTestPoll(subs, &fakeStats{})

	if _, err := svc.Respond(1, "Иван", models.ResponseYes); err != nil {
		t.Fatalf("Respond(yes): %v", err)
	}
	result, err := svc.Respond(1, "Иван", models.ResponseNo)
	if err != nil {
		t.Fatalf("Respond(no): %v", err)
	}

	if !result.Restored {
		t.Error("смена \"приду\" на \"не приду\" должна вернуть занятие")
	}
	if subs.restored != 1 {
		t.Errorf("восстановлений = %d, ожидали 1", subs.restored)
	}
}

// Переход "не приду" -> "возможно" занятие не возвращает.
func TestRespondNoToMaybeDoesNotRestore(t *testing.T) {
	subs := &fakeSubscriptions{decision: models.CreditDecision{Valid: true}}
	svc := newTestPoll(subs, &fakeStats{})

	if _, err := svc.Respond(1, "Иван", models.ResponseNo); err != nil {
		t.Fatalf("Respond(no): %v", err)
	}
	result, err := svc.Respond(1, "Иван", models.ResponseMaybe)
	if err != nil {
		t.Fatalf("Respond(maybe): %v", err)
	}

	if result.Restored || subs.restored != 0 {
		t.Errorf("восстановлений = %d, ожидали 0", subs.restored)
	}
}

// Без абонемента ответ всё равно попадает в список, но с пометкой.
func TestRespondYesWithoutCreditStillRecorded(t *testing.T) {
	subs := &fakeSubscriptions{decision: models.CreditDecision{Valid: false, Message: "нет абонемента"}}
	stats := &fakeStats{}
	svc := newTestPoll(subs, stats)

	result, err := svc.Respond(1, "Иван", models.ResponseYes)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}

	if result.Credit == nil || result.Credit.Valid {
		t.Errorf("решение по абонементу: %+v", result.Credit)
	}
	if subs.consumed != 0 {
		t.Errorf("невалидный ответ списал занятие: %d", subs.consumed)
	}
	if day := svc.Day("2026-08-31"); len(day.Yes) != 1 || day.Yes[0] != "Иван" {
		t.Errorf("имя должно попасть в список: %v", day.Yes)
	}
	if len(stats.events) != 1 {
		t.Errorf("событие должно записаться в статистику: %d", len(stats.events))
	}
}

func TestCancel(t *testing.T) {
	subs := &fakeSubscriptions{decision: models.CreditDecision{Valid: true}}
	stats := &fakeStats{}
	svc := newTestPoll(subs, stats)

	// Отмена без записи — no-op.
	result, err := svc.Cancel(1, "Иван")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if result.Removed {
		t.Error("нечего отменять")
	}
	if len(stats.events) != 0 {
		t.Errorf("пустая отмена не должна писать событие: %d", len(stats.events))
	}

	if _, err := svc.Respond(1, "Иван", models.ResponseYes); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	result, err = svc.Cancel(1, "Иван")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if !result.Removed || result.RemovedFrom != models.ResponseYes {
		t.Errorf("результат отмены: %+v", result)
	}
	if !result.Restored {
		t.Error("отмена \"приду\" должна вернуть занятие")
	}
	if day := svc.Day("2026-08-31"); !day.Empty() {
		t.Errorf("день должен опустеть: %+v", day)
	}
	last := stats.events[len(stats.events)-1]
	if last.action != models.ActionCancel {
		t.Errorf("последнее событие = %q, ожидали cancel", last.action)
	}
}

func TestMessageRefs(t *testing.T) {
	svc := newTestPoll(&fakeSubscriptions{}, &fakeStats{})

	if _, ok := svc.MessageRef(-100, "2026-08-31"); ok {
		t.Error("привязки ещё нет")
	}

	svc.SetMessageRef(-100, "2026-08-31", 555)
	svc.SetMessageRef(-200, "2026-08-30", 777)

	id, ok := svc.MessageRef(-100, "2026-08-31")
	if !ok || id != 555 {
		t.Errorf("MessageRef = %d, %v", id, ok)
	}

	chats := svc.ChatsWithPoll("2026-08-31")
	if len(chats) != 1 || chats[0] != -100 {
		t.Errorf("ChatsWithPoll = %v", chats)
	}
}
