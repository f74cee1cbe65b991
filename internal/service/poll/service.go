package poll_service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/service"
)

type pollService struct {
	subscriptionService service.SubscriptionService
	statsService        service.StatsService
	now                 func() time.Time

	mu sync.RWMutex
	// дни опроса: "2006-01-02" -> списки имён
	days map[string]*models.PollDay
	// сообщения опроса: "<chatID>_<date>" -> messageID
	refs map[string]int
}

func NewPollService(subscriptionService service.SubscriptionService, statsService service.StatsService) service.PollService {
	return &pollService{
		subscriptionService: subscriptionService,
		statsService:        statsService,
		now:                 time.Now,
		days:                make(map[string]*models.PollDay),
		refs:                make(map[string]int),
	}
}

func (s *pollService) TodayKey() string {
	return s.now().Format("2006-01-02")
}

func (s *pollService) Respond(userID int64, displayName string, response models.ResponseType) (*models.RespondResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.TodayKey()
	day := s.day(date)
	result := &models.RespondResult{Date: date}

	// Повторный тот же ответ — no-op.
	if contains(day.List(response), displayName) {
		result.Duplicate = true
		return result, nil
	}

	// Имя может числиться только в одном списке.
	for _, prev := range []models.ResponseType{models.ResponseYes, models.ResponseNo, models.ResponseMaybe} {
		if prev == response {
			continue
		}
		if s.removeFrom(day, prev, displayName) {
			result.MovedFrom = prev
			break
		}
	}

	// Уходит из "приду" — занятие возвращается на абонемент.
	if result.MovedFrom == models.ResponseYes {
		restored, err := s.subscriptionService.RestoreLesson(userID)
		if err != nil {
			return nil, err
		}
		result.Restored = restored
	}

	if response == models.ResponseYes {
		decision, err := s.subscriptionService.EvaluateAttendance(userID, response, false)
		if err != nil {
			return nil, err
		}
		if decision.Valid {
			if _, err := s.subscriptionService.EvaluateAttendance(userID, response, true); err != nil {
				return nil, err
			}
		}
		result.Credit = &decision
	}

	// Ответ попадает в список независимо от состояния абонемента:
	// отсутствие абонемента — информация для пользователя, не запрет.
	s.appendTo(day, response, displayName)

	if err := s.statsService.RecordEvent(userID, displayName, response, date); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *pollService) Cancel(userID int64, displayName string) (*models.CancelResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.TodayKey()
	day := s.day(date)
	result := &models.CancelResult{Date: date}

	for _, r := range []models.ResponseType{models.ResponseYes, models.ResponseNo, models.ResponseMaybe} {
		if s.removeFrom(day, r, displayName) {
			result.Removed = true
			result.RemovedFrom = r
			break
		}
	}
	if !result.Removed {
		return result, nil
	}

	if result.RemovedFrom == models.ResponseYes {
		restored, err := s.subscriptionService.RestoreLesson(userID)
		if err != nil {
			return nil, err
		}
		result.Restored = restored
	}

	if err := s.statsService.RecordEvent(userID, displayName, models.ActionCancel, date); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *pollService) Day(date string) models.PollDay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day, ok := s.days[date]
	if !ok {
		return models.PollDay{}
	}
	return models.PollDay{
		Yes:   append([]string(nil), day.Yes...),
		No:    append([]string(nil), day.No...),
		Maybe: append([]string(nil), day.Maybe...),
	}
}

func (s *pollService) MessageRef(chatID int64, date string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.refs[refKey(chatID, date)]
	return id, ok
}

func (s *pollService) SetMessageRef(chatID int64, date string, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refs[refKey(chatID, date)] = messageID
}

func (s *pollService) ChatsWithPoll(date string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var chats []int64
	for key := range s.refs {
		chatPart, datePart, ok := strings.Cut(key, "_")
		if !ok || datePart != date {
			continue
		}
		if chatID, err := strconv.ParseInt(chatPart, 10, 64); err == nil {
			chats = append(chats, chatID)
		}
	}
	return chats
}

// day возвращает бакет дня, лениво создавая его. Дни никогда не удаляются —
// как в исходном боте.
func (s *pollService) day(date string) *models.PollDay {
	day, ok := s.days[date]
	if !ok {
		day = &models.PollDay{}
		s.days[date] = day
	}
	return day
}

func (s *pollService) removeFrom(day *models.PollDay, r models.ResponseType, displayName string) bool {
	list := day.List(r)
	for i, name := range list {
		if name == displayName {
			list = append(list[:i], list[i+1:]...)
			s.setList(day, r, list)
			return true
		}
	}
	return false
}

func (s *pollService) appendTo(day *models.PollDay, r models.ResponseType, displayName string) {
	s.setList(day, r, append(day.List(r), displayName))
}

func (s *pollService) setList(day *models.PollDay, r models.ResponseType, list []string) {
	switch r {
	case models.ResponseYes:
		day.Yes = list
	case models.ResponseNo:
		day.No = list
	case models.ResponseMaybe:
		day.Maybe = list
	}
}

func refKey(chatID int64, date string) string {
	return fmt.Sprintf("%d_%s", chatID, date)
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
