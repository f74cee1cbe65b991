package stats_service

import (
	"time"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/repository"
	"training-poll-bot/internal/service"
)

type statsService struct {
	statsRepo        repository.StatsRepository
	subscriptionRepo repository.SubscriptionRepository
	now              func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepository, subscriptionRepo repository.SubscriptionRepository) service.StatsService {
	return &statsService{
		statsRepo:        statsRepo,
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

func (s *statsService) RecordEvent(userID int64, displayName string, action models.ResponseType, date string) error {
	st, err := s.getOrCreate(userID, displayName)
	if err != nil {
		return err
	}

	now := s.now()
	st.Name = displayName
	st.LastActivity = now

	st.History = append(st.History, models.AttendanceEvent{
		Date:      date,
		Action:    action,
		Timestamp: now,
	})
	if len(st.History) > models.HistoryLimit {
		st.History = st.History[len(st.History)-models.HistoryLimit:]
	}

	switch action {
	case models.ResponseYes:
		st.Attended++
		st.TotalTrainings++
	case models.ResponseNo:
		st.Missed++
		st.TotalTrainings++
	case models.ResponseMaybe:
		st.Maybe++
	}

	// Слепок абонемента пишется только когда остаток занятий изменился
	// относительно последнего слепка.
	sub, err := s.subscriptionRepo.Get(userID)
	if err != nil {
		return err
	}
	if sub != nil {
		last := len(st.SubscriptionHistory) - 1
		if last < 0 || st.SubscriptionHistory[last].Lessons != sub.Lessons {
			st.SubscriptionHistory = append(st.SubscriptionHistory, snapshot(sub, now))
		}
	}

	return s.statsRepo.Set(userID, st)
}

func (s *statsService) AppendSubscriptionSnapshot(userID int64, displayName string, sub *models.Subscription) error {
	st, err := s.getOrCreate(userID, displayName)
	if err != nil {
		return err
	}

	now := s.now()
	if displayName != "" {
		st.Name = displayName
	}
	st.LastActivity = now
	st.SubscriptionHistory = append(st.SubscriptionHistory, snapshot(sub, now))

	return s.statsRepo.Set(userID, st)
}

func (s *statsService) Get(userID int64) (*models.UserStats, error) {
	return s.statsRepo.Get(userID)
}

func (s *statsService) GetAll() (map[int64]*models.UserStats, error) {
	return s.statsRepo.GetAll()
}

// Wipe обнуляет счётчики и историю событий. Имя, дата первого появления
// и история абонементов остаются.
func (s *statsService) Wipe(userID int64) error {
	st, err := s.statsRepo.Get(userID)
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}

	st.TotalTrainings = 0
	st.Attended = 0
	st.Missed = 0
	st.Maybe = 0
	st.NoShow = 0
	st.History = []models.AttendanceEvent{}
	st.LastActivity = s.now()

	return s.statsRepo.Set(userID, st)
}

func (s *statsService) getOrCreate(userID int64, displayName string) (*models.UserStats, error) {
	st, err := s.statsRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		now := s.now()
		st = &models.UserStats{
			Name:                displayName,
			History:             []models.AttendanceEvent{},
			SubscriptionHistory: []models.SubscriptionSnapshot{},
			FirstSeen:           now,
			LastActivity:        now,
		}
	}
	return st, nil
}

func snapshot(sub *models.Subscription, now time.Time) models.SubscriptionSnapshot {
	return models.SubscriptionSnapshot{
		Type:       sub.Type,
		Lessons:    sub.Lessons,
		Cost:       sub.Cost,
		RecordedAt: now,
	}
}
