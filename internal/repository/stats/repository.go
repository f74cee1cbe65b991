package stats

import (
	"sync"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/repository"
	storage "training-poll-bot/pkg"
)

type statsRepository struct {
	store *storage.JSONStore

	mu    sync.RWMutex
	stats map[int64]*models.UserStats
}

// NewStatsRepository поднимает статистику из user_stats.json.
func NewStatsRepository(store *storage.JSONStore) (repository.StatsRepository, error) {
	stats := make(map[int64]*models.UserStats)
	if err := store.Load(&stats); err != nil {
		return nil, err
	}
	return &statsRepository{store: store, stats: stats}, nil
}

func (r *statsRepository) Get(userID int64) (*models.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.stats[userID]
	if !ok {
		return nil, nil
	}
	return copyStats(st), nil
}

func (r *statsRepository) GetAll() (map[int64]*models.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[int64]*models.UserStats, len(r.stats))
	for id, st := range r.stats {
		result[id] = copyStats(st)
	}
	return result, nil
}

func (r *statsRepository) Set(userID int64, stats *models.UserStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats[userID] = copyStats(stats)
	return r.store.Save(r.stats)
}

func copyStats(st *models.UserStats) *models.UserStats {
	copied := *st
	copied.History = append([]models.AttendanceEvent(nil), st.History...)
	copied.SubscriptionHistory = append([]models.SubscriptionSnapshot(nil), st.SubscriptionHistory...)
	return &copied
}
