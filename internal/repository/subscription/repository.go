package subscription

import (
	"sync"

	"training-poll-bot/internal/models"
	"training-poll-bot/internal/repository"
	storage "training-poll-bot/pkg"
)

type subscriptionRepository struct {
	store *storage.JSONStore

	mu   sync.RWMutex
	subs map[int64]*models.Subscription
}

// NewSubscriptionRepository поднимает леджер из subscriptions.json.
// Каждая мутация перезаписывает файл целиком.
func NewSubscriptionRepository(store *storage.JSONStore) (repository.SubscriptionRepository, error) {
	subs := make(map[int64]*models.Subscription)
	if err := store.Load(&subs); err != nil {
		return nil, err
	}
	return &subscriptionRepository{store: store, subs: subs}, nil
}

func (r *subscriptionRepository) Get(userID int64) (*models.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subs[userID]
	if !ok {
		return nil, nil
	}
	copied := *sub
	return &copied, nil
}

func (r *subscriptionRepository) GetAll() (map[int64]*models.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[int64]*models.Subscription, len(r.subs))
	for id, sub := range r.subs {
		copied := *sub
		result[id] = &copied
	}
	return result, nil
}

func (r *subscriptionRepository) Set(userID int64, sub *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *sub
	r.subs[userID] = &copied
	return r.store.Save(r.subs)
}

func (r *subscriptionRepository) Delete(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subs, userID)
	return r.store.Save(r.subs)
}
