package subscription

import (
	"path/filepath"
	"testing"
	"time"

	"training-poll-bot/internal/models"
	storage "training-poll-bot/pkg"
)

func newTestRepo(t *testing.T, path string) *subscriptionRepository {
	t.Helper()
	store, err := storage.NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	repo, err := NewSubscriptionRepository(store)
	if err != nil {
		t.Fatalf("NewSubscriptionRepository: %v", err)
	}
	return repo.(*subscriptionRepository)
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t, filepath.Join(t.TempDir(), "subscriptions.json"))

	sub, err := repo.Get(99)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sub != nil {
		t.Errorf("отсутствующий абонемент должен быть nil, получили %+v", sub)
	}
}

func TestSetGetDelete(t *testing.T) {
	repo := newTestRepo(t, filepath.Join(t.TempDir(), "subscriptions.json"))

	start := time.Now().UTC().Truncate(time.Second)
	if err := repo.Set(1, &models.Subscription{
		Type:      models.SubscriptionMonthly,
		Lessons:   8,
		Cost:      4400,
		StartDate: start,
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sub, err := repo.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sub == nil || sub.Lessons != 8 || sub.Type != models.SubscriptionMonthly {
		t.Fatalf("Get вернул %+v", sub)
	}

	// Мутация копии не должна менять леджер без Set.
	sub.Lessons = 0
	again, _ := repo.Get(1)
	if again.Lessons != 8 {
		t.Errorf("Get должен возвращать копию, леджер изменился: %d", again.Lessons)
	}

	if err := repo.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, _ := repo.Get(1)
	if gone != nil {
		t.Errorf("после Delete абонемент должен исчезнуть")
	}
}

// Перезагрузка с того же файла даёт идентичное содержимое.
func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.json")
	repo := newTestRepo(t, path)

	start := time.Now().UTC().Truncate(time.Second)
	used := start.Add(2 * time.Hour)
	subs := map[int64]*models.Subscription{
		1: {Type: models.SubscriptionMonthly, Lessons: 5, Cost: 4400, StartDate: start, LastUsed: &used},
		2: {Type: models.SubscriptionSingle, Lessons: 1, Cost: 700, StartDate: start},
	}
	for id, sub := range subs {
		if err := repo.Set(id, sub); err != nil {
			t.Fatalf("Set(%d): %v", id, err)
		}
	}

	reloaded := newTestRepo(t, path)
	all, err := reloaded.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != len(subs) {
		t.Fatalf("после перезагрузки %d записей, ожидали %d", len(all), len(subs))
	}

	for id, want := range subs {
		got := all[id]
		if got == nil {
			t.Fatalf("запись %d потеряна", id)
		}
		if got.Type != want.Type || got.Lessons != want.Lessons || got.Cost != want.Cost {
			t.Errorf("запись %d: получили %+v, ожидали %+v", id, got, want)
		}
		if !got.StartDate.Equal(want.StartDate) {
			t.Errorf("запись %d: start_date %v != %v", id, got.StartDate, want.StartDate)
		}
		switch {
		case want.LastUsed == nil && got.LastUsed != nil:
			t.Errorf("запись %d: last_used должен быть nil", id)
		case want.LastUsed != nil && (got.LastUsed == nil || !got.LastUsed.Equal(*want.LastUsed)):
			t.Errorf("запись %d: last_used %v != %v", id, got.LastUsed, want.LastUsed)
		}
	}
}
