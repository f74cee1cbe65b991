package stats

import (
	"path/filepath"
	"testing"
	"time"

	"training-poll-bot/internal/models"
	storage "training-poll-bot/pkg"
)

func newTestRepo(t *testing.T, path string) *statsRepository {
	t.Helper()
	store, err := storage.NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	repo, err := NewStatsRepository(store)
	if err != nil {
		t.Fatalf("NewStatsRepository: %v", err)
	}
	return repo.(*statsRepository)
}

func TestStatsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_stats.json")
	repo := newTestRepo(t, path)

	now := time.Now().UTC().Truncate(time.Second)
	want := &models.UserStats{
		Name:           "Иван Петров",
		TotalTrainings: 3,
		Attended:       2,
		Missed:         1,
		Maybe:          1,
		History: []models.AttendanceEvent{
			{Date: "2026-08-30", Action: models.ResponseYes, Timestamp: now},
			{Date: "2026-08-31", Action: models.ResponseNo, Timestamp: now},
		},
		SubscriptionHistory: []models.SubscriptionSnapshot{
			{Type: models.SubscriptionMonthly, Lessons: 8, Cost: 4400, RecordedAt: now},
		},
		FirstSeen:    now,
		LastActivity: now,
	}
	if err := repo.Set(10, want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reloaded := newTestRepo(t, path)
	got, err := reloaded.Get(10)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("запись потеряна после перезагрузки")
	}

	if got.Name != want.Name || got.TotalTrainings != want.TotalTrainings ||
		got.Attended != want.Attended || got.Missed != want.Missed || got.Maybe != want.Maybe {
		t.Errorf("счётчики: получили %+v", got)
	}
	if len(got.History) != 2 || got.History[0].Action != models.ResponseYes || got.History[1].Date != "2026-08-31" {
		t.Errorf("история: %+v", got.History)
	}
	if len(got.SubscriptionHistory) != 1 || got.SubscriptionHistory[0].Lessons != 8 {
		t.Errorf("история абонементов: %+v", got.SubscriptionHistory)
	}
	if !got.FirstSeen.Equal(want.FirstSeen) {
		t.Errorf("first_seen %v != %v", got.FirstSeen, want.FirstSeen)
	}
}

func TestSetStoresCopy(t *testing.T) {
	repo := newTestRepo(t, filepath.Join(t.TempDir(), "user_stats.json"))

	st := &models.UserStats{Name: "A", History: []models.AttendanceEvent{{Date: "2026-08-31"}}}
	if err := repo.Set(1, st); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Мутация исходника после Set не должна протекать в репозиторий.
	st.History[0].Date = "changed"
	st.Name = "B"

	got, _ := repo.Get(1)
	if got.Name != "A" || got.History[0].Date != "2026-08-31" {
		t.Errorf("репозиторий должен хранить копию: %+v", got)
	}
}
