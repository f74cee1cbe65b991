package config

import (
	"testing"
)

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int64
	}{
		{"пусто", "", nil},
		{"один", "123", []int64{123}},
		{"несколько с пробелами", "123, 456 ,789", []int64{123, 456, 789}},
		{"мусор пропускается", "123,abc,456", []int64{123, 456}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAdminIDs(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseAdminIDs(%q) = %v, ожидали %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseAdminIDs(%q)[%d] = %d, ожидали %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "42")
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_DIR", "")
	t.Setenv("DEFAULT_TRAINING_TIME", "")

	if err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if AppConfig.Storage.Dir != "logs" {
		t.Errorf("LOG_DIR по умолчанию = %q, ожидали logs", AppConfig.Storage.Dir)
	}
	if AppConfig.Training.Time != "20:00" {
		t.Errorf("время тренировки по умолчанию = %q", AppConfig.Training.Time)
	}
	if !AppConfig.Bot.IsAdmin(42) {
		t.Errorf("42 должен быть администратором")
	}
	if AppConfig.Bot.IsAdmin(43) {
		t.Errorf("43 не должен быть администратором")
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	if err := Load(); err == nil {
		t.Fatal("Load без BOT_TOKEN должен вернуть ошибку")
	}
}
