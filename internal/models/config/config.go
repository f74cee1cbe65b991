package config

// AppConfig глобальная конфигурация приложения
var AppConfig *Config

// Config основной конфиг
type Config struct {
	Environment string
	Bot         BotConfig
	Storage     StorageConfig
	Training    TrainingConfig
}

type BotConfig struct {
	Token    string
	Debug    bool
	AdminIDs []int64 // ID администраторов, подтверждающих платежи
}

// IsAdmin проверяет ID по статическому списку администраторов.
func (c BotConfig) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// StorageConfig — каталог, куда пишутся subscriptions.json и user_stats.json.
type StorageConfig struct {
	Dir string
}

// TrainingConfig — параметры тренировки по умолчанию для шапки опроса.
type TrainingConfig struct {
	Time     string
	Location string
	Kind     string
}
