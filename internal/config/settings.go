// internal/config/settings.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings: параметры запуска, которые можно поменять без пересборки.
type Settings struct {
	Seed                   int64   `mapstructure:"seed"`
	LogLevel               string  `mapstructure:"logLevel"`
	StartingElixir         float64 `mapstructure:"startingElixir"`
	MaxElixir              float64 `mapstructure:"maxElixir"`
	ElixirRegenRate        float64 `mapstructure:"elixirRegenRate"`
	PlayerElixirMultiplier float64 `mapstructure:"playerElixirMultiplier"`
	EnemyAI                bool    `mapstructure:"enemyAI"`
	MaxDeltaTime           float64 `mapstructure:"maxDeltaTime"`
	Definitions            string  `mapstructure:"definitions"`
	Metrics                bool    `mapstructure:"metrics"`
}

// DefaultSettings возвращает значения по умолчанию без чтения файлов.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:               "info",
		StartingElixir:         5,
		MaxElixir:              10,
		ElixirRegenRate:        0.5,
		PlayerElixirMultiplier: 1,
		EnemyAI:                true,
		MaxDeltaTime:           MaxDeltaTime,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("startingElixir", d.StartingElixir)
	v.SetDefault("maxElixir", d.MaxElixir)
	v.SetDefault("elixirRegenRate", d.ElixirRegenRate)
	v.SetDefault("playerElixirMultiplier", d.PlayerElixirMultiplier)
	v.SetDefault("enemyAI", d.EnemyAI)
	v.SetDefault("maxDeltaTime", d.MaxDeltaTime)
	v.SetDefault("definitions", d.Definitions)
	v.SetDefault("metrics", d.Metrics)
}

// Load читает настройки. Пустой path: ищем clash.* в рабочей папке и ./config.
// Отсутствие файла не ошибка, битый файл: ошибка.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CLASH")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("clash")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.MaxElixir <= 0 {
		return Settings{}, fmt.Errorf("maxElixir must be positive, got %v", s.MaxElixir)
	}
	if s.StartingElixir > s.MaxElixir {
		s.StartingElixir = s.MaxElixir
	}
	return s, nil
}
