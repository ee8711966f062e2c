// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-hexpath/pkg/hexmap"
	"go-hexpath/pkg/pathfinding"
)

var (
	ErrInvalidSettings = errors.New("config: invalid settings")
	ErrUnknownTheme    = errors.New("config: unknown theme")
)

// Settings — параметры запуска, читаются из JSON и перекрываются флагами.
type Settings struct {
	MapWidth          int                      `json:"map_width"`
	MapHeight         int                      `json:"map_height"`
	ObstacleFrequency hexmap.ObstacleFrequency `json:"obstacle_frequency"`
	Seed              int64                    `json:"seed"`
	// MapFile — необязательный файл с картой в текстовом формате
	MapFile   string `json:"map_file,omitempty"`
	Algorithm string `json:"algorithm"`
	Style     string `json:"style"`
	Theme     string `json:"theme"`
	// AppendStartTile — включать ли стартовый гекс в найденный путь
	AppendStartTile bool `json:"append_start_tile"`
	Sound           bool `json:"sound"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		MapWidth:          DefaultMapWidth,
		MapHeight:         DefaultMapHeight,
		ObstacleFrequency: hexmap.ObstaclesLow,
		Algorithm:         "A-Star",
		Style:             "Instant",
		Theme:             DefaultTheme,
		AppendStartTile:   true,
		Sound:             true,
	}
}

// LoadSettings читает настройки из JSON-файла поверх значений по умолчанию.
// Пустой путь означает настройки по умолчанию.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// Validate проверяет согласованность настроек.
func (s Settings) Validate() error {
	if s.MapFile == "" && (s.MapWidth < 2 || s.MapHeight < 1) {
		return fmt.Errorf("%w: map must be at least 2x1, got %dx%d", ErrInvalidSettings, s.MapWidth, s.MapHeight)
	}
	if s.ObstacleFrequency < hexmap.ObstaclesNone || s.ObstacleFrequency > hexmap.ObstaclesHigh {
		return fmt.Errorf("%w: obstacle frequency %d", ErrInvalidSettings, int(s.ObstacleFrequency))
	}
	if _, err := pathfinding.ParseAlgorithm(s.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if _, err := pathfinding.ParseStyle(s.Style); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if _, err := ThemeByName(s.Theme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}
