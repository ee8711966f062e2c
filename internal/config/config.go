// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	DefaultMapWidth  = 100
	DefaultMapHeight = 50

	// Удержание клавиши продолжения поиска дольше этого времени (сек.)
	// включает автоматические шаги
	SpeedUpRequiredTime = 0.7
	// Минимальный интервал между автоматическими шагами (сек.)
	StepInterval = 0.015

	CharacterBaseSpeed          = 5.0 // пикселей карты за кадр
	CharacterMaxSpeed           = CharacterBaseSpeed * 3
	CharacterTilesPerSpeedBoost = 10

	CameraScrollSpeed      = 900.0 // пикселей экрана в секунду
	CameraMiddleScrollRate = 30.0

	ButtonWidth   = 150
	ButtonHeight  = 28
	ButtonMargin  = 8
	TextCharWidth = 7
	TextOffsetY   = 4
	StrokeWidth   = 2.0

	// Подписи стоимости и эвристики рисуются только при таком масштабе
	LabelMinScale = 0.75
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonDisabled  = color.RGBA{90, 90, 100, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	LineColor       = color.RGBA{255, 255, 0, 128}
)

// PauseKeys — клавиши паузы в графическом фронтенде, по именам ebiten.Key.
// Одни и те же клавиши ставят паузу и снимают её.
var PauseKeys = []string{"P", "Escape"}
