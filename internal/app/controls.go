// internal/app/controls.go
package app

import (
	"go-hexpath/internal/config"
	"go-hexpath/internal/utils"
	"go-hexpath/pkg/hexmap"
)

// Input — сырой ввод за кадр. Его заполняет фронтенд (ebiten или терминал),
// координаты курсора уже переведены в координаты карты.
type Input struct {
	Cursor       hexmap.Point
	CursorInside bool

	FollowPath bool // продолжить поиск / отправить персонажа
	FinishPath bool // досчитать пошаговый поиск сразу

	Regenerate bool
	Obstacles  bool
	Algorithm  bool
	Style      bool
}

// Controls хранит действия за текущий и предыдущий кадр.
type Controls struct {
	Cursor       hexmap.Point
	CursorInside bool

	FollowPath  utils.FrameValue[bool]
	FinishPath  utils.FrameValue[bool]
	SpeedUpPath utils.AccumulatedTime

	Regenerate utils.FrameValue[bool]
	Obstacles  utils.FrameValue[bool]
	Algorithm  utils.FrameValue[bool]
	Style      utils.FrameValue[bool]
}

func NewControls() *Controls {
	return &Controls{
		SpeedUpPath: utils.AccumulatedTime{Required: config.SpeedUpRequiredTime},
	}
}

// Update переносит ввод кадра в контролы. Вызывать раз в кадр.
func (c *Controls) Update(in Input, dt float64) {
	c.Cursor = in.Cursor
	c.CursorInside = in.CursorInside

	c.FollowPath.Set(in.FollowPath)
	c.FinishPath.Set(in.FinishPath)
	c.SpeedUpPath.Update(in.FollowPath, dt)

	c.Regenerate.Set(in.Regenerate)
	c.Obstacles.Set(in.Obstacles)
	c.Algorithm.Set(in.Algorithm)
	c.Style.Set(in.Style)
}
