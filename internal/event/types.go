// internal/event/types.go
package event

import "go-hexpath/pkg/hexmap"

const (
	PathFound        EventType = "PathFound"        // Поиск дошёл до цели
	PathNotFound     EventType = "PathNotFound"     // Цель недостижима
	SessionCleared   EventType = "SessionCleared"   // Сессия поиска сброшена
	CharacterArrived EventType = "CharacterArrived" // Персонаж дошёл до конца пути
	MapRegenerated   EventType = "MapRegenerated"
)

// PathResult — данные для PathFound и PathNotFound.
type PathResult struct {
	Start, Destination hexmap.TileID
	Path               []hexmap.TileID
	Checked            int
}

// MapInfo — данные для MapRegenerated.
type MapInfo struct {
	Frequency hexmap.ObstacleFrequency
	Seed      int64
}
