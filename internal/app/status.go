// internal/app/status.go
package app

import "fmt"

// SearchSummary — строки состояния поиска для панелей фронтендов.
func (w *World) SearchSummary() []string {
	s := w.Session
	return []string{
		fmt.Sprintf("Phase: %s", s.Phase()),
		fmt.Sprintf("Checked: %d  Queue: %d", len(s.CheckedTiles), s.Candidates()),
		fmt.Sprintf("Path: %d", len(s.FoundPath)),
	}
}

// OptionsSummary — текущие алгоритм, режим и частота препятствий одной строкой.
func (w *World) OptionsSummary() string {
	return fmt.Sprintf("Algorithm: %s  Style: %s  Obstacles: %s",
		w.Session.Algorithm, w.Session.Style, w.ObstacleFrequency)
}
