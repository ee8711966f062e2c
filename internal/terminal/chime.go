// internal/terminal/chime.go
package terminal

import (
	"fmt"
	"log"
	"time"

	"go-hexpath/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	foundFrequency    = 880
	notFoundFrequency = 220
	foundDuration     = 60 * time.Millisecond
	notFoundDuration  = 150 * time.Millisecond
)

// Tone возвращает синусоиду частоты freq длиной duration.
func Tone(freq int, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, fmt.Errorf("failed to create tone %d Hz: %w", freq, err)
	}
	return beep.Take(sampleRate.N(duration), sine), nil
}

// Chime озвучивает результат поиска короткими сигналами.
type Chime struct {
	audioInit bool
}

// NewChime открывает динамик. Без звука программа работает дальше, поэтому
// ошибка только логируется.
func NewChime(enabled bool) *Chime {
	c := &Chime{}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return c
	}
	c.audioInit = true
	return c
}

// Enabled reports whether the speaker is open.
func (c *Chime) Enabled() bool {
	return c.audioInit
}

// Subscribe подписывает сигнал на события поиска.
func (c *Chime) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.PathFound, c)
	d.Subscribe(event.PathNotFound, c)
}

// OnEvent — высокий сигнал, если путь найден, низкий и длинный, если нет.
func (c *Chime) OnEvent(e event.Event) {
	switch e.Type {
	case event.PathFound:
		c.play(foundFrequency, foundDuration)
	case event.PathNotFound:
		c.play(notFoundFrequency, notFoundDuration)
	}
}

func (c *Chime) play(freq int, duration time.Duration) {
	if !c.audioInit {
		return
	}
	tone, err := Tone(freq, duration)
	if err != nil {
		log.Printf("chime: %v", err)
		return
	}
	speaker.Play(tone)
}

// Close закрывает динамик.
func (c *Chime) Close() {
	if c.audioInit {
		speaker.Close()
		c.audioInit = false
	}
}
