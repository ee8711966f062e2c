// internal/utils/frame.go
package utils

// FrameValue хранит значение за текущий и предыдущий кадр.
type FrameValue[T comparable] struct {
	Previous T
	Current  T
}

// Set сдвигает текущее значение в предыдущее.
func (v *FrameValue[T]) Set(raw T) {
	v.Previous = v.Current
	v.Current = raw
}

// Changed reports whether the value differs from the previous frame.
func (v FrameValue[T]) Changed() bool {
	return v.Previous != v.Current
}

// JustPressed reports whether the control went from zero to non-zero this frame.
func (v FrameValue[T]) JustPressed() bool {
	var zero T
	return v.Previous == zero && v.Current != zero
}

// AccumulatedTime копит время, пока выполняется условие.
type AccumulatedTime struct {
	Required float64 // секунды
	Current  float64
}

// Update прибавляет dt, если cond истинно, иначе сбрасывает накопленное время.
func (t *AccumulatedTime) Update(cond bool, dt float64) {
	if cond {
		t.Current += dt
	} else {
		t.Current = 0
	}
}

// Reached reports whether the required time has accumulated.
func (t AccumulatedTime) Reached() bool {
	return t.Current >= t.Required
}
