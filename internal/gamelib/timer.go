package gamelib

// Timer counts simulation ticks down to zero. The zero value is expired.
type Timer struct {
	total     int
	remaining int
}

// NewTimer starts a timer of n ticks (at least one).
func NewTimer(n int) Timer {
	n = max(n, 1)
	return Timer{total: n, remaining: n}
}

// Tick advances the timer and reports whether it expired on this tick.
func (t *Timer) Tick() bool {
	if t.remaining <= 0 {
		return false
	}
	t.remaining--
	return t.remaining == 0
}

// Done reports whether the timer has run out.
func (t Timer) Done() bool {
	return t.remaining <= 0
}

// Remaining is the number of ticks left.
func (t Timer) Remaining() int {
	return t.remaining
}

// Progress is the elapsed fraction in [0, 1].
func (t Timer) Progress() float64 {
	if t.total == 0 {
		return 1
	}
	return float64(t.total-t.remaining) / float64(t.total)
}

// RevealSteps lists the cover widths for a reveal animation: the cover
// shrinks from the full box to nothing by speed pixels per frame.
func RevealSteps(boxSize, speed int) []int {
	speed = max(speed, 1)
	var steps []int
	for c := boxSize; c >= -speed; c -= speed {
		steps = append(steps, max(c, 0))
	}
	return steps
}

// CoverSteps is RevealSteps reversed: the cover grows to the full box.
func CoverSteps(boxSize, speed int) []int {
	speed = max(speed, 1)
	var steps []int
	for c := 0; c < boxSize+speed; c += speed {
		steps = append(steps, min(c, boxSize))
	}
	return steps
}

// SlideOffsets lists the pixel offsets of a tile sliding one box: 0, speed,
// 2*speed and so on while below boxSize.
func SlideOffsets(boxSize, speed int) []int {
	speed = max(speed, 1)
	var offsets []int
	for i := 0; i < boxSize; i += speed {
		offsets = append(offsets, i)
	}
	return offsets
}

// Steps plays a list of animation frames, holding each one for a fixed
// number of ticks.
type Steps struct {
	frames []int
	hold   int
	index  int
	held   int
}

// NewSteps plays frames, each held for hold ticks (at least one).
func NewSteps(frames []int, hold int) Steps {
	return Steps{frames: frames, hold: max(hold, 1)}
}

// Tick advances the animation and reports whether it finished on this tick.
func (s *Steps) Tick() bool {
	if s.Done() {
		return false
	}
	s.held++
	if s.held < s.hold {
		return false
	}
	s.held = 0
	s.index++
	return s.Done()
}

// Done reports whether every frame has been shown.
func (s Steps) Done() bool {
	return s.index >= len(s.frames)
}

// Value is the current frame, or the last one once done. An empty
// animation reports 0.
func (s Steps) Value() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[min(s.index, len(s.frames)-1)]
}
