// Package animations drives frame indices from the runner's animator speed.
package animations

// Animation advances one Step every FrameLength units of progress. Progress
// is usually distance travelled, so a faster runner cycles faster.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FrameLength      float64 // progress needed before the next frame
	progress         float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update feeds amount of progress, typically animator speed times dt.
func (a *Animation) Update(amount float64) {
	if a.FrameLength <= 0 || amount <= 0 {
		return
	}
	a.progress += amount
	for a.progress >= a.FrameLength {
		a.progress -= a.FrameLength
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
				a.progress = 0
				return
			}
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Phase is the position inside the current frame, in [0, 1).
func (a *Animation) Phase() float64 {
	if a.FrameLength <= 0 {
		return 0
	}
	return a.progress / a.FrameLength
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.progress = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, frameLength float64) *Animation {
	return &Animation{
		First:       first,
		Last:        last,
		Step:        step,
		FrameLength: frameLength,
		frame:       first,
		Looped:      false,
	}
}
