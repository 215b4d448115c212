package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationUpdate(t *testing.T) {
	tests := []struct {
		name       string
		anim       *Animation
		amounts    []float64
		wantFrame  int
		wantLooped bool
	}{
		{
			name:      "below one frame",
			anim:      NewAnimation(0, 3, 1, 0.5),
			amounts:   []float64{0.2, 0.2},
			wantFrame: 0,
		},
		{
			name:      "one step",
			anim:      NewAnimation(0, 3, 1, 0.5),
			amounts:   []float64{0.25, 0.25},
			wantFrame: 1,
		},
		{
			name:      "large amount skips frames",
			anim:      NewAnimation(0, 3, 1, 0.5),
			amounts:   []float64{1.5},
			wantFrame: 3,
		},
		{
			name:       "wraps to first",
			anim:       NewAnimation(0, 3, 1, 0.5),
			amounts:    []float64{2},
			wantFrame:  0,
			wantLooped: true,
		},
		{
			name: "freezes on last",
			anim: &Animation{
				First: 0, Last: 2, Step: 1, FrameLength: 1, FreezeOnComplete: true,
			},
			amounts:    []float64{10},
			wantFrame:  2,
			wantLooped: true,
		},
		{
			name:      "negative progress ignored",
			anim:      NewAnimation(0, 3, 1, 0.5),
			amounts:   []float64{-4},
			wantFrame: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, a := range tt.amounts {
				tt.anim.Update(a)
			}
			assert.Equal(t, tt.wantFrame, tt.anim.Frame())
			assert.Equal(t, tt.wantLooped, tt.anim.Looped)
		})
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(1, 4, 1, 1)
	a.Update(2.5)
	assert.Equal(t, 3, a.Frame())
	assert.InDelta(t, 0.5, a.Phase(), 1e-9)

	a.Restart()
	assert.Equal(t, 1, a.Frame())
	assert.Equal(t, 0.0, a.Phase())
}
