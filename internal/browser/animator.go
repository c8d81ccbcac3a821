package browser

import "strings"

// animatorWidth is the number of marker positions in the progress frame.
const animatorWidth = 8

// Animator produces the animated "loading bar" frame shown while a scan
// runs. A marker bounces between column 0 and column 7, one column per
// tick; the frame is a pure function of the tick count, a liveness
// indicator rather than real progress. The position sequence is periodic
// with period 14.
type Animator struct {
	pos  int
	step int
}

// NewAnimator creates an animator at position 0, moving right.
func NewAnimator() *Animator {
	return &Animator{pos: 0, step: 1}
}

// Tick advances the marker one column, reversing at either edge, and
// returns the new position.
func (a *Animator) Tick() int {
	a.pos += a.step
	if a.pos == 0 || a.pos == animatorWidth-1 {
		a.step = -a.step
	}

	return a.pos
}

// Pos returns the current marker position.
func (a *Animator) Pos() int {
	return a.pos
}

// Frame renders the current bar, e.g. "[   =    ]".
func (a *Animator) Frame() string {
	return "[" +
		strings.Repeat(" ", a.pos) +
		"=" +
		strings.Repeat(" ", animatorWidth-1-a.pos) +
		"]"
}
