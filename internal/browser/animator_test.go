//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package browser_test

import (
	"testing"

	"github.com/absop/quickbrowse/internal/browser"
)

func TestAnimatorBounces(t *testing.T) {
	t.Parallel()

	anim := browser.NewAnimator()
	if anim.Pos() != 0 {
		t.Fatalf("initial position = %d, want 0", anim.Pos())
	}

	for i := 0; i < 7; i++ {
		anim.Tick()
	}
	if anim.Pos() != 7 {
		t.Errorf("position after 7 ticks = %d, want 7", anim.Pos())
	}

	anim.Tick()
	if anim.Pos() != 6 {
		t.Errorf("position after 8 ticks = %d, want 6 (direction reversed)", anim.Pos())
	}
}

// TestAnimatorPeriod verifies the ping-pong sequence repeats with
// period 14.
func TestAnimatorPeriod(t *testing.T) {
	t.Parallel()

	reference := browser.NewAnimator()
	var positions []int
	for i := 0; i < 14; i++ {
		positions = append(positions, reference.Tick())
	}

	for i := 0; i < 14; i++ {
		if got := reference.Tick(); got != positions[i] {
			t.Fatalf("tick %d position = %d, want %d (period 14)", 14+i+1, got, positions[i])
		}
	}
}

func TestAnimatorFrame(t *testing.T) {
	t.Parallel()

	anim := browser.NewAnimator()
	if frame := anim.Frame(); frame != "[=       ]" {
		t.Errorf("frame at position 0 = %q, want %q", frame, "[=       ]")
	}

	anim.Tick()
	anim.Tick()
	if frame := anim.Frame(); frame != "[  =     ]" {
		t.Errorf("frame at position 2 = %q, want %q", frame, "[  =     ]")
	}
}
