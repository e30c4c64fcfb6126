package animations

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		row, length, offset, columns int
		first, last, idle            int
	}{
		{row: 8, length: 7, offset: 1, columns: 13, first: 105, last: 111, idle: 104},
		{row: 11, length: 7, offset: 1, columns: 13, first: 144, last: 150, idle: 143},
		{row: 0, length: 3, offset: 2, columns: 10, first: 2, last: 4, idle: 1},
	}

	for _, tc := range tests {
		first, last := Strip(tc.row, tc.length, tc.offset, tc.columns)
		if first != tc.first || last != tc.last {
			t.Errorf("Strip(%d, %d, %d, %d) = [%d, %d], expected [%d, %d]",
				tc.row, tc.length, tc.offset, tc.columns, first, last, tc.first, tc.last)
		}
		if idle := IdleFrame(tc.row, tc.offset, tc.columns); idle != tc.idle {
			t.Errorf("IdleFrame(%d, %d, %d) = %d, expected %d", tc.row, tc.offset, tc.columns, idle, tc.idle)
		}
	}
}

func TestAnimationLoops(t *testing.T) {
	// 60 tps at 30 fps holds every frame for two ticks.
	a := NewAnimation(10, 12, 30, 60, true)

	var frames []int
	for i := 0; i < 7; i++ {
		frames = append(frames, a.Frame())
		a.Update()
	}

	expected := []int{10, 10, 11, 11, 12, 12, 10}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Fatalf("Frame sequence %v, expected %v", frames, expected)
		}
	}
	if !a.Looped {
		t.Error("Expected Looped after wrapping")
	}
}

func TestAnimationHoldsLastFrameWithoutRepeat(t *testing.T) {
	a := NewAnimation(0, 1, 60, 60, false)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Frame() != 1 {
		t.Errorf("Expected to hold frame 1, got %d", a.Frame())
	}
}

func TestRestart(t *testing.T) {
	a := NewAnimation(3, 9, 60, 60, true)
	a.Update()
	a.Update()
	if a.Frame() == 3 {
		t.Fatal("Expected animation to advance")
	}
	a.Restart()
	if a.Frame() != 3 || a.Looped {
		t.Errorf("Expected frame 3 after restart, got %d", a.Frame())
	}
}

func TestSingleFrameNeverAdvances(t *testing.T) {
	a := NewAnimation(104, 104, 10, 60, true)
	for i := 0; i < 20; i++ {
		a.Update()
	}
	if a.Frame() != 104 || a.Looped {
		t.Errorf("Expected idle frame to stay put, got %d", a.Frame())
	}
}
