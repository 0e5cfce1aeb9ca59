package game

import "testing"

func TestBackgroundMove(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		distance int
		offset   int
		moved    bool
	}{
		{"past the far bound", 0, 1001, -1000, false},
		{"back past the start", -1000, -1, 0, false},
		{"inside bounds", -500, 10, -510, true},
		{"left at the start", 0, -15, 0, false},
		{"right from the start", 0, 15, -15, true},
		{"exactly to the far bound", -985, 15, -1000, true},
		{"exactly back to the start", -15, -15, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBackground(-1000, 0)
			b.offset = tc.start

			moved := b.Move(tc.distance)
			if moved != tc.moved {
				t.Errorf("Move(%d) from %d = %v, expected %v", tc.distance, tc.start, moved, tc.moved)
			}
			if b.Offset() != tc.offset {
				t.Errorf("offset = %d, expected %d", b.Offset(), tc.offset)
			}
		})
	}
}

func TestBackgroundNeverLeavesBounds(t *testing.T) {
	b := NewBackground(-1000, 0)
	for i := 0; i < 100; i++ {
		b.Move(15)
		if b.Offset() < -1000 || b.Offset() > 0 {
			t.Fatalf("offset %d out of bounds after %d moves", b.Offset(), i+1)
		}
	}
	if b.Offset() != -1000 {
		t.Errorf("offset = %d, expected to rest at -1000", b.Offset())
	}
}
