package game

// Background tracks the horizontal scroll offset of the world.
// Moving right scrolls the world left, so the offset decreases.
type Background struct {
	offset    int
	minOffset int // Furthest right the world can scroll
	maxOffset int // Starting edge
}

// NewBackground creates a background at offset 0 clamped to [minOffset, maxOffset].
func NewBackground(minOffset, maxOffset int) *Background {
	return &Background{
		minOffset: minOffset,
		maxOffset: maxOffset,
	}
}

// Offset returns the current scroll offset.
func (b *Background) Offset() int {
	return b.offset
}

// Move scrolls by distance and clamps to the bounds.
// Returns false when the scroll hit a bound and was clamped.
func (b *Background) Move(distance int) bool {
	b.offset -= distance
	switch {
	case b.offset > b.maxOffset:
		b.offset = b.maxOffset
		return false
	case b.offset < b.minOffset:
		b.offset = b.minOffset
		return false
	default:
		return true
	}
}
