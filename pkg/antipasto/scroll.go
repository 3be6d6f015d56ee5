package antipasto

// scroller tracks which row is at the top of a scrolled popup. Position is
// in whole rows, clamped so the viewport never runs past either end of the
// list.
type scroller struct {
	count    int // total rows
	capacity int // rows visible at once (average-height estimate)
	position int // first visible row
}

func (s *scroller) setCount(n int) {
	s.count = n
	s.clamp()
}

func (s *scroller) setCapacity(n int) {
	if n < 1 {
		n = 1
	}
	s.capacity = n
	s.clamp()
}

// update shifts the position by delta rows and reports whether it moved.
func (s *scroller) update(delta int) bool {
	old := s.position
	s.position += delta
	s.clamp()
	return s.position != old
}

// scrollToEnd puts the last row at the bottom of the viewport.
func (s *scroller) scrollToEnd() {
	s.position = s.maxPosition()
	if s.position < 0 {
		s.position = 0
	}
}

func (s *scroller) maxPosition() int {
	return s.count - s.capacity
}

func (s *scroller) clamp() {
	if limit := s.maxPosition(); s.position > limit {
		s.position = limit
	}
	if s.position < 0 {
		s.position = 0
	}
}
