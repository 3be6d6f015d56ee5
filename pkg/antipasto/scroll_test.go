package antipasto

import "testing"

func TestScrollerClampsAtBothEnds(t *testing.T) {
	s := scroller{}
	s.setCount(10)
	s.setCapacity(4)

	if s.update(-1) {
		t.Fatal("scrolling up from the top should not move")
	}
	if !s.update(1) {
		t.Fatal("scrolling down should move")
	}
	if s.position != 1 {
		t.Fatalf("position = %d, want 1", s.position)
	}

	s.update(100)
	if s.position != 6 {
		t.Fatalf("position = %d, want the last page at 6", s.position)
	}
	if s.update(1) {
		t.Fatal("already at the end")
	}
}

func TestScrollerShortList(t *testing.T) {
	s := scroller{}
	s.setCount(3)
	s.setCapacity(10)

	if s.update(1) || s.update(-1) {
		t.Fatal("a list shorter than the viewport never scrolls")
	}
	s.scrollToEnd()
	if s.position != 0 {
		t.Fatalf("position = %d, want 0", s.position)
	}
}

func TestScrollerScrollToEnd(t *testing.T) {
	s := scroller{}
	s.setCount(10)
	s.setCapacity(6)
	s.scrollToEnd()
	if s.position != 4 {
		t.Fatalf("position = %d, want 4", s.position)
	}
}

func TestScrollerCapacityFloor(t *testing.T) {
	s := scroller{}
	s.setCount(5)
	s.setCapacity(0)
	if s.capacity != 1 {
		t.Fatalf("capacity = %d, want the floor of 1", s.capacity)
	}
	s.scrollToEnd()
	if s.position != 4 {
		t.Fatalf("position = %d, want 4", s.position)
	}
}
