package pancam

import "testing"

func TestInjectPressRelease(t *testing.T) {
	in := newTestInput()
	l := record(in.Tracker())

	in.InjectPress(0, 200, 150)
	in.InjectRelease(0, 200, 150)
	if in.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", in.Pending())
	}

	// Frame 1: press
	in.processInjectedInput()
	if in.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", in.Pending())
	}
	if len(l.starts) != 1 || len(l.ends) != 0 {
		t.Error("press frame should only start the pan")
	}

	// Frame 2: release
	in.processInjectedInput()
	if in.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", in.Pending())
	}
	if len(l.ends) != 1 {
		t.Error("release frame should end the pan")
	}
	if in.processInjectedInput() {
		t.Error("empty queue should report no event consumed")
	}
}

func TestInjectDrag(t *testing.T) {
	in := newTestInput()
	l := record(in.Tracker())

	// Drag from (110,150) to (290,150) over 5 frames:
	// press, three interpolated moves, release.
	in.InjectDrag(2, 110, 150, 290, 150, 5)
	if in.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", in.Pending())
	}
	for in.processInjectedInput() {
	}

	if len(l.starts) != 1 || len(l.moves) != 3 || len(l.ends) != 1 {
		t.Fatalf("starts=%d moves=%d ends=%d, want 1/3/1", len(l.starts), len(l.moves), len(l.ends))
	}
	var total float64
	for _, m := range l.moves {
		if m.ContactID != 2 {
			t.Errorf("move for contact %d, want 2", m.ContactID)
		}
		total += m.DX
	}
	// Three of four equal steps of 1.8 NDC in total.
	if !approxEqual(total, 1.35, 1e-9) {
		t.Errorf("summed DX = %v, want 1.35", total)
	}
	if !approxEqual(l.ends[0].X, 0.9, 1e-9) {
		t.Errorf("pan-end x = %v, want 0.9", l.ends[0].X)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	in := newTestInput()
	in.InjectDrag(0, 150, 150, 200, 150, 0)
	if in.Pending() != 2 {
		t.Errorf("expected press+release only, got %d events", in.Pending())
	}
}

func TestInjectInvalidPointerIgnored(t *testing.T) {
	in := newTestInput()
	in.InjectPress(-1, 0, 0)
	in.InjectPress(maxPointers, 0, 0)
	if in.Pending() != 0 {
		t.Errorf("out-of-range pointers queued %d events", in.Pending())
	}
}
