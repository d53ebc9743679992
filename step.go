package pancam

// Step applies one pointer event to a copy of reg and returns the updated
// registry together with the gestures the event produces. reg itself is not
// modified.
//
// Moves and releases for IDs that are not in the registry produce no
// gestures and leave the registry unchanged.
func Step(reg Registry, bounds Rect, ev PointerEvent, historySize int) (Registry, []Gesture) {
	next := reg.Clone()
	return next, next.apply(bounds, ev, historySize, nil)
}

// apply runs the transition in place, appending gestures to buf.
func (r Registry) apply(bounds Rect, ev PointerEvent, historySize int, buf []Gesture) []Gesture {
	switch ev.Kind {
	case PointerPress:
		s := NewSample(bounds, ev)
		r[ev.ID] = newContact(ev.ID, s, historySize)
		return append(buf, Gesture{Type: GesturePanStart, ContactID: ev.ID, X: s.NDC.X, Y: s.NDC.Y})

	case PointerMove:
		c, ok := r[ev.ID]
		if !ok {
			return buf
		}
		c.push(NewSample(bounds, ev))
		return r.appendPanMoves(buf)

	case PointerRelease:
		if _, ok := r[ev.ID]; !ok {
			return buf
		}
		s := NewSample(bounds, ev)
		delete(r, ev.ID)
		return append(buf, Gesture{Type: GesturePanEnd, ContactID: ev.ID, X: s.NDC.X, Y: s.NDC.Y})
	}
	return buf
}

// appendPanMoves emits one pan-move per contact holding at least two samples,
// in ascending ID order, so stationary contacts report alongside moving ones.
func (r Registry) appendPanMoves(buf []Gesture) []Gesture {
	for _, id := range r.IDs() {
		c := r[id]
		if c.Len() < 2 {
			continue
		}
		buf = append(buf, Gesture{Type: GesturePanMove, ContactID: id, Diff: c.Difference()})
	}
	return buf
}
