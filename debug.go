package pancam

import "log/slog"

// TrackerStats counts events and gestures seen by a Tracker. Counters are
// always maintained; they are only logged in debug mode.
type TrackerStats struct {
	Presses  int
	Moves    int
	Releases int
	// Dropped counts events ignored because the tracker was idle or
	// disposed, or the contact was unknown.
	Dropped int

	PanStarts int
	PanMoves  int
	PanEnds   int
}

// Stats returns a snapshot of the tracker's counters.
func (t *Tracker) Stats() TrackerStats {
	return t.stats
}

// ResetStats zeroes the counters.
func (t *Tracker) ResetStats() {
	t.stats = TrackerStats{}
}

func (s *TrackerStats) countEvent(k EventKind) {
	switch k {
	case PointerPress:
		s.Presses++
	case PointerMove:
		s.Moves++
	case PointerRelease:
		s.Releases++
	}
}

func (s *TrackerStats) countGesture(g GestureType) {
	switch g {
	case GesturePanStart:
		s.PanStarts++
	case GesturePanMove:
		s.PanMoves++
	case GesturePanEnd:
		s.PanEnds++
	}
}

// drop records an ignored event.
func (t *Tracker) drop(ev PointerEvent, reason string) {
	t.stats.Dropped++
	if !t.debug {
		return
	}
	t.logger.Debug("pancam: event dropped",
		slog.String("kind", ev.Kind.String()),
		slog.Int("contact", ev.ID),
		slog.String("reason", reason))
}

func (t *Tracker) debugTransition(prev, next TrackerState) {
	if !t.debug {
		return
	}
	t.logger.Debug("pancam: tracker state",
		slog.String("from", prev.String()),
		slog.String("to", next.String()),
		slog.Int("contacts", len(t.contacts)))
}
