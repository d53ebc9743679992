// Package pancam turns raw pointer input into pan gestures and keeps a
// perspective camera inside a fixed content plane.
//
// It has two independent cores and a thin [Ebitengine] host layer.
//
// # Gesture tracking
//
// A [Tracker] is attached to one [Surface]. Feed it press, move and release
// events; it keeps a [Registry] of active contacts and emits:
//
//   - pan-start with the contact's normalized device coordinates on press,
//   - one pan-move per contact holding two samples on every accepted move,
//     carrying a [PointerDifference] between its two most recent samples,
//   - pan-end with the release position.
//
// Because every contact reports on every move, two-finger gestures see
// synchronized updates even when one finger is still.
//
//	tr := pancam.NewTracker(surface)
//	tr.OnPanMove(func(ctx pancam.PanMoveContext) {
//		cam.PanByNDC(ctx.DX, ctx.DY)
//	})
//
// The transition itself is available as the pure function [Step].
//
// The tracker starts Idle. The first press moves it to Tracking and subscribes
// the [GlobalSource], so drags that leave the surface keep reporting; the
// release of the last contact unsubscribes it again. Moves and releases for
// unknown contacts are dropped silently.
//
// # Bounded camera
//
// [Pan] and [Zoom] are pure functions over a [Geometry] and a [Plane]. Pan
// keeps the viewport inside the plane at the current distance; Zoom clamps
// the distance to [MinDistance, MaxDistance] and re-clamps x/y for the new
// viewport. Where the viewport is larger than the plane on an axis, the
// camera is centered on that axis.
//
// [Camera] wraps both with state, tweened ScrollTo/ZoomTo (via [gween]) and a
// few helpers for mapping NDC deltas to world units.
//
// # Host
//
// [EbitenInput] polls mouse and touch state each frame and feeds the tracker.
// It also accepts synthetic events (InjectPress, InjectDrag, ...) and replays
// JSON gesture scripts via [LoadScript]. [Config] loads the host settings
// from TOML or YAML.
//
// ECS integration lives in pancam/ecs (a [Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package pancam
