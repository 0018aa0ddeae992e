// Package position provides the directed-position primitives shared by the
// grid and pathfind packages of github.com/katalvlaran/gridkit.
//
// What:
//
//   - Direction: N/E/S/W bit flags (diagonal quadrants are unions, e.g.
//     NorthEast = North|East). None is the "dead" marker of a terminated
//     search branch.
//   - Bounds: an explicit clamp rectangle passed to every movement call.
//     There is no process-wide state; two searches with different bounds can
//     run side by side.
//   - Position: a value type with (X, Y), facing, a per-direction step
//     counter, a generation counter and a lifetime.
//   - Key: the location-only identity of a Position. Visited sets dedupe by
//     Key, so two positions on the same cell facing different ways collide
//     on purpose.
//
// Movement model:
//
//	Move/MoveIn advance one cell. Leaving the Bounds kills the position
//	(Dir = None) and reports false instead of moving. Peek/PeekRight/PeekLeft
//	compute the candidate cell without mutating anything; a peek that would
//	leave the Bounds comes back dead.
//
// Coordinates grow east (x) and south (y):
//
//	     North (0,-1)
//	West (-1,0) · East (1,0)
//	     South (0,1)
//
// Complexity: every operation is O(1).
package position
