// Package pathfind runs round-based, branching breadth-first searches over a
// grid.Grid with a "facing forward, turn while stepping" movement model.
//
// What
//
//   - A Tracker is one search branch: a position.Position plus a Trail.
//     The Trail is either a scalar length (LengthOnly) or a persistent,
//     append-only history of visited positions (WithHistory).
//   - Split creates a child branch one step to the side. The child shares
//     the parent's history and adds one entry in O(1), so branching never
//     copies a history.
//   - Search processes the whole worklist of live trackers per round.
//     Every tracker may collect at the finish, get pruned, spawn a right
//     and a left branch, and finally step straight ahead or die.
//
// Modes
//
//   - ModeShortestLength: lengths only. A per-cell best length prunes
//     longer branches; ties survive, so every shortest length is reported.
//   - ModeShortestPaths: same pruning, but every finished tracker carries
//     its full history for drawing or replay.
//   - ModeAllPaths: turn-weighted cost (steps + penalty × turns). Branches
//     never step on a cell already in their own history.
//   - ModeBoundedPaths: ModeAllPaths with a pruning slack (default 1000)
//     that keeps near-optimal detours alive, plus an optional MaxCost
//     ceiling.
//
// Visited cells are keyed by location only (position.Key): two branches on
// the same cell facing different ways compete for one per-cell best value.
// The slack of ModeBoundedPaths exists to compensate for that.
//
// Determinism
//
//	Trackers are processed in worklist order, right branch before left,
//	and spawned branches join the end of the worklist. Finished trackers
//	are sorted by score, ties in discovery order.
//
// Complexity
//
//   - Time:   O(R × T) for R rounds over at most T live trackers; T may grow
//     exponentially in open areas.
//   - Memory: O(T + W×H); history nodes are shared between branches.
//
// Usage
//
//	res, err := pathfind.BoundedPaths(g, start, finish, 7036, '.',
//	    pathfind.WithContext(ctx),
//	    pathfind.WithOnRound(func(round, live int) { log.Debug("round", "n", round, "live", live) }),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrFinishOutOfBounds,
//	    // ErrStartDirection, ErrOptionViolation, ErrUnknownMode or ctx.Err()
//	}
//	fmt.Println(res.Best, res.Tiles())
package pathfind
