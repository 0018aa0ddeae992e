// Package grid stores a puzzle map as a rectangular 2D array of single-byte
// cells and measures the regions drawn on it.
//
// What:
//
//   - Grid: bounds-checked cell access. Out-of-range reads return a
//     sentinel (false / zero byte) and out-of-range writes are rejected,
//     never an error or a panic.
//   - Search helpers: FindFirst, FindAll and Count scan row-major,
//     left-to-right, so results are reproducible.
//   - Geometry helpers: Perimeter, IsEdgeDifferent, IsEdgeSame,
//     IsDiagonalDifferent and CountCorners describe one cell relative to its
//     neighbours. They are meant to run on an untouched reference grid.
//   - FloodFill: stack-based scanline fill that marks a connected region on
//     the working grid while summing area, perimeter and corners read from
//     the reference grid, all in one pass.
//   - Regions: every 4-connected region of equal cells with its Shape.
//
// Why corners:
//
//	For a rectilinear blob the number of corners equals the number of
//	sides. Each cell contributes one corner per diagonal quadrant where
//	both orthogonal neighbours differ (outer corner), or where both are
//	equal but the diagonal neighbour differs (inner corner).
//
// Construction:
//
//   - New(w, h, fill): explicit dimensions.
//   - FromLines(lines): trusted rows; width comes from the first row.
//   - Parse(lines): validating; ErrEmptyGrid, ErrNonRectangular.
//   - Read(r): text input, one row per line, validated through Parse.
//
// Complexity:
//
//   - Get/Set/IsValue:  O(1).
//   - FindAll/Count:    O(W×H).
//   - FloodFill:        O(A) for a region of A cells, Memory O(A) for seeds.
//   - Regions:          O(W×H), Memory O(W×H) for the private working copy.
//
// Grid is not safe for concurrent mutation.
package grid
