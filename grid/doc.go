// Package grid is the data model of the visualizer: a rectangular board of
// nodes with one start, one finish, and any number of walls.
//
// What:
//
//   - Node carries immutable coordinates, endpoint/wall flags, and the
//     scratch state of one pathfinder run (Distance, IsVisited, Previous).
//   - Grid is an immutable snapshot. ToggleWall, ApplyWalls, ClearRunState
//     and WithRunState each return a new snapshot; untouched rows are shared.
//   - Reachable and Components flood open cells with 4-connectivity.
//   - Parse and String convert to and from an ASCII layout.
//
// Invariants:
//
//   - Exactly one start and one finish; neither is ever a wall.
//   - Previous links form a tree rooted at start.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrInvalidCoordinate: coordinate outside the bounds; nothing changes.
//   - ErrProtectedCell: wall toggle aimed at start or finish.
//   - ErrRunStateSize: RunState slices do not cover the grid.
//   - ErrBadLayout: ASCII layout is ragged, unknown, or lacks S/F.
package grid
