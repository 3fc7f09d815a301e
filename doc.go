// Package pathviz is the algorithmic core of a grid pathfinding
// visualizer: everything between "the user clicked a cell" and "a frame
// is drawn", without the drawing surface itself.
//
// 🚀 What is inside?
//
//   - grid/     : immutable board snapshots: nodes, walls, start/finish,
//     structural sharing on every edit, ASCII parse/print
//   - dijkstra/ : shortest path on the board, returning the visited order,
//     the path and a new snapshot with the run's markers
//   - maze/     : wall generators (random, vertical stripes) that emit the
//     walls in the order they should be animated
//   - animate/  : timed playback of recorded steps, cancellable handles,
//     the busy guard and sequence chaining
//   - session/  : the controller that ties the above to user events
//   - scenario/ : HCL scenario files (board, maze, timing)
//   - render/   : lipgloss terminal frames and a replay observer
//
// ✨ Compute first, animate second
//
// Algorithms never sleep and never touch a live board. They run to the end
// on a snapshot and return the full trace; animate replays that trace with
// per-step delays, and only the session decides when the board changes:
//
//	S . . # . . .        S * * # o . .
//	. . . # . . .        o o * # o o .
//	. . . # . . F   ==>  o o * # * * F
//	. . . # . . .        o o * # * o o
//	. . . . . . .        o o * * * o o
//
// The command-line player lives in cmd/pathviz:
//
//	go run ./cmd/pathviz -maze stripes -seed 7
package pathviz
