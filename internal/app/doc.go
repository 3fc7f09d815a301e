// Package app wires the command-line program together: it resolves the
// board from flags or a scenario file, drives a session through the maze
// and pathfinder replays and renders every step, decoupled from the CLI
// entrypoint.
package app
