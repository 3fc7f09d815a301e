// Package config derives board geometry from the surface it is drawn on.
//
// The helpers here replace the fixed 20x50 board of the original visualizer
// with a board that fits a viewport, while keeping the original placement of
// the start and finish nodes.
package config
