// Package tui hosts the puzzle in a terminal with bubbletea.
//
// The board is an 80×30 character raster of the play area; nodes show as
// [S], [E] or [id], the player's route as '*', the rubber band to the mouse
// as '.', and the optimal route after a failed attempt as '~'. Nodes can be
// chosen with the mouse or with s / e / 0-9.
package tui
