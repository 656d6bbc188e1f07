// Package gui hosts the puzzle in a desktop window with ebiten.
//
// The window build needs the ebiten tag (go build -tags ebiten) and the
// platform graphics libraries; without it Run returns ErrUnavailable and the
// terminal host remains available.
package gui
