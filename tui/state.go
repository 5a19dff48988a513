// Package tui is the full-screen terminal front end: a live preview, a sample-text editor and three modal pickers.
package tui

type state int

const (
	mainState state = iota
	editState
	pickerState
	errorState
)
