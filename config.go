package main

import "time"

const (
	// --- Board ---
	ContainerPadding = 16.0

	// --- Cards ---
	ShadowOffset    = 6.0
	ShadowLift      = 10.0
	BorderThickness = 1.0
	DragOverOutline = 4.0
	PlaceholderText = "Click or drag image"

	// --- Theme ---
	SystemThemePoll = 2 * time.Second
)
