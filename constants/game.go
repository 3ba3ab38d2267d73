package constants

import "time"

// Round Constants
const (
	// RoundDuration is the length of one round
	RoundDuration = 120 * time.Second

	// TargetSum is the value a selection must add up to for a clear
	TargetSum = 10

	// MinTileValue and MaxTileValue bound the uniform tile value range, inclusive
	MinTileValue = 1
	MaxTileValue = 9
)

// Countdown Constants
const (
	// TickInterval is the period of the countdown ticker
	TickInterval = 100 * time.Millisecond

	// TicksPerSecond is the countdown resolution; each tick subtracts 0.1s
	// The countdown is a gauge, not a wall clock: drift against real time is accepted
	TicksPerSecond = int(time.Second / TickInterval)

	// RoundTicks is the number of ticks in a full round
	RoundTicks = int(RoundDuration / TickInterval)
)

// Default Layout Constants
const (
	DefaultColumns    = 17
	DefaultRows       = 10
	DefaultTileWidth  = 4
	DefaultTileHeight = 2
)
