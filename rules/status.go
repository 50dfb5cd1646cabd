package rules

// RoundState is the lifecycle state of a round.
type RoundState string

const (
	// RoundStateIdle is the state before the first start
	RoundStateIdle RoundState = "idle"
	// RoundStateRunning represents a round that is advanced by ticks
	RoundStateRunning RoundState = "running"
	// RoundStatePaused represents a running round that ignores ticks
	RoundStatePaused RoundState = "paused"
	// RoundStateEnded represents a round that is done, only start leaves it
	RoundStateEnded RoundState = "ended"
)
