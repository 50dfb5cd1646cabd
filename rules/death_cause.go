package rules

const (
	// DeathCauseSnakeCollision is the death reason when a snake runs into the other snake's body
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseSnakeSelfCollision is the death reason when a snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseHeadToHeadCollision is when both heads land on the same cell
	DeathCauseHeadToHeadCollision = "head-collision"
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
)
