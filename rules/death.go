package rules

type deathUpdate struct {
	Snake  *Snake
	Player int
	Death  *Death
}

// checkForDeath looks through the snakes with their post-move bodies and
// reports which ones collided. Each snake gets at most one cause: wall
// collision is checked first, then its own body, then the other snake.
func checkForDeath(board Board, turn int, snakes []*Snake) []deathUpdate {
	updates := []deathUpdate{}
	for i, s := range snakes {
		if !s.Alive() {
			continue
		}
		cause := ""
		head := s.Head()
		switch {
		case deathByOutOfBounds(head, board):
			cause = DeathCauseWallCollision
		case deathBySelfCollision(s):
			cause = DeathCauseSnakeSelfCollision
		default:
			for j, other := range snakes {
				if i == j {
					continue
				}
				if deathByHeadCollision(s, other) {
					cause = DeathCauseHeadToHeadCollision
					break
				}
				if deathByBodyCollision(head, other) {
					cause = DeathCauseSnakeCollision
					break
				}
			}
		}
		if cause == "" {
			continue
		}
		updates = append(updates, deathUpdate{
			Snake:  s,
			Player: i,
			Death: &Death{
				Turn:  turn,
				Cause: cause,
			},
		})
	}
	return updates
}

func deathByOutOfBounds(head Point, board Board) bool {
	return !board.Inside(head)
}

func deathBySelfCollision(s *Snake) bool {
	head := s.Head()
	for _, b := range s.Body[1:] {
		if head.Equal(b) {
			return true
		}
	}
	return false
}

func deathByHeadCollision(snake, other *Snake) bool {
	return snake.Head().Equal(other.Head())
}

func deathByBodyCollision(head Point, other *Snake) bool {
	for _, b := range other.Body {
		if head.Equal(b) {
			return true
		}
	}
	return false
}
