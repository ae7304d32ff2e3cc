package domain

import (
	"golang.org/x/exp/rand"
)

// AvoidPenalty scores any move that would kill the snake.
const AvoidPenalty = -1000

// AIController steers non-player snakes with a greedy-with-noise rule.
type AIController struct {
	rng *rand.Rand
}

func NewAIController(rng *rand.Rand) *AIController {
	return &AIController{rng: rng}
}

// NearestFood returns the first pellet with the minimal Manhattan distance.
func NearestFood(from Coord, foods []Coord) (Coord, bool) {
	if len(foods) == 0 {
		return Coord{}, false
	}
	best := foods[0]
	bestDist := from.Manhattan(best)
	for _, food := range foods[1:] {
		if d := from.Manhattan(food); d < bestDist {
			best, bestDist = food, d
		}
	}
	return best, true
}

// Candidates lists the moves a snake heading in dir may take, in
// enumeration order and without the reverse.
func Candidates(dir Direction) []Direction {
	out := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if !d.IsOpposite(dir) {
			out = append(out, d)
		}
	}
	return out
}

// ScoreMoves rates every candidate: AvoidPenalty if fatal, otherwise the
// negated distance from the new cell to target.
func ScoreMoves(field *Field, head Coord, candidates []Direction, target Coord, resolver *CollisionResolver) []int32 {
	scores := make([]int32, len(candidates))
	for i, d := range candidates {
		next := field.Move(head, d)
		if resolver.Classify(next).Fatal() {
			scores[i] = AvoidPenalty
			continue
		}
		scores[i] = -next.Manhattan(target)
	}
	return scores
}

// ChooseDirection picks the next heading for snake. With probability
// mistakeChance the greedy pick is replaced by a random candidate, and
// when every move is fatal a random candidate is taken as well.
// Without any food the snake keeps its heading.
func (ai *AIController) ChooseDirection(field *Field, snake *Snake, foods []Coord, resolver *CollisionResolver, mistakeChance float64) Direction {
	head := snake.Head()
	target, ok := NearestFood(head, foods)
	if !ok {
		return snake.Direction
	}

	candidates := Candidates(snake.Direction)
	scores := ScoreMoves(field, head, candidates, target, resolver)

	bestIndex := 0
	bestScore := scores[0]
	for i := 1; i < len(scores); i++ {
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestIndex = i
		}
	}

	if ai.rng.Float64() < mistakeChance {
		bestIndex = ai.rng.Intn(len(candidates))
	}

	if bestScore > AvoidPenalty {
		return candidates[bestIndex]
	}
	return candidates[ai.rng.Intn(len(candidates))]
}
