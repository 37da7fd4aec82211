package roster

import (
	"math"

	"github.com/okian/faceoff/internal/domain/model"
)

// Normalize computes the score population statistics and assigns each player
// a relative value: the z-score of its raw score against the population mean
// and sample standard deviation (n-1 divisor; a single-member population has
// variance zero). A zero deviation falls back to a divisor of one so the
// relative value stays finite; players whose score failed to parse get zero.
// Runs exactly once per ingested table.
func Normalize(players []model.Player) (mean, stdDev float64, scored int) {
	var sum float64
	for i := range players {
		if players[i].ScoreValid {
			sum += players[i].Score
			scored++
		}
	}
	if scored == 0 {
		return 0, 0, 0
	}
	mean = sum / float64(scored)

	var ss float64
	for i := range players {
		if players[i].ScoreValid {
			d := players[i].Score - mean
			ss += d * d
		}
	}
	var variance float64
	if scored > 1 {
		variance = ss / float64(scored-1)
	}
	stdDev = math.Sqrt(variance)

	div := stdDev
	if div == 0 {
		div = 1
	}
	for i := range players {
		if players[i].ScoreValid {
			players[i].RelativeValue = (players[i].Score - mean) / div
		} else {
			players[i].RelativeValue = 0
		}
	}
	return mean, stdDev, scored
}
