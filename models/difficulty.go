package models

import "math"

const (
	MinLevel = 1
	MaxLevel = 9
)

// BombProbability maps a difficulty level onto the chance that any single
// cell holds a bomb. The curve is a logistic centered on level 5 that never
// exceeds 0.6.
func BombProbability(level int) float64 {
	return 0.6 / (1 + math.Exp(-float64(level-5)))
}
