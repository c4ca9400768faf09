// Package core provides fundamental types shared by the game, the renderer
// and the platform layer. It has no external dependencies so game logic
// stays pure and testable.
package core

// Point is a cell coordinate. X grows rightwards, Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
