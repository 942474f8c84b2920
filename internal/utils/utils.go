package utils

import "fmt"

// Clamps v into [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}
