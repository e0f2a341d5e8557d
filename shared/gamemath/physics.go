package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp constrains a value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ApplyGravity integrates gravity into a y-down velocity and caps the fall
// speed at maxFall. Upward velocity is never capped.
func ApplyGravity(velY, gravity, maxFall, dt float64) float64 {
	velY += gravity * dt
	if velY > maxFall {
		return maxFall
	}
	return velY
}

// Oscillate returns base + sin(phase)*amplitude.
func Oscillate(base, phase, amplitude float64) float64 {
	return base + math.Sin(phase)*amplitude
}

// Pulse maps sin(phase) from [-1, 1] onto [lo, hi].
func Pulse(phase, lo, hi float64) float64 {
	return lo + (math.Sin(phase)+1)*0.5*(hi-lo)
}
