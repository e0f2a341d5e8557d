package config

import "strings"

// Difficulty identifies a difficulty profile
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Multiplier keys accepted by Scale
const (
	KeyPlatformDensity  = "platformDensity"
	KeyHazardRate       = "hazardRate"
	KeyFuelRate         = "fuelRate"
	KeyFallTolerance    = "fallTolerance"
	KeyEnemySpeed       = "enemySpeed"
	KeyPowerUpFrequency = "powerUpFrequency"
)

// Profile is the set of multipliers a difficulty applies to base values.
// ExtraLives is a bonus granted once at run start.
type Profile struct {
	PlatformDensity  float64 `yaml:"platformDensity"`
	HazardRate       float64 `yaml:"hazardRate"`
	FuelRate         float64 `yaml:"fuelRate"`
	FallTolerance    float64 `yaml:"fallTolerance"`
	EnemySpeed       float64 `yaml:"enemySpeed"`
	PowerUpFrequency float64 `yaml:"powerUpFrequency"`
	ExtraLives       int     `yaml:"extraLives"`
}

// Multiplier returns the value stored under key, and false for unknown keys.
func (p Profile) Multiplier(key string) (float64, bool) {
	switch key {
	case KeyPlatformDensity:
		return p.PlatformDensity, true
	case KeyHazardRate:
		return p.HazardRate, true
	case KeyFuelRate:
		return p.FuelRate, true
	case KeyFallTolerance:
		return p.FallTolerance, true
	case KeyEnemySpeed:
		return p.EnemySpeed, true
	case KeyPowerUpFrequency:
		return p.PowerUpFrequency, true
	}
	return 0, false
}

// Difficulties lists the known difficulties in menu order
var Difficulties = []Difficulty{Easy, Medium, Hard}

var profiles map[Difficulty]Profile

func init() {
	resetProfiles()
}

func resetProfiles() {
	profiles = map[Difficulty]Profile{
		Easy: {
			PlatformDensity:  1.3,
			HazardRate:       0.6,
			FuelRate:         1.4,
			FallTolerance:    1.4,
			EnemySpeed:       0.7,
			PowerUpFrequency: 1.5,
			ExtraLives:       1,
		},
		Medium: {
			PlatformDensity:  1.0,
			HazardRate:       1.0,
			FuelRate:         1.0,
			FallTolerance:    1.0,
			EnemySpeed:       1.0,
			PowerUpFrequency: 1.0,
			ExtraLives:       0,
		},
		Hard: {
			PlatformDensity:  0.7,
			HazardRate:       1.5,
			FuelRate:         0.8,
			FallTolerance:    0.7,
			EnemySpeed:       1.3,
			PowerUpFrequency: 0.7,
			ExtraLives:       0,
		},
	}
}

// ParseDifficulty maps a user-supplied name to a Difficulty. Unknown names
// resolve to Medium.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := profiles[d]; ok {
		return d
	}
	return Medium
}

// Normalize returns d, or Medium when d has no profile.
func (d Difficulty) Normalize() Difficulty {
	if _, ok := profiles[d]; ok {
		return d
	}
	return Medium
}

// GetProfile returns the profile for d; unknown difficulties get Medium's.
func GetProfile(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[Medium]
}

// Scale multiplies base by the profile value stored under key. Unknown keys
// use a multiplier of 1.
func Scale(base float64, key string, d Difficulty) float64 {
	m, ok := GetProfile(d).Multiplier(key)
	if !ok {
		return base
	}
	return base * m
}

// StartingLives is the life count a new run begins with at difficulty d.
func StartingLives(d Difficulty) int {
	return Player.DefaultLives + GetProfile(d).ExtraLives
}
