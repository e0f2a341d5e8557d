package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// Tuning is the on-disk shape of every gameplay knob. Sections or fields that
// a file leaves out keep their current values.
type Tuning struct {
	Window       Config         `yaml:"window"`
	Player       PlayerConfig   `yaml:"player"`
	Fuel         FuelConfig     `yaml:"fuel"`
	Enemy        EnemyConfig    `yaml:"enemy"`
	Platform     PlatformConfig `yaml:"platform"`
	PowerUp      PowerUpConfig  `yaml:"powerUp"`
	World        WorldConfig    `yaml:"world"`
	Camera       CameraConfig   `yaml:"camera"`
	Difficulties ProfileTable   `yaml:"difficulties"`
}

// ProfileTable holds one profile per known difficulty.
type ProfileTable struct {
	Easy   Profile `yaml:"easy"`
	Medium Profile `yaml:"medium"`
	Hard   Profile `yaml:"hard"`
}

// CurrentTuning snapshots the active configuration.
func CurrentTuning() Tuning {
	t := Tuning{
		Window:       *C,
		Player:       Player,
		Fuel:         Fuel,
		Enemy:        Enemy,
		Platform:     Platform,
		PowerUp:      PowerUp,
		World:        World,
		Camera:       Camera,
		Difficulties: ProfileTable{
			Easy:   profiles[Easy],
			Medium: profiles[Medium],
			Hard:   profiles[Hard],
		},
	}
	return t
}

// Apply makes t the active configuration.
func (t Tuning) Apply() {
	window := t.Window
	C = &window
	Player = t.Player
	Fuel = t.Fuel
	Enemy = t.Enemy
	Platform = t.Platform
	PowerUp = t.PowerUp
	World = t.World
	Camera = t.Camera
	profiles[Easy] = t.Difficulties.Easy
	profiles[Medium] = t.Difficulties.Medium
	profiles[Hard] = t.Difficulties.Hard
}

// DefaultTuningYAML returns the embedded tuning document.
func DefaultTuningYAML() []byte {
	return defaultTuningYAML
}

// ParseTuning overlays the YAML document in data on the active configuration
// and applies the result.
func ParseTuning(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.Apply()
	return nil
}

// LoadTuning overlays the tuning file at path on the built-in defaults.
// An empty path restores the defaults from the embedded document.
func LoadTuning(path string) error {
	Reset()
	resetProfiles()
	if err := ParseTuning(defaultTuningYAML); err != nil {
		return fmt.Errorf("embedded tuning: %w", err)
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	if err := ParseTuning(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (t Tuning) validate() error {
	if t.Fuel.DefaultFuel <= 0 {
		return fmt.Errorf("fuel.defaultFuel must be positive, got %v", t.Fuel.DefaultFuel)
	}
	if t.Player.FallDamageThreshold <= 0 {
		return fmt.Errorf("player.fallDamageThreshold must be positive, got %v", t.Player.FallDamageThreshold)
	}
	if t.Player.DefaultLives <= 0 {
		return fmt.Errorf("player.defaultLives must be positive, got %d", t.Player.DefaultLives)
	}
	if t.World.CellSize <= 0 {
		return fmt.Errorf("world.cellSize must be positive, got %d", t.World.CellSize)
	}
	if t.Window.TickRate <= 0 {
		return fmt.Errorf("window.tickRate must be positive, got %d", t.Window.TickRate)
	}
	if t.Difficulties.Medium != identityProfile {
		return fmt.Errorf("difficulties.medium must keep every multiplier at 1 and extraLives at 0")
	}
	for _, d := range Difficulties {
		p := t.Difficulties.get(d)
		for _, key := range profileKeys {
			if m, _ := p.Multiplier(key); m <= 0 {
				return fmt.Errorf("difficulties.%s.%s must be positive, got %v", d, key, m)
			}
		}
		if p.ExtraLives < 0 {
			return fmt.Errorf("difficulties.%s.extraLives must not be negative", d)
		}
	}
	return nil
}

// Medium is the reference profile every base value is tuned against
var identityProfile = Profile{
	PlatformDensity:  1,
	HazardRate:       1,
	FuelRate:         1,
	FallTolerance:    1,
	EnemySpeed:       1,
	PowerUpFrequency: 1,
}

var profileKeys = []string{
	KeyPlatformDensity,
	KeyHazardRate,
	KeyFuelRate,
	KeyFallTolerance,
	KeyEnemySpeed,
	KeyPowerUpFrequency,
}

func (pt ProfileTable) get(d Difficulty) Profile {
	switch d {
	case Easy:
		return pt.Easy
	case Hard:
		return pt.Hard
	}
	return pt.Medium
}
