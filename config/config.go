package config

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed     float64 `yaml:"moveSpeed"`     // Horizontal speed, not scaled by difficulty
	JetpackThrust float64 `yaml:"jetpackThrust"` // Upward speed applied every tick while thrusting
	MaxFallSpeed  float64 `yaml:"maxFallSpeed"`
	Gravity       float64 `yaml:"gravity"`

	// Lives
	DefaultLives int `yaml:"defaultLives"`

	// Fall damage
	FallDamageThreshold float64 `yaml:"fallDamageThreshold"` // Scaled by fallTolerance

	// Damage feedback
	DamageFlashTime float64 `yaml:"damageFlashTime"` // seconds

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// FuelConfig contains jetpack fuel economy values
type FuelConfig struct {
	DefaultFuel     float64 `yaml:"defaultFuel"`     // Scaled by fuelRate
	ConsumptionRate float64 `yaml:"consumptionRate"` // per second while thrusting
	RechargeRate    float64 `yaml:"rechargeRate"`    // per second on a recharge station
}

// EnemyConfig contains tuning for the three enemy archetypes
type EnemyConfig struct {
	RollerBotSpeed float64 `yaml:"rollerBotSpeed"`
	RollerBotSize  float64 `yaml:"rollerBotSize"`

	// Ground check ahead of a roller bot
	EdgeLookahead   float64 `yaml:"edgeLookahead"`
	GroundTolerance float64 `yaml:"groundTolerance"`
	EdgeMargin      float64 `yaml:"edgeMargin"` // Distance from the world edge that forces a turn

	HoverDroneSpeed     float64 `yaml:"hoverDroneSpeed"`
	HoverDroneRange     float64 `yaml:"hoverDroneRange"` // Default patrol range centered on spawn X
	HoverDroneWidth     float64 `yaml:"hoverDroneWidth"`
	HoverDroneHeight    float64 `yaml:"hoverDroneHeight"`
	HoverBobAmplitude   float64 `yaml:"hoverBobAmplitude"`
	HoverBobRate        float64 `yaml:"hoverBobRate"`
	DropBotSize         float64 `yaml:"dropBotSize"`
	DropBotFallSpeed    float64 `yaml:"dropBotFallSpeed"`
	DropBotWarningTime  float64 `yaml:"dropBotWarningTime"` // seconds
	DropBotDetectRange  float64 `yaml:"dropBotDetectRange"` // Horizontal detection half-width
	DropBotDetectDepth  float64 `yaml:"dropBotDetectDepth"` // Max distance below the bot
	DropBotSpinRate     float64 `yaml:"dropBotSpinRate"`
	RollerBotSpinFactor float64 `yaml:"rollerBotSpinFactor"`
}

// PlatformConfig contains tuning for the five platform archetypes
type PlatformConfig struct {
	Height       float64 `yaml:"height"`
	MinWidth     float64 `yaml:"minWidth"`
	MaxWidth     float64 `yaml:"maxWidth"`
	DefaultWidth float64 `yaml:"defaultWidth"`

	BreakTime       float64 `yaml:"breakTime"` // seconds from first contact until removal
	BreakMinOpacity float64 `yaml:"breakMinOpacity"`
	BounceForce     float64 `yaml:"bounceForce"`
	CompressTime    float64 `yaml:"compressTime"` // seconds
	CompressScale   float64 `yaml:"compressScale"`
	CheckpointLift  float64 `yaml:"checkpointLift"` // Respawn point height above the checkpoint surface
}

// PowerUpConfig contains pickup effect values
type PowerUpConfig struct {
	FuelCellRatio      float64 `yaml:"fuelCellRatio"`  // Fraction of max fuel restored
	ShieldDuration     float64 `yaml:"shieldDuration"` // seconds
	MegaBoostForce     float64 `yaml:"megaBoostForce"`
	FloatRate          float64 `yaml:"floatRate"`
	FloatAmplitude     float64 `yaml:"floatAmplitude"`
	ExtraLifeAmplitude float64 `yaml:"extraLifeAmplitude"`
	Size               float64 `yaml:"size"`
}

// WorldConfig contains level-wide values
type WorldConfig struct {
	DefaultWidth       float64 `yaml:"defaultWidth"`
	MinHeight          float64 `yaml:"minHeight"`
	BottomPadding      float64 `yaml:"bottomPadding"` // Extra room below the lowest entity
	DeadZoneDepth      float64 `yaml:"deadZoneDepth"` // Distance below the world bottom that counts as a fall out
	DoorwayWidth       float64 `yaml:"doorwayWidth"`
	DoorwayHeight      float64 `yaml:"doorwayHeight"`
	LevelCompleteBonus int     `yaml:"levelCompleteBonus"`
	LevelCount         int     `yaml:"levelCount"`
	CellSize           int     `yaml:"cellSize"`
	TransitionDelay    float64 `yaml:"transitionDelay"` // seconds on the level complete screen
}

// CameraConfig contains vertical follow-camera values
type CameraConfig struct {
	Smoothing  float64 `yaml:"smoothing"`  // Fraction of the remaining distance covered per tick
	LookAheadY float64 `yaml:"lookAheadY"` // Extra offset in the direction of vertical travel
}

// Config holds general game configuration
type Config struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TickRate  int  `yaml:"tickRate"`
	DebugDraw bool `yaml:"debugDraw"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Fuel FuelConfig
var Enemy EnemyConfig
var Platform PlatformConfig
var PowerUp PowerUpConfig
var World WorldConfig
var Camera CameraConfig

// LevelNames are the display names of the campaign levels, indexed from 1
var LevelNames = map[int]string{
	1: "Space Tower",
	2: "Gothic Tower",
	3: "Business Tower",
}

func init() {
	Reset()
}

// Reset restores every tuning value to its built-in default.
func Reset() {
	C = &Config{
		Width:    800,
		Height:   600,
		TickRate: 60,
	}

	Player = PlayerConfig{
		MoveSpeed:     200,
		JetpackThrust: 600,
		MaxFallSpeed:  800,
		Gravity:       1200,

		DefaultLives: 3,

		// 50% of screen height as velocity
		FallDamageThreshold: 300,

		DamageFlashTime: 0.2,

		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	Fuel = FuelConfig{
		DefaultFuel:     100,
		ConsumptionRate: 20,
		RechargeRate:    30,
	}

	Enemy = EnemyConfig{
		RollerBotSpeed: 100,
		RollerBotSize:  24,

		EdgeLookahead:   20,
		GroundTolerance: 5,
		EdgeMargin:     50,

		HoverDroneSpeed:     80,
		HoverDroneRange:     150,
		HoverDroneWidth:     28,
		HoverDroneHeight:    20,
		HoverBobAmplitude:   5,
		HoverBobRate:        2,
		DropBotSize:         24,
		DropBotFallSpeed:    400,
		DropBotWarningTime:  0.5,
		DropBotDetectRange:  80,
		DropBotDetectDepth:  300,
		DropBotSpinRate:     5,
		RollerBotSpinFactor: 0.5,
	}

	Platform = PlatformConfig{
		Height:       20,
		MinWidth:     64,
		MaxWidth:     256,
		DefaultWidth: 150,

		BreakTime:       1.5,
		BreakMinOpacity: 0.5,
		BounceForce:     900,
		CompressTime:    0.1,
		CompressScale:   0.7,
		CheckpointLift:  50,
	}

	PowerUp = PowerUpConfig{
		FuelCellRatio:      0.4,
		ShieldDuration:     10,
		MegaBoostForce:     1200,
		FloatRate:          2,
		FloatAmplitude:     5,
		ExtraLifeAmplitude: 8,
		Size:               16,
	}

	World = WorldConfig{
		DefaultWidth:       800,
		MinHeight:          600,
		BottomPadding:      100,
		DeadZoneDepth:      200,
		DoorwayWidth:       48,
		DoorwayHeight:      64,
		LevelCompleteBonus: 1000,
		LevelCount:         3,
		CellSize:           16,
		TransitionDelay:    2,
	}

	Camera = CameraConfig{
		Smoothing:  0.1,
		LookAheadY: 80,
	}
}

// LevelName returns the display name for a campaign level.
func LevelName(level int) string {
	if name, ok := LevelNames[level]; ok {
		return name
	}
	return "Unknown Tower"
}

// Default is the ECS layer every entity and renderer lives on
const Default = 0
