package host

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config/keymap"
	"github.com/automoto/jetpack-ascent/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputData is the action state for this frame and the one before it.
type InputData struct {
	Current  [keymap.ActionCount]bool
	Previous [keymap.ActionCount]bool
}

// ActionState describes one action for the current frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var Input = donburi.NewComponentType[InputData]()

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateControls in the system order.
func UpdateInput(ecs *ecs.ECS) {
	_, existed := Input.First(ecs.World)
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [keymap.ActionCount]bool{}

	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		log.Info("gamepad connected", "id", id, "name", ebiten.GamepadName(id))
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range keymap.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into horizontal movement
	left, right := getAnalogStickState(gamepadIDs)
	if left {
		input.Current[keymap.ActionMoveLeft] = true
	}
	if right {
		input.Current[keymap.ActionMoveRight] = true
	}

	// Keys held across a scene change are not new presses
	if !existed {
		input.Previous = input.Current
	}
}

// getAnalogStickState reads the left stick of every gamepad against the deadzone
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := keymap.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}

	return
}

// UpdateControls turns the polled actions into the player's intent.
func UpdateControls(ecs *ecs.ECS) {
	playerEntry, ok := systems.GetPlayer(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	components.Controls.SetValue(playerEntry, components.ControlsData{
		Left:   input.Current[keymap.ActionMoveLeft],
		Right:  input.Current[keymap.ActionMoveRight],
		Thrust: input.Current[keymap.ActionThrust],
	})
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *InputData {
	entry, ok := Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(Input))
		// Zero-value InputData is correct (all bools false)
	}
	return Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(ecs *ecs.ECS, id keymap.ActionID) ActionState {
	input := getOrCreateInput(ecs)
	curr := input.Current[id]
	prev := input.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
