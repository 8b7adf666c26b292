package parameter

// Player movement
const (
	PlayerTurnRate  = 3.0  // rad/s at full turn intent
	PlayerMoveSpeed = 12.0 // units/s at full forward intent
	PlayerRadius    = 0.6  // collision radius against obstacles
	TurboMultiplier = 2.0

	PlayerMaxHealth = 100
)

// Jumping
const (
	JumpImpulse = 9.0   // units/s vertical velocity on takeoff
	Gravity     = -30.0 // units/s^2
)
