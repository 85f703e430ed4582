package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 800
	TicksPerSec  = 60
)

// Arena geometry (world units). The playfield spans [-ArenaHalf, ArenaHalf]
// on both axes; the background grid snaps to GridPitch.
const (
	ArenaHalf = 2000.0
	GridPitch = 60.0
)

// Creature movement. All rates are per tick.
const (
	BaseSpeed  = 4.0
	BoostSpeed = 8.0
	TurnRate   = 0.085 // radians
	StartLen   = 10.0  // also the boost floor: no boosting below this
)

// Boost cost: length bled per boosting tick, and the chance that a bled
// tick sheds a consumable at the tail.
const (
	BoostShrink     = 0.05
	BoostDropChance = 0.18
	ShedOrbValue    = 2.0
	ShedJitter      = 6.0
)

// Consumption. Pickup reach grows with length up to a cap.
const (
	HeadRadius      = 10.0
	PickupGrowthCap = 14.0
	PickupGrowthDiv = 8.0
	LengthPerValue  = 2.0 // orb value / this = length gained
)

// Lethal collision sampling.
const (
	LethalRadius  = 14.0
	CollisionStep = 2 // test every 2nd segment
	SelfSkip      = 8 // own segments exempt near the head
)

// Death and respawn.
const (
	CarcassStep       = 3 // every 3rd segment becomes an orb
	CarcassValue      = 10.0
	RespawnDelayTicks = 180
)

// Orb population.
const (
	OrbCap          = 400
	OrbRefillChance = 0.25
	OrbMinValue     = 1.0
	OrbMaxValue     = 5.0
	OrbBigValue     = 10.0
	OrbMinRadius    = 3.0
	OrbMaxRadius    = 5.0
	OrbBigRadius    = 8.0
	OrbMargin       = 60.0
	OrbGridCell     = 64.0
)

// Bot steering.
const (
	NumBots         = 8
	BotWanderChance = 0.05
	BotWanderMax    = 0.6 // radians of heading jitter
	BotEdgeMargin   = 140.0
	BotBoostStart   = 0.004
	BotBoostStop    = 0.03
	BotMinBoostLen  = 20.0
	SpawnMargin     = 300.0
)

// Camera.
const CamSmoothing = 0.12

// Leaderboard.
const (
	LeaderboardSize   = 5
	LeaderboardChance = 0.08
)

// Particles.
const (
	MaxParticles = 2048
	ParticleDrag = 0.92
)

// Rendering.
const (
	BaseBodyWidth  = 12.0
	MaxBodyWidth   = 30.0
	BodyWidthScale = 0.1
	BodySampleStep = 2 // stroke every 2nd segment
	CullMargin     = 64.0
	BorderWidth    = 4.0
	BoostMeterSpan = 150.0 // length above StartLen shown as a full meter
)
