package game

import "math"

// botNames cycles across opponents; respawns keep the name they died with.
var botNames = []string{
	"viper", "noodle", "zigzag", "mamba", "boa", "sidewinder",
	"cobra", "python", "rattler", "asp", "adder", "taipan",
}

// steerBot drives one opponent for a tick: occasional heading jitter, a
// hard turn back toward the interior near the border, and stochastic
// boosting that never burns the creature below its length floor.
func steerBot(c *Creature, rng *Rand) {
	if rng.Float64() < BotWanderChance {
		c.Heading = normAngle(c.Heading + rng.RangeF(-BotWanderMax, BotWanderMax))
	}

	h := c.Head()
	edgeX := ArenaHalf - math.Abs(h.X)
	edgeY := ArenaHalf - math.Abs(h.Y)
	if edgeX < BotEdgeMargin || edgeY < BotEdgeMargin {
		// Point straight away from whichever border is closer.
		if edgeX < edgeY {
			if h.X > 0 {
				c.Heading = math.Pi
			} else {
				c.Heading = 0
			}
		} else {
			if h.Y > 0 {
				c.Heading = -math.Pi / 2
			} else {
				c.Heading = math.Pi / 2
			}
		}
	}

	if c.Boosting {
		if c.TargetLen <= BotMinBoostLen || rng.Float64() < BotBoostStop {
			c.Boosting = false
		}
	} else if c.TargetLen > BotMinBoostLen && rng.Float64() < BotBoostStart {
		c.Boosting = true
	}
}
