package game

import "math"

// Creature is one serpent in the arena: the player or an autonomous
// opponent. Segments run head-first; Segments[0] is the most recently
// computed head position.
type Creature struct {
	ID   string
	Name string
	Bot  bool
	Col  RGB

	Segments  []Point
	Heading   float64 // radians, kept in (-π, π]
	TargetLen float64 // desired segment count; the body tracks its floor
	Boosting  bool
	Score     int
	Alive     bool
}

// NewCreature builds a creature of StartLen segments trailing behind the
// spawn point, opposite the initial heading.
func NewCreature(id, name string, bot bool, col RGB, at Point, heading float64) *Creature {
	heading = normAngle(heading)
	n := int(StartLen)
	segs := make([]Point, n, n*4)
	for i := range segs {
		segs[i] = translate(at, heading+math.Pi, float64(i)*BaseSpeed)
	}
	return &Creature{
		ID:        id,
		Name:      name,
		Bot:       bot,
		Col:       col,
		Segments:  segs,
		Heading:   heading,
		TargetLen: StartLen,
		Alive:     true,
	}
}

func (c *Creature) Head() Point {
	if len(c.Segments) == 0 {
		return Point{}
	}
	return c.Segments[0]
}

func (c *Creature) Tail() Point {
	if len(c.Segments) == 0 {
		return Point{}
	}
	return c.Segments[len(c.Segments)-1]
}

// Steer rotates the heading toward targetAngle by at most TurnRate,
// snapping exactly when the remaining difference is smaller.
func (c *Creature) Steer(targetAngle float64) {
	diff := angDiff(c.Heading, targetAngle)
	if math.Abs(diff) <= TurnRate {
		c.Heading = targetAngle
	} else if diff > 0 {
		c.Heading += TurnRate
	} else {
		c.Heading -= TurnRate
	}
	c.Heading = normAngle(c.Heading)
}

// Speed returns the distance the head travels this tick.
func (c *Creature) Speed() float64 {
	if c.Boosting {
		return BoostSpeed
	}
	return BaseSpeed
}

// PickupRadius is the orb collection reach: a base head radius plus a
// length-scaled bonus, capped so giants don't hoover the arena.
func (c *Creature) PickupRadius() float64 {
	return HeadRadius + math.Min(PickupGrowthCap, c.TargetLen/PickupGrowthDiv)
}

// BodyWidth is the stroke width the body is drawn with.
func (c *Creature) BodyWidth() float64 {
	return math.Min(MaxBodyWidth, BaseBodyWidth+c.TargetLen*BodyWidthScale)
}

// pushHead prepends p as the new head position.
func (c *Creature) pushHead(p Point) {
	c.Segments = append(c.Segments, Point{})
	copy(c.Segments[1:], c.Segments[0:])
	c.Segments[0] = p
}

// clampLen keeps the body at exactly floor(TargetLen) segments: tail points
// are dropped while shrinking and duplicated in place while growing, so new
// length unfolds as the creature moves.
func (c *Creature) clampLen() {
	n := int(c.TargetLen)
	if n < 1 {
		n = 1
	}
	if len(c.Segments) > n {
		c.Segments = c.Segments[:n]
		return
	}
	for len(c.Segments) < n {
		c.Segments = append(c.Segments, c.Segments[len(c.Segments)-1])
	}
}

// BodyBounds returns the axis-aligned bounds of all segments, expanded by
// half the stroke width. Used for render culling.
func (c *Creature) BodyBounds() RectF {
	if len(c.Segments) == 0 {
		return RectF{}
	}
	b := RectF{X0: c.Segments[0].X, Y0: c.Segments[0].Y, X1: c.Segments[0].X, Y1: c.Segments[0].Y}
	for _, s := range c.Segments[1:] {
		if s.X < b.X0 {
			b.X0 = s.X
		}
		if s.X > b.X1 {
			b.X1 = s.X
		}
		if s.Y < b.Y0 {
			b.Y0 = s.Y
		}
		if s.Y > b.Y1 {
			b.Y1 = s.Y
		}
	}
	half := c.BodyWidth() * 0.5
	b.X0 -= half
	b.Y0 -= half
	b.X1 += half
	b.Y1 += half
	return b
}
