package game

// Orb is a consumable. Eating one adds its value to the eater's score and
// value/LengthPerValue to its target length.
type Orb struct {
	X, Y  float64
	Value float64
	R     float64
	Col   RGB
	Alive bool
}

// newOrb builds an orb at a fixed position. High-value orbs (carcass drops)
// get the fixed large radius; the rest get a small randomized one.
func newOrb(rng *Rand, x, y, value float64) *Orb {
	r := rng.RangeF(OrbMinRadius, OrbMaxRadius)
	if value >= OrbBigValue {
		r = OrbBigRadius
	}
	return &Orb{
		X:     x,
		Y:     y,
		Value: value,
		R:     r,
		Col:   orbPalette[rng.Intn(len(orbPalette))],
		Alive: true,
	}
}

// randomOrb places an orb uniformly inside the arena, a margin away from
// the border, with a random small value.
func randomOrb(rng *Rand) *Orb {
	x := rng.RangeF(-ArenaHalf+OrbMargin, ArenaHalf-OrbMargin)
	y := rng.RangeF(-ArenaHalf+OrbMargin, ArenaHalf-OrbMargin)
	return newOrb(rng, x, y, rng.RangeF(OrbMinValue, OrbMaxValue))
}
