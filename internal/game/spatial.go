package game

import "math"

// RectF is an axis-aligned rectangle in world space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) ContainsPoint(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

type CellKey struct {
	X, Y int
}

// orbGrid buckets orbs by fixed-size cell so consumption checks touch only
// the orbs near a head instead of the whole population. Orbs never move, so
// a bucket entry stays valid until the orb is removed.
type orbGrid struct {
	cell    float64
	buckets map[CellKey][]*Orb
}

func newOrbGrid(cell float64) *orbGrid {
	if cell <= 0 {
		cell = OrbGridCell
	}
	return &orbGrid{cell: cell, buckets: make(map[CellKey][]*Orb)}
}

func (g *orbGrid) keyFor(x, y float64) CellKey {
	return CellKey{X: int(math.Floor(x / g.cell)), Y: int(math.Floor(y / g.cell))}
}

func (g *orbGrid) Insert(o *Orb) {
	k := g.keyFor(o.X, o.Y)
	g.buckets[k] = append(g.buckets[k], o)
}

func (g *orbGrid) Remove(o *Orb) {
	k := g.keyFor(o.X, o.Y)
	b := g.buckets[k]
	for i, e := range b {
		if e == o {
			b[i] = b[len(b)-1]
			g.buckets[k] = b[:len(b)-1]
			return
		}
	}
}

// Nearby visits every orb bucketed within radius r of (cx, cy). Callers get
// candidates, not exact hits; the distance test stays with the caller.
func (g *orbGrid) Nearby(cx, cy, r float64, fn func(*Orb)) {
	minX := int(math.Floor((cx - r) / g.cell))
	maxX := int(math.Floor((cx + r) / g.cell))
	minY := int(math.Floor((cy - r) / g.cell))
	maxY := int(math.Floor((cy + r) / g.cell))
	for gy := minY; gy <= maxY; gy++ {
		for gx := minX; gx <= maxX; gx++ {
			for _, o := range g.buckets[CellKey{X: gx, Y: gy}] {
				fn(o)
			}
		}
	}
}

// Len returns the number of bucketed orbs.
func (g *orbGrid) Len() int {
	n := 0
	for _, b := range g.buckets {
		n += len(b)
	}
	return n
}
