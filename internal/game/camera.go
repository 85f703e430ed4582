package game

// Camera is the viewport centre in world space. It trails the player's
// head with exponential smoothing, which reads as a subtle motion lag.
type Camera struct {
	X, Y float64
}

// Follow moves the camera a fixed fraction toward p on each axis.
func (c *Camera) Follow(p Point) {
	c.X = lerp(c.X, p.X, CamSmoothing)
	c.Y = lerp(c.Y, p.Y, CamSmoothing)
}

// SnapTo centres the camera on p immediately.
func (c *Camera) SnapTo(p Point) {
	c.X, c.Y = p.X, p.Y
}

// WorldToScreen converts a world position to pixels for a vw×vh viewport.
func (c *Camera) WorldToScreen(p Point, vw, vh int) (float64, float64) {
	return p.X - c.X + float64(vw)*0.5, p.Y - c.Y + float64(vh)*0.5
}

// Visible returns the world-space rectangle covered by a vw×vh viewport,
// expanded by margin on all sides.
func (c *Camera) Visible(vw, vh int, margin float64) RectF {
	halfW := float64(vw)*0.5 + margin
	halfH := float64(vh)*0.5 + margin
	return RectF{X0: c.X - halfW, Y0: c.Y - halfH, X1: c.X + halfW, Y1: c.Y + halfH}
}
