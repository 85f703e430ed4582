package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Stroke source: a 1×1 white region of a 3×3 image, so antialiased triangle
// edges never bleed a neighbouring texel. Built on first use; tests that
// never draw stay graphics-free.
var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func strokeSrc() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Reusable render buffers.
var (
	bodyBuf  []Point
	strokeVS []ebiten.Vertex
	strokeIS []uint16
)

// DrawWorld rasterizes one frame: backdrop, orbs, creatures, particles.
// The world is read-only here; all mutation happens in Step.
func DrawWorld(dst *ebiten.Image, w *World, vw, vh int) {
	cam := &w.Cam
	drawBackdrop(dst, cam, vw, vh)
	vis := cam.Visible(vw, vh, CullMargin)

	for _, o := range w.Orbs {
		if !o.Alive || !vis.ContainsPoint(Point{X: o.X, Y: o.Y}) {
			continue
		}
		sx, sy := cam.WorldToScreen(Point{X: o.X, Y: o.Y}, vw, vh)
		if o.Value >= OrbBigValue {
			// Halo marks the high-value drops.
			vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(o.R*1.9), o.Col.NRGBA(50), true)
		}
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(o.R), o.Col.NRGBA(255), true)
	}

	for _, c := range w.Creatures {
		if !c.Alive || !vis.Intersects(c.BodyBounds()) {
			continue
		}
		drawCreature(dst, cam, c, vw, vh)
	}

	for i := range w.Particles.P {
		p := &w.Particles.P[i]
		if !vis.ContainsPoint(Point{X: p.X, Y: p.Y}) {
			continue
		}
		a := p.Alpha()
		if a <= 0 {
			continue
		}
		sx, sy := cam.WorldToScreen(Point{X: p.X, Y: p.Y}, vw, vh)
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(p.Size), p.Col.NRGBA(uint8(a*210)), true)
	}
}

// drawBackdrop fills the background, draws the grid lines crossing the
// viewport snapped to GridPitch, and strokes the arena border.
func drawBackdrop(dst *ebiten.Image, cam *Camera, vw, vh int) {
	dst.Fill(Palette.Background.NRGBA(255))

	vis := cam.Visible(vw, vh, 0)
	gcol := Palette.Grid.NRGBA(255)
	for x := math.Floor(vis.X0/GridPitch) * GridPitch; x <= vis.X1; x += GridPitch {
		sx, _ := cam.WorldToScreen(Point{X: x}, vw, vh)
		vector.StrokeLine(dst, float32(sx), 0, float32(sx), float32(vh), 1, gcol, false)
	}
	for y := math.Floor(vis.Y0/GridPitch) * GridPitch; y <= vis.Y1; y += GridPitch {
		_, sy := cam.WorldToScreen(Point{Y: y}, vw, vh)
		vector.StrokeLine(dst, 0, float32(sy), float32(vw), float32(sy), 1, gcol, false)
	}

	bx, by := cam.WorldToScreen(Point{X: -ArenaHalf, Y: -ArenaHalf}, vw, vh)
	side := float32(2 * ArenaHalf)
	vector.StrokeRect(dst, float32(bx), float32(by), side, side, BorderWidth, Palette.Border.NRGBA(255), true)
}

// drawCreature strokes the body through a down-sampled segment subset,
// then layers the boost glow, eyes and name label.
func drawCreature(dst *ebiten.Image, cam *Camera, c *Creature, vw, vh int) {
	bodyBuf = downsampleInto(bodyBuf[:0], c.Segments, BodySampleStep)
	for i, p := range bodyBuf {
		x, y := cam.WorldToScreen(p, vw, vh)
		bodyBuf[i] = Point{X: x, Y: y}
	}
	bw := float32(c.BodyWidth())

	if len(bodyBuf) == 1 {
		vector.DrawFilledCircle(dst, float32(bodyBuf[0].X), float32(bodyBuf[0].Y), bw*0.5, c.Col.NRGBA(255), true)
	} else {
		if c.Boosting {
			strokePolyline(dst, bodyBuf, bw+7, c.Col.Add(40, 40, 40), 0.35)
		}
		strokePolyline(dst, bodyBuf, bw, c.Col, 1)
	}

	drawFace(dst, cam, c, vw, vh)

	hx, hy := cam.WorldToScreen(c.Head(), vw, vh)
	drawTextCentered(dst, c.Name, int(hx), int(hy-float64(bw)*0.5)-21, Palette.HUDText)
}

// drawFace places two eyes ahead of the head centre, oriented by heading.
func drawFace(dst *ebiten.Image, cam *Camera, c *Creature, vw, vh int) {
	white := color.NRGBA{R: 250, G: 250, B: 252, A: 255}
	dark := color.NRGBA{R: 20, G: 22, B: 28, A: 255}
	bw := c.BodyWidth()
	eyeR := bw * 0.28
	for _, side := range []float64{-1, 1} {
		e := translate(translate(c.Head(), c.Heading, bw*0.18), c.Heading+side*math.Pi/2, bw*0.30)
		ex, ey := cam.WorldToScreen(e, vw, vh)
		vector.DrawFilledCircle(dst, float32(ex), float32(ey), float32(eyeR), white, true)
		p := translate(e, c.Heading, eyeR*0.45)
		px, py := cam.WorldToScreen(p, vw, vh)
		vector.DrawFilledCircle(dst, float32(px), float32(py), float32(eyeR*0.5), dark, true)
	}
}

// strokePolyline draws a thick round-capped, round-joined line through
// screen-space points.
func strokePolyline(dst *ebiten.Image, pts []Point, width float32, col RGB, alpha float32) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	op := &vector.StrokeOptions{}
	op.Width = width
	op.LineCap = vector.LineCapRound
	op.LineJoin = vector.LineJoinRound
	strokeVS, strokeIS = path.AppendVerticesAndIndicesForStroke(strokeVS[:0], strokeIS[:0], op)

	sr := float32(col.R) / 255
	sg := float32(col.G) / 255
	sb := float32(col.B) / 255
	for i := range strokeVS {
		strokeVS[i].SrcX = 1
		strokeVS[i].SrcY = 1
		strokeVS[i].ColorR = sr
		strokeVS[i].ColorG = sg
		strokeVS[i].ColorB = sb
		strokeVS[i].ColorA = alpha
	}
	dst.DrawTriangles(strokeVS, strokeIS, strokeSrc(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// downsampleInto appends every step-th segment point to buf, always keeping
// the last point so the stroke reaches the tail tip.
func downsampleInto(buf []Point, segs []Point, step int) []Point {
	if step < 1 {
		step = 1
	}
	n := len(segs)
	if n == 0 {
		return buf
	}
	for i := 0; i < n; i += step {
		buf = append(buf, segs[i])
	}
	if last := n - 1; last%step != 0 {
		buf = append(buf, segs[last])
	}
	return buf
}
