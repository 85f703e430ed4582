package game

import "testing"

func TestRGBMul(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}
	half := c.Mul(127)
	if half.R != 99 || half.G != 49 || half.B != 0 {
		t.Errorf("Mul(127) = %+v", half)
	}
	if full := c.Mul(255); full != c {
		t.Errorf("Mul(255) = %+v, want identity", full)
	}
	if zero := c.Mul(0); (zero != RGB{}) {
		t.Errorf("Mul(0) = %+v, want black", zero)
	}
}

func TestRGBAddClamps(t *testing.T) {
	c := RGB{R: 250, G: 5, B: 128}
	got := c.Add(40, -40, 0)
	if got.R != 255 || got.G != 0 || got.B != 128 {
		t.Errorf("Add = %+v, want clamped {255 0 128}", got)
	}
}

func TestNRGBA(t *testing.T) {
	c := RGB{R: 1, G: 2, B: 3}
	n := c.NRGBA(200)
	if n.R != 1 || n.G != 2 || n.B != 3 || n.A != 200 {
		t.Errorf("NRGBA = %+v", n)
	}
}

func TestLerpRGB(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 100, G: 200, B: 0}
	mid := lerpRGB(a, b, 0.5)
	if mid.R != 50 || mid.G != 150 || mid.B != 100 {
		t.Errorf("lerpRGB mid = %+v", mid)
	}
	if got := lerpRGB(a, b, 0); got != a {
		t.Errorf("lerpRGB t=0 = %+v", got)
	}
	if got := lerpRGB(a, b, 1); got != b {
		t.Errorf("lerpRGB t=1 = %+v", got)
	}
}
