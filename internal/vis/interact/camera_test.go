package interact

import (
	"math"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

func TestWorldScreenRoundTrip(t *testing.T) {
	c := NewCamera()
	c.Zoom = 1.6
	c.OffsetX = -35
	c.OffsetY = 120

	sx, sy := c.WorldToScreen(125, 275)
	wx, wy := c.ScreenToWorld(sx, sy)

	if math.Abs(wx-125) > 1e-3 || math.Abs(wy-275) > 1e-3 {
		t.Errorf("round trip gave (%v, %v), want (125, 275)", wx, wy)
	}
}

func TestScrollZoomKeepsPointerFixed(t *testing.T) {
	c := NewCamera()
	pos := f32.Pt(200, 150)
	wantX, wantY := c.ScreenToWorld(pos.X, pos.Y)

	c.HandleEvent(layout.Context{}, pointer.Event{
		Kind:     pointer.Scroll,
		Position: pos,
		Scroll:   f32.Pt(0, -10),
	})

	if c.Zoom <= 1.0 {
		t.Fatalf("scroll up gave zoom %v, want > 1", c.Zoom)
	}
	gotX, gotY := c.ScreenToWorld(pos.X, pos.Y)
	if math.Abs(gotX-wantX) > 1e-3 || math.Abs(gotY-wantY) > 1e-3 {
		t.Errorf("world point under pointer moved from (%v, %v) to (%v, %v)", wantX, wantY, gotX, gotY)
	}
}

func TestDragPans(t *testing.T) {
	c := NewCamera()
	startX, startY := c.OffsetX, c.OffsetY

	c.HandleEvent(layout.Context{}, pointer.Event{Kind: pointer.Press, Position: f32.Pt(100, 100)})
	c.HandleEvent(layout.Context{}, pointer.Event{Kind: pointer.Drag, Position: f32.Pt(130, 80)})
	c.HandleEvent(layout.Context{}, pointer.Event{Kind: pointer.Release, Position: f32.Pt(130, 80)})

	if c.OffsetX != startX+30 || c.OffsetY != startY-20 {
		t.Errorf("drag gave offset (%v, %v), want (%v, %v)", c.OffsetX, c.OffsetY, startX+30, startY-20)
	}
}

func TestFitBoundsContains(t *testing.T) {
	c := NewCamera()
	c.FitBounds(0, 0, 500, 500, 800, 600, 40)

	// Both corners must land inside the screen with the margin honored.
	x0, y0 := c.WorldToScreen(0, 0)
	x1, y1 := c.WorldToScreen(500, 500)
	for _, v := range []float32{x0, y0, x1, y1} {
		if v < 39 || v > 801 {
			t.Fatalf("corner coordinate %v outside screen", v)
		}
	}
	if c.Zoom <= 0 {
		t.Fatalf("zoom = %v, want > 0", c.Zoom)
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 100; i++ {
		c.HandleEvent(layout.Context{}, pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 10)})
	}
	if c.Zoom < minZoom {
		t.Errorf("zoom %v fell below %v", c.Zoom, minZoom)
	}
	for i := 0; i < 200; i++ {
		c.HandleEvent(layout.Context{}, pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, -10)})
	}
	if c.Zoom > maxZoom {
		t.Errorf("zoom %v rose above %v", c.Zoom, maxZoom)
	}
}
