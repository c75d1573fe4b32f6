package draw

import (
	"image/color"

	"gioui.org/layout"

	"github.com/elektrokombinacija/mars-rover/internal/rover"
	"github.com/elektrokombinacija/mars-rover/internal/vis/interact"
)

var (
	ColorRover   = color.NRGBA{R: 100, G: 200, B: 255, A: 255}
	ColorTrail   = color.NRGBA{R: 100, G: 200, B: 255, A: 255}
	ColorBlocked = color.NRGBA{R: 255, G: 90, B: 90, A: 255}
)

// headingDir maps a heading to its screen direction. North points up,
// which is negative y on screen.
func headingDir(h rover.Direction) (dx, dy float32) {
	switch h {
	case rover.North:
		return 0, -1
	case rover.East:
		return 1, 0
	case rover.South:
		return 0, 1
	default:
		return -1, 0
	}
}

// DrawRover draws the rover as a body circle with a heading arrow.
func DrawRover(gtx layout.Context, worldX, worldY float64, heading rover.Direction, camera *interact.Camera, col color.NRGBA) {
	cx, cy := camera.WorldToScreen(worldX, worldY)
	radius := float32(15) * camera.Zoom

	FillCircle(gtx, cx, cy, radius, col)

	dx, dy := headingDir(heading)
	drawHeadingArrow(gtx, cx, cy, dx, dy, radius, col)
}

func drawHeadingArrow(gtx layout.Context, cx, cy, dirX, dirY, size float32, col color.NRGBA) {
	tipX := cx + dirX*size*1.7
	tipY := cy + dirY*size*1.7

	perpX := -dirY * size * 0.6
	perpY := dirX * size * 0.6

	baseX := cx + dirX*size*0.5
	baseY := cy + dirY*size*0.5

	DrawLine(gtx, baseX+perpX, baseY+perpY, tipX, tipY, 3, col)
	DrawLine(gtx, baseX-perpX, baseY-perpY, tipX, tipY, 3, col)
}

// DrawTrail draws the visited positions as a fading line.
func DrawTrail(gtx layout.Context, points [][2]float64, camera *interact.Camera, baseColor color.NRGBA, maxWidth float32) {
	if len(points) < 2 {
		return
	}

	n := len(points)
	for i := 0; i < n-1; i++ {
		// Fade alpha from start to end
		alpha := uint8(50 + float64(i)/float64(n)*150)
		col := baseColor
		col.A = alpha

		// Width also fades
		w := maxWidth * camera.Zoom * (0.3 + 0.7*float32(i)/float32(n))

		x1, y1 := camera.WorldToScreen(points[i][0], points[i][1])
		x2, y2 := camera.WorldToScreen(points[i+1][0], points[i+1][1])

		DrawLine(gtx, x1, y1, x2, y2, w, col)
	}
}

// DrawBlockedMarker draws a cross over the cell a move could not enter.
func DrawBlockedMarker(gtx layout.Context, worldX, worldY float64, camera *interact.Camera) {
	cx, cy := camera.WorldToScreen(worldX, worldY)
	arm := float32(12) * camera.Zoom
	width := float32(4) * camera.Zoom

	DrawLine(gtx, cx-arm, cy-arm, cx+arm, cy+arm, width, ColorBlocked)
	DrawLine(gtx, cx-arm, cy+arm, cx+arm, cy-arm, width, ColorBlocked)
}
