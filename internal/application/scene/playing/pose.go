package playing

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/catfight/internal/domain/entity"
)

// Pose is the per-frame body transform layered on top of a fighter's rect
type Pose struct {
	OffsetY float64 // pixels, positive is down
	Rotate  float64 // radians, before facing is applied
	ScaleY  float64
}

// PoseOf derives the pose for a snapshot. It only reads the tick counter,
// so the same snapshot always gives the same pose.
func PoseOf(s entity.Snapshot) Pose {
	t := float64(s.Tick)
	p := Pose{ScaleY: 1}

	switch s.State {
	case entity.StateIdle:
		p.OffsetY = math.Sin(t*0.1) * 3
		p.ScaleY = 1 + math.Sin(t*0.05)*0.02
	case entity.StateWalk:
		p.OffsetY = -math.Abs(math.Sin(t*0.3)) * 15
		p.Rotate = math.Sin(t*0.3) * 0.05
	case entity.StateAttack:
		p.OffsetY = 5
		p.Rotate = -0.1
	case entity.StateHit:
		p.OffsetY = math.Sin(t*2.3) * 5
		p.Rotate = math.Sin(t*1.7) * 0.1
	case entity.StateStumble, entity.StateDead:
		p.OffsetY = s.Height * 0.4
		p.Rotate = 1.5
	}
	return p
}

// bodyPadding is the room kept around a fighter's canvas for fists and feet
const bodyPadding = 60

// BodyGeoM maps a point in canvas space to screen space. The canvas holds
// the fighter's rect with bodyPadding on every side; its anchor is the
// middle of the feet.
func BodyGeoM(s entity.Snapshot, p Pose) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-(s.Width/2 + bodyPadding), -(s.Height + bodyPadding))
	g.Translate(0, p.OffsetY)
	g.Scale(1, p.ScaleY)
	g.Rotate(p.Rotate)
	g.Scale(s.Direction.Sign(), 1)
	g.Translate(s.CenterX(), s.Bottom())
	return g
}

// eyePoint is the laser origin in canvas space
func eyePoint(s entity.Snapshot) (float64, float64) {
	return bodyPadding + s.Width*0.75, bodyPadding + s.Height*0.45
}

// ParseColor reads a "#rrggbb" or "#rgb" string
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
