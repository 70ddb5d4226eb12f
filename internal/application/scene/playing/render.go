package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/catfight/internal/application/scene"
	"github.com/younwookim/catfight/internal/application/state"
	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

var (
	colorBG        = color.RGBA{0x22, 0x22, 0x22, 255}
	colorShadow    = color.RGBA{0, 0, 0, 150}
	colorInk       = color.RGBA{20, 20, 20, 255}
	colorEyeWhite  = color.RGBA{250, 250, 250, 255}
	colorSkin      = color.RGBA{245, 208, 169, 255}
	colorImpact    = color.RGBA{255, 255, 255, 128}
	colorBeam      = color.RGBA{255, 0, 0, 255}
	colorBeamCore  = color.RGBA{255, 255, 255, 255}
	colorFire      = color.RGBA{255, 140, 0, 200}
	colorFireCore  = color.RGBA{255, 230, 0, 220}
	colorAlert     = color.RGBA{255, 220, 0, 255}
	colorHealthBG  = color.RGBA{90, 20, 20, 255}
	colorHealthFG  = color.RGBA{60, 200, 90, 255}
	colorBarBorder = color.RGBA{240, 240, 240, 255}
	colorVS        = color.RGBA{230, 40, 40, 255}
	colorText      = color.RGBA{240, 240, 240, 255}
)

const (
	healthBarW = 300
	healthBarH = 24
	beamReach  = 1000
)

type renderer struct {
	config   *config.Tuning
	logger   *zap.Logger
	colors   map[entity.Control]color.RGBA
	canvases map[entity.Control]*ebiten.Image
}

func newRenderer(cfg *config.Tuning, logger *zap.Logger) *renderer {
	r := &renderer{
		config:   cfg,
		logger:   logger,
		colors:   make(map[entity.Control]color.RGBA, 2),
		canvases: make(map[entity.Control]*ebiten.Image, 2),
	}
	for _, c := range []entity.Control{entity.ControlPlayer, entity.ControlAutonomous} {
		clr, err := ParseColor(cfg.Fighter(c).Color)
		if err != nil {
			logger.Warn("bad fighter color, using grey", zap.Stringer("fighter", c), zap.Error(err))
			clr = color.RGBA{128, 128, 128, 255}
		}
		r.colors[c] = clr
	}
	return r
}

// frame is everything the renderer reads for one Draw
type frame struct {
	player, opponent    entity.Snapshot
	playerName, oppName string
	background          entity.Visual
	health              map[entity.Control]int
	state               state.GameState
}

func (r *renderer) draw(screen *ebiten.Image, f frame) {
	r.drawBackground(screen, f.background)

	for _, s := range []entity.Snapshot{f.player, f.opponent} {
		r.drawShadow(screen, s)
	}
	r.drawFighter(screen, f.opponent, f.player)
	r.drawFighter(screen, f.player, f.opponent)

	r.drawHUD(screen, f)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	switch f.state {
	case state.StatePaused:
		scene.Dim(screen, 0.5)
		scene.DrawText(screen, "PAUSED", w/2, h/2-40, 4, colorText)
		scene.DrawText(screen, "ESC to resume", w/2, h/2+20, 2, colorText)
	case state.StateVictory, state.StateGameOver:
		scene.DrawText(screen, "K.O.", w/2, h/2-60, 6, colorVS)
	}
}

func (r *renderer) drawBackground(screen *ebiten.Image, bg entity.Visual) {
	img, ok := bg.(*ebiten.Image)
	if !ok || img == nil {
		screen.Fill(colorBG)
		return
	}
	b := img.Bounds()
	sb := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(b.Dx()), float64(sb.Dy())/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *renderer) drawShadow(screen *ebiten.Image, s entity.Snapshot) {
	// Shrinks as the fighter rises.
	lift := math.Max(0, r.config.Arena.GroundY-s.Bottom())
	k := math.Max(0.3, 1-lift/400)
	fillEllipse(screen, s.CenterX(), r.config.Arena.GroundY, s.Width/3*k, 15*k, colorShadow)
}

func (r *renderer) canvas(s entity.Snapshot) *ebiten.Image {
	w := int(s.Width) + 2*bodyPadding
	h := int(s.Height) + 2*bodyPadding
	img, ok := r.canvases[s.Control]
	if !ok || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		if ok {
			img.Deallocate()
		}
		img = ebiten.NewImage(w, h)
		r.canvases[s.Control] = img
	}
	img.Clear()
	return img
}

func (r *renderer) drawFighter(screen *ebiten.Image, s, target entity.Snapshot) {
	pose := PoseOf(s)
	geo := BodyGeoM(s, pose)

	body := r.canvas(s)
	if img, ok := s.Visual.(*ebiten.Image); ok && img != nil {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
		op.GeoM.Translate(bodyPadding, bodyPadding)
		op.Filter = ebiten.FilterLinear
		body.DrawImage(img, op)
	} else {
		vector.DrawFilledRect(body, bodyPadding, bodyPadding, float32(s.Width), float32(s.Height), r.colors[s.Control], true)
		drawEyes(body, s)
	}
	drawLids(body, s)
	drawLimb(body, s)

	op := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
	screen.DrawImage(body, op)

	if s.State == entity.StateAttack {
		switch s.AttackType {
		case entity.AttackLaser:
			drawBeam(screen, s, geo, target)
		case entity.AttackPunch, entity.AttackKick:
			drawImpact(screen, s)
		}
	}
	if s.State == entity.StateStumble {
		scene.DrawText(screen, "!", s.CenterX(), s.Y-30, 3, colorAlert)
	}
}

func eyeCenters(s entity.Snapshot) [2][2]float32 {
	y := float32(bodyPadding + s.Height*0.3)
	x := float32(bodyPadding + s.Width*0.7)
	return [2][2]float32{{x - 22, y}, {x + 22, y}}
}

func drawEyes(body *ebiten.Image, s entity.Snapshot) {
	if s.State.Incapacitated() || s.BlinkTimer > 0 {
		return
	}
	for _, e := range eyeCenters(s) {
		vector.DrawFilledCircle(body, e[0], e[1], 10, colorEyeWhite, true)
		vector.DrawFilledCircle(body, e[0]+3, e[1], 4, colorInk, true)
	}
}

// drawLids closes the eyes on a blink and crosses them out while dazed
func drawLids(body *ebiten.Image, s entity.Snapshot) {
	for _, e := range eyeCenters(s) {
		switch {
		case s.State.Incapacitated():
			vector.StrokeLine(body, e[0]-8, e[1]-8, e[0]+8, e[1]+8, 4, colorInk, true)
			vector.StrokeLine(body, e[0]-8, e[1]+8, e[0]+8, e[1]-8, 4, colorInk, true)
		case s.BlinkTimer > 0:
			vector.StrokeLine(body, e[0]-10, e[1], e[0]+10, e[1], 4, colorInk, true)
		}
	}
}

func drawLimb(body *ebiten.Image, s entity.Snapshot) {
	if s.State != entity.StateAttack {
		return
	}
	cx := float32(bodyPadding + s.Width/2)
	feet := float32(bodyPadding + s.Height)
	switch s.AttackType {
	case entity.AttackPunch:
		x, y := cx+float32(s.Width*0.35)+30, feet-float32(s.Height*0.55)
		vector.DrawFilledCircle(body, x, y, 22, colorSkin, true)
		vector.StrokeCircle(body, x, y, 22, 3, colorInk, true)
	case entity.AttackKick:
		x, y := float32(bodyPadding+s.Width)+30, feet-20
		vector.DrawFilledCircle(body, x, y, 25, colorSkin, true)
		vector.StrokeCircle(body, x, y, 25, 3, colorInk, true)
	}
}

func drawImpact(screen *ebiten.Image, s entity.Snapshot) {
	effY := 130.0
	if s.AttackType == entity.AttackKick {
		effY = 10
	}
	x := s.CenterX() + s.Direction.Sign()*100
	y := s.Bottom() - effY
	vector.DrawFilledCircle(screen, float32(x), float32(y), 30, colorImpact, true)
}

func drawBeam(screen *ebiten.Image, s entity.Snapshot, geo ebiten.GeoM, target entity.Snapshot) {
	ex, ey := eyePoint(s)
	x0, y0 := geo.Apply(ex, ey)
	x1, y1 := geo.Apply(ex+beamReach, ey)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 6, colorBeam, true)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, colorBeamCore, true)

	if target.State != entity.StateHit {
		return
	}
	// Flicker follows the target's tick so frames stay reproducible.
	t := float64(target.Tick)
	fx := float32(target.CenterX() + math.Sin(t*1.3)*8)
	fy := float32(target.Y + target.Height*0.4 + math.Cos(t*1.7)*8)
	vector.DrawFilledCircle(screen, fx, fy, 60, colorFire, true)
	vector.DrawFilledCircle(screen, fx, fy, 30, colorFireCore, true)
}

func (r *renderer) drawHUD(screen *ebiten.Image, f frame) {
	w := float64(screen.Bounds().Dx())

	drawHealthBar(screen, 20, 20, f.health[entity.ControlPlayer], f.player.MaxHealth, false)
	drawHealthBar(screen, w-20-healthBarW, 20, f.health[entity.ControlAutonomous], f.opponent.MaxHealth, true)

	scene.DrawText(screen, f.playerName, 20+healthBarW/2, 50, 2, r.colors[entity.ControlPlayer])
	scene.DrawText(screen, f.oppName, w-20-healthBarW/2, 50, 2, r.colors[entity.ControlAutonomous])
	scene.DrawText(screen, "VS", w/2, 18, 3, colorVS)

	if r.logger.Core().Enabled(zap.DebugLevel) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f  P:%s  O:%s",
			ebiten.ActualTPS(), f.player.State, f.opponent.State), 10, screen.Bounds().Dy()-20)
	}
}

// drawHealthBar drains toward the screen edge it sits on
func drawHealthBar(screen *ebiten.Image, x, y float64, health, maxHealth int, fromRight bool) {
	ratio := 0.0
	if maxHealth > 0 && health > 0 {
		ratio = math.Min(1, float64(health)/float64(maxHealth))
	}
	fill := healthBarW * ratio
	fx := x
	if fromRight {
		fx = x + healthBarW - fill
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), healthBarW, healthBarH, colorHealthBG, false)
	vector.DrawFilledRect(screen, float32(fx), float32(y), float32(fill), healthBarH, colorHealthFG, false)
	vector.StrokeRect(screen, float32(x), float32(y), healthBarW, healthBarH, 2, colorBarBorder, false)
	scene.DrawText(screen, fmt.Sprintf("%d", max(health, 0)), x+healthBarW/2, y+4, 1, colorInk)
}

// fillEllipse paints an axis-aligned ellipse one scanline at a time
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := -ry; dy < ry; dy++ {
		half := rx * math.Sqrt(1-(dy*dy)/(ry*ry))
		vector.DrawFilledRect(dst, float32(cx-half), float32(cy+dy), float32(2*half), 1, clr, false)
	}
}

func (r *renderer) dispose() {
	for c, img := range r.canvases {
		img.Deallocate()
		delete(r.canvases, c)
	}
}
