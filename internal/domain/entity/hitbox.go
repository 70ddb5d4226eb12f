package entity

// HitboxGeometry holds the sizes used to derive attack hit-boxes
type HitboxGeometry struct {
	MeleeReach float64 // width of a punch/kick box
	MeleeInset float64 // how far the box reaches back into the attacker's own body

	BeamLength      float64 // laser length from the attacker's center
	BeamHeight      float64
	BeamHeightRatio float64 // beam top as a fraction of the attacker's height
}

// AttackHitbox builds the hit-box for an attack of type t launched by f.
// The result is a fresh value; it never aliases the fighter's own rect.
func AttackHitbox(f Fighter, t AttackType, g HitboxGeometry) Rect {
	if t == AttackLaser {
		return LaserHitbox(f, g)
	}
	return MeleeHitbox(f, g)
}

// MeleeHitbox returns a reach-wide box on the attacker's leading edge,
// sharing the attacker's vertical extent
func MeleeHitbox(f Fighter, g HitboxGeometry) Rect {
	x := f.X - g.MeleeReach + g.MeleeInset
	if f.Direction == Right {
		x = f.Right() - g.MeleeInset
	}
	return Rect{
		X:      x,
		Y:      f.Y,
		Width:  g.MeleeReach,
		Height: f.Height,
	}
}

// LaserHitbox returns a thin beam starting at the attacker's center and
// running BeamLength in the facing direction
func LaserHitbox(f Fighter, g HitboxGeometry) Rect {
	x := f.CenterX() - g.BeamLength
	if f.Direction == Right {
		x = f.CenterX()
	}
	return Rect{
		X:      x,
		Y:      f.Y + f.Height*g.BeamHeightRatio,
		Width:  g.BeamLength,
		Height: g.BeamHeight,
	}
}
