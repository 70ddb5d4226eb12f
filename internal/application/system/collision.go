package system

import "github.com/younwookim/catfight/internal/domain/entity"

// Overlaps tests an attack box against a target box after pulling both
// horizontal edges of each rectangle inward by shrink. Vertical extents are
// compared as-is.
func Overlaps(attack, target entity.Rect, shrink float64) bool {
	return attack.X+shrink < target.Right()-shrink &&
		attack.Right()-shrink > target.X+shrink &&
		attack.Y < target.Bottom() &&
		attack.Bottom() > target.Y
}
