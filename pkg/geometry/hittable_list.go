package geometry

import "github.com/softglow/goray/pkg/core"

// HittableList is an aggregate of hittables that is itself a Hittable,
// so lists can nest inside other lists. It holds shared read-only
// references to its members; members may be aliased across lists.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list containing the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear empties the list, keeping its capacity for scene reuse
func (l *HittableList) Clear() {
	l.Objects = l.Objects[:0]
}

// Hit scans all members and returns the nearest qualifying hit. Each
// accepted hit narrows the interval's upper bound, so later members can
// only improve the result and no sorting is needed.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, error) {
	var closest *HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		hit, err := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar))
		if err != nil {
			return nil, err
		}
		if hit != nil {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, nil
}
