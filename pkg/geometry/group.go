package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// Group is an ordered collection of hittables tested linearly.
// It must not be modified while a render is reading it.
type Group struct {
	objects []core.Hittable
}

// NewGroup creates a group from the given objects
func NewGroup(objects ...core.Hittable) *Group {
	g := &Group{objects: make([]core.Hittable, 0, len(objects))}
	g.objects = append(g.objects, objects...)
	return g
}

// Add appends objects to the group
func (g *Group) Add(objects ...core.Hittable) {
	g.objects = append(g.objects, objects...)
}

// Len returns the number of direct members
func (g *Group) Len() int {
	return len(g.objects)
}

// Objects returns the members in insertion order
func (g *Group) Objects() []core.Hittable {
	return g.objects
}

// Hit returns the nearest intersection inside rayT. Each member is tested against a window
// whose upper bound shrinks to the closest hit found so far.
func (g *Group) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range g.objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
