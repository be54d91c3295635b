package systems

import (
	"math"

	"github.com/automoto/hallownest/components"
	"github.com/automoto/hallownest/platformer"
	"github.com/automoto/hallownest/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player by its velocity, X first, stopping flush
// against solids. Landing on or bumping into a solid stops vertical motion;
// horizontal velocity is left alone so a held key keeps pushing.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Player.Get(e).Body
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		step := Step(ecs, physics)
		syncObject(obj, body)

		moveHorizontal(obj, body.VelocityX*step)

		physics.OnGround = nil
		if hit := moveVertical(obj, body.VelocityY*step); hit != nil {
			if body.VelocityY < 0 {
				physics.OnGround = hit
			}
			body.VelocityY = 0
		}

		obj.Update()
		syncBody(body, obj)
	})
}

// CanJump reports whether the player's box, moved tolerance downward,
// overlaps a solid.
func CanJump(ecs *ecs.ECS, body *platformer.Player, tolerance float64) bool {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	obj := components.Object.Get(entry).Object
	syncObject(obj, body)
	return touching(obj, 0, -tolerance, tags.ResolvSolid) != nil
}

// syncObject places the collision box around the body's centre.
func syncObject(obj *resolv.Object, body *platformer.Player) {
	x, y := body.X-obj.W/2, body.Y-obj.H/2
	if obj.X != x || obj.Y != y {
		obj.X, obj.Y = x, y
		obj.Update()
	}
}

func syncBody(body *platformer.Player, obj *resolv.Object) {
	body.X = obj.X + obj.W/2
	body.Y = obj.Y + obj.H/2
}

func moveHorizontal(obj *resolv.Object, dx float64) *resolv.Object {
	if dx == 0 {
		return nil
	}
	hit := sweep(obj, dx, 0)
	switch {
	case hit == nil:
		obj.X += dx
	case dx > 0:
		obj.X = hit.X - obj.W
	default:
		obj.X = hit.X + hit.W
	}
	return hit
}

func moveVertical(obj *resolv.Object, dy float64) *resolv.Object {
	if dy == 0 {
		return nil
	}
	hit := sweep(obj, 0, dy)
	switch {
	case hit == nil:
		obj.Y += dy
	case dy > 0:
		obj.Y = hit.Y - obj.H
	default:
		obj.Y = hit.Y + hit.H
	}
	return hit
}

// sweep returns the nearest solid a single-axis move would run into.
// Solids the object already overlaps are ignored so it can always move
// out of them.
func sweep(obj *resolv.Object, dx, dy float64) *resolv.Object {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	move := math.Abs(dx + dy)
	var hit *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(obj, solid, dx, dy) {
			continue
		}
		c := contact(obj, solid, dx, dy)
		if c < -epsilon {
			continue
		}
		if hit == nil || c < move {
			move, hit = math.Max(c, 0), solid
		}
	}
	return hit
}

// contact is the gap between obj's leading edge and other along the move.
func contact(obj, other *resolv.Object, dx, dy float64) float64 {
	switch {
	case dx > 0:
		return other.X - (obj.X + obj.W)
	case dx < 0:
		return obj.X - (other.X + other.W)
	case dy > 0:
		return other.Y - (obj.Y + obj.H)
	default:
		return obj.Y - (other.Y + other.H)
	}
}

// touching returns the first object with one of the tags that overlaps
// obj shifted by (dx, dy).
func touching(obj *resolv.Object, dx, dy float64, objTags ...string) *resolv.Object {
	check := obj.Check(dx, dy, objTags...)
	if check == nil {
		return nil
	}
	for _, other := range check.ObjectsByTags(objTags...) {
		if overlaps(obj, other, dx, dy) {
			return other
		}
	}
	return nil
}

// epsilon absorbs rounding so boxes resting edge to edge never count as
// overlapping.
const epsilon = 1e-6

// overlaps is a strict AABB test, so boxes that only share an edge do not
// overlap. The grid check alone also returns neighbours in shared cells.
func overlaps(obj, other *resolv.Object, dx, dy float64) bool {
	x, y := obj.X+dx, obj.Y+dy
	return x < other.X+other.W-epsilon && x+obj.W > other.X+epsilon &&
		y < other.Y+other.H-epsilon && y+obj.H > other.Y+epsilon
}
