package physics

import (
	"math"
	"testing"

	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approxEqual(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) < epsilon
}

func vecApproxEqual(a, b rl.Vector3, epsilon float32) bool {
	return approxEqual(a.X, b.X, epsilon) && approxEqual(a.Y, b.Y, epsilon) && approxEqual(a.Z, b.Z, epsilon)
}

// floorWorld has a 20x1x20 floor with its top at y=0 on layer 0.
func floorWorld() (*World, *Collider) {
	w := NewWorld(rl.Vector3{Y: -9.81})
	c := w.AddBox(nil, rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20}, rl.Vector3{}, 0)
	return w, c
}

func playerCapsule() engine.Capsule {
	return engine.Capsule{Radius: 0.5, Height: 2, Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
}

func TestOBBClosestPoint(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{})

	tests := []struct {
		name     string
		point    rl.Vector3
		expected rl.Vector3
	}{
		{"above", rl.Vector3{Y: 5}, rl.Vector3{Y: 1}},
		{"corner", rl.Vector3{X: 3, Y: 3, Z: 3}, rl.Vector3{X: 1, Y: 1, Z: 1}},
		{"inside", rl.Vector3{X: 0.2}, rl.Vector3{X: 0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestPointOnOBB(box, tt.point); !vecApproxEqual(got, tt.expected, 1e-5) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestOBBRotatedBounds(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{Y: 45})
	b := box.Bounds()
	want := float32(math.Sqrt2)
	if !approxEqual(b.Max.X, want, 1e-4) || !approxEqual(b.Max.Y, 1, 1e-4) {
		t.Errorf("Unexpected rotated bounds %+v", b)
	}
}

func TestOBBSphereAndContains(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{})

	if !box.IntersectsSphere(rl.Vector3{Y: 1.4}, 0.5) {
		t.Error("Sphere touching the top should intersect")
	}
	if box.IntersectsSphere(rl.Vector3{Y: 2}, 0.5) {
		t.Error("Sphere above the top should not intersect")
	}
	if !box.Contains(rl.Vector3{X: 0.9, Y: -0.9}) || box.Contains(rl.Vector3{X: 1.1}) {
		t.Error("Contains is wrong")
	}
}

func TestRaycastHitsFloor(t *testing.T) {
	w, floor := floorWorld()

	hit, ok := w.Raycast(rl.Vector3{Y: 1}, rl.Vector3{Y: -1}, 1.5, engine.AllLayers)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !approxEqual(hit.Distance, 1, 1e-5) {
		t.Errorf("Expected distance 1, got %f", hit.Distance)
	}
	if !vecApproxEqual(hit.Normal, rl.Vector3{Y: 1}, 1e-5) {
		t.Errorf("Expected up normal, got %v", hit.Normal)
	}
	if !vecApproxEqual(hit.Point, rl.Vector3{}, 1e-5) {
		t.Errorf("Expected hit at origin, got %v", hit.Point)
	}
	if hit.GameObject != floor.Owner {
		t.Error("Hit should report the collider owner")
	}
}

func TestRaycastMisses(t *testing.T) {
	w, _ := floorWorld()

	tests := []struct {
		name   string
		origin rl.Vector3
		dir    rl.Vector3
		dist   float32
		mask   engine.LayerMask
	}{
		{"too short", rl.Vector3{Y: 2}, rl.Vector3{Y: -1}, 1.5, engine.AllLayers},
		{"pointing away", rl.Vector3{Y: 1}, rl.Vector3{Y: 1}, 10, engine.AllLayers},
		{"filtered layer", rl.Vector3{Y: 1}, rl.Vector3{Y: -1}, 5, engine.LayerBit(3)},
		{"beside the floor", rl.Vector3{X: 30, Y: 1}, rl.Vector3{Y: -1}, 5, engine.AllLayers},
		{"starting inside", rl.Vector3{Y: -0.5}, rl.Vector3{Y: -1}, 5, engine.AllLayers},
		{"zero direction", rl.Vector3{Y: 1}, rl.Vector3{}, 5, engine.AllLayers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := w.Raycast(tt.origin, tt.dir, tt.dist, tt.mask); ok {
				t.Errorf("Expected miss, got %+v", hit)
			}
		})
	}
}

func TestRaycastSlopeNormal(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.81})
	w.AddBox(nil, rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10}, rl.Vector3{Z: 30}, 0)

	hit, ok := w.Raycast(rl.Vector3{Y: 3}, rl.Vector3{Y: -1}, 10, engine.AllLayers)
	if !ok {
		t.Fatal("Expected hit on the slope")
	}
	angle := float32(math.Acos(float64(hit.Normal.Y))) * 180 / math.Pi
	if !approxEqual(angle, 30, 1e-2) {
		t.Errorf("Expected 30 degree normal, got %f (%v)", angle, hit.Normal)
	}
}

func TestRaycastClosestOfMany(t *testing.T) {
	w, _ := floorWorld()
	owner := engine.NewGameObject("Step")
	w.AddBox(owner, rl.Vector3{Y: 0.25}, rl.Vector3{X: 1, Y: 0.5, Z: 1}, rl.Vector3{}, 1)

	hit, ok := w.Raycast(rl.Vector3{Y: 2}, rl.Vector3{Y: -1}, 5, engine.AllLayers)
	if !ok || !approxEqual(hit.Distance, 1.5, 1e-5) || hit.GameObject != owner {
		t.Errorf("Expected the step at distance 1.5, got %+v ok=%v", hit, ok)
	}
}

func TestSphereCastHitsFloor(t *testing.T) {
	w, _ := floorWorld()

	hit, ok := w.SphereCast(rl.Vector3{Y: 0.55}, 0.5, rl.Vector3{Y: -1}, 0.1, engine.LayerBit(0))
	if !ok {
		t.Fatal("Expected sweep to hit the floor")
	}
	if !approxEqual(hit.Distance, 0.05, 1e-3) {
		t.Errorf("Expected distance 0.05, got %f", hit.Distance)
	}
	if !vecApproxEqual(hit.Normal, rl.Vector3{Y: 1}, 1e-3) {
		t.Errorf("Expected up normal, got %v", hit.Normal)
	}
}

func TestSphereCastMissesWhenHigh(t *testing.T) {
	w, _ := floorWorld()

	if _, ok := w.SphereCast(rl.Vector3{Y: 1}, 0.5, rl.Vector3{Y: -1}, 0.1, engine.AllLayers); ok {
		t.Error("Sweep ending 0.4 above the floor should miss")
	}
	if _, ok := w.SphereCast(rl.Vector3{Y: 0.55}, 0.5, rl.Vector3{Y: -1}, 0.1, engine.LayerBit(2)); ok {
		t.Error("Sweep should respect the layer mask")
	}
}

func TestSphereCastInitialOverlap(t *testing.T) {
	w, _ := floorWorld()

	hit, ok := w.SphereCast(rl.Vector3{Y: 0.3}, 0.5, rl.Vector3{Y: -1}, 0.1, engine.AllLayers)
	if !ok || hit.Distance != 0 {
		t.Errorf("Overlapping sweep should hit at distance 0, got %+v ok=%v", hit, ok)
	}
}

func TestSphereCastLedgeEdge(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.81})
	// Ledge ends at x=0; sphere centre is 0.2 past the edge.
	w.AddBox(nil, rl.Vector3{X: -5, Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10}, rl.Vector3{}, 0)

	if _, ok := w.SphereCast(rl.Vector3{X: 0.2, Y: 0.55}, 0.5, rl.Vector3{Y: -1}, 0.1, engine.AllLayers); !ok {
		t.Error("Sphere overhanging the edge should still catch the corner")
	}
	if _, ok := w.Raycast(rl.Vector3{X: 0.2, Y: 1}, rl.Vector3{Y: -1}, 1.5, engine.AllLayers); ok {
		t.Error("Centre ray past the edge should miss")
	}
}

func TestBodyForceModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     engine.ForceMode
		mass     float32
		expected float32
	}{
		{"force", engine.Force, 2, 10 * 0.5 / 2},
		{"acceleration", engine.Acceleration, 2, 10 * 0.5},
		{"impulse", engine.Impulse, 2, 10 / 2},
		{"velocity change", engine.VelocityChange, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(rl.Vector3{})
			b := NewBody(rl.Vector3{Y: 50}, playerCapsule(), tt.mass)
			w.AddBody(b)

			b.AddForce(rl.Vector3{X: 10}, tt.mode)
			w.Step(0.5)

			if !approxEqual(b.Velocity().X, tt.expected, 1e-5) {
				t.Errorf("Expected vx %f, got %f", tt.expected, b.Velocity().X)
			}
			w.Step(0.5)
			if !approxEqual(b.Velocity().X, tt.expected, 1e-5) {
				t.Error("Forces must be cleared after a step")
			}
		})
	}
}

func TestBodyGravityToggle(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -10})
	falling := NewBody(rl.Vector3{Y: 50}, playerCapsule(), 1)
	floating := NewBody(rl.Vector3{X: 5, Y: 50}, playerCapsule(), 1)
	floating.UseGravity = false
	w.AddBody(falling)
	w.AddBody(floating)

	w.Step(0.1)

	if !approxEqual(falling.Velocity().Y, -1, 1e-5) {
		t.Errorf("Expected vy -1, got %f", falling.Velocity().Y)
	}
	if floating.Velocity().Y != 0 {
		t.Errorf("Body without gravity should not fall, vy %f", floating.Velocity().Y)
	}
}

func TestBodyRestsOnFloor(t *testing.T) {
	w, floor := floorWorld()
	b := NewBody(rl.Vector3{Y: 1.5}, playerCapsule(), 1)
	w.AddBody(b)

	for i := 0; i < 200; i++ {
		w.Step(0.02)
	}

	if !approxEqual(b.Position().Y, 1, 1e-2) {
		t.Errorf("Expected body centre to rest at y=1, got %f", b.Position().Y)
	}
	if b.Velocity().Y < -1e-3 {
		t.Errorf("Resting body should not keep falling, vy %f", b.Velocity().Y)
	}
	contacts := b.Contacts()
	if len(contacts) == 0 || contacts[0].Collider != floor {
		t.Fatalf("Expected a floor contact, got %+v", contacts)
	}
	if !vecApproxEqual(contacts[0].Normal, rl.Vector3{Y: 1}, 1e-3) {
		t.Errorf("Expected up contact normal, got %v", contacts[0].Normal)
	}
}

func TestBodyStoppedByWall(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	w.AddBox(nil, rl.Vector3{X: 2}, rl.Vector3{X: 1, Y: 4, Z: 4}, rl.Vector3{}, 0)
	b := NewBody(rl.Vector3{}, playerCapsule(), 1)
	b.SetVelocity(rl.Vector3{X: 5})
	w.AddBody(b)

	for i := 0; i < 50; i++ {
		w.Step(0.02)
	}

	if b.Position().X > 1.0+1e-3 {
		t.Errorf("Body should stop at the wall face minus radius, x=%f", b.Position().X)
	}
	if b.Velocity().X > 1e-4 {
		t.Errorf("Velocity into the wall should be removed, vx=%f", b.Velocity().X)
	}
}

func TestBodyDeepInsideIsEjected(t *testing.T) {
	w, _ := floorWorld()
	b := NewBody(rl.Vector3{Y: -0.4}, engine.Capsule{Radius: 0.2, Height: 0.4, Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}, 1)
	b.UseGravity = false
	w.AddBody(b)

	w.Iterations = 6
	w.Step(0.02)

	if b.Position().Y < 0.2-1e-3 {
		t.Errorf("Expected body ejected above the floor, y=%f", b.Position().Y)
	}
}

func TestRemoveColliderAndBody(t *testing.T) {
	w, floor := floorWorld()
	b := NewBody(rl.Vector3{Y: 1}, playerCapsule(), 1)
	w.AddBody(b)

	w.RemoveCollider(floor)
	w.RemoveBody(b)

	if len(w.Colliders()) != 0 || len(w.Bodies()) != 0 {
		t.Error("Expected empty world")
	}
	if _, ok := w.Raycast(rl.Vector3{Y: 1}, rl.Vector3{Y: -1}, 5, engine.AllLayers); ok {
		t.Error("Removed collider should not be hit")
	}
}
