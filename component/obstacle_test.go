package component

import (
	"testing"

	"bugstorm/vmath"
)

func testField() *ObstacleField {
	return &ObstacleField{Obstacles: []Obstacle{
		{Pos: vmath.Vec2{X: 5, Z: 0}, Radius: 2, Height: 1.5},
	}}
}

func TestObstacleBlocksBelowClimbHeight(t *testing.T) {
	f := testField()

	q := f.Query(vmath.Vec2{X: 4, Z: 0}, 0, 0.6)
	if !q.Blocked {
		t.Fatal("grounded entity overlapping the obstacle must be blocked")
	}

	// Clear of the radius: free
	q = f.Query(vmath.Vec2{X: 1, Z: 0}, 0, 0.6)
	if q.Blocked {
		t.Fatal("entity outside the radius must not be blocked")
	}
}

func TestObstacleStandOnTop(t *testing.T) {
	f := testField()

	// At climb height, inside the inner fraction: standing surface
	q := f.Query(vmath.Vec2{X: 5, Z: 0}, 1.5, 0.6)
	if q.Blocked {
		t.Fatal("entity at climb height must not be blocked")
	}
	if q.GroundHeight != 1.5 {
		t.Fatalf("expected ground 1.5 on top, got %v", q.GroundHeight)
	}

	// At climb height but outside the inner fraction: no surface
	q = f.Query(vmath.Vec2{X: 6.5, Z: 0}, 1.5, 0.6)
	if q.Blocked || q.GroundHeight != 0 {
		t.Fatalf("rim must contribute no surface, got %+v", q)
	}
}

func TestObstacleQueryIsTotal(t *testing.T) {
	f := testField()

	// Far out of bounds: defined result, nothing blocked
	q := f.Query(vmath.Vec2{X: 1e9, Z: -1e9}, 0, 0.6)
	if q.Blocked || q.GroundHeight != 0 {
		t.Fatalf("far query must be free ground, got %+v", q)
	}

	// Empty field
	var empty ObstacleField
	q = empty.Query(vmath.Vec2{}, 0, 0.6)
	if q.Blocked || q.GroundHeight != 0 {
		t.Fatalf("empty field must be free ground, got %+v", q)
	}
}

func TestGenerateObstacleFieldKeepsSpawnClear(t *testing.T) {
	f := GenerateObstacleField(vmath.NewFastRand(42), 24)
	if len(f.Obstacles) != 24 {
		t.Fatalf("expected 24 obstacles, got %d", len(f.Obstacles))
	}
	for _, o := range f.Obstacles {
		if o.Pos.Len() < 6.0 {
			t.Fatalf("obstacle too close to spawn: %+v", o)
		}
	}
}

func TestPlayerBuffExpiry(t *testing.T) {
	p := NewPlayer()
	p.DoubleDamageUntil = 10
	if !p.DoubleDamageActive(9.9) {
		t.Fatal("buff must be active before expiry")
	}
	if p.DoubleDamageActive(10) {
		t.Fatal("buff must lapse at expiry")
	}

	p.HasSpecial = true
	p.Special = WeaponRocket
	p.SpecialExpiry = 5
	if p.CurrentWeapon(4.9) != WeaponRocket {
		t.Fatal("granted weapon must be active before expiry")
	}
	if p.CurrentWeapon(5) != WeaponBlaster {
		t.Fatal("expired grant must fall back to the blaster")
	}
}

func TestHealthClamping(t *testing.T) {
	p := NewPlayer()
	p.ApplyDamage(250)
	if p.Health != 0 {
		t.Fatalf("health must clamp at 0, got %d", p.Health)
	}
	p.Heal(5000)
	if p.Health != 100 {
		t.Fatalf("health must cap at 100, got %d", p.Health)
	}
}
