package systems

import (
	"strings"
	"testing"

	"github.com/automoto/hallownest/components"
	"github.com/automoto/hallownest/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func fadeState(t *testing.T, e *ecs.ECS) *components.FadeData {
	t.Helper()
	entry, ok := components.Fade.First(e.World)
	if !ok {
		t.Fatal("no fade entity")
	}
	return components.Fade.Get(entry)
}

func TestHazardSendsPlayerToSpawn(t *testing.T) {
	tests := []struct {
		name      string
		velocityX float64
	}{
		{"walking", 7},
		{"standing", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, body := newTestWorld(t, 200, 112)
			factory.CreateHazard(e, 300, 64, 64, 64)

			body.X = 280
			body.VelocityX = tt.velocityX
			body.VelocityY = -3
			tick(e)

			if body.X != 200 || body.Y != 112 {
				t.Errorf("position = (%v, %v), want spawn (200, 112)", body.X, body.Y)
			}
			// A held movement key keeps driving the player after respawn.
			if body.VelocityX != tt.velocityX || body.VelocityY != 0 {
				t.Errorf("velocity = (%v, %v), want (%v, 0)", body.VelocityX, body.VelocityY, tt.velocityX)
			}
			if f := fadeState(t, e); !f.Active {
				t.Error("fade not started")
			}
		})
	}
}

func TestHazardIgnoresNeighbours(t *testing.T) {
	e, _, body := newTestWorld(t, 200, 112)
	// Shares grid cells with the player but does not overlap it.
	factory.CreateHazard(e, 232, 64, 16, 16)

	tick(e)

	if body.X != 200 {
		t.Errorf("X = %v, player respawned without touching the hazard", body.X)
	}
	if fadeState(t, e).Active {
		t.Error("fade started without a hazard hit")
	}
}

func TestFadeRunsOut(t *testing.T) {
	e, _, _ := newTestWorld(t, 200, 112)

	TriggerFade(e)
	f := fadeState(t, e)
	if !f.Active || f.Alpha != 1 {
		t.Fatalf("after trigger: active %v alpha %v", f.Active, f.Alpha)
	}

	tick(e)
	if f.Alpha >= 1 || f.Alpha <= 0 {
		t.Errorf("alpha after one tick = %v, want between 0 and 1", f.Alpha)
	}

	// Default duration is 0.6s, well under 60 ticks.
	ticks(e, 60)
	if f.Active || f.Alpha != 0 {
		t.Errorf("after duration: active %v alpha %v", f.Active, f.Alpha)
	}
}

func TestDebugLines(t *testing.T) {
	e, _, _ := newTestWorld(t, 200, 112)
	tick(e)

	lines := DebugLines(e)
	want := []string{"variant tilemap", "tick 1", "pos 200.0, 112.0", "vel 0.0, 0.0", "facing right"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i, prefix := range want {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}
