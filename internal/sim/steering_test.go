package sim

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSteeringIdleWithoutTarget(t *testing.T) {
	s := NewSteering(10, 0.1)

	vel, st := s.Update(rl.Vector3{Y: 1})
	if st != SteeringIdle {
		t.Errorf("Expected idle, got %v", st)
	}
	if vel != (rl.Vector3{}) {
		t.Errorf("Expected no command, got %v", vel)
	}
}

func TestSteeringDiagonalTarget(t *testing.T) {
	s := NewSteering(10, 0.1)
	s.SetTarget(rl.Vector3{X: 10, Y: 1, Z: 10})

	vel, st := s.Update(rl.Vector3{Y: 1})

	if st != SteeringSeeking {
		t.Fatalf("Expected seeking, got %v", st)
	}
	if !near(vel.X, 7.0710678, 1e-4) || vel.Y != 0 || !near(vel.Z, 7.0710678, 1e-4) {
		t.Errorf("Expected (7.07, 0, 7.07), got %v", vel)
	}
	if !near(s.Yaw(), 45, 1e-3) {
		t.Errorf("Expected yaw 45, got %v", s.Yaw())
	}
	if _, ok := s.Target(); !ok {
		t.Error("Target should be kept while seeking")
	}
}

func TestSteeringIgnoresHeight(t *testing.T) {
	s := NewSteering(10, 0.1)
	s.SetTarget(rl.Vector3{X: 3, Y: 1, Z: 0})

	vel, _ := s.Update(rl.Vector3{X: 0, Y: 5, Z: 0})
	if !near(vel.X, 10, 1e-5) || vel.Y != 0 || vel.Z != 0 {
		t.Errorf("Expected (10, 0, 0), got %v", vel)
	}
}

func TestSteeringImmediateArrival(t *testing.T) {
	s := NewSteering(10, 0.1)
	s.SetTarget(rl.Vector3{X: 0.05, Y: 1})

	vel, st := s.Update(rl.Vector3{Y: 1})

	if st != SteeringArrived {
		t.Errorf("Expected arrived, got %v", st)
	}
	if vel != (rl.Vector3{}) {
		t.Errorf("Expected zero command, got %v", vel)
	}
	if _, ok := s.Target(); ok {
		t.Error("Target should be cleared on arrival")
	}
}

func TestSteeringArrivalIsIdempotent(t *testing.T) {
	s := NewSteering(10, 0.1)
	s.SetTarget(rl.Vector3{X: 0.08, Y: 1})

	if _, st := s.Update(rl.Vector3{Y: 1}); st != SteeringArrived {
		t.Fatalf("Expected arrived, got %v", st)
	}

	for i := 0; i < 3; i++ {
		vel, st := s.Update(rl.Vector3{Y: 1})
		if st != SteeringIdle || vel != (rl.Vector3{}) {
			t.Errorf("Frame %d after arrival: expected idle with no command, got %v %v", i, st, vel)
		}
	}
}

func TestSteeringYawFacesTarget(t *testing.T) {
	tests := []struct {
		target rl.Vector3
		want   float32
	}{
		{rl.Vector3{Z: 5}, 0},
		{rl.Vector3{X: 5}, 90},
		{rl.Vector3{X: -5}, -90},
		{rl.Vector3{Z: -5}, 180},
	}

	for _, tt := range tests {
		s := NewSteering(10, 0.1)
		s.SetTarget(tt.target)
		s.Update(rl.Vector3{})
		if !near(s.Yaw(), tt.want, 1e-3) {
			t.Errorf("Target %v: expected yaw %v, got %v", tt.target, tt.want, s.Yaw())
		}
	}
}

func TestSteeringStateString(t *testing.T) {
	if SteeringSeeking.String() != "seeking" {
		t.Errorf("Expected 'seeking', got '%s'", SteeringSeeking.String())
	}
	if SteeringState(42).String() != "unknown" {
		t.Errorf("Expected 'unknown', got '%s'", SteeringState(42).String())
	}
}
