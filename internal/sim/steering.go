package sim

import (
	"github.com/chewxy/math32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SteeringState int

const (
	SteeringIdle SteeringState = iota
	SteeringSeeking
	SteeringArrived
)

func (s SteeringState) String() string {
	switch s {
	case SteeringIdle:
		return "idle"
	case SteeringSeeking:
		return "seeking"
	case SteeringArrived:
		return "arrived"
	}
	return "unknown"
}

// Steering drives the body toward the current target on the XZ plane.
type Steering struct {
	MoveSpeed     float32 // units per second
	StopThreshold float32 // arrival distance

	target    rl.Vector3
	hasTarget bool
	yaw       float32 // degrees around +Y, 0 faces +Z
}

func NewSteering(moveSpeed, stopThreshold float32) *Steering {
	return &Steering{MoveSpeed: moveSpeed, StopThreshold: stopThreshold}
}

func (s *Steering) SetTarget(p rl.Vector3) {
	s.target = p
	s.hasTarget = true
}

func (s *Steering) ClearTarget() {
	s.hasTarget = false
}

func (s *Steering) Target() (rl.Vector3, bool) {
	return s.target, s.hasTarget
}

// Yaw is the facing of the last seek, kept after arrival.
func (s *Steering) Yaw() float32 {
	return s.yaw
}

// Update evaluates the controller at position. Idle means there is nothing
// to command; otherwise the returned velocity must be applied to the body.
// Arriving clears the target, so the following call is Idle.
func (s *Steering) Update(position rl.Vector3) (rl.Vector3, SteeringState) {
	if !s.hasTarget {
		return rl.Vector3{}, SteeringIdle
	}

	dir := rl.Vector3{X: s.target.X - position.X, Z: s.target.Z - position.Z}
	dist := rl.Vector3Length(dir)

	if dist <= s.StopThreshold {
		s.hasTarget = false
		return rl.Vector3{}, SteeringArrived
	}

	s.yaw = math32.Atan2(dir.X, dir.Z) * rl.Rad2deg
	vel := rl.Vector3Scale(rl.Vector3Scale(dir, 1/dist), s.MoveSpeed)
	return vel, SteeringSeeking
}
