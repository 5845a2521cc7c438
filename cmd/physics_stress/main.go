// Headless stress run of the fixed-step loop with many steering capsules
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"isodemo/internal/config"
	"isodemo/internal/physics"
	"isodemo/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type agent struct {
	body     *physics.RigidBody
	steering *sim.Steering
	arrivals int
}

func main() {
	frames := flag.Int("frames", 600, "frames to simulate per run")
	maxSteps := flag.Int("max-steps", 4, "step cap per frame, 0 for none")
	flag.Parse()

	cfg := config.Default()
	cfg.MaxStepsPerFrame = *maxSteps

	// Test various agent counts
	testCounts := []int{1, 10, 100, 500, 1000}

	for _, count := range testCounts {
		run(cfg, count, *frames)
	}
}

func run(cfg config.Config, count, frames int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	world := physics.NewWorld(config.Vec3(cfg.Gravity), physics.IntegrationParameters{Dt: cfg.FixedTimeStep})
	ground := world.CreateRigidBody(physics.FixedBody().SetTranslation(0, -cfg.GroundHalfHeight, 0))
	world.CreateCollider(
		physics.Cuboid(cfg.GroundHalfSize, cfg.GroundHalfHeight, cfg.GroundHalfSize).
			SetFriction(cfg.GroundFriction).
			SetRestitution(cfg.GroundRestitution),
		ground,
	)

	targeting := sim.NewTargeting(cfg.GroundHalfSize, cfg.RestHeight)
	randomTarget := func() rl.Vector3 {
		// Drop a ray straight down somewhere over the ground
		origin := rl.Vector3{
			X: (rng.Float32()*2 - 1) * cfg.GroundHalfSize,
			Y: 10,
			Z: (rng.Float32()*2 - 1) * cfg.GroundHalfSize,
		}
		p, _ := targeting.Retarget(origin, rl.Vector3{Y: -1})
		return p
	}

	agents := make([]*agent, count)
	for i := range agents {
		spawn := randomTarget()
		body := world.CreateRigidBody(physics.DynamicBody().SetTranslation(spawn.X, spawn.Y, spawn.Z).LockRotations())
		world.CreateCollider(physics.Capsule(cfg.CapsuleHalfHeight, cfg.CapsuleRadius).SetFriction(cfg.PlayerFriction), body)

		a := &agent{body: body, steering: sim.NewSteering(cfg.MoveSpeed, cfg.StopThreshold)}
		a.steering.SetTarget(randomTarget())
		agents[i] = a
	}

	clock := sim.NewClock(cfg.FixedTimeStep, cfg.MaxStepsPerFrame)
	var steps int
	start := time.Now()

	for f := 0; f < frames; f++ {
		// Jittered 60 Hz with a long hitch every 100 frames
		dt := float32(1.0/60.0) * (0.5 + rng.Float32())
		if f%100 == 99 {
			dt = 0.25
		}

		n := clock.Advance(dt)
		for i := 0; i < n; i++ {
			world.Step()
			for _, a := range agents {
				if _, _, st := sim.Steer(a.steering, a.body); st == sim.SteeringArrived {
					a.arrivals++
					a.steering.SetTarget(randomTarget())
				}
			}
		}
		steps += n
	}

	elapsed := time.Since(start)
	arrivals := 0
	for _, a := range agents {
		arrivals += a.arrivals
	}

	fmt.Printf("%5d agents: %8v/frame | %5d steps | %4d dropped | %5d arrivals\n",
		count, (elapsed / time.Duration(frames)).Round(time.Microsecond),
		steps, clock.TotalDropped(), arrivals)
}
