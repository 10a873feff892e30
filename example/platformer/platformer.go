// The following program runs a scripted five second session on a flat
// Chipmunk2D floor: one second of standing, then a run to the right, then a
// held jump. It logs the controller state once per second and is mostly
// useful as wiring reference.
package main

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/driftmark/stride/backend/cpspace"
	"github.com/driftmark/stride/controller"
	"github.com/driftmark/stride/physics"
	"github.com/driftmark/stride/preset"
)

const tickRate = 60

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)

	space := cpspace.New(1.0 / tickRate)
	world := space.Underlying()

	floor := cp.NewSegment(world.StaticBody, cp.Vector{X: -50}, cp.Vector{X: 50}, 0)
	floor.SetFriction(0)
	world.AddShape(floor)

	body := world.AddBody(cp.NewBody(1, cp.MomentForCircle(1, 0, 0.45, cp.Vector{})))
	body.SetPosition(cp.Vector{Y: 2})
	avatar := world.AddShape(cp.NewCircle(body, 0.45, cp.Vector{}))
	avatar.SetFriction(0)
	player := space.Track(body)

	state := controller.NewState(preset.Character(), player, log)
	resolver := controller.NewResolver(space, log)

	for tick := 0; tick < tickRate*5; tick++ {
		input := controller.ControlInput{}
		if tick > tickRate {
			input.Movement = mgl32.Vec3{1, 0, 0}
		}
		input.Jumping = tick >= tickRate*3 && tick < tickRate*3+10

		bs := bodyState(space, player, body)
		out := resolver.Resolve(state, bs, input)
		controller.Apply(space, player, out)
		space.Step()

		if tick%tickRate == 0 {
			log.WithFields(logrus.Fields{
				"pos":      bs.Position,
				"vel":      bs.Velocity,
				"grounded": out.Grounded,
			}).Info("tick")
		}
	}
}

// bodyState reads the avatar's pose back out of the space. The 2D angle maps
// onto a rotation about Z, matching the backend's plane convention.
func bodyState(space *cpspace.Space, e physics.Entity, body *cp.Body) controller.BodyState {
	pos, _ := space.Position(e)
	vel, _ := space.Velocity(e)
	mass, _ := space.MassProperties(e)
	return controller.BodyState{
		Entity:          e,
		Position:        pos,
		Rotation:        mgl32.QuatRotate(float32(body.Angle()), mgl32.Vec3{0, 0, 1}),
		Velocity:        vel.Linear,
		AngularVelocity: vel.Angular,
		Mass:            mass,
	}
}
