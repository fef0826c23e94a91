// Package mobility provides the mobility models of the netsim framework.
//
// A Model tracks the planar position and velocity of one node and exposes
// them as attributes of the core framework. Models compose: a
// HierarchicalModel expresses a node that moves relative to another moving
// node (a passenger on a train), summing parent and child coordinates.
package mobility

import (
	"github.com/netsim-go/netsim/sim"
)

// Model is the capability every mobility model provides. Positions and
// velocities are planar (x, y) in meters and meters per second.
type Model interface {
	sim.Object

	// Position returns the current absolute position.
	Position() (x, y float64)

	// SetPosition moves the node to an absolute position and notifies
	// course-change subscribers.
	SetPosition(x, y float64)

	// Velocity returns the current velocity.
	Velocity() (vx, vy float64)

	// AddCourseChangeCallback subscribes cb to course changes of this model.
	AddCourseChangeCallback(cb func(Model))

	// AssignStreams gives the model a deterministic random stream block and
	// returns how many streams it consumed.
	AssignStreams(stream int64) int64
}

// courseChangeNotifier is embedded by model implementations to fan out
// course-change notifications.
type courseChangeNotifier struct {
	callbacks []func(Model)
}

func (n *courseChangeNotifier) AddCourseChangeCallback(cb func(Model)) {
	n.callbacks = append(n.callbacks, cb)
}

func (n *courseChangeNotifier) notifyCourseChange(m Model) {
	for _, cb := range n.callbacks {
		cb(m)
	}
}

// positionPair is the attribute shape shared by all models: two doubles.
type positionPair = sim.PairValue[*sim.DoubleValue, *sim.DoubleValue, float64, float64]

// PositionChecker validates "x y" position text. Built once and shared by
// every position and velocity attribute.
var PositionChecker = sim.MakePairCheckerWith[*sim.DoubleValue, *sim.DoubleValue, float64, float64](
	sim.MakeDoubleChecker(), sim.MakeDoubleChecker())
