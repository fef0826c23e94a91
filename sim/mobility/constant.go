package mobility

import (
	"github.com/sirupsen/logrus"

	"github.com/netsim-go/netsim/sim"
)

// ConstantPositionModel keeps a node at a fixed position until SetPosition
// moves it.
type ConstantPositionModel struct {
	courseChangeNotifier
	x, y float64
}

// NewConstantPositionModel builds a model at the origin.
func NewConstantPositionModel() *ConstantPositionModel {
	return &ConstantPositionModel{}
}

func (m *ConstantPositionModel) Position() (float64, float64) {
	return m.x, m.y
}

func (m *ConstantPositionModel) SetPosition(x, y float64) {
	logrus.Debugf("ConstantPositionModel: move to (%g, %g)", x, y)
	m.x = x
	m.y = y
	m.notifyCourseChange(m)
}

func (m *ConstantPositionModel) Velocity() (float64, float64) {
	return 0, 0
}

func (m *ConstantPositionModel) AssignStreams(_ int64) int64 {
	return 0
}

func (m *ConstantPositionModel) Attributes() []sim.Attribute {
	return []sim.Attribute{
		{
			Name: "Position",
			Help: "Absolute position (x y) in meters.",
			Accessor: sim.MakePairAccessor[*sim.DoubleValue, *sim.DoubleValue](
				(*ConstantPositionModel).Position,
				func(m *ConstantPositionModel, x, y float64) bool {
					m.SetPosition(x, y)
					return true
				},
			),
			Checker: PositionChecker,
		},
	}
}

// ConstantVelocityModel moves a node at a fixed velocity from a base
// position. Advancing the position over time belongs to the event scheduler,
// which is outside this package; the model is the configuration surface.
type ConstantVelocityModel struct {
	courseChangeNotifier
	x, y   float64
	vx, vy float64
}

// NewConstantVelocityModel builds a stationary model at the origin.
func NewConstantVelocityModel() *ConstantVelocityModel {
	return &ConstantVelocityModel{}
}

func (m *ConstantVelocityModel) Position() (float64, float64) {
	return m.x, m.y
}

func (m *ConstantVelocityModel) SetPosition(x, y float64) {
	m.x = x
	m.y = y
	m.notifyCourseChange(m)
}

func (m *ConstantVelocityModel) Velocity() (float64, float64) {
	return m.vx, m.vy
}

// SetVelocity changes the velocity and notifies course-change subscribers.
func (m *ConstantVelocityModel) SetVelocity(vx, vy float64) {
	logrus.Debugf("ConstantVelocityModel: velocity (%g, %g)", vx, vy)
	m.vx = vx
	m.vy = vy
	m.notifyCourseChange(m)
}

func (m *ConstantVelocityModel) AssignStreams(_ int64) int64 {
	return 0
}

func (m *ConstantVelocityModel) Attributes() []sim.Attribute {
	return []sim.Attribute{
		{
			Name: "Position",
			Help: "Base position (x y) in meters.",
			Accessor: sim.MakePairFieldAccessor[*sim.DoubleValue, *sim.DoubleValue](
				func(m *ConstantVelocityModel) (*float64, *float64) { return &m.x, &m.y },
			),
			Checker: PositionChecker,
		},
		{
			Name: "Velocity",
			Help: "Velocity (vx vy) in meters per second.",
			Accessor: sim.MakePairAccessor[*sim.DoubleValue, *sim.DoubleValue](
				(*ConstantVelocityModel).Velocity,
				func(m *ConstantVelocityModel, vx, vy float64) bool {
					m.SetVelocity(vx, vy)
					return true
				},
			),
			Checker: PositionChecker,
		},
	}
}
