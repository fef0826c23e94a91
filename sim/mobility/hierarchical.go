package mobility

import (
	"github.com/sirupsen/logrus"

	"github.com/netsim-go/netsim/sim"
)

// HierarchicalModel composes two mobility models: the child moves relative
// to the parent, so the absolute position is the coordinate sum of both.
// Typical use is a node riding a moving vehicle: the vehicle is the parent,
// the node's own movement inside it is the child.
//
// The child holds relative coordinates and must be set before the model is
// used; the parent is optional (no parent means the child's coordinates are
// already absolute).
type HierarchicalModel struct {
	courseChangeNotifier
	child  Model
	parent Model
}

// NewHierarchicalModel builds a model with neither child nor parent.
func NewHierarchicalModel() *HierarchicalModel {
	return &HierarchicalModel{}
}

// SetChild installs the child model, preserving the previous absolute
// position when a child was already attached.
func (m *HierarchicalModel) SetChild(child Model) {
	oldChild := m.child
	var x, y float64
	if oldChild != nil {
		x, y = m.Position()
	}
	m.child = child
	// Stale subscriptions on a replaced child self-filter on source.
	child.AddCourseChangeCallback(func(src Model) {
		if m.child == src {
			m.notifyCourseChange(m)
		}
	})
	if oldChild != nil {
		logrus.Debugf("HierarchicalModel: restoring position (%g, %g) across child change", x, y)
		m.SetPosition(x, y)
	}
}

// SetParent installs the parent model, preserving the absolute position
// across the change when a child is attached.
func (m *HierarchicalModel) SetParent(parent Model) {
	var x, y float64
	if m.child != nil {
		x, y = m.Position()
	}
	m.parent = parent
	if parent != nil {
		parent.AddCourseChangeCallback(func(src Model) {
			if m.parent == src {
				m.notifyCourseChange(m)
			}
		})
	}
	if m.child != nil {
		logrus.Debugf("HierarchicalModel: restoring position (%g, %g) across parent change", x, y)
		m.SetPosition(x, y)
	}
}

// Child returns the current child model, possibly nil.
func (m *HierarchicalModel) Child() Model {
	return m.child
}

// Parent returns the current parent model, possibly nil.
func (m *HierarchicalModel) Parent() Model {
	return m.parent
}

func (m *HierarchicalModel) Position() (float64, float64) {
	if m.parent == nil {
		return m.child.Position()
	}
	px, py := m.parent.Position()
	cx, cy := m.child.Position()
	return px + cx, py + cy
}

// SetPosition moves the node to an absolute position by adjusting the child
// relative to the parent. Without a child the call is ignored.
func (m *HierarchicalModel) SetPosition(x, y float64) {
	if m.child == nil {
		return
	}
	if m.parent != nil {
		px, py := m.parent.Position()
		m.child.SetPosition(x-px, y-py)
		return
	}
	m.child.SetPosition(x, y)
}

func (m *HierarchicalModel) Velocity() (float64, float64) {
	if m.parent == nil {
		return m.child.Velocity()
	}
	pvx, pvy := m.parent.Velocity()
	cvx, cvy := m.child.Velocity()
	return pvx + cvx, pvy + cvy
}

func (m *HierarchicalModel) AssignStreams(stream int64) int64 {
	var allocated int64
	if m.parent != nil {
		allocated += m.parent.AssignStreams(stream)
	}
	if m.child != nil {
		allocated += m.child.AssignStreams(stream + allocated)
	}
	return allocated
}

func (m *HierarchicalModel) Attributes() []sim.Attribute {
	return []sim.Attribute{
		{
			Name: "Position",
			Help: "Absolute position (x y) in meters, composed from parent and child.",
			Accessor: sim.MakePairAccessor[*sim.DoubleValue, *sim.DoubleValue](
				(*HierarchicalModel).Position,
				func(m *HierarchicalModel, x, y float64) bool {
					if m.child == nil {
						return false
					}
					m.SetPosition(x, y)
					return true
				},
			),
			Checker: PositionChecker,
		},
	}
}
