package component

import (
	"image/color"
	"strings"
	"time"

	"github.com/milk9111/stargate/vmath"
)

// NodeName is the closed set of navigation targets.
type NodeName string

const (
	NodeProjects   NodeName = "Projects"
	NodeExperience NodeName = "Experience"
	NodeContact    NodeName = "Contact"
	NodeHome       NodeName = "home"
)

// NodeNames lists every navigation target in display order.
var NodeNames = []NodeName{NodeProjects, NodeExperience, NodeContact, NodeHome}

// ParseNodeName matches s case-insensitively.
func ParseNodeName(s string) (NodeName, bool) {
	for _, n := range NodeNames {
		if strings.EqualFold(string(n), strings.TrimSpace(s)) {
			return n, true
		}
	}
	return "", false
}

// ViewKey is the camera view a node navigates to.
func (n NodeName) ViewKey() string {
	return strings.ToLower(string(n))
}

// NavNode is a clickable sphere floating in the interactive scene.
type NavNode struct {
	Name   NodeName
	Anchor vmath.Vec3
	Color  color.RGBA
	Radius float64
	Scale  float64
	// FloatOffset is the scripted idle bob added to Anchor.Y.
	FloatOffset float64
	Opacity     float64
	Hovered     bool

	// Script drives FloatOffset; FloatDelay and Spawned feed its clock.
	Script     string
	FloatDelay time.Duration
	Spawned    time.Duration
}

// Position returns the animated centre of the node.
func (n *NavNode) Position() vmath.Vec3 {
	return n.Anchor.Add(vmath.Vec3{Y: n.FloatOffset})
}

// HitRadius is the radius used for ray picking.
func (n *NavNode) HitRadius() float64 {
	return n.Radius * n.Scale
}

var NavNodeComponent = NewComponent[NavNode]()
