package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// ViewNode is the View node variant.
type ViewNode struct {
	nodeBase
	containsNoLoops bool
	eventNotifier   byte
}

var _ Node = (*ViewNode)(nil)

// ContainsNoLoops returns the ContainsNoLoops attribute of this node.
func (n *ViewNode) ContainsNoLoops() bool {
	return n.containsNoLoops
}

// EventNotifier returns the EventNotifier attribute of this node.
func (n *ViewNode) EventNotifier() byte {
	n.RLock()
	defer n.RUnlock()
	return n.eventNotifier
}

// SetEventNotifier sets the EventNotifier attribute of this node and
// dispatches the change to attribute listeners before returning.
func (n *ViewNode) SetEventNotifier(value byte) {
	n.Lock()
	defer n.Unlock()
	n.eventNotifier = value
	n.notifyAttributeChanged(ua.AttributeIDEventNotifier, value)
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *ViewNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDContainsNoLoops, ua.AttributeIDEventNotifier:
		return true
	default:
		return false
	}
}
