package server

import (
	"context"

	"github.com/amine-amaach/uaspace/ua"
)

// MethodNode is the Method node variant. The node describes the syntax of an
// object's method; invocation is wired in by the protocol-service layer
// through the call handler.
type MethodNode struct {
	nodeBase
	executable        bool
	callMethodHandler func(context.Context, []ua.Variant) ([]ua.Variant, error)
}

var _ Node = (*MethodNode)(nil)

// Executable returns the Executable attribute of this node.
func (n *MethodNode) Executable() bool {
	n.RLock()
	defer n.RUnlock()
	return n.executable
}

// SetExecutable sets the Executable attribute of this node and dispatches
// the change to attribute listeners before returning.
func (n *MethodNode) SetExecutable(value bool) {
	n.Lock()
	defer n.Unlock()
	n.executable = value
	n.notifyAttributeChanged(ua.AttributeIDExecutable, value)
}

// SetCallMethodHandler sets the handler invoked when the method is called.
func (n *MethodNode) SetCallMethodHandler(handler func(context.Context, []ua.Variant) ([]ua.Variant, error)) {
	n.Lock()
	defer n.Unlock()
	n.callMethodHandler = handler
}

// CallMethodHandler returns the handler invoked when the method is called,
// or nil if none is set.
func (n *MethodNode) CallMethodHandler() func(context.Context, []ua.Variant) ([]ua.Variant, error) {
	n.RLock()
	defer n.RUnlock()
	return n.callMethodHandler
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *MethodNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDExecutable, ua.AttributeIDUserExecutable:
		return true
	default:
		return false
	}
}
