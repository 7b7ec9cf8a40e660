package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// ObjectTypeNode is the ObjectType node variant, a type-definition node in
// the supertype/subtype hierarchy.
type ObjectTypeNode struct {
	nodeBase
	isAbstract bool
}

var _ Node = (*ObjectTypeNode)(nil)

// IsAbstract returns the IsAbstract attribute of this node.
func (n *ObjectTypeNode) IsAbstract() bool {
	return n.isAbstract
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *ObjectTypeNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDIsAbstract:
		return true
	default:
		return false
	}
}
