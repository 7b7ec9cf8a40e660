package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// ReferenceTypeNode is the ReferenceType node variant.
type ReferenceTypeNode struct {
	nodeBase
	isAbstract  bool
	symmetric   bool
	inverseName ua.LocalizedText
}

var _ Node = (*ReferenceTypeNode)(nil)

// IsAbstract returns the IsAbstract attribute of this node.
func (n *ReferenceTypeNode) IsAbstract() bool {
	return n.isAbstract
}

// Symmetric returns the Symmetric attribute of this node.
func (n *ReferenceTypeNode) Symmetric() bool {
	return n.symmetric
}

// InverseName returns the InverseName attribute of this node.
func (n *ReferenceTypeNode) InverseName() ua.LocalizedText {
	return n.inverseName
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *ReferenceTypeNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDIsAbstract, ua.AttributeIDSymmetric,
		ua.AttributeIDInverseName:
		return true
	default:
		return false
	}
}
