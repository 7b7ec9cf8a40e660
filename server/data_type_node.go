package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// DataTypeNode is the DataType node variant.
type DataTypeNode struct {
	nodeBase
	isAbstract bool
}

var _ Node = (*DataTypeNode)(nil)

// IsAbstract returns the IsAbstract attribute of this node.
func (n *DataTypeNode) IsAbstract() bool {
	return n.isAbstract
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *DataTypeNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDIsAbstract:
		return true
	default:
		return false
	}
}
