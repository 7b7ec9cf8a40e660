package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// VariableTypeNode is the VariableType node variant.
type VariableTypeNode struct {
	nodeBase
	dataType   ua.NodeID
	valueRank  int32
	isAbstract bool
}

var _ Node = (*VariableTypeNode)(nil)

// DataType returns the DataType attribute of this node.
func (n *VariableTypeNode) DataType() ua.NodeID {
	return n.dataType
}

// ValueRank returns the ValueRank attribute of this node.
func (n *VariableTypeNode) ValueRank() int32 {
	return n.valueRank
}

// IsAbstract returns the IsAbstract attribute of this node.
func (n *VariableTypeNode) IsAbstract() bool {
	return n.isAbstract
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *VariableTypeNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDIsAbstract, ua.AttributeIDDataType,
		ua.AttributeIDValueRank:
		return true
	default:
		return false
	}
}
