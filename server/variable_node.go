package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// VariableNode is the Variable node variant. It carries a value with its
// declared data type and rank. Property child nodes are Variable nodes.
type VariableNode struct {
	nodeBase
	value           ua.DataValue
	dataType        ua.NodeID
	valueRank       int32
	arrayDimensions []uint32
	historizing     bool
}

var _ Node = (*VariableNode)(nil)

// Value returns the Value attribute of this node.
func (n *VariableNode) Value() ua.DataValue {
	n.RLock()
	defer n.RUnlock()
	return n.value
}

// SetValue sets the Value attribute of this node and dispatches the change
// to attribute listeners before returning.
func (n *VariableNode) SetValue(value ua.DataValue) {
	n.Lock()
	defer n.Unlock()
	n.value = value
	n.notifyAttributeChanged(ua.AttributeIDValue, value)
}

// DataType returns the DataType attribute of this node.
func (n *VariableNode) DataType() ua.NodeID {
	return n.dataType
}

// ValueRank returns the ValueRank attribute of this node.
func (n *VariableNode) ValueRank() int32 {
	return n.valueRank
}

// ArrayDimensions returns the ArrayDimensions attribute of this node.
func (n *VariableNode) ArrayDimensions() []uint32 {
	return n.arrayDimensions
}

// Historizing returns the Historizing attribute of this node.
func (n *VariableNode) Historizing() bool {
	n.RLock()
	defer n.RUnlock()
	return n.historizing
}

// SetHistorizing sets the Historizing attribute of this node.
func (n *VariableNode) SetHistorizing(value bool) {
	n.Lock()
	defer n.Unlock()
	n.historizing = value
}

// TypeDefinitionNode returns the target of the forward HasTypeDefinition
// reference, or false if there is none.
func (n *VariableNode) TypeDefinitionNode() (Node, bool) {
	return n.firstTargetNode(ua.HasTypeDefinitionPredicate)
}

// PropertyNodes returns the targets of the forward HasProperty references.
func (n *VariableNode) PropertyNodes() []Node {
	return n.targetNodes(ua.HasPropertyPredicate)
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *VariableNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDValue, ua.AttributeIDDataType,
		ua.AttributeIDValueRank, ua.AttributeIDArrayDimensions:
		return true
	default:
		return false
	}
}
