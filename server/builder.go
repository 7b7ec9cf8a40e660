package server

import (
	"github.com/pkg/errors"

	"github.com/amine-amaach/uaspace/ua"
)

// builderBase accumulates the fields common to all node variants and
// validates them before a node may exist. Builders are the only way to
// construct a node; Build never registers the node into an address space.
type builderBase struct {
	mgr           AddressSpaceManager
	nodeID        ua.NodeID
	browseName    ua.QualifiedName
	displayName   ua.LocalizedText
	description   ua.LocalizedText
	writeMask     uint32
	userWriteMask uint32
	references    []ua.Reference
}

func (b *builderBase) setTypeDefinition(typeDefinitionID ua.NodeID) error {
	if b.nodeID == nil {
		return errors.Wrap(ErrNodeIDNotSet, "SetTypeDefinition")
	}
	b.references = append(b.references, ua.NewReference(
		b.nodeID,
		ua.ReferenceTypeIDHasTypeDefinition,
		ua.NewExpandedNodeID(typeDefinitionID),
		true,
	))
	return nil
}

// validate checks the required fields and, when requireTypeDefinition is
// set, that exactly one forward HasTypeDefinition reference accumulated.
func (b *builderBase) validate(requireTypeDefinition bool) error {
	if b.nodeID == nil {
		return errors.Wrap(ErrMissingField, "NodeID")
	}
	if b.browseName.Name == "" {
		return errors.Wrap(ErrMissingField, "BrowseName")
	}
	if b.displayName.Text == "" {
		return errors.Wrap(ErrMissingField, "DisplayName")
	}
	if requireTypeDefinition {
		count := 0
		for _, r := range b.references {
			if ua.HasTypeDefinitionPredicate(r) {
				count++
			}
		}
		if count != 1 {
			return errors.Wrapf(ErrReferenceCardinality, "want exactly one forward HasTypeDefinition reference, have %d", count)
		}
	}
	return nil
}

func (b *builderBase) newBase(nodeClass ua.NodeClass) nodeBase {
	return newNodeBase(b.mgr, nodeClass, b.nodeID, b.browseName, b.displayName, b.description, b.writeMask, b.userWriteMask)
}

func attachReferences(n Node, refs []ua.Reference) {
	for _, r := range refs {
		n.AddReference(r)
	}
}

// ObjectNodeBuilder assembles and validates an ObjectNode.
type ObjectNodeBuilder struct {
	builderBase
	eventNotifier byte
}

// NewObjectNodeBuilder returns a builder whose node will dereference
// relation queries through mgr.
func NewObjectNodeBuilder(mgr AddressSpaceManager) *ObjectNodeBuilder {
	return &ObjectNodeBuilder{builderBase: builderBase{mgr: mgr}}
}

func (b *ObjectNodeBuilder) SetNodeID(id ua.NodeID) *ObjectNodeBuilder {
	b.nodeID = id
	return b
}

func (b *ObjectNodeBuilder) SetBrowseName(name ua.QualifiedName) *ObjectNodeBuilder {
	b.browseName = name
	return b
}

func (b *ObjectNodeBuilder) SetDisplayName(name ua.LocalizedText) *ObjectNodeBuilder {
	b.displayName = name
	return b
}

func (b *ObjectNodeBuilder) SetDescription(description ua.LocalizedText) *ObjectNodeBuilder {
	b.description = description
	return b
}

func (b *ObjectNodeBuilder) SetWriteMask(mask uint32) *ObjectNodeBuilder {
	b.writeMask = mask
	return b
}

func (b *ObjectNodeBuilder) SetUserWriteMask(mask uint32) *ObjectNodeBuilder {
	b.userWriteMask = mask
	return b
}

func (b *ObjectNodeBuilder) SetEventNotifier(value byte) *ObjectNodeBuilder {
	b.eventNotifier = value
	return b
}

func (b *ObjectNodeBuilder) AddReference(ref ua.Reference) *ObjectNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// SetTypeDefinition appends the required forward HasTypeDefinition reference
// from the node under construction to typeDefinitionID. SetNodeID must have
// been called first.
func (b *ObjectNodeBuilder) SetTypeDefinition(typeDefinitionID ua.NodeID) error {
	return b.setTypeDefinition(typeDefinitionID)
}

// Build validates the accumulated state and constructs the ObjectNode.
// NodeID, BrowseName and DisplayName are required, and exactly one forward
// HasTypeDefinition reference must be present.
func (b *ObjectNodeBuilder) Build() (*ObjectNode, error) {
	if err := b.validate(true); err != nil {
		return nil, err
	}
	n := &ObjectNode{
		nodeBase:      b.newBase(ua.NodeClassObject),
		eventNotifier: b.eventNotifier,
	}
	attachReferences(n, b.references)
	return n, nil
}

// VariableNodeBuilder assembles and validates a VariableNode.
type VariableNodeBuilder struct {
	builderBase
	value           ua.DataValue
	dataType        ua.NodeID
	valueRank       int32
	arrayDimensions []uint32
	historizing     bool
}

// NewVariableNodeBuilder returns a builder whose node will dereference
// relation queries through mgr. The value rank defaults to scalar.
func NewVariableNodeBuilder(mgr AddressSpaceManager) *VariableNodeBuilder {
	return &VariableNodeBuilder{
		builderBase: builderBase{mgr: mgr},
		valueRank:   ua.ValueRankScalar,
	}
}

func (b *VariableNodeBuilder) SetNodeID(id ua.NodeID) *VariableNodeBuilder {
	b.nodeID = id
	return b
}

func (b *VariableNodeBuilder) SetBrowseName(name ua.QualifiedName) *VariableNodeBuilder {
	b.browseName = name
	return b
}

func (b *VariableNodeBuilder) SetDisplayName(name ua.LocalizedText) *VariableNodeBuilder {
	b.displayName = name
	return b
}

func (b *VariableNodeBuilder) SetDescription(description ua.LocalizedText) *VariableNodeBuilder {
	b.description = description
	return b
}

func (b *VariableNodeBuilder) SetWriteMask(mask uint32) *VariableNodeBuilder {
	b.writeMask = mask
	return b
}

func (b *VariableNodeBuilder) SetUserWriteMask(mask uint32) *VariableNodeBuilder {
	b.userWriteMask = mask
	return b
}

func (b *VariableNodeBuilder) SetValue(value ua.DataValue) *VariableNodeBuilder {
	b.value = value
	return b
}

func (b *VariableNodeBuilder) SetDataType(dataType ua.NodeID) *VariableNodeBuilder {
	b.dataType = dataType
	return b
}

func (b *VariableNodeBuilder) SetValueRank(valueRank int32) *VariableNodeBuilder {
	b.valueRank = valueRank
	return b
}

func (b *VariableNodeBuilder) SetArrayDimensions(dims []uint32) *VariableNodeBuilder {
	b.arrayDimensions = dims
	return b
}

func (b *VariableNodeBuilder) SetHistorizing(historizing bool) *VariableNodeBuilder {
	b.historizing = historizing
	return b
}

func (b *VariableNodeBuilder) AddReference(ref ua.Reference) *VariableNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// SetTypeDefinition appends the required forward HasTypeDefinition reference
// from the node under construction to typeDefinitionID. SetNodeID must have
// been called first.
func (b *VariableNodeBuilder) SetTypeDefinition(typeDefinitionID ua.NodeID) error {
	return b.setTypeDefinition(typeDefinitionID)
}

// Build validates the accumulated state and constructs the VariableNode.
// NodeID, BrowseName and DisplayName are required, and exactly one forward
// HasTypeDefinition reference must be present.
func (b *VariableNodeBuilder) Build() (*VariableNode, error) {
	if err := b.validate(true); err != nil {
		return nil, err
	}
	n := &VariableNode{
		nodeBase:        b.newBase(ua.NodeClassVariable),
		value:           b.value,
		dataType:        b.dataType,
		valueRank:       b.valueRank,
		arrayDimensions: b.arrayDimensions,
		historizing:     b.historizing,
	}
	attachReferences(n, b.references)
	return n, nil
}

// MethodNodeBuilder assembles and validates a MethodNode.
type MethodNodeBuilder struct {
	builderBase
	executable bool
}

func NewMethodNodeBuilder(mgr AddressSpaceManager) *MethodNodeBuilder {
	return &MethodNodeBuilder{builderBase: builderBase{mgr: mgr}, executable: true}
}

func (b *MethodNodeBuilder) SetNodeID(id ua.NodeID) *MethodNodeBuilder {
	b.nodeID = id
	return b
}

func (b *MethodNodeBuilder) SetBrowseName(name ua.QualifiedName) *MethodNodeBuilder {
	b.browseName = name
	return b
}

func (b *MethodNodeBuilder) SetDisplayName(name ua.LocalizedText) *MethodNodeBuilder {
	b.displayName = name
	return b
}

func (b *MethodNodeBuilder) SetDescription(description ua.LocalizedText) *MethodNodeBuilder {
	b.description = description
	return b
}

func (b *MethodNodeBuilder) SetExecutable(executable bool) *MethodNodeBuilder {
	b.executable = executable
	return b
}

func (b *MethodNodeBuilder) AddReference(ref ua.Reference) *MethodNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// Build validates the accumulated state and constructs the MethodNode.
// NodeID, BrowseName and DisplayName are required.
func (b *MethodNodeBuilder) Build() (*MethodNode, error) {
	if err := b.validate(false); err != nil {
		return nil, err
	}
	n := &MethodNode{
		nodeBase:   b.newBase(ua.NodeClassMethod),
		executable: b.executable,
	}
	attachReferences(n, b.references)
	return n, nil
}

// ObjectTypeNodeBuilder assembles and validates an ObjectTypeNode.
type ObjectTypeNodeBuilder struct {
	builderBase
	isAbstract bool
}

func NewObjectTypeNodeBuilder(mgr AddressSpaceManager) *ObjectTypeNodeBuilder {
	return &ObjectTypeNodeBuilder{builderBase: builderBase{mgr: mgr}}
}

func (b *ObjectTypeNodeBuilder) SetNodeID(id ua.NodeID) *ObjectTypeNodeBuilder {
	b.nodeID = id
	return b
}

func (b *ObjectTypeNodeBuilder) SetBrowseName(name ua.QualifiedName) *ObjectTypeNodeBuilder {
	b.browseName = name
	return b
}

func (b *ObjectTypeNodeBuilder) SetDisplayName(name ua.LocalizedText) *ObjectTypeNodeBuilder {
	b.displayName = name
	return b
}

func (b *ObjectTypeNodeBuilder) SetDescription(description ua.LocalizedText) *ObjectTypeNodeBuilder {
	b.description = description
	return b
}

func (b *ObjectTypeNodeBuilder) SetIsAbstract(isAbstract bool) *ObjectTypeNodeBuilder {
	b.isAbstract = isAbstract
	return b
}

func (b *ObjectTypeNodeBuilder) AddReference(ref ua.Reference) *ObjectTypeNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// SetSuperType appends the inverse HasSubtype reference from the type under
// construction to its supertype. SetNodeID must have been called first.
func (b *ObjectTypeNodeBuilder) SetSuperType(superTypeID ua.NodeID) error {
	if b.nodeID == nil {
		return errors.Wrap(ErrNodeIDNotSet, "SetSuperType")
	}
	b.references = append(b.references, ua.NewReference(
		b.nodeID,
		ua.ReferenceTypeIDHasSubtype,
		ua.NewExpandedNodeID(superTypeID),
		false,
	))
	return nil
}

// Build validates the accumulated state and constructs the ObjectTypeNode.
// NodeID, BrowseName and DisplayName are required.
func (b *ObjectTypeNodeBuilder) Build() (*ObjectTypeNode, error) {
	if err := b.validate(false); err != nil {
		return nil, err
	}
	n := &ObjectTypeNode{
		nodeBase:   b.newBase(ua.NodeClassObjectType),
		isAbstract: b.isAbstract,
	}
	attachReferences(n, b.references)
	return n, nil
}

// VariableTypeNodeBuilder assembles and validates a VariableTypeNode.
type VariableTypeNodeBuilder struct {
	builderBase
	dataType   ua.NodeID
	valueRank  int32
	isAbstract bool
}

func NewVariableTypeNodeBuilder(mgr AddressSpaceManager) *VariableTypeNodeBuilder {
	return &VariableTypeNodeBuilder{
		builderBase: builderBase{mgr: mgr},
		valueRank:   ua.ValueRankScalar,
	}
}

func (b *VariableTypeNodeBuilder) SetNodeID(id ua.NodeID) *VariableTypeNodeBuilder {
	b.nodeID = id
	return b
}

func (b *VariableTypeNodeBuilder) SetBrowseName(name ua.QualifiedName) *VariableTypeNodeBuilder {
	b.browseName = name
	return b
}

func (b *VariableTypeNodeBuilder) SetDisplayName(name ua.LocalizedText) *VariableTypeNodeBuilder {
	b.displayName = name
	return b
}

func (b *VariableTypeNodeBuilder) SetDataType(dataType ua.NodeID) *VariableTypeNodeBuilder {
	b.dataType = dataType
	return b
}

func (b *VariableTypeNodeBuilder) SetValueRank(valueRank int32) *VariableTypeNodeBuilder {
	b.valueRank = valueRank
	return b
}

func (b *VariableTypeNodeBuilder) SetIsAbstract(isAbstract bool) *VariableTypeNodeBuilder {
	b.isAbstract = isAbstract
	return b
}

func (b *VariableTypeNodeBuilder) AddReference(ref ua.Reference) *VariableTypeNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// Build validates the accumulated state and constructs the VariableTypeNode.
func (b *VariableTypeNodeBuilder) Build() (*VariableTypeNode, error) {
	if err := b.validate(false); err != nil {
		return nil, err
	}
	n := &VariableTypeNode{
		nodeBase:   b.newBase(ua.NodeClassVariableType),
		dataType:   b.dataType,
		valueRank:  b.valueRank,
		isAbstract: b.isAbstract,
	}
	attachReferences(n, b.references)
	return n, nil
}

// ReferenceTypeNodeBuilder assembles and validates a ReferenceTypeNode.
type ReferenceTypeNodeBuilder struct {
	builderBase
	isAbstract  bool
	symmetric   bool
	inverseName ua.LocalizedText
}

func NewReferenceTypeNodeBuilder(mgr AddressSpaceManager) *ReferenceTypeNodeBuilder {
	return &ReferenceTypeNodeBuilder{builderBase: builderBase{mgr: mgr}}
}

func (b *ReferenceTypeNodeBuilder) SetNodeID(id ua.NodeID) *ReferenceTypeNodeBuilder {
	b.nodeID = id
	return b
}

func (b *ReferenceTypeNodeBuilder) SetBrowseName(name ua.QualifiedName) *ReferenceTypeNodeBuilder {
	b.browseName = name
	return b
}

func (b *ReferenceTypeNodeBuilder) SetDisplayName(name ua.LocalizedText) *ReferenceTypeNodeBuilder {
	b.displayName = name
	return b
}

func (b *ReferenceTypeNodeBuilder) SetIsAbstract(isAbstract bool) *ReferenceTypeNodeBuilder {
	b.isAbstract = isAbstract
	return b
}

func (b *ReferenceTypeNodeBuilder) SetSymmetric(symmetric bool) *ReferenceTypeNodeBuilder {
	b.symmetric = symmetric
	return b
}

func (b *ReferenceTypeNodeBuilder) SetInverseName(name ua.LocalizedText) *ReferenceTypeNodeBuilder {
	b.inverseName = name
	return b
}

func (b *ReferenceTypeNodeBuilder) AddReference(ref ua.Reference) *ReferenceTypeNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// Build validates the accumulated state and constructs the ReferenceTypeNode.
func (b *ReferenceTypeNodeBuilder) Build() (*ReferenceTypeNode, error) {
	if err := b.validate(false); err != nil {
		return nil, err
	}
	n := &ReferenceTypeNode{
		nodeBase:    b.newBase(ua.NodeClassReferenceType),
		isAbstract:  b.isAbstract,
		symmetric:   b.symmetric,
		inverseName: b.inverseName,
	}
	attachReferences(n, b.references)
	return n, nil
}

// DataTypeNodeBuilder assembles and validates a DataTypeNode.
type DataTypeNodeBuilder struct {
	builderBase
	isAbstract bool
}

func NewDataTypeNodeBuilder(mgr AddressSpaceManager) *DataTypeNodeBuilder {
	return &DataTypeNodeBuilder{builderBase: builderBase{mgr: mgr}}
}

func (b *DataTypeNodeBuilder) SetNodeID(id ua.NodeID) *DataTypeNodeBuilder {
	b.nodeID = id
	return b
}

func (b *DataTypeNodeBuilder) SetBrowseName(name ua.QualifiedName) *DataTypeNodeBuilder {
	b.browseName = name
	return b
}

func (b *DataTypeNodeBuilder) SetDisplayName(name ua.LocalizedText) *DataTypeNodeBuilder {
	b.displayName = name
	return b
}

func (b *DataTypeNodeBuilder) SetIsAbstract(isAbstract bool) *DataTypeNodeBuilder {
	b.isAbstract = isAbstract
	return b
}

func (b *DataTypeNodeBuilder) AddReference(ref ua.Reference) *DataTypeNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// Build validates the accumulated state and constructs the DataTypeNode.
func (b *DataTypeNodeBuilder) Build() (*DataTypeNode, error) {
	if err := b.validate(false); err != nil {
		return nil, err
	}
	n := &DataTypeNode{
		nodeBase:   b.newBase(ua.NodeClassDataType),
		isAbstract: b.isAbstract,
	}
	attachReferences(n, b.references)
	return n, nil
}

// ViewNodeBuilder assembles and validates a ViewNode.
type ViewNodeBuilder struct {
	builderBase
	containsNoLoops bool
	eventNotifier   byte
}

func NewViewNodeBuilder(mgr AddressSpaceManager) *ViewNodeBuilder {
	return &ViewNodeBuilder{builderBase: builderBase{mgr: mgr}}
}

func (b *ViewNodeBuilder) SetNodeID(id ua.NodeID) *ViewNodeBuilder {
	b.nodeID = id
	return b
}

func (b *ViewNodeBuilder) SetBrowseName(name ua.QualifiedName) *ViewNodeBuilder {
	b.browseName = name
	return b
}

func (b *ViewNodeBuilder) SetDisplayName(name ua.LocalizedText) *ViewNodeBuilder {
	b.displayName = name
	return b
}

func (b *ViewNodeBuilder) SetContainsNoLoops(containsNoLoops bool) *ViewNodeBuilder {
	b.containsNoLoops = containsNoLoops
	return b
}

func (b *ViewNodeBuilder) SetEventNotifier(value byte) *ViewNodeBuilder {
	b.eventNotifier = value
	return b
}

func (b *ViewNodeBuilder) AddReference(ref ua.Reference) *ViewNodeBuilder {
	b.references = append(b.references, ref)
	return b
}

// Build validates the accumulated state and constructs the ViewNode.
func (b *ViewNodeBuilder) Build() (*ViewNode, error) {
	if err := b.validate(false); err != nil {
		return nil, err
	}
	n := &ViewNode{
		nodeBase:        b.newBase(ua.NodeClassView),
		containsNoLoops: b.containsNoLoops,
		eventNotifier:   b.eventNotifier,
	}
	attachReferences(n, b.references)
	return n, nil
}
