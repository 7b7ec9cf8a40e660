package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// ObjectNode is the Object node variant. It adds the EventNotifier attribute
// and relation queries over its own reference set.
type ObjectNode struct {
	nodeBase
	eventNotifier byte
}

var _ Node = (*ObjectNode)(nil)

// EventNotifier returns the EventNotifier attribute of this node.
func (n *ObjectNode) EventNotifier() byte {
	n.RLock()
	defer n.RUnlock()
	return n.eventNotifier
}

// SetEventNotifier sets the EventNotifier attribute of this node and
// dispatches the change to attribute listeners before returning.
func (n *ObjectNode) SetEventNotifier(value byte) {
	n.Lock()
	defer n.Unlock()
	n.eventNotifier = value
	n.notifyAttributeChanged(ua.AttributeIDEventNotifier, value)
}

// IsAttributeIDValid returns true if attributeID is supported for the node.
func (n *ObjectNode) IsAttributeIDValid(attributeID uint32) bool {
	switch attributeID {
	case ua.AttributeIDNodeID, ua.AttributeIDNodeClass, ua.AttributeIDBrowseName,
		ua.AttributeIDDisplayName, ua.AttributeIDDescription, ua.AttributeIDWriteMask,
		ua.AttributeIDUserWriteMask, ua.AttributeIDEventNotifier:
		return true
	default:
		return false
	}
}

// ComponentNodes returns the targets of the forward HasComponent references.
func (n *ObjectNode) ComponentNodes() []Node {
	return n.targetNodes(ua.HasComponentPredicate)
}

// PropertyNodes returns the targets of the forward HasProperty references.
func (n *ObjectNode) PropertyNodes() []Node {
	return n.targetNodes(ua.HasPropertyPredicate)
}

// MethodNodes returns the Method-classified targets of the forward
// HasComponent references.
func (n *ObjectNode) MethodNodes() []*MethodNode {
	methods := []*MethodNode{}
	for _, target := range n.targetNodes(ua.HasComponentPredicate) {
		if m, ok := target.(*MethodNode); ok {
			methods = append(methods, m)
		}
	}
	return methods
}

// TypeDefinitionNode returns the target of the forward HasTypeDefinition
// reference, or false if there is none.
func (n *ObjectNode) TypeDefinitionNode() (Node, bool) {
	return n.firstTargetNode(ua.HasTypeDefinitionPredicate)
}

// EventSourceNodes returns the targets of the forward HasEventSource references.
func (n *ObjectNode) EventSourceNodes() []Node {
	return n.targetNodes(ua.HasEventSourcePredicate)
}

// NotifierNodes returns the targets of the forward HasNotifier references.
func (n *ObjectNode) NotifierNodes() []Node {
	return n.targetNodes(ua.HasNotifierPredicate)
}

// OrganizesNodes returns the targets of the forward Organizes references.
func (n *ObjectNode) OrganizesNodes() []Node {
	return n.targetNodes(ua.OrganizesPredicate)
}

// DescriptionNode returns the target of the forward HasDescription reference,
// or false if there is none.
func (n *ObjectNode) DescriptionNode() (Node, bool) {
	return n.firstTargetNode(ua.HasDescriptionPredicate)
}

// AddComponent adds a forward HasComponent reference from this Object to
// node and asks the address space to register the inverse ComponentOf
// reference on node.
func (n *ObjectNode) AddComponent(node Node) {
	ref := ua.NewReference(
		n.nodeID,
		ua.ReferenceTypeIDHasComponent,
		ua.NewExpandedNodeID(node.NodeID()),
		true,
	)
	if p, ok := n.mgr.(ReferencePairManager); ok {
		p.AddReferencePair(ref)
		return
	}
	n.AddReference(ref)
}

// RemoveComponent removes the forward HasComponent reference from this
// Object to node and the inverse reference from node back to this Object.
func (n *ObjectNode) RemoveComponent(node Node) {
	ref := ua.NewReference(
		n.nodeID,
		ua.ReferenceTypeIDHasComponent,
		ua.NewExpandedNodeID(node.NodeID()),
		true,
	)
	if p, ok := n.mgr.(ReferencePairManager); ok {
		p.RemoveReferencePair(ref)
		return
	}
	n.RemoveReference(ref)
}

// FindMethodNode resolves methodID to a method instance of this Object.
// The id may name the instance itself or the declaration of that method on
// the Object's type definition or any of its supertypes. Returns false if
// nothing matches.
func (n *ObjectNode) FindMethodNode(methodID ua.NodeID) (*MethodNode, bool) {
	if methodID == nil {
		return nil, false
	}
	var typeDefinitionID ua.NodeID
	if td, ok := n.TypeDefinitionNode(); ok {
		typeDefinitionID = td.NodeID()
	}
	for _, m := range n.MethodNodes() {
		if methodID == m.NodeID() {
			return m, true
		}
		if typeDefinitionID == nil {
			continue
		}
		if declID, found := n.findMethodDeclarationID(typeDefinitionID, m.BrowseName()); found && methodID == declID {
			return m, true
		}
	}
	return nil, false
}

// findMethodDeclarationID walks the supertype chain starting at
// typeDefinitionID looking for a Method component with the given browse
// name. The walk carries a visited set so a malformed cyclic type graph
// terminates as not-found instead of looping.
func (n *ObjectNode) findMethodDeclarationID(typeDefinitionID ua.NodeID, methodName ua.QualifiedName) (ua.NodeID, bool) {
	mgr := n.mgr
	if mgr == nil {
		return nil, false
	}
	visited := map[ua.NodeID]struct{}{}
	typeID := typeDefinitionID
	for typeID != nil {
		if _, seen := visited[typeID]; seen {
			return nil, false
		}
		visited[typeID] = struct{}{}

		uris := mgr.NamespaceURIs()
		var superTypeID ua.NodeID
		for _, r := range mgr.GetReferences(typeID) {
			switch {
			case ua.HasComponentPredicate(r):
				targetID := ua.ToNodeID(r.TargetID, uris)
				if targetID == nil {
					continue
				}
				target, ok := mgr.GetNode(targetID)
				if !ok {
					continue
				}
				if target.NodeClass() == ua.NodeClassMethod && target.BrowseName() == methodName {
					return target.NodeID(), true
				}
			case ua.SubtypeOfPredicate(r):
				if superTypeID == nil {
					superTypeID = ua.ToNodeID(r.TargetID, uris)
				}
			}
		}
		// not declared at this level; ascend
		typeID = superTypeID
	}
	return nil, false
}
