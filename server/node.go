package server

import (
	"sync"

	"github.com/amine-amaach/uaspace/ua"
)

// Node is implemented by every node variant in the address space. A node can
// only be constructed through its variant builder, which validates required
// fields and reference cardinality before the node exists.
type Node interface {
	NodeID() ua.NodeID
	NodeClass() ua.NodeClass
	BrowseName() ua.QualifiedName
	DisplayName() ua.LocalizedText
	SetDisplayName(ua.LocalizedText)
	Description() ua.LocalizedText
	SetDescription(ua.LocalizedText)
	WriteMask() uint32
	SetWriteMask(uint32)
	UserWriteMask() uint32
	SetUserWriteMask(uint32)
	References() []ua.Reference
	ReferenceCount() int
	AddReference(ua.Reference)
	RemoveReference(ua.Reference)
	SelectReferences(ua.ReferencePredicate) []ua.Reference
	AddAttributeListener(AttributeListener)
	RemoveAttributeListener(AttributeListener)
	IsAttributeIDValid(uint32) bool

	manager() AddressSpaceManager
}

// AttributeListener observes attribute changes on a node. Listeners are
// invoked synchronously inside the setter's critical section and must not
// call back into the node.
type AttributeListener interface {
	OnAttributeChanged(nodeID ua.NodeID, attributeID uint32, value ua.Variant)
}

// nodeBase holds the attributes and the owned reference set shared by all
// node variants. The embedded RWMutex serializes attribute mutation per node;
// reads take the read lock only.
type nodeBase struct {
	sync.RWMutex
	mgr           AddressSpaceManager
	nodeID        ua.NodeID
	nodeClass     ua.NodeClass
	browseName    ua.QualifiedName
	displayName   ua.LocalizedText
	description   ua.LocalizedText
	writeMask     uint32
	userWriteMask uint32
	references    []ua.Reference
	subs          map[AttributeListener]struct{}
}

func newNodeBase(mgr AddressSpaceManager, nodeClass ua.NodeClass, nodeID ua.NodeID, browseName ua.QualifiedName, displayName, description ua.LocalizedText, writeMask, userWriteMask uint32) nodeBase {
	return nodeBase{
		mgr:           mgr,
		nodeID:        nodeID,
		nodeClass:     nodeClass,
		browseName:    browseName,
		displayName:   displayName,
		description:   description,
		writeMask:     writeMask,
		userWriteMask: userWriteMask,
		references:    []ua.Reference{},
		subs:          map[AttributeListener]struct{}{},
	}
}

func (n *nodeBase) manager() AddressSpaceManager {
	return n.mgr
}

// NodeID returns the NodeID attribute of this node.
func (n *nodeBase) NodeID() ua.NodeID {
	return n.nodeID
}

// NodeClass returns the NodeClass attribute of this node.
func (n *nodeBase) NodeClass() ua.NodeClass {
	return n.nodeClass
}

// BrowseName returns the BrowseName attribute of this node.
func (n *nodeBase) BrowseName() ua.QualifiedName {
	return n.browseName
}

// DisplayName returns the DisplayName attribute of this node.
func (n *nodeBase) DisplayName() ua.LocalizedText {
	n.RLock()
	defer n.RUnlock()
	return n.displayName
}

// SetDisplayName sets the DisplayName attribute of this node.
func (n *nodeBase) SetDisplayName(value ua.LocalizedText) {
	n.Lock()
	defer n.Unlock()
	n.displayName = value
	n.notifyAttributeChanged(ua.AttributeIDDisplayName, value)
}

// Description returns the Description attribute of this node.
func (n *nodeBase) Description() ua.LocalizedText {
	n.RLock()
	defer n.RUnlock()
	return n.description
}

// SetDescription sets the Description attribute of this node.
func (n *nodeBase) SetDescription(value ua.LocalizedText) {
	n.Lock()
	defer n.Unlock()
	n.description = value
	n.notifyAttributeChanged(ua.AttributeIDDescription, value)
}

// WriteMask returns the WriteMask attribute of this node.
func (n *nodeBase) WriteMask() uint32 {
	n.RLock()
	defer n.RUnlock()
	return n.writeMask
}

// SetWriteMask sets the WriteMask attribute of this node.
func (n *nodeBase) SetWriteMask(value uint32) {
	n.Lock()
	defer n.Unlock()
	n.writeMask = value
	n.notifyAttributeChanged(ua.AttributeIDWriteMask, value)
}

// UserWriteMask returns the UserWriteMask attribute of this node.
func (n *nodeBase) UserWriteMask() uint32 {
	n.RLock()
	defer n.RUnlock()
	return n.userWriteMask
}

// SetUserWriteMask sets the UserWriteMask attribute of this node.
func (n *nodeBase) SetUserWriteMask(value uint32) {
	n.Lock()
	defer n.Unlock()
	n.userWriteMask = value
	n.notifyAttributeChanged(ua.AttributeIDUserWriteMask, value)
}

// References returns a snapshot of the references owned by this node,
// in insertion order.
func (n *nodeBase) References() []ua.Reference {
	n.RLock()
	defer n.RUnlock()
	refs := make([]ua.Reference, len(n.references))
	copy(refs, n.references)
	return refs
}

// ReferenceCount returns the number of references owned by this node.
func (n *nodeBase) ReferenceCount() int {
	n.RLock()
	defer n.RUnlock()
	return len(n.references)
}

// AddReference appends the reference to this node's reference set. Adding a
// reference identical in source, type, target and direction is a no-op.
func (n *nodeBase) AddReference(ref ua.Reference) {
	n.Lock()
	defer n.Unlock()
	for _, r := range n.references {
		if r == ref {
			return
		}
	}
	n.references = append(n.references, ref)
}

// RemoveReference removes the exactly matching reference from this node's
// reference set. Removing an absent reference is a no-op.
func (n *nodeBase) RemoveReference(ref ua.Reference) {
	n.Lock()
	defer n.Unlock()
	for i, r := range n.references {
		if r == ref {
			n.references = append(n.references[:i], n.references[i+1:]...)
			return
		}
	}
}

// SelectReferences returns the references owned by this node that satisfy
// the predicate, in insertion order.
func (n *nodeBase) SelectReferences(pred ua.ReferencePredicate) []ua.Reference {
	n.RLock()
	defer n.RUnlock()
	refs := []ua.Reference{}
	for _, r := range n.references {
		if pred(r) {
			refs = append(refs, r)
		}
	}
	return refs
}

// AddAttributeListener registers a listener for attribute changes on this node.
func (n *nodeBase) AddAttributeListener(listener AttributeListener) {
	n.Lock()
	defer n.Unlock()
	n.subs[listener] = struct{}{}
}

// RemoveAttributeListener unregisters the listener.
func (n *nodeBase) RemoveAttributeListener(listener AttributeListener) {
	n.Lock()
	defer n.Unlock()
	delete(n.subs, listener)
}

// notifyAttributeChanged dispatches the change to all listeners. Callers must
// hold the node lock so the update and the dispatch form one atomic unit.
func (n *nodeBase) notifyAttributeChanged(attributeID uint32, value ua.Variant) {
	for sub := range n.subs {
		sub.OnAttributeChanged(n.nodeID, attributeID, value)
	}
}

// targetNodes dereferences the targets of the references matching pred
// through the address space. Targets that cannot be localized or are not
// registered are skipped.
func (n *nodeBase) targetNodes(pred ua.ReferencePredicate) []Node {
	mgr := n.mgr
	if mgr == nil {
		return nil
	}
	uris := mgr.NamespaceURIs()
	nodes := []Node{}
	for _, r := range n.SelectReferences(pred) {
		id := ua.ToNodeID(r.TargetID, uris)
		if id == nil {
			continue
		}
		if target, ok := mgr.GetNode(id); ok {
			nodes = append(nodes, target)
		}
	}
	return nodes
}

// firstTargetNode dereferences the target of the first reference matching
// pred, or returns false if there is none or it cannot be dereferenced.
func (n *nodeBase) firstTargetNode(pred ua.ReferencePredicate) (Node, bool) {
	mgr := n.mgr
	if mgr == nil {
		return nil, false
	}
	refs := n.SelectReferences(pred)
	if len(refs) == 0 {
		return nil, false
	}
	id := ua.ToNodeID(refs[0].TargetID, mgr.NamespaceURIs())
	if id == nil {
		return nil, false
	}
	return mgr.GetNode(id)
}
