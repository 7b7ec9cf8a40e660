package server

import (
	"sync"

	"github.com/gammazero/deque"
	"go.uber.org/zap"

	"github.com/amine-amaach/uaspace/ua"
)

// AddressSpaceManager is the registry consumed by nodes to dereference
// reference targets. GetReferences includes the synthesized inverse
// references of the node.
type AddressSpaceManager interface {
	GetNode(id ua.NodeID) (Node, bool)
	GetReferences(id ua.NodeID) []ua.Reference
	NamespaceURIs() []string
}

// ReferencePairManager maintains forward/inverse reference pairs across two
// nodes inside a single critical section, so no reader observes a forward
// reference without its inverse.
type ReferencePairManager interface {
	AddReferencePair(ref ua.Reference)
	RemoveReferencePair(ref ua.Reference)
}

var hasChildAndSubtypes = []ua.NodeID{
	ua.ReferenceTypeIDHasComponent,
	ua.ReferenceTypeIDHasProperty,
	ua.ReferenceTypeIDHasSubtype,
}

// AddressSpace is the in-memory registry of every node in the server,
// keyed by NodeID. It owns the namespace table and keeps forward/inverse
// reference pairs consistent whenever nodes or references are added or
// removed.
type AddressSpace struct {
	sync.RWMutex
	logger     *zap.SugaredLogger
	namespaces []string
	nodes      map[ua.NodeID]Node
}

var (
	_ AddressSpaceManager  = (*AddressSpace)(nil)
	_ ReferencePairManager = (*AddressSpace)(nil)
)

// NewAddressSpace instantiates an AddressSpace whose namespace table holds
// the standard namespace at index 0 and applicationURI at index 1.
func NewAddressSpace(applicationURI string, logger *zap.SugaredLogger) *AddressSpace {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AddressSpace{
		logger:     logger,
		namespaces: []string{ua.NamespaceURIUA, applicationURI},
		nodes:      make(map[ua.NodeID]Node, 4096),
	}
}

// AddNamespace adds a namespace URI to the end of the table and returns its
// index. If the URI is already present, its existing index is returned.
func (m *AddressSpace) AddNamespace(nsu string) uint16 {
	m.Lock()
	defer m.Unlock()
	for i, ns := range m.namespaces {
		if ns == nsu {
			return uint16(i)
		}
	}
	m.namespaces = append(m.namespaces, nsu)
	return uint16(len(m.namespaces) - 1)
}

// NamespaceURIs returns a snapshot of the namespace table.
func (m *AddressSpace) NamespaceURIs() []string {
	m.RLock()
	defer m.RUnlock()
	uris := make([]string, len(m.namespaces))
	copy(uris, m.namespaces)
	return uris
}

// Len returns the number of registered nodes.
func (m *AddressSpace) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.nodes)
}

// GetNode returns the node with the given NodeID, or false if the id is nil
// or unknown.
func (m *AddressSpace) GetNode(id ua.NodeID) (Node, bool) {
	if id == nil {
		return nil, false
	}
	m.RLock()
	defer m.RUnlock()
	node, ok := m.nodes[id]
	return node, ok
}

// GetReferences returns the references of the node with the given NodeID,
// inverses included, or nil if the node is unknown.
func (m *AddressSpace) GetReferences(id ua.NodeID) []ua.Reference {
	node, ok := m.GetNode(id)
	if !ok {
		return nil
	}
	return node.References()
}

// GetObject returns the ObjectNode with the given NodeID.
func (m *AddressSpace) GetObject(id ua.NodeID) (*ObjectNode, bool) {
	if node, ok := m.GetNode(id); ok {
		obj, ok2 := node.(*ObjectNode)
		return obj, ok2
	}
	return nil, false
}

// GetVariable returns the VariableNode with the given NodeID.
func (m *AddressSpace) GetVariable(id ua.NodeID) (*VariableNode, bool) {
	if node, ok := m.GetNode(id); ok {
		v, ok2 := node.(*VariableNode)
		return v, ok2
	}
	return nil, false
}

// GetMethod returns the MethodNode with the given NodeID.
func (m *AddressSpace) GetMethod(id ua.NodeID) (*MethodNode, bool) {
	if node, ok := m.GetNode(id); ok {
		mn, ok2 := node.(*MethodNode)
		return mn, ok2
	}
	return nil, false
}

// AddNode registers the node and synthesizes the inverse of each of its
// references on the targets.
func (m *AddressSpace) AddNode(node Node) {
	m.AddNodes([]Node{node})
}

// AddNodes registers the nodes and synthesizes the inverse of each of their
// references on the targets. References to targets not yet registered are
// logged and left without an inverse until the target arrives with its own
// edge.
func (m *AddressSpace) AddNodes(nodes []Node) {
	m.Lock()
	defer m.Unlock()
	for _, node := range nodes {
		m.nodes[node.NodeID()] = node
	}
	for _, node := range nodes {
		for _, r := range node.References() {
			if !pairedReferenceType(r.ReferenceTypeID) {
				continue
			}
			inverse, ok := r.Inverse(m.namespaces)
			if !ok {
				m.logger.Warnw("reference target not localizable", "source", node.NodeID(), "target", r.TargetID)
				continue
			}
			target, ok := m.nodes[inverse.SourceID]
			if !ok {
				m.logger.Warnw("reference target not registered", "source", node.NodeID(), "target", r.TargetID)
				continue
			}
			target.AddReference(inverse)
		}
	}
}

// DeleteNode removes the node from the registry along with every inverse
// reference held by other nodes that pointed at it. When deleteChildren is
// set, nodes reachable over child references are removed as well.
func (m *AddressSpace) DeleteNode(node Node, deleteChildren bool) {
	m.DeleteNodes([]Node{node}, deleteChildren)
}

// DeleteNodes removes the nodes, their inverse references, and optionally
// their children.
func (m *AddressSpace) DeleteNodes(nodes []Node, deleteChildren bool) {
	m.Lock()
	defer m.Unlock()
	if deleteChildren {
		children := []Node{}
		for _, node := range nodes {
			children = append(children, m.children(node, hasChildAndSubtypes)...)
		}
		for _, child := range children {
			m.deleteNodeAndInverseReferences(child)
		}
	}
	for _, node := range nodes {
		m.deleteNodeAndInverseReferences(node)
	}
}

func (m *AddressSpace) deleteNodeAndInverseReferences(node Node) {
	for _, r := range node.References() {
		if !pairedReferenceType(r.ReferenceTypeID) {
			continue
		}
		inverse, ok := r.Inverse(m.namespaces)
		if !ok {
			continue
		}
		if target, ok := m.nodes[inverse.SourceID]; ok {
			target.RemoveReference(inverse)
		}
	}
	delete(m.nodes, node.NodeID())
}

// AddReferencePair adds the forward reference to its source node and the
// synthesized inverse to the target node under one critical section.
func (m *AddressSpace) AddReferencePair(ref ua.Reference) {
	m.Lock()
	defer m.Unlock()
	source, ok := m.nodes[ref.SourceID]
	if !ok {
		m.logger.Warnw("reference source not registered", "source", ref.SourceID)
		return
	}
	source.AddReference(ref)
	inverse, ok := ref.Inverse(m.namespaces)
	if !ok {
		m.logger.Warnw("reference target not localizable", "source", ref.SourceID, "target", ref.TargetID)
		return
	}
	if target, ok := m.nodes[inverse.SourceID]; ok {
		target.AddReference(inverse)
	} else {
		m.logger.Warnw("reference target not registered", "source", ref.SourceID, "target", ref.TargetID)
	}
}

// RemoveReferencePair removes the forward reference from its source node and
// the inverse from the target node under one critical section. Absent
// references are a no-op.
func (m *AddressSpace) RemoveReferencePair(ref ua.Reference) {
	m.Lock()
	defer m.Unlock()
	if source, ok := m.nodes[ref.SourceID]; ok {
		source.RemoveReference(ref)
	}
	inverse, ok := ref.Inverse(m.namespaces)
	if !ok {
		return
	}
	if target, ok := m.nodes[inverse.SourceID]; ok {
		target.RemoveReference(inverse)
	}
}

// pairedReferenceType reports whether the reference type takes part in
// forward/inverse pair maintenance. HasTypeDefinition and HasModellingRule
// references are one-way by convention.
func pairedReferenceType(referenceTypeID ua.NodeID) bool {
	return referenceTypeID != ua.ReferenceTypeIDHasTypeDefinition &&
		referenceTypeID != ua.ReferenceTypeIDHasModellingRule
}

// FindProperty returns the property of startNode with the given browse name.
func (m *AddressSpace) FindProperty(startNode Node, browseName ua.QualifiedName) (*VariableNode, bool) {
	uris := m.NamespaceURIs()
	for _, r := range startNode.SelectReferences(ua.HasPropertyPredicate) {
		id := ua.ToNodeID(r.TargetID, uris)
		if id == nil {
			continue
		}
		if node, ok := m.GetNode(id); ok && node.BrowseName() == browseName {
			v, ok2 := node.(*VariableNode)
			return v, ok2
		}
	}
	return nil, false
}

// FindComponent returns the component of startNode with the given browse name.
func (m *AddressSpace) FindComponent(startNode Node, browseName ua.QualifiedName) (Node, bool) {
	uris := m.NamespaceURIs()
	for _, r := range startNode.SelectReferences(ua.HasComponentPredicate) {
		id := ua.ToNodeID(r.TargetID, uris)
		if id == nil {
			continue
		}
		if node, ok := m.GetNode(id); ok && node.BrowseName() == browseName {
			return node, true
		}
	}
	return nil, false
}

// FindSuperType returns the immediate supertype of the type, or nil if the
// type is unknown or has none.
func (m *AddressSpace) FindSuperType(typeID ua.NodeID) ua.NodeID {
	node, ok := m.GetNode(typeID)
	if !ok {
		return nil
	}
	uris := m.NamespaceURIs()
	for _, r := range node.SelectReferences(ua.SubtypeOfPredicate) {
		return ua.ToNodeID(r.TargetID, uris)
	}
	return nil
}

// IsSubtype reports whether subtype is derived from supertype. The walk
// treats a revisited type id as not related, so a malformed cyclic type
// graph terminates.
func (m *AddressSpace) IsSubtype(subtype, supertype ua.NodeID) bool {
	visited := map[ua.NodeID]struct{}{}
	id := subtype
	for id != nil {
		if _, seen := visited[id]; seen {
			m.logger.Warnw("type hierarchy cycle", "type", id)
			return false
		}
		visited[id] = struct{}{}
		id = m.FindSuperType(id)
		if id != nil && id == supertype {
			return true
		}
	}
	return false
}

// Children traverses forward references of the given types breadth-first
// and returns every registered node reached.
func (m *AddressSpace) Children(node Node, withRefTypes []ua.NodeID) []Node {
	m.RLock()
	defer m.RUnlock()
	return m.children(node, withRefTypes)
}

func (m *AddressSpace) children(node Node, withRefTypes []ua.NodeID) []Node {
	children := []Node{}
	visited := map[ua.NodeID]struct{}{node.NodeID(): {}}
	var queue deque.Deque[Node]
	queue.PushBack(node)
	for queue.Len() > 0 {
		item := queue.PopFront()
		for _, r := range item.References() {
			if !r.IsForward {
				continue
			}
			if withRefTypes != nil && !containsNodeID(withRefTypes, r.ReferenceTypeID) {
				continue
			}
			id := ua.ToNodeID(r.TargetID, m.namespaces)
			if id == nil {
				continue
			}
			if _, seen := visited[id]; seen {
				continue
			}
			visited[id] = struct{}{}
			if target, ok := m.nodes[id]; ok {
				queue.PushBack(target)
				children = append(children, target)
			}
		}
	}
	return children
}

func containsNodeID(ids []ua.NodeID, id ua.NodeID) bool {
	for _, n := range ids {
		if n == id {
			return true
		}
	}
	return false
}
