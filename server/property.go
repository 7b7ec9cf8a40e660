package server

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/amine-amaach/uaspace/ua"
)

// QualifiedProperty describes a property child node of an owning node as a
// strongly-typed field: browse name qualified by namespace URI, declared
// data type and value rank, and the native Go type T of the stored value.
type QualifiedProperty[T any] struct {
	NamespaceURI string
	Name         string
	DataTypeID   ua.NodeID
	ValueRank    int32
}

// browseName localizes the descriptor's namespace URI against the table.
func (p QualifiedProperty[T]) browseName(uris []string) (ua.QualifiedName, bool) {
	for i, uri := range uris {
		if uri == p.NamespaceURI {
			return ua.NewQualifiedName(uint16(i), p.Name), true
		}
	}
	return ua.QualifiedName{}, false
}

// propertyChild locates the Variable child of owner linked by a forward
// HasProperty reference with the given browse name.
func propertyChild(owner Node, browseName ua.QualifiedName) (*VariableNode, bool) {
	mgr := owner.manager()
	if mgr == nil {
		return nil, false
	}
	uris := mgr.NamespaceURIs()
	for _, r := range owner.SelectReferences(ua.HasPropertyPredicate) {
		id := ua.ToNodeID(r.TargetID, uris)
		if id == nil {
			continue
		}
		node, ok := mgr.GetNode(id)
		if !ok || node.BrowseName() != browseName {
			continue
		}
		v, ok := node.(*VariableNode)
		return v, ok
	}
	return nil, false
}

// GetProperty reads the property child of owner described by p. Returns
// false if the property node is absent, or present with a value that is not
// a T; a mismatched stored type is treated as absent, never as an error, to
// tolerate partially-initialized graphs.
func GetProperty[T any](owner Node, p QualifiedProperty[T]) (T, bool) {
	var zero T
	mgr := owner.manager()
	if mgr == nil {
		return zero, false
	}
	browseName, ok := p.browseName(mgr.NamespaceURIs())
	if !ok {
		return zero, false
	}
	child, ok := propertyChild(owner, browseName)
	if !ok {
		return zero, false
	}
	value, ok := child.Value().Value.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

// nodeRegistry is the upsert surface SetProperty needs from the owning
// address space.
type nodeRegistry interface {
	AddressSpaceManager
	ReferencePairManager
	AddNamespace(nsu string) uint16
	AddNode(node Node)
}

// SetProperty writes the property child of owner described by p, creating
// the Variable node, its PropertyType type definition and the HasProperty
// reference pair on first write. Subsequent writes overwrite the value in
// place; the operation never creates a duplicate property.
func SetProperty[T any](owner Node, p QualifiedProperty[T], value T) error {
	mgr := owner.manager()
	reg, ok := mgr.(nodeRegistry)
	if !ok {
		return errors.Errorf("node %s is not attached to a node registry", owner.NodeID())
	}
	ns := reg.AddNamespace(p.NamespaceURI)
	browseName := ua.NewQualifiedName(ns, p.Name)

	if child, ok := propertyChild(owner, browseName); ok {
		child.SetValue(ua.NewDataValueNow(value))
		return nil
	}

	builder := NewVariableNodeBuilder(reg)
	builder.SetNodeID(ua.NewNodeIDString(ns, fmt.Sprintf("%v.%s", owner.NodeID(), p.Name))).
		SetBrowseName(browseName).
		SetDisplayName(ua.NewLocalizedText(p.Name, "")).
		SetDataType(p.DataTypeID).
		SetValueRank(p.ValueRank).
		SetValue(ua.NewDataValueNow(value))
	if err := builder.SetTypeDefinition(ua.VariableTypeIDPropertyType); err != nil {
		return err
	}
	child, err := builder.Build()
	if err != nil {
		return errors.Wrapf(err, "building property %s", p.Name)
	}
	reg.AddNode(child)
	reg.AddReferencePair(ua.NewReference(
		owner.NodeID(),
		ua.ReferenceTypeIDHasProperty,
		ua.NewExpandedNodeID(child.NodeID()),
		true,
	))
	return nil
}
