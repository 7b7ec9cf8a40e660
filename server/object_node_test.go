package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amine-amaach/uaspace/ua"
)

func TestObjectRelationQueries(t *testing.T) {
	m := newTestSpace(t)
	obj := buildObject(t, m, "Boiler1")
	comp := buildVariable(t, m, "Boiler1.Pressure", 1.0)
	prop := buildVariable(t, m, "Boiler1.SerialNumber", "SN-1")
	method := buildMethod(t, m, "Boiler1.Start", "Start")
	m.AddNodes([]Node{obj, comp, prop, method})

	m.AddReferencePair(ua.NewReference(obj.NodeID(), ua.ReferenceTypeIDHasComponent, ua.NewExpandedNodeID(comp.NodeID()), true))
	m.AddReferencePair(ua.NewReference(obj.NodeID(), ua.ReferenceTypeIDHasProperty, ua.NewExpandedNodeID(prop.NodeID()), true))
	m.AddReferencePair(ua.NewReference(obj.NodeID(), ua.ReferenceTypeIDHasComponent, ua.NewExpandedNodeID(method.NodeID()), true))

	comps := obj.ComponentNodes()
	require.Len(t, comps, 2)

	props := obj.PropertyNodes()
	require.Len(t, props, 1)
	assert.Equal(t, prop.NodeID(), props[0].NodeID())

	methods := obj.MethodNodes()
	require.Len(t, methods, 1)
	assert.Equal(t, method.NodeID(), methods[0].NodeID())
}

func TestTypeDefinitionNode(t *testing.T) {
	m := newTestSpace(t)
	tn := buildObjectType(t, m, "EquipmentType", ua.ObjectTypeIDBaseObjectType)
	m.AddNode(tn)

	b := NewObjectNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, "Boiler1")).
		SetBrowseName(ua.NewQualifiedName(1, "Boiler1")).
		SetDisplayName(ua.NewLocalizedText("Boiler1", "en"))
	require.NoError(t, b.SetTypeDefinition(tn.NodeID()))
	obj, err := b.Build()
	require.NoError(t, err)
	m.AddNode(obj)

	td, ok := obj.TypeDefinitionNode()
	require.True(t, ok)
	assert.Equal(t, tn.NodeID(), td.NodeID())
}

func TestRelationQueriesTolerateDanglingTargets(t *testing.T) {
	m := newTestSpace(t)
	obj := buildObject(t, m, "Boiler1")
	m.AddNode(obj)

	// component target that was never registered
	obj.AddReference(ua.NewReference(obj.NodeID(), ua.ReferenceTypeIDHasComponent,
		ua.NewExpandedNodeID(ua.NewNodeIDString(1, "Missing")), true))
	// target in a namespace the table does not know
	obj.AddReference(ua.NewReference(obj.NodeID(), ua.ReferenceTypeIDHasComponent,
		ua.ExpandedNodeID{NamespaceURI: "http://elsewhere/", NodeID: ua.NewNodeIDString(0, "X")}, true))

	assert.Empty(t, obj.ComponentNodes())
	_, ok := obj.TypeDefinitionNode()
	assert.False(t, ok) // BaseObjectType is not registered either
}

func TestAddRemoveComponentMaintainsPair(t *testing.T) {
	m := newTestSpace(t)
	parent := buildObject(t, m, "Plant")
	child := buildObject(t, m, "Boiler1")
	m.AddNodes([]Node{parent, child})

	parent.AddComponent(child)
	require.Len(t, parent.SelectReferences(ua.HasComponentPredicate), 1)
	require.Len(t, child.SelectReferences(ua.InverseOfType(ua.ReferenceTypeIDHasComponent)), 1)

	// adding again changes nothing
	parent.AddComponent(child)
	assert.Len(t, parent.SelectReferences(ua.HasComponentPredicate), 1)

	parent.RemoveComponent(child)
	assert.Empty(t, parent.SelectReferences(ua.HasComponentPredicate))
	assert.Empty(t, child.SelectReferences(ua.InverseOfType(ua.ReferenceTypeIDHasComponent)))
}

// buildMethodChainFixture assembles a three-level type hierarchy with a Start
// method declared on the base type, and an instance of the leaf type carrying
// its own Start method.
func buildMethodChainFixture(t *testing.T, m *AddressSpace) (*ObjectNode, *MethodNode, *MethodNode) {
	t.Helper()
	base := buildObjectType(t, m, "BaseEquipmentType", ua.ObjectTypeIDBaseObjectType)
	middle := buildObjectType(t, m, "MiddleEquipmentType", base.NodeID())
	leaf := buildObjectType(t, m, "LeafEquipmentType", middle.NodeID())
	decl := buildMethod(t, m, "BaseEquipmentType.Start", "Start")

	b := NewObjectNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, "Pump1")).
		SetBrowseName(ua.NewQualifiedName(1, "Pump1")).
		SetDisplayName(ua.NewLocalizedText("Pump1", "en"))
	require.NoError(t, b.SetTypeDefinition(leaf.NodeID()))
	instance, err := b.Build()
	require.NoError(t, err)
	method := buildMethod(t, m, "Pump1.Start", "Start")

	m.AddNodes([]Node{base, middle, leaf, decl, instance, method})
	m.AddReferencePair(ua.NewReference(base.NodeID(), ua.ReferenceTypeIDHasComponent, ua.NewExpandedNodeID(decl.NodeID()), true))
	m.AddReferencePair(ua.NewReference(instance.NodeID(), ua.ReferenceTypeIDHasComponent, ua.NewExpandedNodeID(method.NodeID()), true))
	return instance, method, decl
}

func TestFindMethodNodeByInstanceID(t *testing.T) {
	m := newTestSpace(t)
	instance, method, _ := buildMethodChainFixture(t, m)

	got, ok := instance.FindMethodNode(method.NodeID())
	require.True(t, ok)
	assert.Same(t, method, got)
}

func TestFindMethodNodeByDeclarationID(t *testing.T) {
	m := newTestSpace(t)
	instance, method, decl := buildMethodChainFixture(t, m)

	// the declaration lives two supertype levels above the instance's type
	got, ok := instance.FindMethodNode(decl.NodeID())
	require.True(t, ok)
	assert.Same(t, method, got)
}

func TestFindMethodNodeUnknownID(t *testing.T) {
	m := newTestSpace(t)
	instance, _, _ := buildMethodChainFixture(t, m)

	_, ok := instance.FindMethodNode(ua.NewNodeIDString(1, "NoSuchMethod"))
	assert.False(t, ok)
	_, ok = instance.FindMethodNode(nil)
	assert.False(t, ok)
}

func TestFindMethodNodeTerminatesOnTypeCycle(t *testing.T) {
	m := newTestSpace(t)
	// two types declared as each other's supertype
	t1 := buildObjectType(t, m, "T1", ua.NewNodeIDString(1, "T2"))
	t2 := buildObjectType(t, m, "T2", t1.NodeID())
	b := NewObjectNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, "Cyclic")).
		SetBrowseName(ua.NewQualifiedName(1, "Cyclic")).
		SetDisplayName(ua.NewLocalizedText("Cyclic", "en"))
	require.NoError(t, b.SetTypeDefinition(t1.NodeID()))
	instance, err := b.Build()
	require.NoError(t, err)
	method := buildMethod(t, m, "Cyclic.Start", "Start")
	m.AddNodes([]Node{t1, t2, instance, method})
	m.AddReferencePair(ua.NewReference(instance.NodeID(), ua.ReferenceTypeIDHasComponent, ua.NewExpandedNodeID(method.NodeID()), true))

	_, ok := instance.FindMethodNode(ua.NewNodeIDString(1, "NotDeclaredAnywhere"))
	assert.False(t, ok)
}

func TestEventNotifierChangeNotifies(t *testing.T) {
	m := newTestSpace(t)
	obj := buildObject(t, m, "Boiler1")
	rec := &changeRecorder{}
	obj.AddAttributeListener(rec)

	obj.SetEventNotifier(ua.EventNotifierSubscribeToEvents)
	assert.Equal(t, ua.EventNotifierSubscribeToEvents, obj.EventNotifier())

	changes := rec.snapshot()
	require.Len(t, changes, 1)
	assert.Equal(t, ua.AttributeIDEventNotifier, changes[0].attributeID)
}
