package server

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amine-amaach/uaspace/ua"
)

const testURI = "http://example.com/Plant/"

func newTestSpace(t *testing.T) *AddressSpace {
	t.Helper()
	return NewAddressSpace(testURI, nil)
}

func buildObject(t *testing.T, m *AddressSpace, id string) *ObjectNode {
	t.Helper()
	b := NewObjectNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, id)).
		SetBrowseName(ua.NewQualifiedName(1, id)).
		SetDisplayName(ua.NewLocalizedText(id, "en"))
	require.NoError(t, b.SetTypeDefinition(ua.ObjectTypeIDBaseObjectType))
	n, err := b.Build()
	require.NoError(t, err)
	return n
}

func buildVariable(t *testing.T, m *AddressSpace, id string, value ua.Variant) *VariableNode {
	t.Helper()
	b := NewVariableNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, id)).
		SetBrowseName(ua.NewQualifiedName(1, id)).
		SetDisplayName(ua.NewLocalizedText(id, "en")).
		SetDataType(ua.DataTypeIDDouble).
		SetValue(ua.NewDataValueNow(value))
	require.NoError(t, b.SetTypeDefinition(ua.VariableTypeIDBaseDataVariableType))
	n, err := b.Build()
	require.NoError(t, err)
	return n
}

func buildMethod(t *testing.T, m *AddressSpace, id, browseName string) *MethodNode {
	t.Helper()
	n, err := NewMethodNodeBuilder(m).
		SetNodeID(ua.NewNodeIDString(1, id)).
		SetBrowseName(ua.NewQualifiedName(1, browseName)).
		SetDisplayName(ua.NewLocalizedText(browseName, "en")).
		Build()
	require.NoError(t, err)
	return n
}

func buildObjectType(t *testing.T, m *AddressSpace, id string, superTypeID ua.NodeID) *ObjectTypeNode {
	t.Helper()
	b := NewObjectTypeNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, id)).
		SetBrowseName(ua.NewQualifiedName(1, id)).
		SetDisplayName(ua.NewLocalizedText(id, "en"))
	if superTypeID != nil {
		require.NoError(t, b.SetSuperType(superTypeID))
	}
	n, err := b.Build()
	require.NoError(t, err)
	return n
}

func TestObjectBuilderRequiredFields(t *testing.T) {
	m := newTestSpace(t)

	_, err := NewObjectNodeBuilder(m).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "NodeID")

	_, err = NewObjectNodeBuilder(m).
		SetNodeID(ua.NewNodeIDString(1, "A")).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "BrowseName")

	_, err = NewObjectNodeBuilder(m).
		SetNodeID(ua.NewNodeIDString(1, "A")).
		SetBrowseName(ua.NewQualifiedName(1, "A")).
		Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "DisplayName")
}

func TestObjectBuilderTypeDefinitionCardinality(t *testing.T) {
	m := newTestSpace(t)

	// zero HasTypeDefinition references
	b := NewObjectNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, "A")).
		SetBrowseName(ua.NewQualifiedName(1, "A")).
		SetDisplayName(ua.NewLocalizedText("A", "en"))
	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReferenceCardinality))

	// two HasTypeDefinition references
	b = NewObjectNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, "A")).
		SetBrowseName(ua.NewQualifiedName(1, "A")).
		SetDisplayName(ua.NewLocalizedText("A", "en"))
	require.NoError(t, b.SetTypeDefinition(ua.ObjectTypeIDBaseObjectType))
	require.NoError(t, b.SetTypeDefinition(ua.ObjectTypeIDFolderType))
	_, err = b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReferenceCardinality))

	// exactly one succeeds
	n := buildObject(t, m, "A")
	assert.Equal(t, ua.NodeClassObject, n.NodeClass())
	assert.Len(t, n.SelectReferences(ua.HasTypeDefinitionPredicate), 1)
}

func TestSetTypeDefinitionRequiresNodeID(t *testing.T) {
	m := newTestSpace(t)
	b := NewObjectNodeBuilder(m)
	err := b.SetTypeDefinition(ua.ObjectTypeIDBaseObjectType)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNodeIDNotSet))

	tb := NewObjectTypeNodeBuilder(m)
	err = tb.SetSuperType(ua.ObjectTypeIDBaseObjectType)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNodeIDNotSet))
}

func TestVariableBuilderDefaults(t *testing.T) {
	m := newTestSpace(t)
	v := buildVariable(t, m, "V", 42.0)
	assert.Equal(t, ua.ValueRankScalar, v.ValueRank())
	assert.Equal(t, ua.DataTypeIDDouble, v.DataType())
	assert.Equal(t, 42.0, v.Value().Value)
}

func TestVariableBuilderTypeDefinitionRequired(t *testing.T) {
	m := newTestSpace(t)
	b := NewVariableNodeBuilder(m)
	b.SetNodeID(ua.NewNodeIDString(1, "V")).
		SetBrowseName(ua.NewQualifiedName(1, "V")).
		SetDisplayName(ua.NewLocalizedText("V", "en"))
	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReferenceCardinality))
}

func TestMethodBuilderDefaultsExecutable(t *testing.T) {
	m := newTestSpace(t)
	mn := buildMethod(t, m, "M", "M")
	assert.True(t, mn.Executable())
	assert.Nil(t, mn.CallMethodHandler())
}

func TestObjectTypeBuilderSuperType(t *testing.T) {
	m := newTestSpace(t)
	tn := buildObjectType(t, m, "EquipmentType", ua.ObjectTypeIDBaseObjectType)
	refs := tn.SelectReferences(ua.SubtypeOfPredicate)
	require.Len(t, refs, 1)
	assert.Equal(t, ua.NewExpandedNodeID(ua.ObjectTypeIDBaseObjectType), refs[0].TargetID)
}
