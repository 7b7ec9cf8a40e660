package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amine-amaach/uaspace/server"
	"github.com/amine-amaach/uaspace/ua"
)

const plantURI = "http://example.com/Plant/"

func TestNewPlantServiceBuildsHierarchy(t *testing.T) {
	svc, err := NewPlantService(plantURI, nil)
	require.NoError(t, err)

	nsi := svc.NamespaceIndex()
	assert.Equal(t, uint16(1), nsi)

	plant, ok := svc.Space.GetObject(ua.NewNodeIDString(nsi, "Plant"))
	require.True(t, ok)
	assert.Equal(t, svc.Plant(), plant)

	assert.True(t, svc.Space.IsSubtype(
		ua.NewNodeIDString(nsi, "PumpType"),
		ua.NewNodeIDString(nsi, "EquipmentType")))
}

func TestCreateEquipmentNode(t *testing.T) {
	svc, err := NewPlantService(plantURI, nil)
	require.NoError(t, err)
	nsi := svc.NamespaceIndex()

	instance, measurement, err := svc.CreateEquipmentNode("Boiler")
	require.NoError(t, err)

	// registered and linked under the Plant folder
	_, ok := svc.Space.GetObject(instance.NodeID())
	require.True(t, ok)
	found := false
	for _, c := range svc.Plant().ComponentNodes() {
		if c.NodeID() == instance.NodeID() {
			found = true
		}
	}
	assert.True(t, found)

	// the measurement variable hangs off the instance
	comp, ok := svc.Space.FindComponent(instance, ua.NewQualifiedName(nsi, "Measurement"))
	require.True(t, ok)
	assert.Equal(t, measurement.NodeID(), comp.NodeID())

	// the type-level Start declaration resolves to the instance's method
	method, ok := instance.FindMethodNode(ua.NewNodeIDString(nsi, "EquipmentType.Start"))
	require.True(t, ok)
	assert.Equal(t, ua.NewNodeIDString(nsi, "Boiler.Start"), method.NodeID())

	// serial number is a well-formed uuid
	serial, ok := server.GetProperty(instance, svc.SerialNumber)
	require.True(t, ok)
	_, err = uuid.Parse(serial)
	assert.NoError(t, err)
}
