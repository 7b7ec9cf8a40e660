package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/amine-amaach/uaspace/server"
	"github.com/amine-amaach/uaspace/ua"
)

// PlantService assembles the demo plant address space: an equipment type
// hierarchy with a Start method declared on the base equipment type, a
// Plant folder, and equipment instances created from configuration.
type PlantService struct {
	Space  *server.AddressSpace
	logger *zap.SugaredLogger

	nsi        uint16
	pumpTypeID ua.NodeID
	plant      *server.ObjectNode

	// SerialNumber is upserted on every equipment instance.
	SerialNumber server.QualifiedProperty[string]
}

// NewPlantService builds the type hierarchy and the Plant folder into a new
// address space registered under namespaceURI.
func NewPlantService(namespaceURI string, logger *zap.SugaredLogger) (*PlantService, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	space := server.NewAddressSpace(namespaceURI, logger)
	nsi := space.AddNamespace(namespaceURI)

	svc := &PlantService{
		Space:  space,
		logger: logger,
		nsi:    nsi,
		SerialNumber: server.QualifiedProperty[string]{
			NamespaceURI: namespaceURI,
			Name:         "SerialNumber",
			DataTypeID:   ua.DataTypeIDString,
			ValueRank:    ua.ValueRankScalar,
		},
	}
	if err := svc.buildTypes(); err != nil {
		return nil, err
	}
	if err := svc.buildPlantFolder(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (svc *PlantService) buildTypes() error {
	equipmentType := server.NewObjectTypeNodeBuilder(svc.Space)
	equipmentType.SetNodeID(ua.NewNodeIDString(svc.nsi, "EquipmentType")).
		SetBrowseName(ua.NewQualifiedName(svc.nsi, "EquipmentType")).
		SetDisplayName(ua.NewLocalizedText("EquipmentType", "en"))
	if err := equipmentType.SetSuperType(ua.ObjectTypeIDBaseObjectType); err != nil {
		return err
	}
	et, err := equipmentType.Build()
	if err != nil {
		return errors.Wrap(err, "building EquipmentType")
	}

	// the Start declaration lives on the base equipment type only;
	// instances carry their own Start instance nodes.
	startDecl, err := server.NewMethodNodeBuilder(svc.Space).
		SetNodeID(ua.NewNodeIDString(svc.nsi, "EquipmentType.Start")).
		SetBrowseName(ua.NewQualifiedName(svc.nsi, "Start")).
		SetDisplayName(ua.NewLocalizedText("Start", "en")).
		Build()
	if err != nil {
		return errors.Wrap(err, "building Start declaration")
	}

	pumpType := server.NewObjectTypeNodeBuilder(svc.Space)
	pumpType.SetNodeID(ua.NewNodeIDString(svc.nsi, "PumpType")).
		SetBrowseName(ua.NewQualifiedName(svc.nsi, "PumpType")).
		SetDisplayName(ua.NewLocalizedText("PumpType", "en"))
	if err := pumpType.SetSuperType(et.NodeID()); err != nil {
		return err
	}
	pt, err := pumpType.Build()
	if err != nil {
		return errors.Wrap(err, "building PumpType")
	}

	svc.Space.AddNodes([]server.Node{et, startDecl, pt})
	svc.Space.AddReferencePair(ua.NewReference(
		et.NodeID(),
		ua.ReferenceTypeIDHasComponent,
		ua.NewExpandedNodeID(startDecl.NodeID()),
		true,
	))
	svc.pumpTypeID = pt.NodeID()
	svc.logger.Debugw("equipment type hierarchy built", "base", et.NodeID(), "pump", pt.NodeID())
	return nil
}

func (svc *PlantService) buildPlantFolder() error {
	builder := server.NewObjectNodeBuilder(svc.Space)
	builder.SetNodeID(ua.NewNodeIDString(svc.nsi, "Plant")).
		SetBrowseName(ua.NewQualifiedName(svc.nsi, "Plant")).
		SetDisplayName(ua.NewLocalizedText("Plant", "en")).
		SetDescription(ua.NewLocalizedText("A parent folder for the plant equipment.", "en")).
		SetEventNotifier(ua.EventNotifierSubscribeToEvents)
	if err := builder.SetTypeDefinition(ua.ObjectTypeIDFolderType); err != nil {
		return err
	}
	plant, err := builder.Build()
	if err != nil {
		return errors.Wrap(err, "building Plant folder")
	}
	svc.Space.AddNode(plant)
	svc.plant = plant
	return nil
}

// Plant returns the Plant folder node.
func (svc *PlantService) Plant() *server.ObjectNode {
	return svc.plant
}

// NamespaceIndex returns the index of the service's namespace URI in the
// address space's namespace table.
func (svc *PlantService) NamespaceIndex() uint16 {
	return svc.nsi
}

// CreateEquipmentNode builds a pump instance named name, with its own Start
// method instance and a Measurement variable, registers it and links it to
// the Plant folder. Returns the instance and its measurement variable.
func (svc *PlantService) CreateEquipmentNode(name string) (*server.ObjectNode, *server.VariableNode, error) {
	builder := server.NewObjectNodeBuilder(svc.Space)
	builder.SetNodeID(ua.NewNodeIDString(svc.nsi, name)).
		SetBrowseName(ua.NewQualifiedName(svc.nsi, name)).
		SetDisplayName(ua.NewLocalizedText(name, "en")).
		SetDescription(ua.NewLocalizedText(fmt.Sprint(name, " plant equipment"), "en")).
		SetEventNotifier(ua.EventNotifierSubscribeToEvents)
	if err := builder.SetTypeDefinition(svc.pumpTypeID); err != nil {
		return nil, nil, err
	}
	instance, err := builder.Build()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building equipment %s", name)
	}

	start, err := server.NewMethodNodeBuilder(svc.Space).
		SetNodeID(ua.NewNodeIDString(svc.nsi, name+".Start")).
		SetBrowseName(ua.NewQualifiedName(svc.nsi, "Start")).
		SetDisplayName(ua.NewLocalizedText("Start", "en")).
		Build()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building %s Start method", name)
	}

	measurementBuilder := server.NewVariableNodeBuilder(svc.Space)
	measurementBuilder.SetNodeID(ua.NewNodeIDString(svc.nsi, name+".Measurement")).
		SetBrowseName(ua.NewQualifiedName(svc.nsi, "Measurement")).
		SetDisplayName(ua.NewLocalizedText("Measurement", "en")).
		SetDataType(ua.DataTypeIDDouble).
		SetValueRank(ua.ValueRankScalar)
	if err := measurementBuilder.SetTypeDefinition(ua.VariableTypeIDBaseDataVariableType); err != nil {
		return nil, nil, err
	}
	measurement, err := measurementBuilder.Build()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building %s Measurement", name)
	}

	svc.Space.AddNodes([]server.Node{instance, start, measurement})
	svc.Space.AddReferencePair(ua.NewReference(
		instance.NodeID(), ua.ReferenceTypeIDHasComponent, ua.NewExpandedNodeID(start.NodeID()), true))
	svc.Space.AddReferencePair(ua.NewReference(
		instance.NodeID(), ua.ReferenceTypeIDHasComponent, ua.NewExpandedNodeID(measurement.NodeID()), true))
	svc.plant.AddComponent(instance)

	if err := server.SetProperty(instance, svc.SerialNumber, uuid.NewString()); err != nil {
		return nil, nil, errors.Wrapf(err, "setting %s serial number", name)
	}
	return instance, measurement, nil
}
