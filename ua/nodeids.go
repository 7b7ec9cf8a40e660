package ua

// Well-known NodeIDs from namespace 0 used by the address-space core.
var (
	ReferenceTypeIDOrganizes         = NodeIDNumeric{0, 35}
	ReferenceTypeIDHasEventSource    = NodeIDNumeric{0, 36}
	ReferenceTypeIDHasModellingRule  = NodeIDNumeric{0, 37}
	ReferenceTypeIDHasDescription    = NodeIDNumeric{0, 39}
	ReferenceTypeIDHasTypeDefinition = NodeIDNumeric{0, 40}
	ReferenceTypeIDHasSubtype        = NodeIDNumeric{0, 45}
	ReferenceTypeIDHasProperty       = NodeIDNumeric{0, 46}
	ReferenceTypeIDHasComponent      = NodeIDNumeric{0, 47}
	ReferenceTypeIDHasNotifier       = NodeIDNumeric{0, 48}

	ObjectTypeIDBaseObjectType = NodeIDNumeric{0, 58}
	ObjectTypeIDFolderType     = NodeIDNumeric{0, 61}

	VariableTypeIDBaseDataVariableType = NodeIDNumeric{0, 63}
	VariableTypeIDPropertyType         = NodeIDNumeric{0, 68}

	DataTypeIDBoolean       = NodeIDNumeric{0, 1}
	DataTypeIDByte          = NodeIDNumeric{0, 3}
	DataTypeIDInt32         = NodeIDNumeric{0, 6}
	DataTypeIDUInt32        = NodeIDNumeric{0, 7}
	DataTypeIDInt64         = NodeIDNumeric{0, 8}
	DataTypeIDFloat         = NodeIDNumeric{0, 10}
	DataTypeIDDouble        = NodeIDNumeric{0, 11}
	DataTypeIDString        = NodeIDNumeric{0, 12}
	DataTypeIDDateTime      = NodeIDNumeric{0, 13}
	DataTypeIDByteString    = NodeIDNumeric{0, 15}
	DataTypeIDNodeID        = NodeIDNumeric{0, 17}
	DataTypeIDLocalizedText = NodeIDNumeric{0, 21}
	DataTypeIDQualifiedName = NodeIDNumeric{0, 20}
	DataTypeIDImage         = NodeIDNumeric{0, 30}

	ObjectIDObjectsFolder = NodeIDNumeric{0, 85}
	ObjectIDTypesFolder   = NodeIDNumeric{0, 86}
	ObjectIDServer        = NodeIDNumeric{0, 2253}
)

// Namespace URIs.
const (
	NamespaceURIUA = "http://opcfoundation.org/UA/"
)
