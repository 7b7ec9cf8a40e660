package ua

// AttributeID selects which attribute of a node to read or write.
const (
	AttributeIDNodeID          uint32 = 1
	AttributeIDNodeClass       uint32 = 2
	AttributeIDBrowseName      uint32 = 3
	AttributeIDDisplayName     uint32 = 4
	AttributeIDDescription     uint32 = 5
	AttributeIDWriteMask       uint32 = 6
	AttributeIDUserWriteMask   uint32 = 7
	AttributeIDIsAbstract      uint32 = 8
	AttributeIDSymmetric       uint32 = 9
	AttributeIDInverseName     uint32 = 10
	AttributeIDContainsNoLoops uint32 = 11
	AttributeIDEventNotifier   uint32 = 12
	AttributeIDValue           uint32 = 13
	AttributeIDDataType        uint32 = 14
	AttributeIDValueRank       uint32 = 15
	AttributeIDArrayDimensions uint32 = 16
	AttributeIDExecutable      uint32 = 21
	AttributeIDUserExecutable  uint32 = 22
)
