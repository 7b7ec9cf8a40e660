package ua

import "time"

// Variant stores a single value or slice of the built-in types:
//
//	bool, int8, uint8, int16, uint16, int32, uint32,
//	int64, uint64, float32, float64, string,
//	time.Time, uuid.UUID, ByteString, NodeID,
//	ExpandedNodeID, StatusCode, QualifiedName, LocalizedText
type Variant interface{}

// StatusCode is the severity and cause associated with a value.
type StatusCode uint32

// Good is the non-error StatusCode.
const Good StatusCode = 0

// DataValue holds the value, quality and timestamps of a Variable node.
type DataValue struct {
	Value           Variant
	StatusCode      StatusCode
	SourceTimestamp time.Time
	ServerTimestamp time.Time
}

// NewDataValue constructs a DataValue.
func NewDataValue(value Variant, status StatusCode, sourceTimestamp, serverTimestamp time.Time) DataValue {
	return DataValue{value, status, sourceTimestamp, serverTimestamp}
}

// NewDataValueNow constructs a DataValue stamped with the current time.
func NewDataValueNow(value Variant) DataValue {
	now := time.Now().UTC()
	return DataValue{value, Good, now, now}
}

// NilDataValue is the nil value.
var NilDataValue = DataValue{}
