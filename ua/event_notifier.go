package ua

// EventNotifier flags for the EventNotifier attribute. Bits not listed here
// are reserved and must be zero.
const (
	EventNotifierNone              byte = 0x0
	EventNotifierSubscribeToEvents byte = 0x1
	EventNotifierHistoryRead       byte = 0x4
	EventNotifierHistoryWrite      byte = 0x8
)
