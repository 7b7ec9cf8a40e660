package ua

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpandedNodeID identifies a node, optionally qualifying the namespace by
// URI rather than by local table index. Reference targets are stored in this
// form so they survive namespace-table differences between address spaces.
type ExpandedNodeID struct {
	ServerIndex  uint32
	NamespaceURI string
	NodeID       NodeID
}

// NewExpandedNodeID wraps a local NodeID.
func NewExpandedNodeID(nodeID NodeID) ExpandedNodeID {
	return ExpandedNodeID{0, "", nodeID}
}

// NilExpandedNodeID is the nil value.
var NilExpandedNodeID = ExpandedNodeID{0, "", nil}

// ParseExpandedNodeID returns an ExpandedNodeID from a string representation.
//   - ParseExpandedNodeID("i=85")
//   - ParseExpandedNodeID("nsu=http://example.com/Plant/;s=Boiler1")
func ParseExpandedNodeID(s string) ExpandedNodeID {
	var svr uint64
	var err error
	if strings.HasPrefix(s, "svr=") {
		pos := strings.Index(s, ";")
		if pos == -1 {
			return NilExpandedNodeID
		}
		svr, err = strconv.ParseUint(s[4:pos], 10, 32)
		if err != nil {
			return NilExpandedNodeID
		}
		s = s[pos+1:]
	}
	var nsu string
	if strings.HasPrefix(s, "nsu=") {
		pos := strings.Index(s, ";")
		if pos == -1 {
			return NilExpandedNodeID
		}
		nsu = s[4:pos]
		s = s[pos+1:]
	}
	return ExpandedNodeID{uint32(svr), nsu, ParseNodeID(s)}
}

// String returns a string representation, e.g. "nsu=http://example.com/Plant/;s=Boiler1"
func (n ExpandedNodeID) String() string {
	b := new(strings.Builder)
	if n.ServerIndex > 0 {
		fmt.Fprintf(b, "svr=%d;", n.ServerIndex)
	}
	if len(n.NamespaceURI) > 0 {
		fmt.Fprintf(b, "nsu=%s;", n.NamespaceURI)
	}
	switch n2 := n.NodeID.(type) {
	case NodeIDNumeric:
		b.WriteString(n2.String())
	case NodeIDString:
		b.WriteString(n2.String())
	case NodeIDGUID:
		b.WriteString(n2.String())
	case NodeIDOpaque:
		b.WriteString(n2.String())
	default:
		b.WriteString("i=0")
	}
	return b.String()
}

// ToNodeID localizes an ExpandedNodeID by looking up its NamespaceURI in the
// namespace table and substituting the table index. Returns nil if the URI
// is not present in the table.
func ToNodeID(n ExpandedNodeID, namespaceURIs []string) NodeID {
	if n.NamespaceURI == "" {
		return n.NodeID
	}
	ns := -1
	for i, uri := range namespaceURIs {
		if uri == n.NamespaceURI {
			ns = i
			break
		}
	}
	if ns < 0 {
		return nil
	}
	switch n2 := n.NodeID.(type) {
	case NodeIDNumeric:
		return NodeIDNumeric{uint16(ns), n2.ID}
	case NodeIDString:
		return NodeIDString{uint16(ns), n2.ID}
	case NodeIDGUID:
		return NodeIDGUID{uint16(ns), n2.ID}
	case NodeIDOpaque:
		return NodeIDOpaque{uint16(ns), n2.ID}
	default:
		return nil
	}
}
