package ua

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeID(t *testing.T) {
	cases := []struct {
		s    string
		want NodeID
	}{
		{"i=85", NodeIDNumeric{0, 85}},
		{"ns=2;i=47", NodeIDNumeric{2, 47}},
		{"s=Plant.Boiler1", NodeIDString{0, "Plant.Boiler1"}},
		{"ns=2;s=Plant.Boiler1", NodeIDString{2, "Plant.Boiler1"}},
		{"ns=2;g=5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c", NodeIDGUID{2, uuid.MustParse("5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c")}},
		{"ns=2;b=YWJjZA==", NodeIDOpaque{2, ByteString("abcd")}},
	}
	for _, c := range cases {
		got := ParseNodeID(c.s)
		require.NotNil(t, got, c.s)
		assert.Equal(t, c.want, got, c.s)
	}
}

func TestParseNodeIDMalformed(t *testing.T) {
	for _, s := range []string{"", "i=0", "i=junk", "ns=2", "ns=junk;i=85", "g=junk", "b=%%%", "x=1"} {
		assert.Nil(t, ParseNodeID(s), s)
	}
}

func TestNodeIDStringRoundTrip(t *testing.T) {
	ids := []NodeID{
		NodeIDNumeric{0, 2253},
		NodeIDNumeric{2, 47},
		NodeIDString{2, "Plant.Boiler1"},
		NodeIDGUID{1, uuid.MustParse("5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c")},
		NodeIDOpaque{3, ByteString("abcd")},
	}
	for _, id := range ids {
		s := id.(interface{ String() string }).String()
		assert.Equal(t, id, ParseNodeID(s), s)
	}
}

func TestToNodeIDLocalizes(t *testing.T) {
	uris := []string{NamespaceURIUA, "http://example.com/Plant/"}

	id := ToNodeID(ExpandedNodeID{0, "http://example.com/Plant/", NodeIDString{0, "Boiler1"}}, uris)
	assert.Equal(t, NodeIDString{1, "Boiler1"}, id)

	// no URI means the inner id is already local
	id = ToNodeID(NewExpandedNodeID(NodeIDNumeric{0, 85}), uris)
	assert.Equal(t, NodeIDNumeric{0, 85}, id)

	// a URI missing from the table cannot be localized
	id = ToNodeID(ExpandedNodeID{0, "http://elsewhere/", NodeIDString{0, "Boiler1"}}, uris)
	assert.Nil(t, id)
}

func TestToExpandedNodeID(t *testing.T) {
	uris := []string{NamespaceURIUA, "http://example.com/Plant/"}

	x := ToExpandedNodeID(NodeIDString{1, "Boiler1"}, uris)
	assert.Equal(t, "http://example.com/Plant/", x.NamespaceURI)

	x = ToExpandedNodeID(NodeIDNumeric{0, 85}, uris)
	assert.Equal(t, "", x.NamespaceURI)
	assert.Equal(t, NodeIDNumeric{0, 85}, x.NodeID)
}

func TestParseExpandedNodeID(t *testing.T) {
	x := ParseExpandedNodeID("nsu=http://example.com/Plant/;s=Boiler1")
	assert.Equal(t, "http://example.com/Plant/", x.NamespaceURI)
	assert.Equal(t, NodeIDString{0, "Boiler1"}, x.NodeID)
	assert.Equal(t, "nsu=http://example.com/Plant/;s=Boiler1", x.String())

	x = ParseExpandedNodeID("svr=3;i=85")
	assert.Equal(t, uint32(3), x.ServerIndex)
	assert.Equal(t, NodeIDNumeric{0, 85}, x.NodeID)
}

func TestReferenceInverse(t *testing.T) {
	uris := []string{NamespaceURIUA, "http://example.com/Plant/"}
	a := NodeIDString{1, "A"}
	b := NodeIDString{1, "B"}

	fwd := NewReference(a, ReferenceTypeIDHasComponent, NewExpandedNodeID(b), true)
	inv, ok := fwd.Inverse(uris)
	require.True(t, ok)
	assert.Equal(t, b, inv.SourceID)
	assert.Equal(t, ReferenceTypeIDHasComponent, inv.ReferenceTypeID)
	assert.Equal(t, NewExpandedNodeID(a), inv.TargetID)
	assert.False(t, inv.IsForward)

	// the inverse of the inverse is the original edge
	back, ok := inv.Inverse(uris)
	require.True(t, ok)
	assert.Equal(t, fwd, back)

	// targets qualified by a URI localize against the table
	fwd = NewReference(a, ReferenceTypeIDOrganizes, ExpandedNodeID{0, "http://example.com/Plant/", NodeIDString{0, "B"}}, true)
	inv, ok = fwd.Inverse(uris)
	require.True(t, ok)
	assert.Equal(t, b, inv.SourceID)

	// unknown URI cannot serve as an inverse source
	fwd = NewReference(a, ReferenceTypeIDOrganizes, ExpandedNodeID{0, "http://elsewhere/", NodeIDString{0, "B"}}, true)
	_, ok = fwd.Inverse(uris)
	assert.False(t, ok)
}

func TestReferencePredicates(t *testing.T) {
	a := NodeIDString{1, "A"}
	b := NodeIDString{1, "B"}
	fwd := NewReference(a, ReferenceTypeIDHasComponent, NewExpandedNodeID(b), true)
	inv := NewReference(b, ReferenceTypeIDHasComponent, NewExpandedNodeID(a), false)

	assert.True(t, HasComponentPredicate(fwd))
	assert.False(t, HasComponentPredicate(inv))
	assert.False(t, HasPropertyPredicate(fwd))

	sub := NewReference(a, ReferenceTypeIDHasSubtype, NewExpandedNodeID(b), false)
	assert.True(t, SubtypeOfPredicate(sub))
	assert.False(t, SubtypeOfPredicate(fwd))
}
