package server

import (
	"github.com/amine-amaach/uaspace/ua"
)

// Standard properties of Object nodes.
var (
	// PropertyNodeVersion tracks structural changes to a node's references.
	PropertyNodeVersion = QualifiedProperty[string]{
		NamespaceURI: ua.NamespaceURIUA,
		Name:         "NodeVersion",
		DataTypeID:   ua.DataTypeIDString,
		ValueRank:    ua.ValueRankScalar,
	}

	// PropertyIcon holds an image that clients may display for the node.
	PropertyIcon = QualifiedProperty[ua.ByteString]{
		NamespaceURI: ua.NamespaceURIUA,
		Name:         "Icon",
		DataTypeID:   ua.DataTypeIDImage,
		ValueRank:    ua.ValueRankScalar,
	}
)

// NodeVersion returns the NodeVersion property, or false if unset.
func (n *ObjectNode) NodeVersion() (string, bool) {
	return GetProperty(n, PropertyNodeVersion)
}

// SetNodeVersion upserts the NodeVersion property.
func (n *ObjectNode) SetNodeVersion(version string) error {
	return SetProperty(n, PropertyNodeVersion, version)
}

// Icon returns the Icon property, or false if unset.
func (n *ObjectNode) Icon() (ua.ByteString, bool) {
	return GetProperty(n, PropertyIcon)
}

// SetIcon upserts the Icon property.
func (n *ObjectNode) SetIcon(icon ua.ByteString) error {
	return SetProperty(n, PropertyIcon, icon)
}
