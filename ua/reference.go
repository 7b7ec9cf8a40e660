package ua

// Reference is a typed, directed edge from a source node to a target node.
// A forward reference and its inverse share the reference type and have
// source and target swapped. Reference values are immutable.
type Reference struct {
	SourceID        NodeID
	ReferenceTypeID NodeID
	TargetID        ExpandedNodeID
	IsForward       bool
}

// NewReference constructs a Reference.
func NewReference(sourceID, referenceTypeID NodeID, targetID ExpandedNodeID, isForward bool) Reference {
	return Reference{sourceID, referenceTypeID, targetID, isForward}
}

// Inverse returns the paired inverse reference, localizing the target against
// the namespace table so it can serve as the inverse edge's source. Returns
// false if the target cannot be localized.
func (r Reference) Inverse(namespaceURIs []string) (Reference, bool) {
	targetID := ToNodeID(r.TargetID, namespaceURIs)
	if targetID == nil {
		return Reference{}, false
	}
	return Reference{
		SourceID:        targetID,
		ReferenceTypeID: r.ReferenceTypeID,
		TargetID:        NewExpandedNodeID(r.SourceID),
		IsForward:       !r.IsForward,
	}, true
}

// ReferencePredicate selects references during graph queries. Predicates
// compose with plain boolean logic so new filters never require new node
// methods.
type ReferencePredicate func(Reference) bool

// ForwardOfType matches forward references of the given reference type.
func ForwardOfType(referenceTypeID NodeID) ReferencePredicate {
	return func(r Reference) bool {
		return r.IsForward && r.ReferenceTypeID == referenceTypeID
	}
}

// InverseOfType matches inverse references of the given reference type.
func InverseOfType(referenceTypeID NodeID) ReferencePredicate {
	return func(r Reference) bool {
		return !r.IsForward && r.ReferenceTypeID == referenceTypeID
	}
}

// Standard traversal predicates.
var (
	HasComponentPredicate      = ForwardOfType(ReferenceTypeIDHasComponent)
	HasPropertyPredicate       = ForwardOfType(ReferenceTypeIDHasProperty)
	HasTypeDefinitionPredicate = ForwardOfType(ReferenceTypeIDHasTypeDefinition)
	HasDescriptionPredicate    = ForwardOfType(ReferenceTypeIDHasDescription)
	HasEventSourcePredicate    = ForwardOfType(ReferenceTypeIDHasEventSource)
	HasNotifierPredicate       = ForwardOfType(ReferenceTypeIDHasNotifier)
	OrganizesPredicate         = ForwardOfType(ReferenceTypeIDOrganizes)

	// SubtypeOfPredicate matches the inverse HasSubtype reference, i.e. the
	// edge from a type to its supertype.
	SubtypeOfPredicate = InverseOfType(ReferenceTypeIDHasSubtype)
)
