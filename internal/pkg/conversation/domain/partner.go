package conversation

// PartnerKind tags how a caller-supplied partner identifier should be
// interpreted.
type PartnerKind int

const (
	// PartnerAny is an untagged identifier that may name either a worker
	// profile or an account. Resolution prefers the profile interpretation:
	// the two id spaces overlap, and treating a profile id as an account id
	// would silently route to the wrong party.
	PartnerAny PartnerKind = iota

	// PartnerProfile names a worker profile id only.
	PartnerProfile

	// PartnerAccount names an account id only.
	PartnerAccount
)

// PartnerRef is the tagged reference a client supplies to name its
// conversation partner. It is resolved exactly once, at the boundary, into a
// canonical account id; downstream code never sees the raw identifier.
type PartnerRef struct {
	Kind PartnerKind
	ID   string
}
