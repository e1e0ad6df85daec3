package model

// Resolver is the shared resolution context injected into classes and
// interfaces at attach time. Entities hold cross-references as qualified
// name strings only; every relationship walk goes through a Resolver, so no
// entity ever holds a direct reference to another and reference cycles
// cannot form.
//
// Implementations must be fully populated before any entity method runs;
// the repository guarantees this by construction ordering.
type Resolver interface {
	// LookupClass returns the class registered under the qualified name, or
	// nil when the name is unknown to the attached namespace set.
	LookupClass(qualifiedName string) *Class

	// LookupInterface returns the interface registered under the qualified
	// name, or nil.
	LookupInterface(qualifiedName string) *Interface

	// Classes returns every class in the attached namespace set, in
	// attach-then-document order.
	Classes() []*Class
}
