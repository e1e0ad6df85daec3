package model

// Interface is a normalized capability type. Prerequisites hold qualified
// names of interfaces any implementor must also satisfy, mirroring class
// inheritance for capability sets.
type Interface struct {
	Name           string
	QualifiedName  string
	Prerequisites  []string // qualified interface names
	Methods        []Function
	VirtualMethods []Function
	Functions      []Function
	Properties     []Property
	Signals        []Signal
	Doc            string

	res Resolver
}

// Bind attaches the shared resolution context.
func (i *Interface) Bind(r Resolver) { i.res = r }

// Requires reports whether the qualified name is a prerequisite of this
// interface, directly or transitively. Prerequisites missing from the
// attached set truncate that branch of the walk.
func (i *Interface) Requires(qualifiedName string) bool {
	for _, name := range i.Prerequisites {
		if name == qualifiedName {
			return true
		}
		if i.res == nil {
			continue
		}
		if pre := i.res.LookupInterface(name); pre != nil && pre.Requires(qualifiedName) {
			return true
		}
	}
	return false
}
