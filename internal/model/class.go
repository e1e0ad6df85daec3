package model

// Class is a normalized object type. Parent and Interfaces hold qualified
// names, not references; relationship queries resolve them lazily through
// the injected Resolver, so an unresolvable name truncates a walk instead
// of failing it.
type Class struct {
	Name           string
	QualifiedName  string
	Parent         string // qualified parent name, "" for roots
	Abstract       bool
	HasRuntimeType bool     // registered with the dynamic type system
	Interfaces     []string // qualified names of implemented interfaces
	Constructors   []Function
	Methods        []Function
	Functions      []Function
	VirtualMethods []Function
	Properties     []Property
	Signals        []Signal
	Fields         []Field
	Doc            string

	res Resolver
}

// Bind attaches the shared resolution context. Called once by the
// repository during its attach phase, before the repository is handed to
// any reader.
func (c *Class) Bind(r Resolver) { c.res = r }

// parent resolves the direct parent, or nil when the class is a root, the
// parent is missing from the attached set, or no resolver is bound.
func (c *Class) parent() *Class {
	if c.Parent == "" || c.res == nil {
		return nil
	}
	return c.res.LookupClass(c.Parent)
}

// IsSubclassOf reports whether the qualified name identifies this class or
// any ancestor. A broken parent link terminates the walk as "no".
func (c *Class) IsSubclassOf(qualifiedName string) bool {
	if c.QualifiedName == qualifiedName {
		return true
	}
	p := c.parent()
	if p == nil {
		return false
	}
	return p.IsSubclassOf(qualifiedName)
}

// InheritanceChain returns the class and its ancestors, nearest first. The
// chain ends at the root, or at the first ancestor the attached namespace
// set cannot resolve: a closure gap truncates the chain, it does not fail.
func (c *Class) InheritanceChain() []*Class {
	chain := []*Class{c}
	for p := c.parent(); p != nil; p = p.parent() {
		chain = append(chain, p)
	}
	return chain
}

// ImplementsInterface reports whether the class or any ancestor declares
// the interface, directly or through the interface's own prerequisite
// closure.
func (c *Class) ImplementsInterface(qualifiedName string) bool {
	for _, name := range c.Interfaces {
		if name == qualifiedName {
			return true
		}
		if c.res == nil {
			continue
		}
		if iface := c.res.LookupInterface(name); iface != nil && iface.Requires(qualifiedName) {
			return true
		}
	}
	if p := c.parent(); p != nil {
		return p.ImplementsInterface(qualifiedName)
	}
	return false
}

// AllMethods returns the class's own methods followed by each ancestor's,
// nearest ancestor first. Names are not de-duplicated: shadowing and
// overriding are consumer concerns.
func (c *Class) AllMethods() []Function {
	var out []Function
	for _, cls := range c.InheritanceChain() {
		out = append(out, cls.Methods...)
	}
	return out
}

// AllProperties returns own properties followed by ancestor properties,
// nearest ancestor first, without de-duplication.
func (c *Class) AllProperties() []Property {
	var out []Property
	for _, cls := range c.InheritanceChain() {
		out = append(out, cls.Properties...)
	}
	return out
}

// AllSignals returns own signals followed by ancestor signals, nearest
// ancestor first, without de-duplication.
func (c *Class) AllSignals() []Signal {
	var out []Signal
	for _, cls := range c.InheritanceChain() {
		out = append(out, cls.Signals...)
	}
	return out
}

// DirectSubclasses scans every class in the attached set for ones whose
// parent is this class. Linear per call; namespaces hold hundreds to low
// thousands of types, so no index is kept.
func (c *Class) DirectSubclasses() []*Class {
	if c.res == nil {
		return nil
	}
	var out []*Class
	for _, cls := range c.res.Classes() {
		if cls.Parent == c.QualifiedName {
			out = append(out, cls)
		}
	}
	return out
}
