package girkit

import (
	"strings"

	"github.com/jward/girkit/internal/model"
)

// Repository owns the normalized entities of one or more attached
// namespaces and answers resolve-by-name and relationship queries over
// them. Attach every namespace before handing the repository to readers;
// after that handoff the repository is immutable and safe for concurrent
// reads without locking.
type Repository struct {
	namespaces []*model.Namespace
	byName     map[string]*model.Namespace

	classes    map[string]*model.Class
	interfaces map[string]*model.Interface
	records    map[string]*model.Record
	enums      map[string]*model.Enumeration
	flags      map[string]*model.Enumeration
	callbacks  map[string]*model.Callback
	functions  map[string]*model.Function
	constants  map[string]*model.Constant

	classList []*model.Class
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		byName:     make(map[string]*model.Namespace),
		classes:    make(map[string]*model.Class),
		interfaces: make(map[string]*model.Interface),
		records:    make(map[string]*model.Record),
		enums:      make(map[string]*model.Enumeration),
		flags:      make(map[string]*model.Enumeration),
		callbacks:  make(map[string]*model.Callback),
		functions:  make(map[string]*model.Function),
		constants:  make(map[string]*model.Constant),
	}
}

// Attach registers a namespace's entities and injects the repository into
// each class and interface as their resolution context. Attaching a
// namespace whose name is already registered is a no-op, so include graphs
// with shared dependencies attach each namespace once.
func (r *Repository) Attach(ns *model.Namespace) {
	if ns == nil {
		return
	}
	if _, ok := r.byName[ns.Name]; ok {
		return
	}
	r.namespaces = append(r.namespaces, ns)
	r.byName[ns.Name] = ns

	for _, c := range ns.Classes {
		c.Bind(r)
		r.classes[c.QualifiedName] = c
		r.classList = append(r.classList, c)
	}
	for _, i := range ns.Interfaces {
		i.Bind(r)
		r.interfaces[i.QualifiedName] = i
	}
	for _, rec := range ns.Records {
		r.records[rec.QualifiedName] = rec
	}
	for _, e := range ns.Enums {
		r.enums[e.QualifiedName] = e
	}
	for _, f := range ns.Flags {
		r.flags[f.QualifiedName] = f
	}
	for _, cb := range ns.Callbacks {
		r.callbacks[cb.QualifiedName] = cb
	}
	for _, fn := range ns.Functions {
		r.functions[fn.QualifiedName] = fn
	}
	for _, c := range ns.Constants {
		r.constants[c.QualifiedName] = c
	}
}

// Namespaces returns the attached namespaces in attach order.
func (r *Repository) Namespaces() []*model.Namespace {
	return r.namespaces
}

// Namespace returns the attached namespace with the given name, or nil.
func (r *Repository) Namespace(name string) *model.Namespace {
	return r.byName[name]
}

// ResolveClass returns the class registered under the qualified name, or
// nil when unknown. All Resolve methods report absence as nil, never an
// error; an unresolved cross-reference makes a query incomplete, not
// failed.
func (r *Repository) ResolveClass(qualifiedName string) *model.Class {
	return r.classes[qualifiedName]
}

// ResolveInterface returns the interface with the qualified name, or nil.
func (r *Repository) ResolveInterface(qualifiedName string) *model.Interface {
	return r.interfaces[qualifiedName]
}

// ResolveRecord returns the record with the qualified name, or nil.
func (r *Repository) ResolveRecord(qualifiedName string) *model.Record {
	return r.records[qualifiedName]
}

// ResolveEnum returns the plain enumeration with the qualified name, or nil.
func (r *Repository) ResolveEnum(qualifiedName string) *model.Enumeration {
	return r.enums[qualifiedName]
}

// ResolveFlags returns the flag enumeration with the qualified name, or nil.
func (r *Repository) ResolveFlags(qualifiedName string) *model.Enumeration {
	return r.flags[qualifiedName]
}

// ResolveCallback returns the callback with the qualified name, or nil.
func (r *Repository) ResolveCallback(qualifiedName string) *model.Callback {
	return r.callbacks[qualifiedName]
}

// ResolveFunction returns the free function with the qualified name, or nil.
func (r *Repository) ResolveFunction(qualifiedName string) *model.Function {
	return r.functions[qualifiedName]
}

// ResolveConstant returns the constant with the qualified name, or nil.
func (r *Repository) ResolveConstant(qualifiedName string) *model.Constant {
	return r.constants[qualifiedName]
}

// TypeKind reports which entity category a qualified name resolves to, or
// KindUnknown when no attached namespace registers it.
func (r *Repository) TypeKind(qualifiedName string) Kind {
	switch {
	case r.classes[qualifiedName] != nil:
		return KindClass
	case r.interfaces[qualifiedName] != nil:
		return KindInterface
	case r.records[qualifiedName] != nil:
		return KindRecord
	case r.enums[qualifiedName] != nil:
		return KindEnum
	case r.flags[qualifiedName] != nil:
		return KindFlags
	case r.callbacks[qualifiedName] != nil:
		return KindCallback
	case r.functions[qualifiedName] != nil:
		return KindFunction
	case r.constants[qualifiedName] != nil:
		return KindConstant
	default:
		return KindUnknown
	}
}

// FindClasses returns every attached class matching the predicate, in
// attach-then-document order.
func (r *Repository) FindClasses(pred func(*model.Class) bool) []*model.Class {
	var out []*model.Class
	for _, c := range r.classList {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// FindClassesByPrefix returns every class whose simple name starts with the
// given prefix.
func (r *Repository) FindClassesByPrefix(prefix string) []*model.Class {
	return r.FindClasses(func(c *model.Class) bool {
		return strings.HasPrefix(c.Name, prefix)
	})
}

// The repository doubles as the model.Resolver injected into classes and
// interfaces at attach time.

// LookupClass implements model.Resolver.
func (r *Repository) LookupClass(qualifiedName string) *model.Class {
	return r.classes[qualifiedName]
}

// LookupInterface implements model.Resolver.
func (r *Repository) LookupInterface(qualifiedName string) *model.Interface {
	return r.interfaces[qualifiedName]
}

// Classes implements model.Resolver.
func (r *Repository) Classes() []*model.Class {
	return r.classList
}
