// Package girxml decodes GObject-Introspection XML into raw, loosely-typed
// records. It performs no name qualification and no cross-referencing; the
// only hard requirement it enforces is that a document has a root
// <repository> element containing at least one <namespace>. Everything else
// that is absent decodes to an empty value, never an error.
package girxml

import (
	"encoding/xml"
	"fmt"
)

// SchemaError reports a structurally unusable document: a missing or
// malformed root element, or a root with no namespace. Sparse-but-valid
// documents never produce one.
type SchemaError struct {
	Msg string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("girxml: %s: %v", e.Msg, e.Err)
	}
	return "girxml: " + e.Msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Parse decodes one introspection document. The returned Document retains
// every namespace in the file (the format permits exactly one in practice)
// with non-introspectable entities and members already filtered out.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Msg: "decode repository element", Err: err}
	}
	if len(doc.Namespaces) == 0 {
		return nil, &SchemaError{Msg: "document has no namespace element"}
	}
	for i := range doc.Namespaces {
		filterNamespace(&doc.Namespaces[i])
	}
	return &doc, nil
}

// Namespace returns the document's first namespace.
func (d *Document) Namespace() *Namespace {
	return &d.Namespaces[0]
}

func introspectable(attr string) bool {
	return attr != "0" && attr != "false"
}

// filterNamespace drops every entity and member explicitly marked
// non-introspectable so the normalizer never sees them.
func filterNamespace(ns *Namespace) {
	ns.Classes = keep(ns.Classes, func(c Class) bool { return introspectable(c.Introspectable) })
	ns.Interfaces = keep(ns.Interfaces, func(i Interface) bool { return introspectable(i.Introspectable) })
	ns.Records = keep(ns.Records, func(r Record) bool { return introspectable(r.Introspectable) })
	ns.Enums = keep(ns.Enums, func(e Enumeration) bool { return introspectable(e.Introspectable) })
	ns.Bitfields = keep(ns.Bitfields, func(e Enumeration) bool { return introspectable(e.Introspectable) })
	ns.Callbacks = keep(ns.Callbacks, func(c Callback) bool { return introspectable(c.Introspectable) })
	ns.Functions = filterFunctions(ns.Functions)
	ns.Constants = keep(ns.Constants, func(c Constant) bool { return introspectable(c.Introspectable) })

	for i := range ns.Classes {
		c := &ns.Classes[i]
		c.Constructors = filterFunctions(c.Constructors)
		c.Methods = filterFunctions(c.Methods)
		c.Functions = filterFunctions(c.Functions)
		c.VirtualMethods = filterFunctions(c.VirtualMethods)
		c.Properties = keep(c.Properties, func(p Property) bool { return introspectable(p.Introspectable) })
		c.Signals = keep(c.Signals, func(s Signal) bool { return introspectable(s.Introspectable) })
	}
	for i := range ns.Interfaces {
		iface := &ns.Interfaces[i]
		iface.Methods = filterFunctions(iface.Methods)
		iface.VirtualMethods = filterFunctions(iface.VirtualMethods)
		iface.Functions = filterFunctions(iface.Functions)
		iface.Properties = keep(iface.Properties, func(p Property) bool { return introspectable(p.Introspectable) })
		iface.Signals = keep(iface.Signals, func(s Signal) bool { return introspectable(s.Introspectable) })
	}
	for i := range ns.Records {
		r := &ns.Records[i]
		r.Constructors = filterFunctions(r.Constructors)
		r.Methods = filterFunctions(r.Methods)
		r.Functions = filterFunctions(r.Functions)
	}
	for i := range ns.Enums {
		ns.Enums[i].Functions = filterFunctions(ns.Enums[i].Functions)
	}
	for i := range ns.Bitfields {
		ns.Bitfields[i].Functions = filterFunctions(ns.Bitfields[i].Functions)
	}
}

func filterFunctions(fns []Function) []Function {
	return keep(fns, func(f Function) bool { return introspectable(f.Introspectable) })
}

func keep[T any](in []T, pred func(T) bool) []T {
	if len(in) == 0 {
		return in
	}
	out := in[:0:0]
	for _, v := range in {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}
