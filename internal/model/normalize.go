package model

import (
	"strconv"
	"strings"

	"github.com/jward/girkit/internal/girxml"
)

// Normalize converts one raw namespace into its normalized form. It is a
// total function: missing names degrade to empty strings and missing type
// nodes to the void reference, never an error. Whether a degraded entity is
// usable is the consumer's decision.
func Normalize(raw *girxml.Namespace) *Namespace {
	n := normalizer{ns: raw.Name}

	out := &Namespace{
		Name:          raw.Name,
		Version:       raw.Version,
		SharedLibrary: raw.SharedLibrary,
		CPrefix:       raw.SymbolPrefixes,
	}
	for _, cls := range raw.Classes {
		out.Classes = append(out.Classes, n.class(cls))
	}
	for _, iface := range raw.Interfaces {
		out.Interfaces = append(out.Interfaces, n.iface(iface))
	}
	for _, rec := range raw.Records {
		out.Records = append(out.Records, n.record(rec))
	}
	for _, enum := range raw.Enums {
		out.Enums = append(out.Enums, n.enumeration(enum, false))
	}
	for _, enum := range raw.Bitfields {
		out.Flags = append(out.Flags, n.enumeration(enum, true))
	}
	for _, cb := range raw.Callbacks {
		out.Callbacks = append(out.Callbacks, n.callback(cb))
	}
	for _, fn := range raw.Functions {
		f := n.function(fn)
		f.QualifiedName = Qualify(n.ns, f.Name)
		out.Functions = append(out.Functions, &f)
	}
	for _, c := range raw.Constants {
		out.Constants = append(out.Constants, n.constant(c))
	}
	return out
}

// NormalizeDocument normalizes the document's namespace and carries over
// its include edges so a loader can chase dependencies.
func NormalizeDocument(doc *girxml.Document) *Namespace {
	ns := Normalize(doc.Namespace())
	for _, inc := range doc.Includes {
		ns.Includes = append(ns.Includes, Include{Name: inc.Name, Version: inc.Version})
	}
	return ns
}

type normalizer struct {
	ns string
}

func (n *normalizer) class(raw girxml.Class) *Class {
	c := &Class{
		Name:           raw.Name,
		QualifiedName:  Qualify(n.ns, raw.Name),
		Parent:         Qualify(n.ns, raw.Parent),
		Abstract:       boolAttr(raw.Abstract),
		HasRuntimeType: raw.GetType != "",
		Doc:            docText(raw.Doc),
	}
	for _, impl := range raw.Implements {
		c.Interfaces = append(c.Interfaces, Qualify(n.ns, impl.Name))
	}
	c.Constructors = n.functions(raw.Constructors)
	c.Methods = n.functions(raw.Methods)
	c.Functions = n.functions(raw.Functions)
	c.VirtualMethods = n.functions(raw.VirtualMethods)
	for _, p := range raw.Properties {
		c.Properties = append(c.Properties, n.property(p))
	}
	for _, s := range raw.Signals {
		c.Signals = append(c.Signals, n.signal(s))
	}
	for _, f := range raw.Fields {
		c.Fields = append(c.Fields, n.field(f))
	}
	return c
}

func (n *normalizer) iface(raw girxml.Interface) *Interface {
	i := &Interface{
		Name:          raw.Name,
		QualifiedName: Qualify(n.ns, raw.Name),
		Doc:           docText(raw.Doc),
	}
	for _, pre := range raw.Prerequisites {
		i.Prerequisites = append(i.Prerequisites, Qualify(n.ns, pre.Name))
	}
	i.Methods = n.functions(raw.Methods)
	i.VirtualMethods = n.functions(raw.VirtualMethods)
	i.Functions = n.functions(raw.Functions)
	for _, p := range raw.Properties {
		i.Properties = append(i.Properties, n.property(p))
	}
	for _, s := range raw.Signals {
		i.Signals = append(i.Signals, n.signal(s))
	}
	return i
}

func (n *normalizer) record(raw girxml.Record) *Record {
	r := &Record{
		Name:           raw.Name,
		QualifiedName:  Qualify(n.ns, raw.Name),
		CType:          raw.CType,
		Opaque:         boolAttr(raw.Opaque) || len(raw.Fields) == 0,
		Disguised:      boolAttr(raw.Disguised),
		GTypeStructFor: Qualify(n.ns, raw.IsGTypeStructFor),
		Doc:            docText(raw.Doc),
	}
	for _, f := range raw.Fields {
		r.Fields = append(r.Fields, n.field(f))
	}
	r.Constructors = n.functions(raw.Constructors)
	r.Methods = n.functions(raw.Methods)
	r.Functions = n.functions(raw.Functions)
	return r
}

func (n *normalizer) enumeration(raw girxml.Enumeration, flags bool) *Enumeration {
	e := &Enumeration{
		Name:          raw.Name,
		QualifiedName: Qualify(n.ns, raw.Name),
		CType:         raw.CType,
		Flags:         flags,
		Doc:           docText(raw.Doc),
	}
	for _, m := range raw.Members {
		e.Members = append(e.Members, EnumMember{
			Name:        m.Name,
			Value:       m.Value,
			CIdentifier: m.CIdentifier,
		})
	}
	e.Functions = n.functions(raw.Functions)
	return e
}

func (n *normalizer) callback(raw girxml.Callback) *Callback {
	return &Callback{
		Name:          raw.Name,
		QualifiedName: Qualify(n.ns, raw.Name),
		CType:         raw.CType,
		Parameters:    n.parameters(raw.Parameters),
		ReturnType:    n.returnType(raw.ReturnValues),
		Throws:        boolAttr(raw.Throws),
		Doc:           docText(raw.Doc),
	}
}

func (n *normalizer) constant(raw girxml.Constant) *Constant {
	return &Constant{
		Name:          raw.Name,
		QualifiedName: Qualify(n.ns, raw.Name),
		Value:         raw.Value,
		Type:          n.typeRef(raw.Types, raw.Arrays),
		Doc:           docText(raw.Doc),
	}
}

func (n *normalizer) functions(raw []girxml.Function) []Function {
	var out []Function
	for _, fn := range raw {
		out = append(out, n.function(fn))
	}
	return out
}

func (n *normalizer) function(raw girxml.Function) Function {
	return Function{
		Name:        raw.Name,
		CIdentifier: raw.CIdentifier,
		Parameters:  n.parameters(raw.Parameters),
		ReturnType:  n.returnType(raw.ReturnValues),
		Throws:      boolAttr(raw.Throws),
		Shadows:     raw.Shadows,
		ShadowedBy:  raw.ShadowedBy,
		MovedTo:     raw.MovedTo,
		Doc:         docText(raw.Doc),
	}
}

func (n *normalizer) parameters(wrappers []girxml.Parameters) []Parameter {
	var out []Parameter
	for _, w := range wrappers {
		for _, p := range w.Parameters {
			out = append(out, n.parameter(p))
		}
	}
	return out
}

func (n *normalizer) parameter(raw girxml.Parameter) Parameter {
	p := Parameter{
		Name:            raw.Name,
		Type:            n.typeRef(raw.Types, raw.Arrays),
		Direction:       direction(raw.Direction),
		Nullable:        boolAttr(raw.Nullable) || boolAttr(raw.AllowNone),
		Optional:        boolAttr(raw.Optional),
		CallerAllocates: boolAttr(raw.CallerAllocates),
		Scope:           raw.Scope,
		Closure:         indexAttr(raw.Closure),
		Destroy:         indexAttr(raw.Destroy),
		Varargs:         len(raw.Varargs) > 0,
		Doc:             docText(raw.Doc),
	}
	p.Type.Transfer = transfer(raw.TransferOwnership)
	return p
}

func (n *normalizer) returnType(raw []girxml.ReturnValue) TypeRef {
	if len(raw) == 0 {
		return voidRef()
	}
	rv := raw[0]
	t := n.typeRef(rv.Types, rv.Arrays)
	t.Transfer = transfer(rv.TransferOwnership)
	t.Nullable = boolAttr(rv.Nullable)
	return t
}

func (n *normalizer) property(raw girxml.Property) Property {
	p := Property{
		Name: raw.Name,
		Type: n.typeRef(raw.Types, raw.Arrays),
		// readable defaults to true, writable to false
		Readable:      raw.Readable == "" || boolAttr(raw.Readable),
		Writable:      boolAttr(raw.Writable),
		ConstructOnly: boolAttr(raw.ConstructOnly),
		Getter:        raw.Getter,
		Setter:        raw.Setter,
		Doc:           docText(raw.Doc),
	}
	// Annotations override direct attributes. Scanned in document order so a
	// duplicate annotation key resolves to the last occurrence; the schema
	// grammar does not rule duplicates out, and this layer does not either.
	for _, attr := range raw.Attributes {
		switch attr.Name {
		case "get", "getter":
			p.Getter = attr.Value
		case "set", "setter":
			p.Setter = attr.Value
		}
	}
	return p
}

func (n *normalizer) signal(raw girxml.Signal) Signal {
	return Signal{
		Name:       raw.Name,
		When:       raw.When,
		Detailed:   boolAttr(raw.Detailed),
		Parameters: n.parameters(raw.Parameters),
		ReturnType: n.returnType(raw.ReturnValues),
		Doc:        docText(raw.Doc),
	}
}

func (n *normalizer) field(raw girxml.Field) Field {
	return Field{
		Name:     raw.Name,
		Type:     n.typeRef(raw.Types, raw.Arrays),
		Readable: raw.Readable == "" || boolAttr(raw.Readable),
		Writable: boolAttr(raw.Writable),
		Private:  boolAttr(raw.Private),
	}
}

// Container type names recognized during classification. Each keeps its
// element type(s) even though all surface as array-like.
const (
	tableTypeName     = "GLib.HashTable"
	ptrArrayTypeName  = "GLib.PtrArray"
	arrayBoxTypeName  = "GLib.Array"
	byteArrayTypeName = "GLib.ByteArray"
	listTypeName      = "GLib.List"
	slistTypeName     = "GLib.SList"
)

// typeRef normalizes one raw type position. Every call site that carries a
// type (parameters, return values, fields, properties, constants) funnels
// through here, so container-shape recognition is applied uniformly. The
// raw node is ambiguous (plain type or array wrapper depending on which
// children exist); classification happens exactly once, here.
func (n *normalizer) typeRef(types []girxml.TypeNode, arrays []girxml.ArrayNode) TypeRef {
	if len(arrays) > 0 {
		return n.arrayRef(arrays[0])
	}
	if len(types) > 0 {
		return n.plainRef(types[0])
	}
	return voidRef()
}

func (n *normalizer) plainRef(raw girxml.TypeNode) TypeRef {
	name := raw.Name
	if name == "" {
		name = "none"
	}
	t := TypeRef{
		Name:     Qualify(n.ns, name),
		CType:    raw.CType,
		Transfer: TransferNone,
	}
	switch t.Name {
	case tableTypeName:
		t.Container = ContainerTable
		t.TypeParams = n.typeParams(raw, 2)
		// the table's element is its value type, the second parameter
		t.Elem = refPtr(t.TypeParams[1])
	case ptrArrayTypeName:
		t.Container = ContainerPtrArray
		t.TypeParams = n.typeParams(raw, 1)
		t.Elem = refPtr(t.TypeParams[0])
	case arrayBoxTypeName, byteArrayTypeName:
		t.Container = ContainerFixedArray
		t.TypeParams = n.typeParams(raw, 1)
		t.Elem = refPtr(t.TypeParams[0])
	case listTypeName:
		t.Container = ContainerList
		t.TypeParams = n.typeParams(raw, 1)
		t.Elem = refPtr(t.TypeParams[0])
	case slistTypeName:
		t.Container = ContainerSList
		t.TypeParams = n.typeParams(raw, 1)
		t.Elem = refPtr(t.TypeParams[0])
	}
	return t
}

func (n *normalizer) arrayRef(raw girxml.ArrayNode) TypeRef {
	elem := n.typeRef(raw.Types, raw.Arrays)
	// anonymous C arrays take their element's name; GLib array containers
	// carry their own qualified name
	name := raw.Name
	if name == "" {
		name = elem.Name
	}
	t := TypeRef{
		Name:       Qualify(n.ns, name),
		CType:      raw.CType,
		Container:  ContainerArray,
		Elem:       &elem,
		TypeParams: []TypeRef{elem},
		Transfer:   TransferNone,
	}
	switch t.Name {
	case ptrArrayTypeName:
		t.Container = ContainerPtrArray
	case arrayBoxTypeName, byteArrayTypeName:
		t.Container = ContainerFixedArray
	}
	return t
}

// typeParams collects a container's nested type parameters in document
// order, padding with the void reference up to arity so shape consumers can
// index positionally even when the schema is sparse.
func (n *normalizer) typeParams(raw girxml.TypeNode, arity int) []TypeRef {
	var params []TypeRef
	for _, child := range raw.Types {
		params = append(params, n.plainRef(child))
	}
	for _, child := range raw.Arrays {
		params = append(params, n.arrayRef(child))
	}
	for len(params) < arity {
		params = append(params, voidRef())
	}
	return params
}

func refPtr(t TypeRef) *TypeRef { return &t }

func voidRef() TypeRef {
	return TypeRef{Name: "none", Transfer: TransferNone}
}

func boolAttr(s string) bool {
	return s == "1" || s == "true"
}

func indexAttr(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return i
}

func direction(s string) Direction {
	switch s {
	case "out":
		return DirectionOut
	case "inout":
		return DirectionInOut
	default:
		return DirectionIn
	}
}

func transfer(s string) Transfer {
	switch s {
	case "full":
		return TransferFull
	case "container":
		return TransferContainer
	default:
		return TransferNone
	}
}

func docText(d girxml.Doc) string {
	return strings.TrimSpace(d.Text)
}
