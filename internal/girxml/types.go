package girxml

import "encoding/xml"

// Raw record shapes for one introspection document. Everything stays a
// string at this layer: attributes are carried verbatim and interpreted
// only by the normalizer.
//
// Every child element the schema grammar allows to repeat is declared as a
// slice field. encoding/xml decodes a lone child into a one-element slice,
// so a class with exactly one method still yields a sequence and downstream
// code never has to distinguish absent, singleton, and repeated children.

// Document is the root <repository> element of a .gir file.
type Document struct {
	XMLName    xml.Name    `xml:"repository"`
	Version    string      `xml:"version,attr"`
	Includes   []Include   `xml:"include"`
	Packages   []Package   `xml:"package"`
	Namespaces []Namespace `xml:"namespace"`
}

// Include names another namespace document this one depends on.
type Include struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
}

// Package is the pkg-config identifier of the described library.
type Package struct {
	Name string `xml:"name,attr"`
}

// Namespace is the single <namespace> element of a document.
type Namespace struct {
	Name               string        `xml:"name,attr"`
	Version            string        `xml:"version,attr"`
	SharedLibrary      string        `xml:"shared-library,attr"`
	IdentifierPrefixes string        `xml:"identifier-prefixes,attr"`
	SymbolPrefixes     string        `xml:"symbol-prefixes,attr"`
	Classes            []Class       `xml:"class"`
	Interfaces         []Interface   `xml:"interface"`
	Records            []Record      `xml:"record"`
	Enums              []Enumeration `xml:"enumeration"`
	Bitfields          []Enumeration `xml:"bitfield"`
	Callbacks          []Callback    `xml:"callback"`
	Functions          []Function    `xml:"function"`
	Constants          []Constant    `xml:"constant"`
}

type Class struct {
	Name           string      `xml:"name,attr"`
	Parent         string      `xml:"parent,attr"`
	Abstract       string      `xml:"abstract,attr"`
	GetType        string      `xml:"get-type,attr"`
	TypeName       string      `xml:"type-name,attr"`
	Introspectable string      `xml:"introspectable,attr"`
	Doc            Doc         `xml:"doc"`
	Implements     []Implement `xml:"implements"`
	Constructors   []Function  `xml:"constructor"`
	Methods        []Function  `xml:"method"`
	Functions      []Function  `xml:"function"`
	VirtualMethods []Function  `xml:"virtual-method"`
	Properties     []Property  `xml:"property"`
	Signals        []Signal    `xml:"signal"`
	Fields         []Field     `xml:"field"`
}

// Implement is an <implements> reference on a class.
type Implement struct {
	Name string `xml:"name,attr"`
}

type Interface struct {
	Name           string         `xml:"name,attr"`
	GetType        string         `xml:"get-type,attr"`
	TypeName       string         `xml:"type-name,attr"`
	Introspectable string         `xml:"introspectable,attr"`
	Doc            Doc            `xml:"doc"`
	Prerequisites  []Prerequisite `xml:"prerequisite"`
	Methods        []Function     `xml:"method"`
	VirtualMethods []Function     `xml:"virtual-method"`
	Functions      []Function     `xml:"function"`
	Properties     []Property     `xml:"property"`
	Signals        []Signal       `xml:"signal"`
}

// Prerequisite is an interface another interface requires.
type Prerequisite struct {
	Name string `xml:"name,attr"`
}

type Record struct {
	Name             string     `xml:"name,attr"`
	CType            string     `xml:"type,attr"`
	Opaque           string     `xml:"opaque,attr"`
	Disguised        string     `xml:"disguised,attr"`
	IsGTypeStructFor string     `xml:"is-gtype-struct-for,attr"`
	Introspectable   string     `xml:"introspectable,attr"`
	Doc              Doc        `xml:"doc"`
	Fields           []Field    `xml:"field"`
	Constructors     []Function `xml:"constructor"`
	Methods          []Function `xml:"method"`
	Functions        []Function `xml:"function"`
}

// Enumeration covers both <enumeration> and <bitfield> elements; the two
// share a grammar and are told apart by which namespace slice they came from.
type Enumeration struct {
	Name           string       `xml:"name,attr"`
	CType          string       `xml:"type,attr"`
	GetType        string       `xml:"get-type,attr"`
	Introspectable string       `xml:"introspectable,attr"`
	Doc            Doc          `xml:"doc"`
	Members        []EnumMember `xml:"member"`
	Functions      []Function   `xml:"function"`
}

type EnumMember struct {
	Name        string `xml:"name,attr"`
	Value       string `xml:"value,attr"`
	CIdentifier string `xml:"identifier,attr"`
}

type Callback struct {
	Name           string        `xml:"name,attr"`
	CType          string        `xml:"type,attr"`
	Throws         string        `xml:"throws,attr"`
	Introspectable string        `xml:"introspectable,attr"`
	Doc            Doc           `xml:"doc"`
	ReturnValues   []ReturnValue `xml:"return-value"`
	Parameters     []Parameters  `xml:"parameters"`
}

// Function is shared by free functions, methods, constructors, static
// class functions, and virtual methods.
type Function struct {
	Name           string        `xml:"name,attr"`
	CIdentifier    string        `xml:"identifier,attr"`
	Throws         string        `xml:"throws,attr"`
	Shadows        string        `xml:"shadows,attr"`
	ShadowedBy     string        `xml:"shadowed-by,attr"`
	MovedTo        string        `xml:"moved-to,attr"`
	Introspectable string        `xml:"introspectable,attr"`
	Doc            Doc           `xml:"doc"`
	ReturnValues   []ReturnValue `xml:"return-value"`
	Parameters     []Parameters  `xml:"parameters"`
}

// Parameters is the <parameters> wrapper element.
type Parameters struct {
	Instance   []Parameter `xml:"instance-parameter"`
	Parameters []Parameter `xml:"parameter"`
}

type Parameter struct {
	Name              string      `xml:"name,attr"`
	Direction         string      `xml:"direction,attr"`
	TransferOwnership string      `xml:"transfer-ownership,attr"`
	Nullable          string      `xml:"nullable,attr"`
	AllowNone         string      `xml:"allow-none,attr"`
	Optional          string      `xml:"optional,attr"`
	CallerAllocates   string      `xml:"caller-allocates,attr"`
	Scope             string      `xml:"scope,attr"`
	Closure           string      `xml:"closure,attr"`
	Destroy           string      `xml:"destroy,attr"`
	Doc               Doc         `xml:"doc"`
	Types             []TypeNode  `xml:"type"`
	Arrays            []ArrayNode `xml:"array"`
	Varargs           []Varargs   `xml:"varargs"`
}

type Varargs struct{}

type ReturnValue struct {
	TransferOwnership string      `xml:"transfer-ownership,attr"`
	Nullable          string      `xml:"nullable,attr"`
	Doc               Doc         `xml:"doc"`
	Types             []TypeNode  `xml:"type"`
	Arrays            []ArrayNode `xml:"array"`
}

type Property struct {
	Name              string      `xml:"name,attr"`
	Readable          string      `xml:"readable,attr"`
	Writable          string      `xml:"writable,attr"`
	Construct         string      `xml:"construct,attr"`
	ConstructOnly     string      `xml:"construct-only,attr"`
	Getter            string      `xml:"getter,attr"`
	Setter            string      `xml:"setter,attr"`
	TransferOwnership string      `xml:"transfer-ownership,attr"`
	Introspectable    string      `xml:"introspectable,attr"`
	Doc               Doc         `xml:"doc"`
	Attributes        []Attribute `xml:"attribute"`
	Types             []TypeNode  `xml:"type"`
	Arrays            []ArrayNode `xml:"array"`
}

// Attribute is an auxiliary annotation node attached to a property.
type Attribute struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type Signal struct {
	Name           string        `xml:"name,attr"`
	When           string        `xml:"when,attr"`
	Detailed       string        `xml:"detailed,attr"`
	Introspectable string        `xml:"introspectable,attr"`
	Doc            Doc           `xml:"doc"`
	ReturnValues   []ReturnValue `xml:"return-value"`
	Parameters     []Parameters  `xml:"parameters"`
}

type Field struct {
	Name           string      `xml:"name,attr"`
	Readable       string      `xml:"readable,attr"`
	Writable       string      `xml:"writable,attr"`
	Private        string      `xml:"private,attr"`
	Introspectable string      `xml:"introspectable,attr"`
	Types          []TypeNode  `xml:"type"`
	Arrays         []ArrayNode `xml:"array"`
	Callbacks      []Callback  `xml:"callback"`
}

type Constant struct {
	Name           string      `xml:"name,attr"`
	Value          string      `xml:"value,attr"`
	CType          string      `xml:"type,attr"`
	Introspectable string      `xml:"introspectable,attr"`
	Doc            Doc         `xml:"doc"`
	Types          []TypeNode  `xml:"type"`
	Arrays         []ArrayNode `xml:"array"`
}

// TypeNode is a <type> reference. Container types such as GLib.HashTable
// carry their type parameters as nested <type>/<array> children, so the
// shape is recursive.
type TypeNode struct {
	Name   string      `xml:"name,attr"`
	CType  string      `xml:"type,attr"`
	Types  []TypeNode  `xml:"type"`
	Arrays []ArrayNode `xml:"array"`
}

// ArrayNode is an <array> wrapper. A plain C array has no name attribute;
// the GLib array containers carry their qualified name in it.
type ArrayNode struct {
	Name           string      `xml:"name,attr"`
	CType          string      `xml:"type,attr"`
	ZeroTerminated string      `xml:"zero-terminated,attr"`
	FixedSize      string      `xml:"fixed-size,attr"`
	Length         string      `xml:"length,attr"`
	Types          []TypeNode  `xml:"type"`
	Arrays         []ArrayNode `xml:"array"`
}

// Doc is the <doc> child holding documentation text.
type Doc struct {
	Text string `xml:",chardata"`
}
