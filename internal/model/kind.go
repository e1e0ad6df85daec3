package model

// Kind identifies the category of a registered entity.
type Kind int

const (
	KindUnknown Kind = iota
	KindClass
	KindInterface
	KindRecord
	KindEnum
	KindFlags
	KindCallback
	KindFunction
	KindConstant
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindInterface:
		return "Interface"
	case KindRecord:
		return "Record"
	case KindEnum:
		return "Enum"
	case KindFlags:
		return "Flags"
	case KindCallback:
		return "Callback"
	case KindFunction:
		return "Function"
	case KindConstant:
		return "Constant"
	default:
		return "Unknown"
	}
}

// ContainerKind classifies the shape of a type reference. Everything except
// ContainerNone is array-like to generic consumers, but each shape keeps its
// own iteration and allocation semantics, so the distinction is preserved
// through normalization.
type ContainerKind int

const (
	ContainerNone       ContainerKind = iota
	ContainerArray                    // plain C array
	ContainerTable                    // key-value table, two type parameters
	ContainerPtrArray                 // ref-counted pointer array
	ContainerFixedArray               // fixed-element array wrapper
	ContainerList                     // doubly-linked list
	ContainerSList                    // singly-linked list
)

// String returns the string representation of the container kind.
func (c ContainerKind) String() string {
	switch c {
	case ContainerArray:
		return "Array"
	case ContainerTable:
		return "Table"
	case ContainerPtrArray:
		return "PtrArray"
	case ContainerFixedArray:
		return "FixedArray"
	case ContainerList:
		return "List"
	case ContainerSList:
		return "SList"
	default:
		return "None"
	}
}
