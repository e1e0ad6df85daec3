package girkit

import "github.com/jward/girkit/internal/model"

// Public type aliases for internal model types used across the query API.
// These are Go type aliases (=) — identical to the internal types at compile
// time. External consumers use these names; no conversion is needed.

type Namespace = model.Namespace
type Class = model.Class
type Interface = model.Interface
type Record = model.Record
type Enumeration = model.Enumeration
type Callback = model.Callback
type Function = model.Function
type Constant = model.Constant
type Property = model.Property
type Signal = model.Signal
type Field = model.Field
type Parameter = model.Parameter
type EnumMember = model.EnumMember
type TypeRef = model.TypeRef
type Kind = model.Kind
type ContainerKind = model.ContainerKind
type Transfer = model.Transfer
type Direction = model.Direction
type Resolver = model.Resolver

// Entity kind values.
const (
	KindUnknown   = model.KindUnknown
	KindClass     = model.KindClass
	KindInterface = model.KindInterface
	KindRecord    = model.KindRecord
	KindEnum      = model.KindEnum
	KindFlags     = model.KindFlags
	KindCallback  = model.KindCallback
	KindFunction  = model.KindFunction
	KindConstant  = model.KindConstant
)

// Container shape values.
const (
	ContainerNone       = model.ContainerNone
	ContainerArray      = model.ContainerArray
	ContainerTable      = model.ContainerTable
	ContainerPtrArray   = model.ContainerPtrArray
	ContainerFixedArray = model.ContainerFixedArray
	ContainerList       = model.ContainerList
	ContainerSList      = model.ContainerSList
)

// IsIntrinsic reports whether name is a primitive type name, never
// namespace-qualified.
func IsIntrinsic(name string) bool { return model.IsIntrinsic(name) }

// IsQualified reports whether name is a Namespace.TypeName identifier.
func IsQualified(name string) bool { return model.IsQualified(name) }
