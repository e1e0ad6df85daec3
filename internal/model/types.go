package model

// Normalized domain types. Every value here is immutable once the
// normalizer has produced it; the query helpers below are pure reads.

// Transfer is an ownership-transfer mode on a type reference.
type Transfer string

const (
	TransferNone      Transfer = "none"
	TransferFull      Transfer = "full"
	TransferContainer Transfer = "container"
)

// Direction is a parameter passing direction.
type Direction string

const (
	DirectionIn    Direction = "in"
	DirectionOut   Direction = "out"
	DirectionInOut Direction = "inout"
)

// TypeRef is a normalized type reference. Name is either intrinsic or
// fully qualified; Container commits the reference to exactly one shape,
// decided once at normalization and never re-derived from raw attributes.
type TypeRef struct {
	Name       string
	CType      string
	Container  ContainerKind
	Elem       *TypeRef  // element type; for tables, the value type
	TypeParams []TypeRef // ordered type parameters, empty for plain refs
	Transfer   Transfer
	Nullable   bool
}

// IsArrayLike reports whether the reference surfaces as an ordered
// collection to generic consumers. All container shapes do; only their
// iteration strategy differs.
func (t TypeRef) IsArrayLike() bool {
	return t.Container != ContainerNone
}

// IsIntrinsic reports whether the referenced type is a primitive.
func (t TypeRef) IsIntrinsic() bool {
	return IsIntrinsic(t.Name)
}

// Parameter is one normalized formal parameter. Closure and Destroy are the
// positions of the paired user-data and cleanup-notifier parameters, or -1
// when the pairing is absent.
type Parameter struct {
	Name            string
	Type            TypeRef
	Direction       Direction
	Nullable        bool
	Optional        bool
	CallerAllocates bool
	Scope           string
	Closure         int
	Destroy         int
	Varargs         bool
	Doc             string
}

// Property is a normalized object property. Getter and Setter hold the
// resolved accessor member names after annotation precedence is applied.
type Property struct {
	Name          string
	Type          TypeRef
	Readable      bool
	Writable      bool
	ConstructOnly bool
	Getter        string
	Setter        string
	Doc           string
}

// Signal is a normalized event emitted by a class or interface.
type Signal struct {
	Name       string
	When       string
	Detailed   bool
	Parameters []Parameter
	ReturnType TypeRef
	Doc        string
}

// Field is one field of a record, class, or interface struct.
type Field struct {
	Name     string
	Type     TypeRef
	Readable bool
	Writable bool
	Private  bool
}

// Record is a struct or boxed value type. Opaque records expose no fields;
// disguised records additionally have no size known to consumers.
type Record struct {
	Name           string
	QualifiedName  string
	CType          string
	Opaque         bool
	Disguised      bool
	GTypeStructFor string // class this record is the vtable for, or ""
	Fields         []Field
	Constructors   []Function
	Methods        []Function
	Functions      []Function
	Doc            string
}

// EnumMember is one named value of an enumeration.
type EnumMember struct {
	Name        string
	Value       string
	CIdentifier string
}

// Enumeration is a named integer type, flag sets included.
type Enumeration struct {
	Name          string
	QualifiedName string
	CType         string
	Flags         bool
	Members       []EnumMember
	Functions     []Function
	Doc           string
}

// Callback is a named function-pointer signature.
type Callback struct {
	Name          string
	QualifiedName string
	CType         string
	Parameters    []Parameter
	ReturnType    TypeRef
	Throws        bool
	Doc           string
}

// Constant is a named compile-time value.
type Constant struct {
	Name          string
	QualifiedName string
	Value         string
	Type          TypeRef
	Doc           string
}

// Namespace is one fully normalized introspection namespace.
type Namespace struct {
	Name          string
	Version       string
	SharedLibrary string
	CPrefix       string
	Includes      []Include

	Classes    []*Class
	Interfaces []*Interface
	Records    []*Record
	Enums      []*Enumeration
	Flags      []*Enumeration
	Callbacks  []*Callback
	Functions  []*Function
	Constants  []*Constant
}

// Include names a namespace this one depends on.
type Include struct {
	Name    string
	Version string
}
