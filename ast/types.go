package ast

import "fmt"

// TypeAnnotation models Yuho's own type system: a scalar/named type name
// plus optional/array modifiers, and — for named struct types — the
// element/struct-field detail needed to print or specialize it.
//
// Equality deliberately compares only TypeName, IsOptional, and IsArray,
// exactly as the original inference engine's type compared itself: two
// array-of-Foo annotations are the same type regardless of whether one
// carries a resolved ElementType and the other doesn't, since ElementType
// and StructFields are caches, not part of a type's identity.
type TypeAnnotation struct {
	TypeName     string
	IsOptional   bool
	IsArray      bool
	ElementType  *TypeAnnotation
	StructFields map[string]TypeAnnotation
}

// Equal implements the equality semantics described above.
func (t TypeAnnotation) Equal(other TypeAnnotation) bool {
	return t.TypeName == other.TypeName && t.IsOptional == other.IsOptional && t.IsArray == other.IsArray
}

func (t TypeAnnotation) String() string {
	s := t.TypeName
	if t.IsArray {
		s = "[]" + s
	}
	if t.IsOptional {
		s = s + "?"
	}
	return s
}

// Built-in scalar type singletons. Callers should prefer these over
// constructing a literal TypeAnnotation so that name typos don't silently
// introduce a new "type".
var (
	IntType      = TypeAnnotation{TypeName: "int"}
	FloatType    = TypeAnnotation{TypeName: "float"}
	BoolType     = TypeAnnotation{TypeName: "bool"}
	StringType   = TypeAnnotation{TypeName: "string"}
	MoneyType    = TypeAnnotation{TypeName: "money"}
	PercentType  = TypeAnnotation{TypeName: "percent"}
	DateType     = TypeAnnotation{TypeName: "date"}
	DurationType = TypeAnnotation{TypeName: "duration"}
	VoidType     = TypeAnnotation{TypeName: "void"}
	UnknownType  = TypeAnnotation{TypeName: "unknown"}
)

// Named constructs a named (struct) type.
func Named(name string) TypeAnnotation { return TypeAnnotation{TypeName: name} }

// Optional wraps t as an optional type.
func Optional(t TypeAnnotation) TypeAnnotation {
	t.IsOptional = true
	return t
}

// Array constructs an array-of-elem type. TypeName mirrors the element's
// name so two distinct Array(X) values still compare equal by name.
func Array(elem TypeAnnotation) TypeAnnotation {
	e := elem
	return TypeAnnotation{TypeName: elem.TypeName, IsArray: true, ElementType: &e}
}

// Generic represents a reserved, opaque-by-name generic instantiation
// (e.g. List<T>); inference never looks past the name. See the Open
// Questions in the design notes: nested generics are intentionally not
// widened.
func Generic(ctor string, args ...TypeAnnotation) TypeAnnotation {
	name := ctor
	if len(args) > 0 {
		name = fmt.Sprintf("%s<%s>", ctor, joinTypeNames(args))
	}
	return TypeAnnotation{TypeName: name}
}

func joinTypeNames(ts []TypeAnnotation) string {
	out := ""
	for i, t := range ts {
		if i > 0 {
			out += ", "
		}
		out += t.String()
	}
	return out
}

// BuiltinScalarNames lists every built-in scalar type name recognized by the
// builder and type checker.
var BuiltinScalarNames = map[string]bool{
	"int": true, "float": true, "bool": true, "string": true,
	"money": true, "percent": true, "date": true, "duration": true, "void": true,
}
