package model

import "strings"

// intrinsics is the closed set of primitive type names. Intrinsic names are
// never namespace-qualified; a reference name is either intrinsic or
// qualified, never both. The table is constructed once at init and never
// mutated.
var intrinsics = map[string]struct{}{}

func init() {
	for _, name := range []string{
		"gboolean",
		"gchar", "guchar",
		"gshort", "gushort",
		"gint", "guint",
		"glong", "gulong",
		"gint8", "guint8",
		"gint16", "guint16",
		"gint32", "guint32",
		"gint64", "guint64",
		"gsize", "gssize",
		"gintptr", "guintptr",
		"gfloat", "gdouble",
		"gunichar",
		"gtype",
		"utf8", "filename",
		"gpointer", "gconstpointer",
		"none", "void",
		"va_list", "varargs",
	} {
		intrinsics[name] = struct{}{}
	}
}

// IsIntrinsic reports whether name is a primitive type name.
func IsIntrinsic(name string) bool {
	_, ok := intrinsics[name]
	return ok
}

// IsQualified reports whether name is a Namespace.TypeName identifier.
// Intrinsic names are never qualified, regardless of spelling.
func IsQualified(name string) bool {
	return !IsIntrinsic(name) && strings.Contains(name, ".")
}

// Qualify combines a namespace with a simple name. Intrinsic names and names
// that already carry a namespace come back unchanged; the intrinsic check
// runs first so qualification logic never touches a primitive. An empty name
// stays empty.
func Qualify(namespace, name string) string {
	if name == "" || IsIntrinsic(name) {
		return name
	}
	if strings.Contains(name, ".") {
		return name
	}
	return namespace + "." + name
}
