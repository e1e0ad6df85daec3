// Package girkit builds a queryable model of a native library's public
// surface from its GObject-Introspection XML description. It turns one or
// more .gir namespace documents into a cross-referenced repository of typed
// entities that code generators, documentation tools, and runtime binding
// layers can interrogate.
//
// # Pipeline
//
// Girkit operates in three phases:
//
//  1. Parse: decode the XML into raw, loosely-typed records, one shape per
//     entity kind, with no semantic validation (internal/girxml).
//
//  2. Normalize: walk every raw entity once, assign fully qualified names,
//     classify container/generic shapes, and resolve property accessors
//     into immutable normalized entities (internal/model).
//
//  3. Attach: register each namespace with a [Repository], which injects
//     itself into classes and interfaces as their resolution context.
//
// # Usage
//
// Parse documents, attach them, and query:
//
//	repo, err := girkit.ParseRepository(gobjectData, gtkData)
//	if err != nil { ... }
//
//	button := repo.ResolveClass("Gtk.Button")
//	button.IsSubclassOf("Gtk.Widget")       // true
//	button.ImplementsInterface("Gtk.Actionable")
//	button.InheritanceChain()               // Button, Widget, ..., GObject.Object
//	button.AllMethods()                     // own methods, then inherited
//
// # Query API
//
// The [Repository] resolves entities by qualified name (ResolveClass,
// ResolveInterface, ResolveRecord, ResolveEnum, ResolveFlags,
// ResolveCallback, ResolveFunction, ResolveConstant) plus [Repository.TypeKind]
// and [Repository.FindClasses]. Relationship queries live on the entities
// themselves and are lazy walks over qualified-name links: a name missing
// from the attached set truncates the walk instead of failing it, so a
// partial namespace closure still answers every query it can.
//
// # Loading from disk
//
// The core never opens files. The loader package locates
// Namespace-Version.gir documents on configured search paths, follows
// include edges, and returns a fully attached repository.
package girkit
