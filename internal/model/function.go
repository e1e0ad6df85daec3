package model

import "strings"

// asyncSuffix and finishSuffix encode the async/finish naming convention:
// an asynchronous operation's result is retrieved via a separately named
// completion member.
const (
	asyncSuffix  = "_async"
	finishSuffix = "_finish"
)

// Function is a normalized free function, method, constructor, static
// function, or virtual method.
type Function struct {
	Name          string
	QualifiedName string // set for free functions only
	CIdentifier   string
	Parameters    []Parameter
	ReturnType    TypeRef
	Throws        bool
	Shadows       string // alternate overload this one replaces, or ""
	ShadowedBy    string // alternate overload replacing this one, or ""
	MovedTo       string
	Doc           string
}

// IsAsync reports whether the function follows the async convention: its
// name carries the async suffix, or any parameter is an async-scoped
// callback.
func (f *Function) IsAsync() bool {
	if strings.HasSuffix(f.Name, asyncSuffix) {
		return true
	}
	for _, p := range f.Parameters {
		if p.Scope == "async" {
			return true
		}
	}
	return false
}

// FinishName derives the paired completion member's name by suffix
// substitution. The result is not verified to exist as a sibling member;
// callers check existence themselves.
func (f *Function) FinishName() string {
	return strings.TrimSuffix(f.Name, asyncSuffix) + finishSuffix
}

// IsShadowed reports whether an alternate overload supersedes this
// function. Shadowed entries stay in the member list; skipping them is a
// consumer decision.
func (f *Function) IsShadowed() bool {
	return f.ShadowedBy != ""
}
