package girkit

import (
	"fmt"

	"github.com/jward/girkit/internal/girxml"
	"github.com/jward/girkit/internal/model"
)

// Parse decodes one introspection document and normalizes its namespace.
// It fails only when the document lacks a root repository element or a
// namespace; sparse documents normalize to sparse namespaces.
func Parse(data []byte) (*Namespace, error) {
	doc, err := girxml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("girkit: parse: %w", err)
	}
	return model.NormalizeDocument(doc), nil
}

// ParseRepository parses one or more documents and attaches every
// namespace to a fresh repository, in argument order. Cross-namespace
// references resolve across all of them.
func ParseRepository(docs ...[]byte) (*Repository, error) {
	repo := NewRepository()
	for i, data := range docs {
		ns, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("girkit: document %d: %w", i, err)
		}
		repo.Attach(ns)
	}
	return repo, nil
}
