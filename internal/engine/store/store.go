// Package store holds the ordered, append-only collection of indexed
// documents. Documents are addressed by dense integer ids assigned at
// insertion time and never reused.
package store

import (
	apperrors "github.com/martinolai/minisearch/pkg/errors"
)

// Document is an immutable indexed document. URL may be empty.
type Document struct {
	ID      int
	Title   string
	Content string
	URL     string
}

// Store is the document collection. It supports insertion and lookup only;
// documents are never updated or deleted.
type Store struct {
	docs []Document
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Insert appends a document and returns its assigned id. Ids are dense,
// zero-based, and strictly increasing.
func (s *Store) Insert(title, content, url string) int {
	id := len(s.docs)
	s.docs = append(s.docs, Document{
		ID:      id,
		Title:   title,
		Content: content,
		URL:     url,
	})
	return id
}

// Get returns the document with the given id. Ids outside [0, Len()) were
// never issued by this store, so the lookup fails with ErrInvalidDocumentID.
func (s *Store) Get(id int) (Document, error) {
	if id < 0 || id >= len(s.docs) {
		return Document{}, apperrors.Newf(apperrors.ErrInvalidDocumentID, "id %d not in [0, %d)", id, len(s.docs))
	}
	return s.docs[id], nil
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	return len(s.docs)
}
