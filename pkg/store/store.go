/*
 * This file is part of pairing-logic.
 *
 * pairing-logic is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * pairing-logic is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with pairing-logic.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package store holds the path addressed document store the pairing protocol is written against.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNotFound is returned when the document at the given path does not exist.
var ErrNotFound = errors.New("document not found")

// ErrPrecondition is returned by the conditional calls when the document does not satisfy the Matcher.
var ErrPrecondition = errors.New("document does not match precondition")

// Document is a single JSON document. Numbers read back from a store are float64.
type Document map[string]interface{}

// String returns the field as string, or "" when it is absent or of another type.
func (d Document) String(field string) string {
	if s, ok := d[field].(string); ok {
		return s
	}
	return ""
}

// Matcher is evaluated against the current contents of a document while the store holds it.
type Matcher func(doc Document) bool

// FieldEquals matches documents which have field set to the given string value.
func FieldEquals(field, value string) Matcher {
	return func(doc Document) bool {
		current, ok := doc[field].(string)
		return ok && current == value
	}
}

// Store is the minimal document database interface. Each call is atomic for the document it addresses.
type Store interface {
	// Get returns the document at path or ErrNotFound.
	Get(ctx context.Context, path string) (Document, error)
	// Set creates or replaces the document at path.
	Set(ctx context.Context, path string, doc Document) error
	// Update merges fields into an existing document. It returns ErrNotFound when there is nothing to update.
	Update(ctx context.Context, path string, fields Document) error
	// DeleteFields removes the given fields from an existing document.
	DeleteFields(ctx context.Context, path string, fields ...string) error
	// Delete removes the document. Deleting an absent document is not an error.
	Delete(ctx context.Context, path string) error
	// UpdateIf merges fields into the document only when match reports true, otherwise ErrPrecondition.
	UpdateIf(ctx context.Context, path string, match Matcher, fields Document) error
	// TakeFields removes the given fields and returns their previous values in one step.
	// Fields which were not set are missing from the result.
	TakeFields(ctx context.Context, path string, fields ...string) (Document, error)
	// TakeFieldsIf is TakeFields guarded by match, a failing match returns ErrPrecondition and changes nothing.
	TakeFieldsIf(ctx context.Context, path string, match Matcher, fields ...string) (Document, error)
	// Swap merges fields into the document, creating it when absent, and returns the values they replaced.
	Swap(ctx context.Context, path string, fields Document) (Document, error)
	// DeleteIf removes the document only when match reports true and returns its last contents.
	DeleteIf(ctx context.Context, path string, match Matcher) (Document, error)
	// Close releases the underlying resources.
	Close() error
}

// ValidKey reports whether key can be used as a single path segment.
func ValidKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, "/\x00")
}

// Join builds the path of key inside namespace. Key must be a single path segment.
func Join(namespace, key string) (string, error) {
	if !ValidKey(key) {
		return "", fmt.Errorf("invalid key %q for namespace %s: %w", key, namespace, ErrNotFound)
	}
	return namespace + "/" + key, nil
}

// Clean normalizes a document reference path, "/projects/p1" and "projects/p1" address the same document.
func Clean(path string) string {
	return strings.Trim(path, "/")
}

// backend is the raw key/value layer under a documentStore.
type backend interface {
	read(path string) ([]byte, error)
	write(path string, value []byte) error
	remove(path string) error
	close() error
}

// documentStore implements Store on top of a backend. The mutex serializes every
// read-modify-write so conditional calls cannot interleave.
type documentStore struct {
	sync.Mutex
	backend backend
}

// lock acquires the store for ctx. The context is checked again once the lock is held,
// a call that waited past its deadline does not touch data.
func (s *documentStore) lock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Lock()
	if err := ctx.Err(); err != nil {
		s.Unlock()
		return err
	}
	return nil
}

func (s *documentStore) load(path string) (Document, error) {
	value, err := s.backend.read(Clean(path))
	if err != nil {
		return nil, err
	}
	doc := Document{}
	if err := json.Unmarshal(value, &doc); err != nil {
		return nil, fmt.Errorf("corrupt document %s: %v", path, err)
	}
	return doc, nil
}

func (s *documentStore) save(path string, doc Document) error {
	if doc == nil {
		doc = Document{}
	}
	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("unable to encode document %s: %v", path, err)
	}
	return s.backend.write(Clean(path), value)
}

func (s *documentStore) Get(ctx context.Context, path string) (Document, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.Unlock()

	return s.load(path)
}

func (s *documentStore) Set(ctx context.Context, path string, doc Document) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.Unlock()

	return s.save(path, doc)
}

func (s *documentStore) Update(ctx context.Context, path string, fields Document) error {
	return s.UpdateIf(ctx, path, nil, fields)
}

func (s *documentStore) UpdateIf(ctx context.Context, path string, match Matcher, fields Document) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.Unlock()

	doc, err := s.load(path)
	if err != nil {
		return err
	}
	if match != nil && !match(doc) {
		return ErrPrecondition
	}
	for k, v := range fields {
		doc[k] = v
	}
	return s.save(path, doc)
}

func (s *documentStore) DeleteFields(ctx context.Context, path string, fields ...string) error {
	_, err := s.TakeFields(ctx, path, fields...)
	return err
}

func (s *documentStore) TakeFields(ctx context.Context, path string, fields ...string) (Document, error) {
	return s.TakeFieldsIf(ctx, path, nil, fields...)
}

func (s *documentStore) TakeFieldsIf(ctx context.Context, path string, match Matcher, fields ...string) (Document, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.Unlock()

	doc, err := s.load(path)
	if err != nil {
		return nil, err
	}
	if match != nil && !match(doc) {
		return nil, ErrPrecondition
	}
	taken := Document{}
	for _, field := range fields {
		if v, ok := doc[field]; ok {
			taken[field] = v
			delete(doc, field)
		}
	}
	if len(taken) == 0 {
		return taken, nil
	}
	return taken, s.save(path, doc)
}

func (s *documentStore) Swap(ctx context.Context, path string, fields Document) (Document, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.Unlock()

	doc, err := s.load(path)
	if errors.Is(err, ErrNotFound) {
		doc, err = Document{}, nil
	}
	if err != nil {
		return nil, err
	}
	previous := Document{}
	for k, v := range fields {
		if old, ok := doc[k]; ok {
			previous[k] = old
		}
		doc[k] = v
	}
	return previous, s.save(path, doc)
}

func (s *documentStore) Delete(ctx context.Context, path string) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.Unlock()

	return s.backend.remove(Clean(path))
}

func (s *documentStore) DeleteIf(ctx context.Context, path string, match Matcher) (Document, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.Unlock()

	doc, err := s.load(path)
	if err != nil {
		return nil, err
	}
	if match != nil && !match(doc) {
		return nil, ErrPrecondition
	}
	return doc, s.backend.remove(Clean(path))
}

func (s *documentStore) Close() error {
	s.Lock()
	defer s.Unlock()

	return s.backend.close()
}

// Store types accepted by New
const (
	TypeMemory  = "memory"
	TypeLevelDB = "leveldb"
)

// New creates a Store of the given type. Directory is only used by the leveldb type.
func New(storeType, directory string) (Store, error) {
	switch storeType {
	case TypeMemory:
		return NewMemoryStore(), nil
	case TypeLevelDB:
		if directory == "" {
			return nil, errors.New("leveldb store requires a directory")
		}
		return NewLevelDBStore(directory)
	default:
		return nil, fmt.Errorf("unknown store type: %s", storeType)
	}
}
