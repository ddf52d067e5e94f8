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

package store

import (
	"github.com/patrickmn/go-cache"
)

type memoryBackend struct {
	items *cache.Cache
}

// NewMemoryStore returns a Store which keeps all documents in process memory. Contents are lost on Close.
func NewMemoryStore() Store {
	return &documentStore{
		backend: &memoryBackend{items: cache.New(cache.NoExpiration, 0)},
	}
}

func (m *memoryBackend) read(path string) ([]byte, error) {
	value, found := m.items.Get(path)
	if !found {
		return nil, ErrNotFound
	}
	return value.([]byte), nil
}

func (m *memoryBackend) write(path string, value []byte) error {
	m.items.Set(path, value, cache.NoExpiration)
	return nil
}

func (m *memoryBackend) remove(path string) error {
	m.items.Delete(path)
	return nil
}

func (m *memoryBackend) close() error {
	m.items.Flush()
	return nil
}
