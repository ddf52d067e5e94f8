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
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldbOpt "github.com/syndtr/goleveldb/leveldb/opt"
)

type levelDBBackend struct {
	db *leveldb.DB
}

// NewLevelDBStore opens (or creates) the LevelDB database in directory and returns it as Store.
func NewLevelDBStore(directory string) (Store, error) {
	opt := &ldbOpt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}
	db, err := leveldb.OpenFile(directory, opt)
	if err != nil {
		return nil, fmt.Errorf("unable to open leveldb store at %s: %w", directory, err)
	}
	return newLevelDBStore(db), nil
}

func newLevelDBStore(db *leveldb.DB) Store {
	return &documentStore{backend: &levelDBBackend{db: db}}
}

func (l *levelDBBackend) read(path string) ([]byte, error) {
	value, err := l.db.Get([]byte(path), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	return value, err
}

func (l *levelDBBackend) write(path string, value []byte) error {
	return l.db.Put([]byte(path), value, nil)
}

// remove is a no-op for absent keys
func (l *levelDBBackend) remove(path string) error {
	return l.db.Delete([]byte(path), nil)
}

func (l *levelDBBackend) close() error {
	return l.db.Close()
}
