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

package pkg

import (
	"context"
	"sync"

	"github.com/nuts-foundation/pairing-logic/pkg/store"
)

// NewTestPairingLogicInstance returns a configured PairingLogic over an empty memory store whose OTPs are
// captured by the returned TestDeliverer.
func NewTestPairingLogicInstance() (*PairingLogic, *TestDeliverer) {
	deliverer := &TestDeliverer{}
	newInstance := NewPairingLogic(DefaultPairingLogicConfig(), store.NewMemoryStore(), deliverer)
	if err := newInstance.Configure(); err != nil {
		panic(err)
	}
	return newInstance, deliverer
}

// TestDeliverer records delivered OTPs per dataset. Err, when set, is returned by Deliver.
type TestDeliverer struct {
	mutex     sync.Mutex
	delivered map[string]string
	Err       error
}

// Deliver records the OTP.
func (t *TestDeliverer) Deliver(_ context.Context, datasetID string, otp string) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.Err != nil {
		return t.Err
	}
	if t.delivered == nil {
		t.delivered = map[string]string{}
	}
	t.delivered[datasetID] = otp
	return nil
}

// OTP returns the last OTP delivered for the dataset.
func (t *TestDeliverer) OTP(datasetID string) string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.delivered[datasetID]
}
