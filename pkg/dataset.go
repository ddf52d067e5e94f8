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
	"errors"
	"fmt"

	"github.com/nuts-foundation/pairing-logic/pkg/store"
)

// GetDataset returns the current state of the dataset.
func (pl *PairingLogic) GetDataset(ctx context.Context, datasetID string) (*Dataset, error) {
	path, err := datasetPath(datasetID)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", datasetID, ErrNotFound)
	}

	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	doc, err := pl.Store.Get(sctx, path)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("dataset %s: %w", datasetID, ErrNotFound)
	}
	if err != nil {
		return nil, storeUnavailable("get dataset", err)
	}

	dataset := &Dataset{
		ID:               datasetID,
		ConnectionStatus: ConnectionStatus(doc.String(fieldConnectionStatus)),
	}
	if otp, ok := doc[fieldOTP].(string); ok {
		dataset.OTP = &otp
	}
	return dataset, nil
}

// Disconnect returns the dataset to planned, a device has to pair again.
func (pl *PairingLogic) Disconnect(ctx context.Context, datasetID string) error {
	return pl.setConnectionStatus(ctx, datasetID, StatusPlanned)
}

// SetUnavailable marks the dataset as claimed by a session.
func (pl *PairingLogic) SetUnavailable(ctx context.Context, datasetID string) error {
	return pl.setConnectionStatus(ctx, datasetID, StatusUnavailable)
}

// SetAvailable releases the dataset after a session.
func (pl *PairingLogic) SetAvailable(ctx context.Context, datasetID string) error {
	return pl.setConnectionStatus(ctx, datasetID, StatusAvailable)
}

func (pl *PairingLogic) setConnectionStatus(ctx context.Context, datasetID string, status ConnectionStatus) error {
	path, err := datasetPath(datasetID)
	if err != nil {
		return fmt.Errorf("dataset %q: %w", datasetID, ErrNotFound)
	}

	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	err = pl.Store.Update(sctx, path, store.Document{fieldConnectionStatus: string(status)})
	if errors.Is(err, store.ErrNotFound) {
		logger().Warnf("cannot set connection status %s, dataset %s does not exist", status, datasetID)
		return fmt.Errorf("dataset %s: %w", datasetID, ErrNotFound)
	}
	if err != nil {
		return storeUnavailable("set connection status", err)
	}

	logger().Debugf("dataset %s is now %s", datasetID, status)
	return nil
}

// ProvisionDataset creates or replaces the dataset document with the given status. It is the provisioning step
// that precedes pairing, used by operator tooling.
func ProvisionDataset(documentStore store.Store, datasetID string, status ConnectionStatus) error {
	path, err := datasetPath(datasetID)
	if err != nil {
		return err
	}
	return documentStore.Set(context.Background(), path, store.Document{fieldConnectionStatus: string(status)})
}
