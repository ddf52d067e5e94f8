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

// VerifyOwnerToken is called by the hub when an owner console connects with its connection token.
// The token is consumed and the dataset becomes available. The dataset id is returned as confirmation.
func (pl *PairingLogic) VerifyOwnerToken(ctx context.Context, token string, datasetID string) (string, error) {
	path, err := datasetPath(datasetID)
	if err != nil {
		return "", fmt.Errorf("dataset %q: %w", datasetID, ErrInvalidToken)
	}

	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	// the dataset has to exist before the token is spent on it
	if _, err := pl.Store.Get(sctx, path); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("dataset %s does not exist: %w", datasetID, ErrInvalidToken)
		}
		return "", storeUnavailable("verify owner token", err)
	}

	if err := pl.redeem(sctx, OwnerTokenNamespace, token, datasetID); err != nil {
		return "", err
	}

	if err := pl.Store.Update(sctx, path, store.Document{fieldConnectionStatus: string(StatusAvailable)}); err != nil {
		return "", storeUnavailable("make dataset available", err)
	}
	// a token issued by a later OTP verification stays recorded
	_, err = pl.Store.TakeFieldsIf(sctx, path, store.FieldEquals(fieldOwnerToken, token), fieldOwnerToken)
	if err != nil && !errors.Is(err, store.ErrPrecondition) {
		logger().WithError(err).Warnf("could not clear owner token of dataset %s", datasetID)
	}

	logger().Debugf("owner token redeemed, dataset %s is %s", datasetID, StatusAvailable)
	return datasetID, nil
}

// VerifyResearcherToken is called by the hub before it queues a researcher connection. The token is consumed,
// the dataset status is left as is.
func (pl *PairingLogic) VerifyResearcherToken(ctx context.Context, token string, datasetID string) error {
	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	if err := pl.redeem(sctx, ResearcherTokenNamespace, token, datasetID); err != nil {
		return err
	}

	logger().Debugf("researcher token redeemed for dataset %s", datasetID)
	return nil
}

// redeem deletes the token document when it is bound to datasetID. The delete is the point where
// concurrent redemptions of the same token are decided.
func (pl *PairingLogic) redeem(ctx context.Context, namespace, token, datasetID string) error {
	path, err := store.Join(namespace, token)
	if err != nil || datasetID == "" {
		return fmt.Errorf("malformed %s redemption: %w", namespace, ErrInvalidToken)
	}

	_, err = pl.Store.DeleteIf(ctx, path, store.FieldEquals(fieldDatasetID, datasetID))
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("unknown %s token: %w", namespace, ErrInvalidToken)
	case errors.Is(err, store.ErrPrecondition):
		return fmt.Errorf("%s token is not issued for dataset %s: %w", namespace, datasetID, ErrInvalidToken)
	case err != nil:
		return storeUnavailable("redeem "+namespace, err)
	}
	return nil
}
