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
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nuts-foundation/pairing-logic/pkg/store"
)

// RegisterDevice is the first pairing step, called by the device for its dataset. The dataset must be planned.
// The generated OTP is stored on the dataset and handed to the Deliverer so it reaches the owner out-of-band.
func (pl *PairingLogic) RegisterDevice(ctx context.Context, datasetID string) (string, error) {
	path, err := datasetPath(datasetID)
	if err != nil {
		return "", fmt.Errorf("dataset %q: %w", datasetID, ErrNotFound)
	}

	otp, err := GenerateToken(pl.Config.OTPLength)
	if err != nil {
		return "", fmt.Errorf("could not generate OTP: %w", err)
	}

	{
		sctx, cancel := pl.storeContext(ctx)
		err = pl.Store.UpdateIf(sctx, path, store.FieldEquals(fieldConnectionStatus, string(StatusPlanned)), store.Document{
			fieldOTP:         otp,
			fieldOTPIssuedAt: pl.clock().Unix(),
		})
		cancel()
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "", fmt.Errorf("dataset %s: %w", datasetID, ErrNotFound)
	case errors.Is(err, store.ErrPrecondition):
		return "", fmt.Errorf("dataset %s is not %s: %w", datasetID, StatusPlanned, ErrInvalidState)
	case err != nil:
		return "", storeUnavailable("register device", err)
	}
	logger().Debugf("OTP stored for dataset %s", datasetID)

	if err := pl.Deliverer.Deliver(ctx, datasetID, otp); err != nil {
		logger().WithError(err).Errorf("could not deliver OTP for dataset %s", datasetID)

		sctx, cancel := pl.storeContext(ctx)
		defer cancel()
		if clearErr := pl.Store.DeleteFields(sctx, path, fieldOTP, fieldOTPIssuedAt); clearErr != nil {
			logger().WithError(clearErr).Errorf("could not clear undelivered OTP for dataset %s", datasetID)
		}
		return "", fmt.Errorf("dataset %s: %w: %v", datasetID, ErrDeliveryFailed, err)
	}

	if pl.Config.EchoOTP {
		return otp, nil
	}
	return "", nil
}

// VerifyOwnerOTP is the second pairing step, called from the owner console. The stored OTP is removed by every
// call, so each OTP can be tried once. On a match a new owner connection token is issued and returned.
func (pl *PairingLogic) VerifyOwnerOTP(ctx context.Context, datasetID string, otp string) (string, error) {
	path, err := datasetPath(datasetID)
	if err != nil {
		return "", fmt.Errorf("dataset %q: %w", datasetID, ErrInvalidToken)
	}

	var taken store.Document
	{
		sctx, cancel := pl.storeContext(ctx)
		taken, err = pl.Store.TakeFields(sctx, path, fieldOTP, fieldOTPIssuedAt)
		cancel()
	}
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("dataset %s does not exist: %w", datasetID, ErrInvalidToken)
	}
	if err != nil {
		return "", storeUnavailable("verify owner OTP", err)
	}

	stored := taken.String(fieldOTP)
	if stored == "" || otp == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(otp)) != 1 {
		return "", fmt.Errorf("OTP mismatch for dataset %s: %w", datasetID, ErrInvalidToken)
	}
	if pl.otpExpired(taken[fieldOTPIssuedAt]) {
		return "", fmt.Errorf("OTP for dataset %s expired: %w", datasetID, ErrInvalidToken)
	}

	token, err := GenerateToken(pl.Config.TokenLength)
	if err != nil {
		return "", fmt.Errorf("could not generate owner token: %w", err)
	}
	tokenPath, _ := store.Join(OwnerTokenNamespace, token)

	sctx, cancel := pl.storeContext(ctx)
	defer cancel()

	if err := pl.Store.Set(sctx, tokenPath, store.Document{fieldDatasetID: datasetID}); err != nil {
		return "", storeUnavailable("create owner token", err)
	}
	logger().Debugf("owner token issued for dataset %s", datasetID)

	pl.replaceOwnerToken(sctx, path, datasetID, token)
	return token, nil
}

// replaceOwnerToken records token as the live owner token of the dataset and revokes the one it replaces.
// The new token is valid at this point, failures are only logged.
func (pl *PairingLogic) replaceOwnerToken(ctx context.Context, path, datasetID, token string) {
	previous, err := pl.Store.TakeFields(ctx, path, fieldOwnerToken)
	if err != nil {
		logger().WithError(err).Warnf("could not read previous owner token of dataset %s", datasetID)
	} else if old := previous.String(fieldOwnerToken); old != "" && old != token {
		if oldPath, err := store.Join(OwnerTokenNamespace, old); err == nil {
			if _, err := pl.Store.DeleteIf(ctx, oldPath, store.FieldEquals(fieldDatasetID, datasetID)); err != nil && !errors.Is(err, store.ErrNotFound) {
				logger().WithError(err).Warnf("could not revoke previous owner token of dataset %s", datasetID)
			}
		}
	}

	if err := pl.Store.Update(ctx, path, store.Document{fieldOwnerToken: token}); err != nil {
		logger().WithError(err).Warnf("could not record owner token on dataset %s", datasetID)
	}
}

func (pl *PairingLogic) otpExpired(issuedAt interface{}) bool {
	if pl.Config.OTPTTL <= 0 {
		return false
	}

	var seconds int64
	switch v := issuedAt.(type) {
	case float64:
		seconds = int64(v)
	case int64:
		seconds = v
	case int:
		seconds = int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return true
		}
		seconds = n
	case nil:
		// provisioned without a timestamp
		return false
	default:
		return true
	}

	return pl.clock().Sub(time.Unix(seconds, 0)) > pl.Config.OTPTTL
}
