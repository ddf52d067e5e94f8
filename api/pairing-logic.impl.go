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

package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/pairing-logic/pkg"
)

// Wrapper provides the implementation of the generated ServerInterface on top of a PairingLogicClient
type Wrapper struct {
	Pl pkg.PairingLogicClient
}

// RegisterDevice starts pairing. The OTP is only part of the body when the engine echoes it.
func (w *Wrapper) RegisterDevice(ctx echo.Context, params RegisterDeviceParams) error {
	otp, err := w.Pl.RegisterDevice(ctx.Request().Context(), params.DatasetId)
	if err != nil {
		return respondError(ctx, err, http.StatusBadRequest)
	}
	if otp == "" {
		return ctx.NoContent(http.StatusOK)
	}
	return ctx.String(http.StatusOK, otp)
}

// VerifyOwnerOTP answers the owner connection token as plain text.
func (w *Wrapper) VerifyOwnerOTP(ctx echo.Context, params VerifyOwnerOTPParams) error {
	token, err := w.Pl.VerifyOwnerOTP(ctx.Request().Context(), params.DatasetId, params.Otp)
	if err != nil {
		return respondError(ctx, err, http.StatusBadRequest)
	}
	return ctx.String(http.StatusOK, token)
}

// VerifyOwnerToken answers the connected dataset id as plain text.
func (w *Wrapper) VerifyOwnerToken(ctx echo.Context, params VerifyOwnerTokenParams) error {
	datasetID, err := w.Pl.VerifyOwnerToken(ctx.Request().Context(), params.Token, params.Dataset)
	if err != nil {
		return respondError(ctx, err, http.StatusBadRequest)
	}
	return ctx.String(http.StatusOK, datasetID)
}

func (w *Wrapper) DisconnectDevice(ctx echo.Context, params DisconnectDeviceParams) error {
	if err := w.Pl.Disconnect(ctx.Request().Context(), params.DatasetId); err != nil {
		return respondError(ctx, err, http.StatusNotFound)
	}
	return ctx.NoContent(http.StatusOK)
}

func (w *Wrapper) SetDeviceAsUnavailable(ctx echo.Context, params SetDeviceAsUnavailableParams) error {
	if err := w.Pl.SetUnavailable(ctx.Request().Context(), params.DatasetId); err != nil {
		return respondError(ctx, err, http.StatusNotFound)
	}
	return ctx.NoContent(http.StatusOK)
}

func (w *Wrapper) SetDeviceAsAvailable(ctx echo.Context, params SetDeviceAsAvailableParams) error {
	if err := w.Pl.SetAvailable(ctx.Request().Context(), params.DatasetId); err != nil {
		return respondError(ctx, err, http.StatusNotFound)
	}
	return ctx.NoContent(http.StatusOK)
}

// CreateResearcherTokens answers the issued tokens as a JSON object of token to dataset id.
func (w *Wrapper) CreateResearcherTokens(ctx echo.Context, params CreateResearcherTokensParams) error {
	tokens, err := w.Pl.CreateResearcherTokens(ctx.Request().Context(), params.ProjectKey)
	if err != nil {
		return respondError(ctx, err, http.StatusNotFound)
	}
	return ctx.JSON(http.StatusOK, tokens)
}

func (w *Wrapper) VerifyResearcherToken(ctx echo.Context, params VerifyResearcherTokenParams) error {
	if err := w.Pl.VerifyResearcherToken(ctx.Request().Context(), params.Token, params.Dataset); err != nil {
		return respondError(ctx, err, http.StatusBadRequest)
	}
	return ctx.NoContent(http.StatusOK)
}

// respondError writes the status for err with an empty body. notFound is the status used for pkg.ErrNotFound,
// which differs between the pairing and the maintenance routes.
func respondError(ctx echo.Context, err error, notFound int) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, pkg.ErrNotFound):
		status = notFound
	case errors.Is(err, pkg.ErrInvalidState), errors.Is(err, pkg.ErrInvalidToken):
		status = http.StatusBadRequest
	case errors.Is(err, pkg.ErrStoreUnavailable), errors.Is(err, pkg.ErrDeliveryFailed):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		ctx.Logger().Errorf("%s %s failed: %v", ctx.Request().Method, ctx.Path(), err)
	}
	return ctx.NoContent(status)
}
