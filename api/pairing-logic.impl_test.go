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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/pairing-logic/mock"
	"github.com/nuts-foundation/pairing-logic/pkg"
	"github.com/nuts-foundation/pairing-logic/pkg/store"
	"github.com/stretchr/testify/assert"
)

func newTestServer() (*echo.Echo, *pkg.PairingLogic, *pkg.TestDeliverer) {
	pl, deliverer := pkg.NewTestPairingLogicInstance()
	server := echo.New()
	RegisterHandlers(server, &Wrapper{Pl: pl})
	return server, pl, deliverer
}

func call(server *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestWrapper_Pairing(t *testing.T) {
	t.Run("a device pairs and the owner token connects the dataset", func(t *testing.T) {
		server, pl, deliverer := newTestServer()
		_ = pkg.ProvisionDataset(pl.Store, "d1", pkg.StatusPlanned)

		rec := call(server, http.MethodGet, "/registerDevice?dataset_id=d1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())

		otp := deliverer.OTP("d1")
		rec = call(server, http.MethodPost, "/verifyOwnerOTP?dataset_id=d1&otp="+otp)
		if !assert.Equal(t, http.StatusOK, rec.Code) {
			return
		}
		token := rec.Body.String()
		assert.Len(t, token, 32)

		rec = call(server, http.MethodGet, "/verifyOwnerToken?token="+token+"&dataset=d1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "d1", rec.Body.String())

		dataset, _ := pl.GetDataset(context.Background(), "d1")
		assert.Equal(t, pkg.StatusAvailable, dataset.ConnectionStatus)

		rec = call(server, http.MethodGet, "/verifyOwnerToken?token="+token+"&dataset=d1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("the OTP is in the body when echo is enabled", func(t *testing.T) {
		server, pl, deliverer := newTestServer()
		pl.Config.EchoOTP = true
		_ = pkg.ProvisionDataset(pl.Store, "d1", pkg.StatusPlanned)

		rec := call(server, http.MethodGet, "/registerDevice?dataset_id=d1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, deliverer.OTP("d1"), rec.Body.String())
	})

	t.Run("error - register on unknown or connected dataset", func(t *testing.T) {
		server, pl, _ := newTestServer()
		_ = pkg.ProvisionDataset(pl.Store, "d2", pkg.StatusAvailable)

		assert.Equal(t, http.StatusBadRequest, call(server, http.MethodGet, "/registerDevice?dataset_id=d1").Code)
		assert.Equal(t, http.StatusBadRequest, call(server, http.MethodGet, "/registerDevice?dataset_id=d2").Code)
	})

	t.Run("error - wrong OTP", func(t *testing.T) {
		server, pl, _ := newTestServer()
		_ = pkg.ProvisionDataset(pl.Store, "d1", pkg.StatusPlanned)
		call(server, http.MethodGet, "/registerDevice?dataset_id=d1")

		rec := call(server, http.MethodGet, "/verifyOwnerOTP?dataset_id=d1&otp=nope00")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("error - delivery failed", func(t *testing.T) {
		server, pl, deliverer := newTestServer()
		deliverer.Err = errors.New("display offline")
		_ = pkg.ProvisionDataset(pl.Store, "d1", pkg.StatusPlanned)

		rec := call(server, http.MethodGet, "/registerDevice?dataset_id=d1")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("error - store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		documentStore := mock.NewMockStore(ctrl)
		documentStore.EXPECT().UpdateIf(gomock.Any(), "datasets/d1", gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
		server := echo.New()
		RegisterHandlers(server, &Wrapper{Pl: pkg.NewPairingLogic(pkg.DefaultPairingLogicConfig(), documentStore, &pkg.TestDeliverer{})})

		rec := call(server, http.MethodGet, "/registerDevice?dataset_id=d1")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestWrapper_ConnectionStatus(t *testing.T) {
	routes := map[string]pkg.ConnectionStatus{
		"/disconnectDevice":       pkg.StatusPlanned,
		"/setDeviceAsUnavailable": pkg.StatusUnavailable,
		"/setDeviceAsAvailable":   pkg.StatusAvailable,
	}

	for route, expected := range routes {
		route, expected := route, expected
		t.Run(route+" sets "+string(expected), func(t *testing.T) {
			server, pl, _ := newTestServer()
			initial := pkg.StatusAvailable
			if expected == pkg.StatusAvailable {
				initial = pkg.StatusUnavailable
			}
			_ = pkg.ProvisionDataset(pl.Store, "d1", initial)

			rec := call(server, http.MethodPost, route+"?dataset_id=d1")

			assert.Equal(t, http.StatusOK, rec.Code)
			dataset, _ := pl.GetDataset(context.Background(), "d1")
			assert.Equal(t, expected, dataset.ConnectionStatus)
		})
		t.Run(route+" answers 404 for an unknown dataset", func(t *testing.T) {
			server, _, _ := newTestServer()

			assert.Equal(t, http.StatusNotFound, call(server, http.MethodGet, route+"?dataset_id=d1").Code)
		})
	}
}

func TestWrapper_ResearcherTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("tokens are issued as JSON and redeemed once", func(t *testing.T) {
		server, pl, _ := newTestServer()
		_ = pl.Store.Set(ctx, "requests/r1", store.Document{"status": "Approved", "dataset_id": "d1"})
		_ = pl.Store.Set(ctx, "projects/p1", store.Document{"list_of_requests": []interface{}{"requests/r1"}})

		rec := call(server, http.MethodGet, "/createResearcherTokens?project_key=p1")
		if !assert.Equal(t, http.StatusOK, rec.Code) {
			return
		}
		tokens := map[string]string{}
		if !assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens)) {
			return
		}
		if !assert.Len(t, tokens, 1) {
			return
		}
		var token string
		for k, v := range tokens {
			token = k
			assert.Equal(t, "d1", v)
		}

		assert.Equal(t, http.StatusBadRequest, call(server, http.MethodGet, "/verifyResearcherToken?token="+token+"&dataset=d2").Code)
		assert.Equal(t, http.StatusOK, call(server, http.MethodGet, "/verifyResearcherToken?token="+token+"&dataset=d1").Code)
		assert.Equal(t, http.StatusBadRequest, call(server, http.MethodGet, "/verifyResearcherToken?token="+token+"&dataset=d1").Code)
	})

	t.Run("error - unknown project", func(t *testing.T) {
		server, _, _ := newTestServer()

		rec := call(server, http.MethodGet, "/createResearcherTokens?project_key=p1")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
