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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerInterfaceWrapper(t *testing.T) {
	server, _, _ := newTestServer()

	t.Run("error - missing required query parameters", func(t *testing.T) {
		targets := []string{
			"/registerDevice",
			"/verifyOwnerOTP?dataset_id=d1",
			"/verifyOwnerOTP?otp=123456",
			"/verifyOwnerToken?token=abc",
			"/verifyResearcherToken?dataset=d1",
			"/disconnectDevice",
			"/setDeviceAsUnavailable",
			"/setDeviceAsAvailable",
			"/createResearcherTokens",
		}
		for _, target := range targets {
			assert.Equal(t, http.StatusBadRequest, call(server, http.MethodGet, target).Code, target)
		}
	})

	t.Run("routes accept GET and POST only", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, call(server, http.MethodPut, "/registerDevice?dataset_id=d1").Code)
	})
}
