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

package engine

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nuts-foundation/pairing-logic/pkg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewPairingLogicEngine(t *testing.T) {
	t.Run("it registers all routes for GET and POST", func(t *testing.T) {
		e := NewPairingLogicEngine()
		server := echo.New()

		e.Routes(server)

		assert.Len(t, server.Routes(), 16)
	})

	t.Run("configure loads the flag defaults", func(t *testing.T) {
		e := NewPairingLogicEngine()

		if !assert.NoError(t, e.Configure()) {
			return
		}

		config := pkg.PairingLogicInstance().Config
		assert.Equal(t, "memory", config.StoreType)
		assert.Equal(t, 6, config.OTPLength)
		assert.Equal(t, 32, config.TokenLength)
		assert.Equal(t, 10*time.Minute, config.OTPTTL)
		assert.NotContains(t, config.StorePath, "~")
	})

	t.Run("start and shutdown", func(t *testing.T) {
		e := NewPairingLogicEngine()
		_ = e.Configure()

		assert.NoError(t, e.Start())
		assert.NoError(t, e.Shutdown())
	})
}

func TestEngine_Cmd(t *testing.T) {
	execute := func(args ...string) (string, error) {
		e := NewPairingLogicEngine()
		buf := new(bytes.Buffer)
		e.Cmd.SetOutput(buf)
		e.Cmd.SetArgs(args)
		err := e.Cmd.Execute()
		return buf.String(), err
	}

	t.Run("dataset provision prints a planned dataset", func(t *testing.T) {
		out, err := execute("dataset", "provision", "d1")

		if !assert.NoError(t, err) {
			return
		}
		dataset := pkg.Dataset{}
		assert.NoError(t, json.Unmarshal([]byte(out), &dataset))
		assert.Equal(t, "d1", dataset.ID)
		assert.Equal(t, pkg.StatusPlanned, dataset.ConnectionStatus)
	})

	t.Run("error - dataset status of an unknown dataset", func(t *testing.T) {
		_, err := execute("dataset", "status", "unknown")

		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "not found")
		}
	})

	t.Run("error - researcher tokens of an unknown project", func(t *testing.T) {
		_, err := execute("researcher-tokens", "p1")

		assert.Error(t, err)
	})

	t.Run("error - invalid configuration", func(t *testing.T) {
		viper.Set(ConfOTPLength, 2)
		defer viper.Set(ConfOTPLength, 6)

		_, err := execute("dataset", "status", "d1")

		assert.EqualError(t, err, "otp length must be at least 6, got 2")
	})
}
