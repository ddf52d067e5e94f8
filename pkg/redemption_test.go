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
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nuts-foundation/pairing-logic/mock"
	"github.com/nuts-foundation/pairing-logic/pkg/store"
	"github.com/stretchr/testify/assert"
)

func TestPairingLogic_VerifyOwnerToken(t *testing.T) {
	ctx := context.Background()

	withToken := func() *PairingLogic {
		pl, _ := NewTestPairingLogicInstance()
		_ = ProvisionDataset(pl.Store, "d1", StatusPlanned)
		_ = ProvisionDataset(pl.Store, "d2", StatusPlanned)
		_ = pl.Store.Set(ctx, "owner-tokens/t1", store.Document{"dataset_id": "d1"})
		return pl
	}

	t.Run("it consumes the token and makes the dataset available", func(t *testing.T) {
		pl := withToken()

		datasetID, err := pl.VerifyOwnerToken(ctx, "t1", "d1")

		assert.NoError(t, err)
		assert.Equal(t, "d1", datasetID)
		dataset, _ := pl.GetDataset(ctx, "d1")
		assert.Equal(t, StatusAvailable, dataset.ConnectionStatus)
		_, err = pl.Store.Get(ctx, "owner-tokens/t1")
		assert.Equal(t, store.ErrNotFound, err)
	})

	t.Run("it clears the redeemed token from the dataset", func(t *testing.T) {
		pl := withToken()
		_ = pl.Store.Update(ctx, "datasets/d1", store.Document{"owner_token": "t1"})

		_, err := pl.VerifyOwnerToken(ctx, "t1", "d1")

		assert.NoError(t, err)
		doc, _ := pl.Store.Get(ctx, "datasets/d1")
		assert.NotContains(t, doc, "owner_token")
	})

	t.Run("a newer owner token recorded on the dataset is kept", func(t *testing.T) {
		pl := withToken()
		_ = pl.Store.Set(ctx, "owner-tokens/t2", store.Document{"dataset_id": "d1"})
		_ = pl.Store.Update(ctx, "datasets/d1", store.Document{"owner_token": "t2"})

		_, err := pl.VerifyOwnerToken(ctx, "t1", "d1")

		assert.NoError(t, err)
		doc, _ := pl.Store.Get(ctx, "datasets/d1")
		assert.Equal(t, "t2", doc.String("owner_token"))
	})

	t.Run("error - second redemption of the same token", func(t *testing.T) {
		pl := withToken()

		_, err := pl.VerifyOwnerToken(ctx, "t1", "d1")
		assert.NoError(t, err)

		_, err = pl.VerifyOwnerToken(ctx, "t1", "d1")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("error - token issued for another dataset", func(t *testing.T) {
		pl := withToken()

		_, err := pl.VerifyOwnerToken(ctx, "t1", "d2")

		assert.True(t, errors.Is(err, ErrInvalidToken))
		dataset, _ := pl.GetDataset(ctx, "d2")
		assert.Equal(t, StatusPlanned, dataset.ConnectionStatus)
		_, err = pl.Store.Get(ctx, "owner-tokens/t1")
		assert.NoError(t, err, "a failed redemption must not consume the token")
	})

	t.Run("error - unknown token", func(t *testing.T) {
		pl := withToken()

		_, err := pl.VerifyOwnerToken(ctx, "nope", "d1")

		assert.True(t, errors.Is(err, ErrInvalidToken))
		dataset, _ := pl.GetDataset(ctx, "d1")
		assert.Equal(t, StatusPlanned, dataset.ConnectionStatus)
	})

	t.Run("error - dataset no longer exists", func(t *testing.T) {
		pl := withToken()
		_ = pl.Store.Delete(ctx, "datasets/d1")

		_, err := pl.VerifyOwnerToken(ctx, "t1", "d1")

		assert.True(t, errors.Is(err, ErrInvalidToken))
		_, err = pl.Store.Get(ctx, "owner-tokens/t1")
		assert.NoError(t, err)
	})

	t.Run("concurrent redemptions succeed once", func(t *testing.T) {
		pl := withToken()

		var wg sync.WaitGroup
		var mutex sync.Mutex
		successes := 0
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := pl.VerifyOwnerToken(ctx, "t1", "d1"); err == nil {
					mutex.Lock()
					successes++
					mutex.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
	})

	t.Run("error - failing store while consuming", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		storeMock := mock.NewMockStore(ctrl)
		storeMock.EXPECT().Get(gomock.Any(), "datasets/d1").Return(store.Document{"connection_status": "planned"}, nil)
		storeMock.EXPECT().DeleteIf(gomock.Any(), "owner-tokens/t1", gomock.Any()).Return(nil, errors.New("timeout"))

		pl := NewPairingLogic(DefaultPairingLogicConfig(), storeMock, &TestDeliverer{})
		_, err := pl.VerifyOwnerToken(ctx, "t1", "d1")

		assert.True(t, errors.Is(err, ErrStoreUnavailable))
	})
}

func TestPairingLogic_VerifyResearcherToken(t *testing.T) {
	ctx := context.Background()

	withToken := func() *PairingLogic {
		pl, _ := NewTestPairingLogicInstance()
		_ = ProvisionDataset(pl.Store, "d1", StatusAvailable)
		_ = pl.Store.Set(ctx, "researcher-tokens/r1", store.Document{"dataset_id": "d1"})
		return pl
	}

	t.Run("it consumes the token without touching the dataset", func(t *testing.T) {
		pl := withToken()

		assert.NoError(t, pl.VerifyResearcherToken(ctx, "r1", "d1"))

		dataset, _ := pl.GetDataset(ctx, "d1")
		assert.Equal(t, StatusAvailable, dataset.ConnectionStatus)
		assert.True(t, errors.Is(pl.VerifyResearcherToken(ctx, "r1", "d1"), ErrInvalidToken))
	})

	t.Run("error - token issued for another dataset", func(t *testing.T) {
		pl := withToken()

		assert.True(t, errors.Is(pl.VerifyResearcherToken(ctx, "r1", "d2"), ErrInvalidToken))
		assert.NoError(t, pl.VerifyResearcherToken(ctx, "r1", "d1"))
	})

	t.Run("error - owner tokens are not researcher tokens", func(t *testing.T) {
		pl := withToken()
		_ = pl.Store.Set(ctx, "owner-tokens/o1", store.Document{"dataset_id": "d1"})

		assert.True(t, errors.Is(pl.VerifyResearcherToken(ctx, "o1", "d1"), ErrInvalidToken))
	})

	t.Run("error - empty dataset", func(t *testing.T) {
		pl := withToken()

		assert.True(t, errors.Is(pl.VerifyResearcherToken(ctx, "r1", ""), ErrInvalidToken))
	})
}

func TestPairingLogic_PairingScenario(t *testing.T) {
	ctx := context.Background()
	pl, deliverer := NewTestPairingLogicInstance()
	_ = ProvisionDataset(pl.Store, "d1", StatusPlanned)

	_, err := pl.RegisterDevice(ctx, "d1")
	if !assert.NoError(t, err) {
		return
	}
	otp := deliverer.OTP("d1")
	assert.Len(t, otp, 6)

	t1, err := pl.VerifyOwnerOTP(ctx, "d1", otp)
	if !assert.NoError(t, err) {
		return
	}
	dataset, _ := pl.GetDataset(ctx, "d1")
	assert.Nil(t, dataset.OTP)

	_, err = pl.VerifyOwnerOTP(ctx, "d1", otp)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	datasetID, err := pl.VerifyOwnerToken(ctx, t1, "d1")
	assert.NoError(t, err)
	assert.Equal(t, "d1", datasetID)
	dataset, _ = pl.GetDataset(ctx, "d1")
	assert.Equal(t, StatusAvailable, dataset.ConnectionStatus)

	_, err = pl.VerifyOwnerToken(ctx, t1, "d1")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = pl.RegisterDevice(ctx, "d1")
	assert.True(t, errors.Is(err, ErrInvalidState), "an available dataset cannot be registered again")

	assert.NoError(t, pl.SetUnavailable(ctx, "d1"))
	assert.NoError(t, pl.SetAvailable(ctx, "d1"))
	assert.NoError(t, pl.Disconnect(ctx, "d1"))
	_, err = pl.RegisterDevice(ctx, "d1")
	assert.NoError(t, err, "after disconnect the device can pair again")
}
