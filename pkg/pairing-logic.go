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
	"sync"
	"time"

	"github.com/nuts-foundation/pairing-logic/pkg/store"
	"github.com/sirupsen/logrus"
)

// PairingLogicConfig holds the settings of the pairing engine.
type PairingLogicConfig struct {
	StoreType    string
	StorePath    string
	StoreTimeout time.Duration

	OTPLength int
	OTPTTL    time.Duration
	// EchoOTP returns the OTP in the RegisterDevice response as well as delivering it to the device
	EchoOTP          bool
	Delivery         string
	DeliveryTemplate string
	WebhookURL       string

	TokenLength int

	// StatusField and DatasetField are gojsonq paths into access request documents
	StatusField  string
	DatasetField string
}

// DefaultPairingLogicConfig returns the configuration used when nothing is overridden.
func DefaultPairingLogicConfig() PairingLogicConfig {
	return PairingLogicConfig{
		StoreType:        store.TypeMemory,
		StoreTimeout:     5 * time.Second,
		OTPLength:        6,
		OTPTTL:           10 * time.Minute,
		Delivery:         DeliveryLog,
		DeliveryTemplate: DefaultOTPTemplate,
		TokenLength:      32,
		StatusField:      "status",
		DatasetField:     fieldDatasetID,
	}
}

// PairingLogicClient is the set of protocol operations exposed to the hub, devices, owners and researchers.
type PairingLogicClient interface {
	// RegisterDevice stores a fresh OTP on a planned dataset and delivers it to the device. The OTP is only
	// returned when EchoOTP is configured.
	RegisterDevice(ctx context.Context, datasetID string) (string, error)
	// VerifyOwnerOTP consumes the dataset OTP and returns an owner connection token when it matched.
	VerifyOwnerOTP(ctx context.Context, datasetID string, otp string) (string, error)
	// VerifyOwnerToken redeems an owner token and makes the dataset available.
	VerifyOwnerToken(ctx context.Context, token string, datasetID string) (string, error)
	Disconnect(ctx context.Context, datasetID string) error
	SetUnavailable(ctx context.Context, datasetID string) error
	SetAvailable(ctx context.Context, datasetID string) error
	// CreateResearcherTokens issues a researcher token for every approved request of a project.
	CreateResearcherTokens(ctx context.Context, projectKey string) (ResearcherTokens, error)
	// VerifyResearcherToken redeems a researcher token for the given dataset.
	VerifyResearcherToken(ctx context.Context, token string, datasetID string) error
}

// PairingLogic implements PairingLogicClient on top of a document store.
type PairingLogic struct {
	Config    PairingLogicConfig
	Store     store.Store
	Deliverer Deliverer

	now func() time.Time
}

var instance *PairingLogic
var oneEngine sync.Once

func logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "pairing-logic")
}

// PairingLogicInstance returns the process wide PairingLogic used by the engine.
func PairingLogicInstance() *PairingLogic {
	oneEngine.Do(func() {
		instance = &PairingLogic{
			Config: DefaultPairingLogicConfig(),
		}
	})
	return instance
}

// NewPairingLogic creates a PairingLogic with the given collaborators. Nil collaborators are created by Configure.
func NewPairingLogic(config PairingLogicConfig, documentStore store.Store, deliverer Deliverer) *PairingLogic {
	return &PairingLogic{
		Config:    config,
		Store:     documentStore,
		Deliverer: deliverer,
	}
}

// Configure validates the configuration and sets up the store and deliverer when they were not injected.
func (pl *PairingLogic) Configure() error {
	if pl.Config.OTPLength < MinimumTokenLength {
		return fmt.Errorf("otp length must be at least %d, got %d", MinimumTokenLength, pl.Config.OTPLength)
	}
	if pl.Config.TokenLength < MinimumTokenLength {
		return fmt.Errorf("token length must be at least %d, got %d", MinimumTokenLength, pl.Config.TokenLength)
	}
	if pl.Config.StatusField == "" || pl.Config.DatasetField == "" {
		return errors.New("access request status and dataset fields must be set")
	}

	if pl.Deliverer == nil {
		deliverer, err := NewDeliverer(pl.Config)
		if err != nil {
			return err
		}
		pl.Deliverer = deliverer
	}

	if pl.Store == nil {
		documentStore, err := store.New(pl.Config.StoreType, pl.Config.StorePath)
		if err != nil {
			return err
		}
		pl.Store = documentStore
	}
	return nil
}

// Start configures the engine when that did not happen yet.
func (pl *PairingLogic) Start() error {
	if err := pl.Configure(); err != nil {
		return err
	}
	if _, ok := pl.Deliverer.(*LogDeliverer); ok {
		logger().Warnf("OTPs are delivered to the hub log at debug level, use %s delivery for device displays", DeliveryWebhook)
	}
	logger().Infof("pairing logic started with %s store", pl.Config.StoreType)
	return nil
}

// Shutdown closes the document store.
func (pl *PairingLogic) Shutdown() error {
	if pl.Store == nil {
		return nil
	}
	err := pl.Store.Close()
	pl.Store = nil
	return err
}

func (pl *PairingLogic) clock() time.Time {
	if pl.now != nil {
		return pl.now()
	}
	return time.Now()
}

// storeContext bounds a single store interaction by the configured timeout.
func (pl *PairingLogic) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if pl.Config.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, pl.Config.StoreTimeout)
}

func storeUnavailable(operation string, err error) error {
	logger().WithError(err).Errorf("store call failed during %s", operation)
	return fmt.Errorf("%s: %w: %v", operation, ErrStoreUnavailable, err)
}

func datasetPath(datasetID string) (string, error) {
	return store.Join(DatasetNamespace, datasetID)
}
