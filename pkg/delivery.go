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
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/cbroglie/mustache"
)

// Delivery types accepted by NewDeliverer
const (
	DeliveryLog     = "log"
	DeliveryWebhook = "webhook"
)

// DefaultOTPTemplate is the mustache template of the message carrying the OTP to the device.
const DefaultOTPTemplate = "Pairing code for dataset {{dataset_id}}: {{otp}}"

// Deliverer hands a freshly registered OTP to the device display, outside of the registration response.
type Deliverer interface {
	Deliver(ctx context.Context, datasetID string, otp string) error
}

// NewDeliverer creates the Deliverer selected by the configuration.
func NewDeliverer(config PairingLogicConfig) (Deliverer, error) {
	template := config.DeliveryTemplate
	if template == "" {
		template = DefaultOTPTemplate
	}
	if _, err := mustache.ParseString(template); err != nil {
		return nil, fmt.Errorf("invalid OTP template: %w", err)
	}

	switch config.Delivery {
	case DeliveryLog, "":
		return &LogDeliverer{Template: template}, nil
	case DeliveryWebhook:
		if config.WebhookURL == "" {
			return nil, errors.New("webhook delivery requires a webhook url")
		}
		return &WebhookDeliverer{
			URL:      config.WebhookURL,
			Template: template,
			Client:   &http.Client{Timeout: 10 * time.Second},
		}, nil
	default:
		return nil, fmt.Errorf("unknown OTP delivery: %s", config.Delivery)
	}
}

func renderOTPMessage(template, datasetID, otp string) (string, error) {
	return mustache.Render(template, map[string]string{
		"dataset_id": datasetID,
		"otp":        otp,
	})
}

// LogDeliverer writes the OTP message to the device console log at debug level. The hub log is shared,
// it is meant for development setups without a device display.
type LogDeliverer struct {
	Template string
}

// Deliver renders and logs the message.
func (d LogDeliverer) Deliver(_ context.Context, datasetID string, otp string) error {
	message, err := renderOTPMessage(d.Template, datasetID, otp)
	if err != nil {
		return err
	}
	logger().WithField("channel", "device-console").WithField("dataset", datasetID).Debug(message)
	return nil
}

// WebhookDeliverer posts the OTP message as text/plain to the device display endpoint.
type WebhookDeliverer struct {
	URL      string
	Template string
	Client   *http.Client
}

// Deliver renders the message and posts it, any non 2xx answer is an error.
func (d WebhookDeliverer) Deliver(ctx context.Context, datasetID string, otp string) error {
	message, err := renderOTPMessage(d.Template, datasetID, otp)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, d.URL, strings.NewReader(message))
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("X-Dataset-Id", datasetID)

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(ioutil.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("device display answered %s", resp.Status)
	}
	return nil
}
