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
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/nuts-foundation/pairing-logic/pkg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configuration keys, usable as flag, config file key or PAIRING_LOGIC_ prefixed env variable (dots become underscores)
const (
	ConfStoreType     = "store.type"
	ConfStorePath     = "store.path"
	ConfStoreTimeout  = "store.timeout"
	ConfOTPLength     = "otp.length"
	ConfOTPTTL        = "otp.ttl"
	ConfOTPEcho       = "otp.echo"
	ConfOTPDelivery   = "otp.delivery"
	ConfOTPTemplate   = "otp.template"
	ConfOTPWebhookURL = "otp.webhook_url"
	ConfTokenLength   = "token.length"
	ConfStatusField   = "issuance.status_field"
	ConfDatasetField  = "issuance.dataset_field"
	ConfRateLimit     = "ratelimit.rate"
	ConfRateBurst     = "ratelimit.burst"
)

// EnvPrefix is the prefix of all environment variables read by the engine.
const EnvPrefix = "PAIRING_LOGIC"

// FlagSet returns the engine flags with their defaults.
func FlagSet() *pflag.FlagSet {
	defaults := pkg.DefaultPairingLogicConfig()
	flags := pflag.NewFlagSet("pairing-logic", pflag.ContinueOnError)

	flags.String(ConfStoreType, defaults.StoreType, "Document store backend: memory or leveldb")
	flags.String(ConfStorePath, "~/.pairing-logic/db", "Directory of the leveldb store")
	flags.Duration(ConfStoreTimeout, defaults.StoreTimeout, "Deadline of a single store call")
	flags.Int(ConfOTPLength, defaults.OTPLength, "Length of device OTPs")
	flags.Duration(ConfOTPTTL, defaults.OTPTTL, "Validity of a device OTP, 0 disables expiry")
	flags.Bool(ConfOTPEcho, defaults.EchoOTP, "Also return the OTP in the registerDevice response")
	flags.String(ConfOTPDelivery, defaults.Delivery, "OTP delivery: log or webhook")
	flags.String(ConfOTPTemplate, defaults.DeliveryTemplate, "Mustache template of the delivered OTP message")
	flags.String(ConfOTPWebhookURL, "", "URL the OTP message is posted to by the webhook delivery")
	flags.Int(ConfTokenLength, defaults.TokenLength, "Length of owner and researcher tokens")
	flags.String(ConfStatusField, defaults.StatusField, "Path of the status field in access request documents")
	flags.String(ConfDatasetField, defaults.DatasetField, "Path of the dataset id field in access request documents")
	flags.Float64(ConfRateLimit, 5, "Verification requests per second, 0 disables rate limiting")
	flags.Int(ConfRateBurst, 10, "Burst of verification requests")

	return flags
}

// BindFlags makes the flags and PAIRING_LOGIC_ env variables visible to v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// LoadConfig reads the engine configuration from v.
func LoadConfig(v *viper.Viper) (pkg.PairingLogicConfig, error) {
	storePath, err := homedir.Expand(v.GetString(ConfStorePath))
	if err != nil {
		return pkg.PairingLogicConfig{}, fmt.Errorf("invalid %s: %w", ConfStorePath, err)
	}

	return pkg.PairingLogicConfig{
		StoreType:        v.GetString(ConfStoreType),
		StorePath:        storePath,
		StoreTimeout:     v.GetDuration(ConfStoreTimeout),
		OTPLength:        v.GetInt(ConfOTPLength),
		OTPTTL:           v.GetDuration(ConfOTPTTL),
		EchoOTP:          v.GetBool(ConfOTPEcho),
		Delivery:         v.GetString(ConfOTPDelivery),
		DeliveryTemplate: v.GetString(ConfOTPTemplate),
		WebhookURL:       v.GetString(ConfOTPWebhookURL),
		TokenLength:      v.GetInt(ConfTokenLength),
		StatusField:      v.GetString(ConfStatusField),
		DatasetField:     v.GetString(ConfDatasetField),
	}, nil
}
