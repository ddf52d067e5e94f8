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

// ConnectionStatus is the claim state of a dataset.
type ConnectionStatus string

const (
	// StatusPlanned means no device is connected to the dataset.
	StatusPlanned ConnectionStatus = "planned"
	// StatusAvailable means the owner paired a device and the hub knows it is connected.
	StatusAvailable ConnectionStatus = "available"
	// StatusUnavailable means the connection is in use by a session.
	StatusUnavailable ConnectionStatus = "unavailable"
)

// Document namespaces
const (
	DatasetNamespace          = "datasets"
	OwnerTokenNamespace       = "owner-tokens"
	ResearcherTokenNamespace  = "researcher-tokens"
	ProjectNamespace          = "projects"
	ResearcherGrantsNamespace = "researcher-grants"
)

// Document fields
const (
	fieldConnectionStatus = "connection_status"
	fieldOTP              = "OTP"
	fieldOTPIssuedAt      = "OTP_issued_at"
	fieldOwnerToken       = "owner_token"
	fieldDatasetID        = "dataset_id"
	fieldListOfRequests   = "list_of_requests"
	fieldPath             = "path"
)

// StatusApproved is the AccessRequest status for which researcher tokens are issued.
const StatusApproved = "Approved"

// Dataset is the stored state of a device data stream.
type Dataset struct {
	ID               string           `json:"id"`
	ConnectionStatus ConnectionStatus `json:"connection_status"`
	// OTP is only set between device registration and owner verification
	OTP *string `json:"-"`
}

// ResearcherTokens maps issued researcher tokens to the dataset they grant access to.
type ResearcherTokens map[string]string
