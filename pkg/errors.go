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

import "errors"

// ErrNotFound is returned when a referenced dataset, project or request list does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidState is returned when the dataset is not in the status the operation requires.
var ErrInvalidState = errors.New("dataset is in an invalid state for this operation")

// ErrInvalidToken is returned when an OTP or token is absent, expired or bound to another dataset.
var ErrInvalidToken = errors.New("invalid token")

// ErrStoreUnavailable is returned when the document store failed or did not answer in time.
var ErrStoreUnavailable = errors.New("document store unavailable")

// ErrDeliveryFailed is returned when a registered OTP could not be delivered to the device.
var ErrDeliveryFailed = errors.New("OTP delivery failed")
