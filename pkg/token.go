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
	"crypto/rand"
	"errors"
	"io"
)

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// bytes at or above this value are rejected so every alphabet index is equally likely
const tokenByteLimit = 256 - (256 % len(tokenAlphabet))

// MinimumTokenLength is the shortest OTP or token length accepted by the configuration.
const MinimumTokenLength = 6

// GenerateToken returns a random alphanumeric string of the given length read from crypto/rand.
func GenerateToken(length int) (string, error) {
	return generateToken(rand.Reader, length)
}

func generateToken(source io.Reader, length int) (string, error) {
	if length <= 0 {
		return "", errors.New("token length must be positive")
	}

	token := make([]byte, 0, length)
	buf := make([]byte, length+length/4+1)
	for len(token) < length {
		if _, err := io.ReadFull(source, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= tokenByteLimit {
				continue
			}
			token = append(token, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(token) == length {
				break
			}
		}
	}
	return string(token), nil
}
