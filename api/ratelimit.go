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
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// VerificationPaths are the routes that accept guessable secrets and are throttled by RateLimit.
var VerificationPaths = []string{"/verifyOwnerOTP", "/verifyOwnerToken", "/verifyResearcherToken"}

// limiterTTL is how long the bucket of an idle client is kept
const limiterTTL = 10 * time.Minute

// clientLimiters keeps one token bucket per client IP
type clientLimiters struct {
	limit   rate.Limit
	burst   int
	clients *cache.Cache
}

func (c *clientLimiters) get(client string) *rate.Limiter {
	if l, found := c.clients.Get(client); found {
		return l.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(c.limit, c.burst)
	if err := c.clients.Add(client, limiter, cache.DefaultExpiration); err != nil {
		// added by a concurrent request of the same client
		if l, found := c.clients.Get(client); found {
			return l.(*rate.Limiter)
		}
	}
	return limiter
}

// RateLimit answers 429 on the given route paths once the client, identified by its real IP, used its burst.
// Other routes pass untouched.
func RateLimit(limit rate.Limit, burst int, paths ...string) echo.MiddlewareFunc {
	limited := make(map[string]bool, len(paths))
	for _, p := range paths {
		limited[p] = true
	}
	limiters := &clientLimiters{
		limit:   limit,
		burst:   burst,
		clients: cache.New(limiterTTL, time.Minute),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if limited[ctx.Path()] && !limiters.get(ctx.RealIP()).Allow() {
				return ctx.NoContent(http.StatusTooManyRequests)
			}
			return next(ctx)
		}
	}
}
