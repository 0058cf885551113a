// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	helperAuth "schooladmin_backend/internals/helpers/auth"
)

const (
	outcomeOK          = "ok"
	outcomeMissing     = "missing"
	outcomeInvalid     = "invalid"
	bearerPrefix       = "Bearer "
	MsgUnauthenticated = "unauthenticated"
	MsgBadToken        = "bad token"
)

var authOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "schooladmin_auth_requests_total",
	Help: "Protected requests by authorization outcome.",
}, []string{"outcome"})

// TokenVerifier is the part of the token service the gate needs.
type TokenVerifier interface {
	Verify(token string) (*helperAuth.TeacherClaims, error)
}

// AuthJWT rejects the request before the handler runs unless it carries a
// valid bearer token. A missing or non-Bearer header is 401; a token that is
// present but fails verification is 400.
func AuthJWT(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			authOutcomes.WithLabelValues(outcomeMissing).Inc()
			return fiber.NewError(fiber.StatusUnauthorized, MsgUnauthenticated)
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			authOutcomes.WithLabelValues(outcomeInvalid).Inc()
			log.Printf("[WARN] auth %s %s: %v", c.Method(), c.Path(), err)
			return fiber.NewError(fiber.StatusBadRequest, MsgBadToken)
		}

		// Verify already checked the id parses.
		id, _ := uuid.Parse(claims.ID)
		c.Locals(helperAuth.LocTeacherID, id)

		authOutcomes.WithLabelValues(outcomeOK).Inc()
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	raw := strings.TrimSpace(header[len(bearerPrefix):])
	return raw, raw != ""
}
