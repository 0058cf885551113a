// internals/helpers/auth/token.go
package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/samber/oops"
)

const DefaultTokenTTL = time.Hour

// LocTeacherID is the Locals key the auth middleware stores the teacher id under.
const LocTeacherID = "teacher_id"

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong algorithm, missing id, expired.
var ErrInvalidToken = errors.New("invalid or expired token")

var ErrEmptySecret = errors.New("jwt secret is empty")

type TeacherClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens. It is immutable
// after construction and safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, oops.Code("CONFIG_INVALID").Wrap(ErrEmptySecret)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue returns the signed token and its expiry, truncated to whole seconds.
func (s *TokenService) Issue(teacherID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := TeacherClaims{
		ID: teacherID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, oops.Code("AUTH_TOKEN_SIGN_FAILED").Wrap(err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Verify accepts a token strictly before its exp instant.
func (s *TokenService) Verify(token string) (*TeacherClaims, error) {
	claims := &TeacherClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return nil, invalid("parse", err)
	}

	if claims.ExpiresAt == nil || !s.now().Before(claims.ExpiresAt.Time) {
		return nil, invalid("expired", nil)
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return nil, invalid("id", err)
	}
	return claims, nil
}

func invalid(reason string, cause error) error {
	b := oops.Code("AUTH_INVALID_TOKEN").With("reason", reason)
	if cause != nil {
		b = b.With("cause", cause.Error())
	}
	return b.Wrap(ErrInvalidToken)
}

// GetTeacherIDFromToken reads the id the auth middleware stored.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(LocTeacherID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "unauthenticated")
	}
	return id, nil
}
