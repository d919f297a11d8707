package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.Expiration() != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.Expiration())
			}
		})
	}
}

// TestGenerator_RoundTrip は生成したトークンからセッションIDを取り出せることを検証します。
func TestGenerator_RoundTrip(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("round-trip-secret", time.Hour)

	token, err := gen.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := gen.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "session-123" {
		t.Errorf("expected session-123, got %q", got)
	}
}

// TestGenerator_GenerateToken_Claims はトークンに標準クレームが含まれることを検証します。
func TestGenerator_GenerateToken_Claims(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	gen := NewGenerator("claims-secret", 2*time.Hour)
	gen.now = func() time.Time { return fixed }

	token, err := gen.GenerateToken("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var claims jwt.RegisteredClaims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.Subject != "abc" {
		t.Errorf("expected sub abc, got %q", claims.Subject)
	}
	if !claims.IssuedAt.Time.Equal(fixed) {
		t.Errorf("expected iat %v, got %v", fixed, claims.IssuedAt.Time)
	}
	if !claims.ExpiresAt.Time.Equal(fixed.Add(2 * time.Hour)) {
		t.Errorf("expected exp %v, got %v", fixed.Add(2*time.Hour), claims.ExpiresAt.Time)
	}
}

// TestGenerator_GenerateToken_EmptySessionID は空のセッションIDを拒否することを検証します。
func TestGenerator_GenerateToken_EmptySessionID(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("secret", time.Hour)
	if _, err := gen.GenerateToken(""); err == nil {
		t.Error("expected error for empty session id")
	}
}

// TestGenerator_ParseToken_Invalid は改ざん・期限切れ・別アルゴリズムのトークンを拒否することを検証します。
func TestGenerator_ParseToken_Invalid(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("parse-secret", time.Hour)
	other := NewGenerator("other-secret", time.Hour)

	expiredGen := NewGenerator("parse-secret", time.Hour)
	expiredGen.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	wrongSecret, _ := other.GenerateToken("s1")
	expired, _ := expiredGen.GenerateToken("s2")
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "s3"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("parse-secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", wrongSecret},
		{"expired", expired},
		{"none algorithm", noneAlg},
		{"missing subject", noSubject},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := gen.ParseToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
