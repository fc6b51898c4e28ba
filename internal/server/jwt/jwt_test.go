package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndParse(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Generate(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)

	now := time.Now()
	assert.WithinDuration(t, now, claims.IssuedAt.Time, 5*time.Second)
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestService_ExtractSubject(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Generate(1, "bob")
	require.NoError(t, err)

	subject, err := svc.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", subject)
}

func TestService_ExtractSubject_Invalid(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.ExtractSubject("not a token")
	assert.Error(t, err)

	_, err = svc.ExtractSubject("")
	assert.Error(t, err)
}

func TestService_Parse_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, err := svc.Generate(1, "alice")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
	assert.False(t, svc.Validate(token, "alice"))
}

func TestService_Parse_WrongSecret(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	other := NewService("another-secret", time.Hour)

	token, err := svc.Generate(1, "alice")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestService_Parse_Tampered(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Generate(1, "alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	tests := []struct {
		name  string
		token string
	}{
		{"tampered header", "eyJhbGciOiJub25lIn0." + parts[1] + "." + parts[2]},
		{"tampered payload", parts[0] + ".eyJzdWIiOiJtYWxsb3J5In0." + parts[2]},
		{"truncated signature", parts[0] + "." + parts[1] + "." + parts[2][:len(parts[2])-4]},
		{"missing signature", parts[0] + "." + parts[1] + "."},
		{"empty token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token)
			assert.Error(t, err)
			assert.False(t, svc.Validate(tt.token, "alice"))
		})
	}
}

func TestService_Validate_SubjectMismatch(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Generate(1, "alice")
	require.NoError(t, err)

	assert.True(t, svc.Validate(token, "alice"))
	assert.False(t, svc.Validate(token, "bob"))
}
