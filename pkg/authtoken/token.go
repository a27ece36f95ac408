// FILE: pkg/authtoken/token.go
// PURPOSE: Signed, expiring, stateless session tokens

package authtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionTTL bounds how long an issued token stays valid. There is no
// server-side session store, so a token cannot be revoked before expiry.
const SessionTTL = 12 * time.Hour

type payload struct {
	Exp   int64  `json:"exp"` // unix milliseconds
	Nonce string `json:"nonce"`
}

// Issue creates a token of the form base64url(payload) + "." +
// base64url(hmac-sha256(payload, secret)).
func Issue(secret string) (string, error) {
	body, err := json.Marshal(payload{
		Exp:   time.Now().Add(SessionTTL).UnixMilli(),
		Nonce: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(body)
	return encoded + "." + sign(encoded, secret), nil
}

// Verify reports whether the token is authentic and unexpired. It fails
// closed on malformed input and never panics; the signature check uses a
// constant-time comparison.
func Verify(token, secret string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return false
	}

	encoded, providedSig := parts[0], parts[1]
	expectedSig := sign(encoded, secret)
	if !hmac.Equal([]byte(providedSig), []byte(expectedSig)) {
		return false
	}

	body, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return false
	}
	if p.Exp == 0 {
		return false
	}
	return p.Exp > time.Now().UnixMilli()
}

func sign(encodedPayload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
