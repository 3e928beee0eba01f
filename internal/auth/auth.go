package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const identityFileName = "identity.json"

// Session is the resolved identity for this process. It is established
// exactly once at startup and stable for the process lifetime.
type Session struct {
	UserID    string    `json:"user_id"`
	Source    string    `json:"source"` // "file" | "token" | "anonymous" | "local"
	CreatedAt time.Time `json:"created_at"`
}

// Persisted reports whether the identity survives across runs. A
// "local" session exists only so the UI stays usable when every other
// auth path failed.
func (s Session) Persisted() bool { return s.Source != "local" }

// tokenNamespace derives stable user ids from opaque sign-in tokens,
// so the same token always resolves to the same identity.
var tokenNamespace = uuid.MustParse("9a1e2f40-5d3b-4c6a-9b7e-1f08c4d52a11")

// Bootstrap resolves the session identity. Resolution order: an
// identity saved by a previous run, then the supplied sign-in token,
// then a fresh anonymous identity persisted for next time. It never
// fails: if every path errors (e.g. the data dir is unwritable) it
// falls back to a random, unpersisted local id so the UI can proceed.
func Bootstrap(basePath, token string, log *zap.Logger) Session {
	if log == nil {
		log = zap.NewNop()
	}
	if s, err := readIdentity(basePath); err == nil && s != nil {
		return *s
	} else if err != nil {
		log.Warn("auth: read saved identity", zap.Error(err))
	}

	s := Session{Source: "anonymous", CreatedAt: time.Now()}
	if token = stripBearer(strings.TrimSpace(token)); token != "" {
		s.UserID = userIDFromToken(token)
		s.Source = "token"
	} else {
		s.UserID = uuid.NewString()
	}

	if err := writeIdentity(basePath, s); err != nil {
		log.Warn("auth: persist identity, continuing unpersisted", zap.Error(err))
		s.Source = "local"
	}
	return s
}

// userIDFromToken extracts the subject from a JWT without verifying
// the signature (verification belongs to the issuing service, not this
// client). Opaque tokens get a stable id derived from the token bytes.
func userIDFromToken(token string) string {
	parser := jwt.NewParser()
	if tok, _, err := parser.ParseUnverified(token, jwt.MapClaims{}); err == nil {
		if sub, err := tok.Claims.GetSubject(); err == nil && sub != "" {
			return sub
		}
	}
	return uuid.NewSHA1(tokenNamespace, []byte(token)).String()
}

func identityPath(basePath string) string {
	return filepath.Join(basePath, identityFileName)
}

func readIdentity(basePath string) (*Session, error) {
	if basePath == "" {
		return nil, nil
	}
	b, err := os.ReadFile(identityPath(basePath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // first run
		}
		return nil, fmt.Errorf("read identity: %w", err)
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse identity: %w", err)
	}
	if strings.TrimSpace(s.UserID) == "" {
		return nil, errors.New("identity file has no user id")
	}
	s.Source = "file"
	return &s, nil
}

func writeIdentity(basePath string, s Session) error {
	if basePath == "" {
		return errors.New("no base path")
	}
	// owner-only, same as any other credential material
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(identityPath(basePath), b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func stripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
