package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/BirtasevicLazar/barberbook-go/internal/config"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
)

const fileName = "session.json"

// storedSession mirrors the key names the mobile app uses in device storage.
type storedSession struct {
	AuthToken     string `json:"auth_token"`
	AuthTokenType string `json:"auth_token_type"`
}

// FileStore keeps the barber session on disk so a restart does not force
// a fresh login. A missing file is an anonymous session, not an error.
type FileStore struct {
	path   string
	logger out.LoggerPort
}

func NewFileStore(cfg *config.Config, logger out.LoggerPort) (*FileStore, error) {
	dir := cfg.TokenStore.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "barberbook")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	return &FileStore{
		path:   filepath.Join(dir, fileName),
		logger: logger.WithModule("TokenStore"),
	}, nil
}

func (s *FileStore) Load(ctx context.Context) (domain.Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credentials{}, nil
		}
		return domain.Credentials{}, err
	}

	var session storedSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.Credentials{}, err
	}

	s.logger.Debug("tokenstore.load", out.LogFields{
		"path": s.path,
	})
	return domain.Credentials{
		Token:     session.AuthToken,
		TokenType: session.AuthTokenType,
	}, nil
}

func (s *FileStore) Save(ctx context.Context, creds domain.Credentials) error {
	raw, err := json.Marshal(storedSession{
		AuthToken:     creds.Token,
		AuthTokenType: creds.TokenType,
	})
	if err != nil {
		return err
	}

	// The file holds a bearer token, keep it owner-only.
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return err
	}

	s.logger.Debug("tokenstore.save", out.LogFields{
		"path": s.path,
	})
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	s.logger.Debug("tokenstore.clear", out.LogFields{
		"path": s.path,
	})
	return nil
}
