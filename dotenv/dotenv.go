// Package dotenv implements [chat.CredentialStore] as a .env file.
//
// The file holds KEY="value" lines in the format read by godotenv. It is
// always written with owner-only permissions.
package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/chat"
	"github.com/joho/godotenv"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// Interface compliance check.
var _ chat.CredentialStore = (*Store)(nil)

// Store reads and writes one key of a .env file.
type Store struct {
	path string
	key  string
}

// NewStore returns a Store for key in the file at path.
func NewStore(path, key string) *Store {
	return &Store{path: path, key: key}
}

// Path returns the file location.
func (s *Store) Path() string { return s.path }

// Get returns the stored secret. A missing file or key reports ok=false with
// no error; blank values count as missing.
func (s *Store) Get() (string, bool, error) {
	env, err := s.read()
	if err != nil {
		return "", false, err
	}
	v := strings.TrimSpace(env[s.key])
	return v, v != "", nil
}

// Set stores secret, keeping any other keys already in the file. The file is
// replaced atomically and left with mode 0600.
func (s *Store) Set(secret string) error {
	env, err := s.read()
	if err != nil {
		return err
	}
	if env == nil {
		env = make(map[string]string)
	}
	env[s.key] = secret

	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("dotenv: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("dotenv: %w", err)
	}
	return writeFile(s.path, []byte(content+"\n"))
}

func (s *Store) read() (map[string]string, error) {
	env, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dotenv: read %s: %w", s.path, err)
	}
	return env, nil
}

// writeFile writes data to a temp file beside path and renames it over path.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".env-*")
	if err != nil {
		return fmt.Errorf("dotenv: %w", err)
	}
	name := tmp.Name()
	defer os.Remove(name)

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("dotenv: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("dotenv: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("dotenv: write: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("dotenv: %w", err)
	}
	return nil
}
