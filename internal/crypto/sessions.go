package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// ErrNoSession is returned by [SessionStore.Open] when no sealed material
// exists for the account.
var ErrNoSession = errors.New("no crypto session material")

const (
	saltSize   = 16
	secretSize = 32
	sessionExt = ".box"
)

// fileSessionStore is the private implementation of [SessionStore], keeping
// one sealed file per account under a base directory.
type fileSessionStore struct {
	dir          string
	deviceSecret string

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewFileSessionStore constructs a [SessionStore] rooted at dir, sealing
// material under a key derived from deviceSecret with the Argon2id parameters
// recommended by OWASP (2024).
func NewFileSessionStore(dir, deviceSecret string) (SessionStore, error) {
	if dir == "" {
		return nil, errors.New("session store directory is required")
	}
	if deviceSecret == "" {
		return nil, errors.New("device secret is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session store dir: %w", err)
	}

	return &fileSessionStore{
		dir:          dir,
		deviceSecret: deviceSecret,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}, nil
}

func (s *fileSessionStore) Open(accountID string) (*Session, error) {
	blob, err := os.ReadFile(s.path(accountID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session material: %w", err)
	}

	// Layout: salt (16) ‖ nonce ‖ ciphertext.
	if len(blob) < saltSize {
		return nil, errors.New("session material truncated")
	}
	salt, sealed := blob[:saltSize], blob[saltSize:]

	gcm, err := s.sealCipher(salt)
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("session material truncated")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]

	// An auth-tag mismatch here almost always means the device secret
	// changed underneath the store.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unseal session material: %w", err)
	}

	var session Session
	if err = json.Unmarshal(plaintext, &session); err != nil {
		return nil, fmt.Errorf("decode session material: %w", err)
	}

	return &session, nil
}

func (s *fileSessionStore) Create(accountID string) (*Session, error) {
	secret := make([]byte, secretSize)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}

	session := &Session{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Secret:    secret,
		CreatedAt: time.Now().UTC(),
	}

	plaintext, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session material: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.sealCipher(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	blob = append(blob, gcm.Seal(nil, nonce, plaintext, nil)...)

	if err = os.WriteFile(s.path(accountID), blob, 0o600); err != nil {
		return nil, fmt.Errorf("write session material: %w", err)
	}

	return session, nil
}

func (s *fileSessionStore) Delete(accountID string) error {
	err := os.Remove(s.path(accountID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session material: %w", err)
	}
	return nil
}

func (s *fileSessionStore) Exists(accountID string) bool {
	_, err := os.Stat(s.path(accountID))
	return err == nil
}

// sealCipher derives the sealing key from the device secret and salt via
// Argon2id and returns the AES-256-GCM AEAD built from it.
func (s *fileSessionStore) sealCipher(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(
		[]byte(s.deviceSecret),
		salt,
		s.argonTime,
		s.argonMemory,
		s.argonThreads,
		s.argonKeyLen,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

func (s *fileSessionStore) path(accountID string) string {
	return filepath.Join(s.dir, accountID+sessionExt)
}
