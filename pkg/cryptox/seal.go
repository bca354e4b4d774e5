package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the sealing key from a passphrase.
// Tuned for an interactive client: one pass over 64 MiB.
const (
	kdfTime    = 1
	kdfMemory  = 64 * 1024
	kdfThreads = 4
	keyLen     = 32

	saltLen  = 16
	nonceLen = 12
)

// ErrSealFormat reports sealed data that is truncated or corrupt.
var ErrSealFormat = errors.New("cryptox: malformed sealed data")

// Box seals small secrets (the stored bearer token) at rest using a key
// derived from a passphrase with argon2id and AES-256-GCM.
//
// Output layout: [16-byte salt][12-byte nonce][ciphertext+tag]. A fresh salt
// and nonce are drawn per Seal call, so sealing the same plaintext twice
// yields different bytes.
type Box struct {
	passphrase []byte
}

// NewBox creates a Box for the given passphrase. An empty passphrase still
// works (the state file is then only obfuscated, not protected); callers
// should treat that as a development convenience.
func NewBox(passphrase string) *Box {
	return &Box{passphrase: []byte(passphrase)}
}

func (b *Box) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(b.passphrase, salt, kdfTime, kdfMemory, kdfThreads, keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

// Seal encrypts plaintext and returns the self-describing sealed blob.
func (b *Box) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("cryptox: generate salt: %w", err)
	}

	aead, err := b.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("cryptox: generate nonce: %w", err)
	}

	out := make([]byte, 0, saltLen+nonceLen+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal.
func (b *Box) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < saltLen+nonceLen {
		return nil, ErrSealFormat
	}

	salt := sealed[:saltLen]
	nonce := sealed[saltLen : saltLen+nonceLen]
	ciphertext := sealed[saltLen+nonceLen:]

	aead, err := b.aead(salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("cryptox: open sealed data: %w", err)
	}

	return plaintext, nil
}
