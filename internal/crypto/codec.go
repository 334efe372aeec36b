// Package crypto provides the symmetric credential codec. Connector
// credential structures are JSON-serialized and encrypted with this codec
// before they reach persistence; cleartext platform credentials never touch
// the database.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	keyLen = 32
	ivLen  = 12
)

// ErrDecrypt is returned when a blob cannot be decrypted: wrong key, tampered
// ciphertext, or a malformed encoding. The codec never returns garbage
// plaintext.
var ErrDecrypt = errors.New("credential blob cannot be decrypted")

// Codec encrypts and decrypts opaque credential blobs with AES-256-GCM,
// keyed by a process-wide secret. Blobs encode as base64(iv):base64(ct):base64(tag).
type Codec struct {
	key []byte
}

// NewCodec builds a codec from a 64-hex-char key (32 bytes).
// Generate one with: openssl rand -hex 32
func NewCodec(hexKey string) (*Codec, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	if len(key) != keyLen {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keyLen, len(key))
	}
	return &Codec{key: key}, nil
}

// Encrypt seals plaintext with a fresh random IV.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLen)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	sealed := aead.Seal(nil, iv, []byte(plaintext), nil)
	tagLen := aead.Overhead()
	ciphertext := sealed[:len(sealed)-tagLen]
	tag := sealed[len(sealed)-tagLen:]

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ciphertext),
		base64.StdEncoding.EncodeToString(tag),
	}, ":"), nil
}

// Decrypt opens a blob produced by Encrypt. Any structural or authentication
// failure yields an error wrapping ErrDecrypt.
func (c *Codec) Decrypt(blob string) (string, error) {
	parts := strings.Split(blob, ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: expected iv:ciphertext:tag", ErrDecrypt)
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(iv) != ivLen {
		return "", fmt.Errorf("%w: bad iv", ErrDecrypt)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext", ErrDecrypt)
	}
	tag, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: bad auth tag", ErrDecrypt)
	}

	aead, err := c.aead()
	if err != nil {
		return "", err
	}
	if len(tag) != aead.Overhead() {
		return "", fmt.Errorf("%w: bad auth tag", ErrDecrypt)
	}

	plaintext, err := aead.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", ErrDecrypt)
	}

	return string(plaintext), nil
}

func (c *Codec) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return aead, nil
}
