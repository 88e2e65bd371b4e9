// Package cipher encrypts sensitive record fields before they are persisted.
package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/argon2"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const keyLen = 32

// FieldCipher seals values with AES-256-GCM. Output is base64(nonce||sealed).
type FieldCipher struct {
	aead gocipher.AEAD
}

// DeriveKey derives a 256-bit key from secret and salt with argon2id.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, keyLen)
}

// New builds a FieldCipher from a configured secret and salt.
func New(secret, salt string) (*FieldCipher, error) {
	if secret == "" || salt == "" {
		return nil, fmt.Errorf("cipher: secret and salt are required: %w", domain.ErrEncryption)
	}
	return NewWithKey(DeriveKey([]byte(secret), []byte(salt)))
}

// NewWithKey builds a FieldCipher from a raw 32-byte key.
func NewWithKey(key []byte) (*FieldCipher, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("cipher: key must be %d bytes: %w", keyLen, domain.ErrEncryption)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, wrap("new cipher", err)
	}
	aead, err := gocipher.NewGCM(block)
	if err != nil {
		return nil, wrap("new gcm", err)
	}
	return &FieldCipher{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh random nonce.
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", wrap("nonce", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (c *FieldCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", wrap("decode", err)
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns {
		return "", wrap("decode", errors.New("ciphertext too short"))
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", wrap("open", err)
	}
	return string(plain), nil
}

// EncryptJSON marshals v to JSON and seals it.
func (c *FieldCipher) EncryptJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", wrap("marshal", err)
	}
	return c.Encrypt(string(b))
}

// DecryptJSON opens ciphertext and unmarshals it into v.
func (c *FieldCipher) DecryptJSON(ciphertext string, v any) error {
	plain, err := c.Decrypt(ciphertext)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(plain), v); err != nil {
		return wrap("unmarshal", err)
	}
	return nil
}

// EncryptDecimal seals the canonical string form of d.
func (c *FieldCipher) EncryptDecimal(d decimal.Decimal) (string, error) {
	return c.Encrypt(d.String())
}

// DecryptDecimal opens a value produced by EncryptDecimal. An empty
// ciphertext decodes to zero.
func (c *FieldCipher) DecryptDecimal(ciphertext string) (decimal.Decimal, error) {
	if ciphertext == "" {
		return decimal.Zero, nil
	}
	plain, err := c.Decrypt(ciphertext)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(plain)
	if err != nil {
		return decimal.Zero, wrap("parse decimal", err)
	}
	return d, nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("cipher: %s: %w: %w", op, domain.ErrEncryption, err)
}
