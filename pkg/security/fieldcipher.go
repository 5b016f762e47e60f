package security

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pontodigital/ponto-backend/pkg/config"
)

// FieldCipher encrypts individual PII columns (CPF, telefone) with AES-256-CBC
// under the process-wide key. The wire format is hex(iv):hex(ciphertext) with
// exactly one ":" separator, matching the data already in production.
type FieldCipher struct {
	key []byte
}

// NewFieldCipher validates the configured key and returns a cipher.
func NewFieldCipher(cfg config.CipherConfig) (*FieldCipher, error) {
	if len(cfg.Key) != 32 {
		return nil, fmt.Errorf("cipher key must be 32 bytes, got %d", len(cfg.Key))
	}
	return &FieldCipher{key: []byte(cfg.Key)}, nil
}

// Encrypt returns the encoded ciphertext for a non-empty plaintext.
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("plaintext cannot be empty")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Callers that must preserve the legacy silent
// fallback should use DecryptOrRaw instead.
func (c *FieldCipher) Decrypt(encoded string) (string, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("malformed ciphertext: expected iv:payload")
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("malformed iv")
	}
	payload, err := hex.DecodeString(parts[1])
	if err != nil || len(payload) == 0 || len(payload)%aes.BlockSize != 0 {
		return "", fmt.Errorf("malformed payload")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	out := make([]byte, len(payload))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, payload)

	unpadded, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(unpadded), nil
}

// DecryptOrRaw returns the plaintext when decryption succeeds and the stored
// value unchanged when it does not. Existing rows predate encryption, so the
// read path degrades instead of failing the request.
func (c *FieldCipher) DecryptOrRaw(encoded string) string {
	if encoded == "" {
		return ""
	}
	plain, err := c.Decrypt(encoded)
	if err != nil {
		return encoded
	}
	return plain
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length")
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[:len(data)-padding], nil
}
