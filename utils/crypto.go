package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const vaultKeySize = 32

// DeriveVaultKey turns the configured secret into a 32-byte AES key:
// UTF-8 bytes of the secret, right-padded with '0' characters, truncated
// if longer. The format is fixed; changing it breaks stored ciphertexts.
func DeriveVaultKey(secret string) []byte {
	key := []byte(secret)
	for len(key) < vaultKeySize {
		key = append(key, '0')
	}
	return key[:vaultKeySize]
}

// EncryptPassword seals a password with AES-GCM and a random 12-byte IV,
// returning "base64(iv):base64(ciphertext)".
func EncryptPassword(secret, password string) (string, error) {
	block, err := aes.NewCipher(DeriveVaultKey(secret))
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nil, iv, []byte(password), nil)

	return base64.StdEncoding.EncodeToString(iv) + ":" + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptPassword reverses EncryptPassword.
func DecryptPassword(secret, encrypted string) (string, error) {
	parts := strings.SplitN(encrypted, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("malformed payload: missing ':' separator")
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("malformed iv: %v", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("malformed ciphertext: %v", err)
	}

	block, err := aes.NewCipher(DeriveVaultKey(secret))
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	if len(iv) != gcm.NonceSize() {
		return "", fmt.Errorf("malformed iv: expected %d bytes", gcm.NonceSize())
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %v", err)
	}

	return string(plaintext), nil
}
