package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen  = 32
	keyLen   = 32
	scryptR  = 8
	scryptP  = 1
	minCostN = 1 << 10

	// DefaultScryptN is 2^18 (~256MB RAM). 2^20 exceeds the per-app memory
	// limit of most mobile devices.
	DefaultScryptN = 1 << 18
)

// EncryptOpts is the struct given to Encrypt method
type EncryptOpts struct {
	PlainText  []byte
	Passphrase []byte
	// ScryptN is the scrypt CPU/memory cost, DefaultScryptN if zero.
	ScryptN int
}

func (o EncryptOpts) validate() error {
	if len(o.PlainText) <= 0 {
		return ErrNullPlainText
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return validateCost(o.ScryptN)
}

// Encrypt encrypts (with AES-256-GCM) a plaintext with a key derived from the
// passphrase. The result is base64(nonce|ciphertext|salt).
func Encrypt(opts EncryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	key, salt, err := DeriveKey(opts.Passphrase, nil, opts.ScryptN)
	if err != nil {
		return "", err
	}
	defer zero(key)

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, opts.PlainText, nil)
	ciphertext = append(ciphertext, salt...)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptOpts is the struct given to Decrypt method
type DecryptOpts struct {
	CypherText string
	Passphrase []byte
	// ScryptN must match the cost used for encryption.
	ScryptN int
}

func (o DecryptOpts) validate() error {
	if len(o.CypherText) <= 0 {
		return ErrNullCypherText
	}
	if _, err := base64.StdEncoding.DecodeString(o.CypherText); err != nil {
		return ErrInvalidCypherText
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return validateCost(o.ScryptN)
}

// Decrypt decrypts a cyphertext returned by Encrypt. ErrInvalidPassphrase is
// returned if the authentication tag doesn't match.
func Decrypt(opts DecryptOpts) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	data, _ := base64.StdEncoding.DecodeString(opts.CypherText)
	if len(data) <= saltLen {
		return nil, ErrInvalidCypherText
	}
	salt, data := data[len(data)-saltLen:], data[:len(data)-saltLen]

	key, _, err := DeriveKey(opts.Passphrase, salt, opts.ScryptN)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(data) < gcm.NonceSize() {
		return nil, ErrInvalidCypherText
	}
	nonce, text := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, text, nil)
	if err != nil {
		return nil, ErrInvalidPassphrase
	}
	return plaintext, nil
}

// DeriveKey derives a 32 byte key from a passphrase. A random salt is
// generated if nil.
func DeriveKey(passphrase, salt []byte, costN int) ([]byte, []byte, error) {
	if costN == 0 {
		costN = DefaultScryptN
	}
	if salt == nil {
		salt = make([]byte, saltLen)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}
	key, err := scrypt.Key(passphrase, salt, costN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(blockCipher)
}

func validateCost(n int) error {
	if n == 0 {
		return nil
	}
	// scrypt requires N to be a power of 2 greater than 1
	if n < minCostN || n&(n-1) != 0 {
		return ErrInvalidScryptCost
	}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
