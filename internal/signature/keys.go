package signature

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	Rsa "github.com/dvsekhvalnov/jose2go/keys/rsa"
	"github.com/youmark/pkcs8"
)

const encryptedPKCS8BlockType = "ENCRYPTED PRIVATE KEY"

var (
	ErrInvalidKey         = errors.New("key must be a PEM encoded RSA key")
	ErrPassphraseRequired = errors.New("private key is encrypted but no passphrase was given")
)

// LoadPrivateKey parses a PEM encoded RSA private key. PKCS#1 and PKCS#8 keys
// are accepted as is; encrypted PKCS#8 and legacy encrypted PEM keys are
// decrypted with passphrase. The passphrase is ignored for plain keys.
func LoadPrivateKey(data []byte, passphrase string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidKey
	}

	switch {
	case block.Type == encryptedPKCS8BlockType:
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		key, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt private key: %w", err)
		}
		return key, nil

	case x509.IsEncryptedPEMBlock(block):
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}
		der, err := x509.DecryptPEMBlock(block, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt private key: %w", err)
		}
		data = pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: der})
	}

	key, err := Rsa.ReadPrivate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return key, nil
}

// LoadPublicKey parses a PEM encoded PKIX public key or X.509 certificate.
func LoadPublicKey(data []byte) (*rsa.PublicKey, error) {
	key, err := Rsa.ReadPublic(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return key, nil
}

func ReadPrivateKeyFile(path, passphrase string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}

	key, err := LoadPrivateKey(data, passphrase)
	if err != nil {
		return nil, fmt.Errorf("private key %s: %w", path, err)
	}

	return key, nil
}

func ReadPublicKeyFile(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}

	key, err := LoadPublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("public key %s: %w", path, err)
	}

	return key, nil
}
