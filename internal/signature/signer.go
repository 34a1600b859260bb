package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingKey         = errors.New("key is not provided")
	ErrMissingSignature   = errors.New("signature is empty")
	ErrMalformedSignature = errors.New("signature is not valid base64")
)

// Algorithm is the digest used under the RSA PKCS#1 v1.5 signature.
type Algorithm string

const (
	SHA256 Algorithm = "SHA256"
	// SHA1 is used by the older gateway API versions.
	SHA1 Algorithm = "SHA1"
)

// ParseAlgorithm accepts "SHA256" and "SHA1", case-insensitively. An empty
// string selects SHA256.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", string(SHA256), "SHA-256":
		return SHA256, nil
	case string(SHA1), "SHA-1":
		return SHA1, nil
	}
	return "", fmt.Errorf("unsupported signature algorithm %q", value)
}

func (a Algorithm) digest(message []byte) (crypto.Hash, []byte) {
	if a == SHA1 {
		sum := sha1.Sum(message)
		return crypto.SHA1, sum[:]
	}
	sum := sha256.Sum256(message)
	return crypto.SHA256, sum[:]
}

// Signer signs messages with the merchant's private key.
type Signer struct {
	key       *rsa.PrivateKey
	algorithm Algorithm
}

func NewSigner(key *rsa.PrivateKey, algorithm Algorithm) (*Signer, error) {
	if key == nil {
		return nil, fmt.Errorf("signer: %w", ErrMissingKey)
	}
	return &Signer{key: key, algorithm: algorithm}, nil
}

// Sign returns the base64 signature of the joined fields.
func (s *Signer) Sign(fields Fields) (string, error) {
	return s.SignString(Join(fields))
}

func (s *Signer) SignString(message string) (string, error) {
	if s == nil || s.key == nil {
		return "", ErrMissingKey
	}

	hash, digest := s.algorithm.digest([]byte(message))
	raw, err := rsa.SignPKCS1v15(rand.Reader, s.key, hash, digest)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Verifier checks messages signed by the gateway.
type Verifier struct {
	key       *rsa.PublicKey
	algorithm Algorithm
}

func NewVerifier(key *rsa.PublicKey, algorithm Algorithm) (*Verifier, error) {
	if key == nil {
		return nil, fmt.Errorf("verifier: %w", ErrMissingKey)
	}
	return &Verifier{key: key, algorithm: algorithm}, nil
}

// Verify recomputes the joined string of fields and checks it against the
// base64 signature. A mismatch is reported as false with a nil error; an error
// is returned only when the signature itself is malformed.
func (v *Verifier) Verify(fields Fields, signature string) (bool, error) {
	return v.VerifyString(Join(fields), signature)
}

func (v *Verifier) VerifyString(message, signature string) (bool, error) {
	if v == nil || v.key == nil {
		return false, ErrMissingKey
	}
	if signature == "" {
		return false, ErrMissingSignature
	}

	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}

	hash, digest := v.algorithm.digest([]byte(message))
	if err = rsa.VerifyPKCS1v15(v.key, hash, digest, raw); err != nil {
		return false, nil
	}

	return true, nil
}
