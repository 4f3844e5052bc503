package history

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"github.com/MrEthical07/goPassgen/internal/secmem"
	"golang.org/x/crypto/argon2"
)

const (
	minMemoryKB    uint32 = 8 * 1024
	minTimeCost    uint32 = 1
	minParallelism uint8  = 1
	minPepperBytes        = 16
	minKeyLength   uint32 = 16
)

// FingerprintConfig defines the argon2id cost and the process-wide pepper used
// to derive fingerprints.
//
// The pepper doubles as the argon2 salt, which makes fingerprints of the same
// password equal within one deployment and unrelated across deployments.
type FingerprintConfig struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	KeyLength   uint32
	Pepper      []byte
}

// DefaultFingerprintConfig returns moderate argon2id costs with no pepper. A
// pepper must be supplied before use.
func DefaultFingerprintConfig() FingerprintConfig {
	return FingerprintConfig{
		Memory:      64 * 1024,
		Time:        1,
		Parallelism: 2,
		KeyLength:   32,
	}
}

// Validate checks the argon2 cost floor and pepper length.
func (c FingerprintConfig) Validate() error {
	if c.Memory < minMemoryKB {
		return errors.New("history memory must be >= 8192 KB")
	}
	if c.Time < minTimeCost {
		return errors.New("history time must be >= 1")
	}
	if c.Parallelism < minParallelism {
		return errors.New("history parallelism must be >= 1")
	}
	if c.KeyLength < minKeyLength {
		return errors.New("history key length must be >= 16")
	}
	if len(c.Pepper) < minPepperBytes {
		return errors.New("history pepper must be >= 16 bytes")
	}
	return nil
}

// Fingerprinter derives stable, non-reversible identifiers for passwords.
type Fingerprinter struct {
	config FingerprintConfig
}

// NewFingerprinter validates cfg and copies its pepper.
func NewFingerprinter(cfg FingerprintConfig) (*Fingerprinter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Pepper = append([]byte(nil), cfg.Pepper...)
	return &Fingerprinter{config: cfg}, nil
}

// Fingerprint returns the URL-safe base64 argon2id digest of password.
// Password bytes are used exactly as given.
func (f *Fingerprinter) Fingerprint(password []byte) string {
	key := argon2.IDKey(
		password,
		f.config.Pepper,
		f.config.Time,
		f.config.Memory,
		f.config.Parallelism,
		f.config.KeyLength,
	)
	defer secmem.Wipe(key)
	return base64.RawURLEncoding.EncodeToString(key)
}

// FingerprintString is Fingerprint for a string password. The temporary copy is
// wiped before return.
func (f *Fingerprinter) FingerprintString(password string) string {
	b := []byte(password)
	defer secmem.Wipe(b)
	return f.Fingerprint(b)
}

// Match reports whether password derives fingerprint, in constant time.
func (f *Fingerprinter) Match(password []byte, fingerprint string) bool {
	got := f.Fingerprint(password)
	return subtle.ConstantTimeCompare([]byte(got), []byte(fingerprint)) == 1
}
