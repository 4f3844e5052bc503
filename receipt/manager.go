package receipt

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SigningMethod selects the receipt signature algorithm.
type SigningMethod string

const (
	// MethodEd25519 signs receipts with EdDSA over ed25519 keys.
	MethodEd25519 SigningMethod = "ed25519"
	// MethodHS256 signs receipts with HMAC-SHA256 using PrivateKey as secret.
	MethodHS256 SigningMethod = "hs256"
)

// Config controls receipt issuance and verification.
//
// Config instances are intended to be configured during initialization and then treated as immutable.
type Config struct {
	TTL           time.Duration
	SigningMethod SigningMethod
	PrivateKey    []byte
	PublicKey     []byte
	Issuer        string
	Leeway        time.Duration
	KeyID         string
	VerifyKeys    map[string][]byte
}

// Summary is the non-secret description of a generated password that a
// receipt attests to.
type Summary struct {
	Subject     string
	Length      int
	Entropy     float64
	Score       int
	Category    string
	Charset     string
	Pattern     string
	Fingerprint string
}

// Claims is the JWT payload of a receipt. The password itself is never part of
// a receipt.
type Claims struct {
	Length      int     `json:"len"`
	Entropy     float64 `json:"ent"`
	Score       int     `json:"score"`
	Category    string  `json:"cat"`
	Charset     string  `json:"cs,omitempty"`
	Pattern     string  `json:"pat,omitempty"`
	Fingerprint string  `json:"fp,omitempty"`
	jwt.RegisteredClaims
}

// Summary returns the attested metadata carried by c.
func (c *Claims) Summary() Summary {
	return Summary{
		Subject:     c.Subject,
		Length:      c.Length,
		Entropy:     c.Entropy,
		Score:       c.Score,
		Category:    c.Category,
		Charset:     c.Charset,
		Pattern:     c.Pattern,
		Fingerprint: c.Fingerprint,
	}
}

// Manager issues and verifies generation receipts.
type Manager struct {
	config Config
	now    func() time.Time
}

// NewManager validates cfg the same way for both signing methods: a TTL is
// required, leeway is bounded and ed25519 needs at least one verification key.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.TTL <= 0 {
		return nil, errors.New("invalid receipt TTL configuration")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	cfg.KeyID = strings.TrimSpace(cfg.KeyID)
	switch cfg.SigningMethod {
	case MethodHS256:
		if len(cfg.PrivateKey) == 0 {
			return nil, errors.New("hs256 requires private key")
		}
	case MethodEd25519:
		if len(cfg.PrivateKey) > 0 {
			if _, err := parseEdPrivateKey(cfg.PrivateKey); err != nil {
				return nil, err
			}
		}
		if len(cfg.PublicKey) > 0 {
			if _, err := parseEdPublicKey(cfg.PublicKey); err != nil {
				return nil, err
			}
		}
		if len(cfg.VerifyKeys) == 0 && len(cfg.PublicKey) == 0 {
			return nil, errors.New("ed25519 requires public key or verify key set")
		}
		for kid, key := range cfg.VerifyKeys {
			if strings.TrimSpace(kid) == "" {
				return nil, errors.New("verify key map contains empty kid")
			}
			if _, err := parseEdPublicKey(key); err != nil {
				return nil, fmt.Errorf("invalid ed25519 verify key for kid %q: %w", kid, err)
			}
		}
	default:
		return nil, errors.New("unsupported signing method")
	}
	if cfg.KeyID != "" && len(cfg.VerifyKeys) > 0 {
		if _, ok := cfg.VerifyKeys[cfg.KeyID]; !ok {
			return nil, errors.New("KeyID is not present in VerifyKeys")
		}
	}

	return &Manager{config: cfg, now: time.Now}, nil
}

// CanIssue reports whether the manager holds a signing key.
func (m *Manager) CanIssue() bool {
	return len(m.config.PrivateKey) > 0
}

// Issue signs a receipt for s and returns the token and its receipt ID.
func (m *Manager) Issue(s Summary) (string, string, error) {
	if !m.CanIssue() {
		return "", "", ErrNoSigningKey
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", "", fmt.Errorf("receipt id: %w", err)
	}

	now := m.now()
	claims := Claims{
		Length:      s.Length,
		Entropy:     s.Entropy,
		Score:       s.Score,
		Category:    s.Category,
		Charset:     s.Charset,
		Pattern:     s.Pattern,
		Fingerprint: s.Fingerprint,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			Subject:   s.Subject,
			Issuer:    m.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TTL)),
		},
	}

	token := jwt.NewWithClaims(m.method(), claims)
	if m.config.KeyID != "" {
		token.Header["kid"] = m.config.KeyID
	}

	key, err := m.signKey()
	if err != nil {
		return "", "", err
	}
	signed, err := token.SignedString(key)
	if err != nil {
		return "", "", err
	}
	return signed, claims.ID, nil
}

// Parse verifies tokenStr and returns its claims. Algorithm, issuer, expiry
// and key ID are all enforced.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{m.method().Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.config.Leeway > 0 {
		options = append(options, jwt.WithLeeway(m.config.Leeway))
	}
	if m.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(m.config.Issuer))
	}

	parser := jwt.NewParser(options...)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != m.method().Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}

		if len(m.config.VerifyKeys) > 0 {
			kid, _ := t.Header["kid"].(string)
			if kid == "" {
				return nil, errors.New("missing kid")
			}
			key, ok := m.config.VerifyKeys[kid]
			if !ok {
				return nil, errors.New("unknown kid")
			}
			return m.verifyKeyFromBytes(key)
		}

		if m.config.KeyID != "" {
			kid, _ := t.Header["kid"].(string)
			if kid != m.config.KeyID {
				return nil, errors.New("unknown kid")
			}
		}

		return m.verifyKey()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidReceipt
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return nil, fmt.Errorf("%w: bad receipt id", ErrInvalidReceipt)
	}

	return claims, nil
}

func (m *Manager) method() jwt.SigningMethod {
	switch m.config.SigningMethod {
	case MethodHS256:
		return jwt.SigningMethodHS256
	default:
		return jwt.SigningMethodEdDSA
	}
}

func (m *Manager) signKey() (interface{}, error) {
	switch m.config.SigningMethod {
	case MethodHS256:
		return m.config.PrivateKey, nil
	default:
		return parseEdPrivateKey(m.config.PrivateKey)
	}
}

func (m *Manager) verifyKey() (interface{}, error) {
	switch m.config.SigningMethod {
	case MethodHS256:
		return m.config.PrivateKey, nil
	default:
		if len(m.config.PublicKey) == 0 {
			return nil, errors.New("no ed25519 public key")
		}
		return parseEdPublicKey(m.config.PublicKey)
	}
}

func (m *Manager) verifyKeyFromBytes(key []byte) (interface{}, error) {
	switch m.config.SigningMethod {
	case MethodHS256:
		return key, nil
	default:
		return parseEdPublicKey(key)
	}
}

func parseEdPrivateKey(key []byte) (ed25519.PrivateKey, error) {
	if len(key) == ed25519.PrivateKeySize {
		return ed25519.PrivateKey(key), nil
	}
	parsed, err := jwt.ParseEdPrivateKeyFromPEM(key)
	if err != nil {
		return nil, errors.New("invalid ed25519 private key")
	}
	edKey, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("invalid ed25519 private key type")
	}
	return edKey, nil
}

func parseEdPublicKey(key []byte) (ed25519.PublicKey, error) {
	if len(key) == ed25519.PublicKeySize {
		return ed25519.PublicKey(key), nil
	}
	parsed, err := jwt.ParseEdPublicKeyFromPEM(key)
	if err != nil {
		return nil, errors.New("invalid ed25519 public key")
	}
	edKey, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("invalid ed25519 public key type")
	}
	return edKey, nil
}
