package goPassgen

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func receiptTestConfig(t *testing.T) Config {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Receipt.Enabled = true
	cfg.Receipt.PrivateKey = priv
	cfg.Receipt.PublicKey = pub
	return cfg
}

func TestIssueAndVerifyReceipt(t *testing.T) {
	engine := newTestEngine(t, receiptTestConfig(t))
	ctx := WithSubject(context.Background(), "svc-account-7")

	res, err := engine.GenerateDefault(ctx)
	if err != nil {
		t.Fatalf("GenerateDefault failed: %v", err)
	}
	defer res.Destroy()

	token, err := engine.IssueReceipt(ctx, res)
	if err != nil {
		t.Fatalf("IssueReceipt failed: %v", err)
	}
	if strings.Contains(token, res.Password()) {
		t.Fatal("password leaked into receipt")
	}

	claims, err := engine.VerifyReceipt(ctx, token)
	if err != nil {
		t.Fatalf("VerifyReceipt failed: %v", err)
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		t.Fatalf("expected uuid receipt id, got %q", claims.ID)
	}
	s := claims.Summary()
	if s.Subject != "svc-account-7" || s.Length != 16 || s.Score != res.Score ||
		s.Category != res.Category.String() || s.Charset != res.Charset.Codes() {
		t.Fatalf("unexpected receipt summary %+v", s)
	}
	if s.Fingerprint != "" {
		t.Fatal("fingerprint must be absent unless configured")
	}

	snap := engine.MetricsSnapshot()
	if snap.Counters[MetricReceiptIssued] != 1 {
		t.Fatalf("expected 1 issued receipt, got %d", snap.Counters[MetricReceiptIssued])
	}
}

func TestVerifyReceiptRejectsTampering(t *testing.T) {
	engine := newTestEngine(t, receiptTestConfig(t))
	other := newTestEngine(t, receiptTestConfig(t))
	ctx := context.Background()

	res, err := other.GenerateDefault(ctx)
	if err != nil {
		t.Fatalf("GenerateDefault failed: %v", err)
	}
	defer res.Destroy()

	foreign, err := other.IssueReceipt(ctx, res)
	if err != nil {
		t.Fatalf("IssueReceipt failed: %v", err)
	}

	for _, token := range []string{"", "not-a-token", foreign} {
		claims, err := engine.VerifyReceipt(ctx, token)
		if claims != nil {
			t.Fatal("expected nil claims")
		}
		if !errors.Is(err, ErrReceiptInvalid) {
			t.Fatalf("expected ErrReceiptInvalid, got %v", err)
		}
	}
	if got := engine.MetricsSnapshot().Counters[MetricReceiptRejected]; got != 3 {
		t.Fatalf("expected 3 rejections, got %d", got)
	}
}

func TestIssueReceiptDestroyedResult(t *testing.T) {
	engine := newTestEngine(t, receiptTestConfig(t))

	res, err := engine.GenerateDefault(context.Background())
	if err != nil {
		t.Fatalf("GenerateDefault failed: %v", err)
	}
	res.Destroy()

	if _, err := engine.IssueReceipt(context.Background(), res); !errors.Is(err, ErrResultDestroyed) {
		t.Fatalf("expected ErrResultDestroyed, got %v", err)
	}
	if _, err := engine.IssueReceipt(context.Background(), nil); !errors.Is(err, ErrResultDestroyed) {
		t.Fatalf("expected ErrResultDestroyed for nil, got %v", err)
	}
}

func TestReceiptsDisabled(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	res, err := engine.GenerateDefault(context.Background())
	if err != nil {
		t.Fatalf("GenerateDefault failed: %v", err)
	}
	defer res.Destroy()

	if _, err := engine.IssueReceipt(context.Background(), res); !errors.Is(err, ErrReceiptsDisabled) {
		t.Fatalf("expected ErrReceiptsDisabled, got %v", err)
	}
	if _, err := engine.VerifyReceipt(context.Background(), "x"); !errors.Is(err, ErrReceiptsDisabled) {
		t.Fatalf("expected ErrReceiptsDisabled, got %v", err)
	}
}

func TestReceiptFingerprintMatchesPassword(t *testing.T) {
	cfg := receiptTestConfig(t)
	cfg.History = historyTestConfig().History
	cfg.Receipt.IncludeFingerprint = true
	engine, _ := newHistoryTestEngine(t, cfg)
	ctx := context.Background()

	res, err := engine.GenerateDefault(ctx)
	if err != nil {
		t.Fatalf("GenerateDefault failed: %v", err)
	}
	defer res.Destroy()

	token, err := engine.IssueReceipt(ctx, res)
	if err != nil {
		t.Fatalf("IssueReceipt failed: %v", err)
	}
	claims, err := engine.VerifyReceipt(ctx, token)
	if err != nil {
		t.Fatalf("VerifyReceipt failed: %v", err)
	}
	if claims.Fingerprint == "" {
		t.Fatal("expected embedded fingerprint")
	}

	ok, err := engine.ReceiptMatches(claims, res.Bytes())
	if err != nil || !ok {
		t.Fatalf("expected receipt to match its password, got %v %v", ok, err)
	}
	ok, err = engine.ReceiptMatches(claims, []byte("some-other-password"))
	if err != nil || ok {
		t.Fatalf("expected mismatch for other password, got %v %v", ok, err)
	}
}

func TestReceiptHS256(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Receipt.Enabled = true
	cfg.Receipt.SigningMethod = "hs256"
	cfg.Receipt.PrivateKey = []byte("receipt-hmac-secret-with-enough-bytes")
	cfg.Receipt.Issuer = "passgen-test"
	engine := newTestEngine(t, cfg)

	res, err := engine.GenerateFromPattern(context.Background(), "UUllnnss")
	if err != nil {
		t.Fatalf("GenerateFromPattern failed: %v", err)
	}
	defer res.Destroy()

	token, err := engine.IssueReceipt(context.Background(), res)
	if err != nil {
		t.Fatalf("IssueReceipt failed: %v", err)
	}
	claims, err := engine.VerifyReceipt(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyReceipt failed: %v", err)
	}
	if claims.Pattern != "UUllnnss" || claims.Issuer != "passgen-test" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}
