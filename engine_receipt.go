package goPassgen

import (
	"context"
	"errors"

	"github.com/MrEthical07/goPassgen/receipt"
	"go.uber.org/zap"
)

// IssueReceipt signs a receipt describing res. The receipt carries the
// result's metadata, the context subject and, when configured, the history
// fingerprint. It never carries the password.
func (e *Engine) IssueReceipt(ctx context.Context, res *PasswordResult) (string, error) {
	if e == nil {
		return "", ErrEngineNotReady
	}

	token, id, err := e.issueReceipt(ctx, res)
	if err != nil {
		e.logFailure(auditEventReceiptIssue, err)
	} else {
		e.metricInc(MetricReceiptIssued)
	}

	e.emitAudit(ctx, auditEventReceiptIssue, err == nil, err, func() map[string]string {
		if id == "" {
			return nil
		}
		return map[string]string{"receipt_id": id}
	})
	return token, err
}

func (e *Engine) issueReceipt(ctx context.Context, res *PasswordResult) (string, string, error) {
	if e.receipts == nil {
		return "", "", ErrReceiptsDisabled
	}
	if res.Destroyed() {
		return "", "", ErrResultDestroyed
	}

	s := receipt.Summary{
		Subject:  subjectFromContext(ctx),
		Length:   res.Length,
		Entropy:  res.Entropy,
		Score:    res.Score,
		Category: res.Category.String(),
		Charset:  res.Charset.Codes(),
		Pattern:  res.Pattern,
	}
	if e.config.Receipt.IncludeFingerprint && e.history != nil {
		s.Fingerprint = e.history.Fingerprint(res.Bytes())
	}

	return e.receipts.Issue(s)
}

// VerifyReceipt checks a receipt's signature, issuer and expiry and returns
// its claims. Failures wrap ErrReceiptInvalid.
func (e *Engine) VerifyReceipt(ctx context.Context, token string) (*ReceiptClaims, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	if e.receipts == nil {
		return nil, ErrReceiptsDisabled
	}

	claims, err := e.receipts.Parse(token)
	if err != nil {
		e.metricInc(MetricReceiptRejected)
		e.logger.Debug("receipt rejected", zap.Error(err))
		if !errors.Is(err, ErrReceiptInvalid) {
			err = errors.Join(ErrReceiptInvalid, err)
		}
	}

	e.emitAudit(ctx, auditEventReceiptVerify, err == nil, err, func() map[string]string {
		if claims == nil {
			return nil
		}
		return map[string]string{"receipt_id": claims.ID}
	})
	return claims, err
}

// ReceiptMatches reports whether password is the one a verified receipt
// attests to. It requires a receipt that embeds a fingerprint and an engine
// with history configured.
func (e *Engine) ReceiptMatches(claims *ReceiptClaims, password []byte) (bool, error) {
	if e == nil {
		return false, ErrEngineNotReady
	}
	if e.history == nil {
		return false, ErrHistoryDisabled
	}
	if claims == nil || claims.Fingerprint == "" {
		return false, ErrReceiptInvalid
	}
	return e.history.Match(password, claims.Fingerprint), nil
}
