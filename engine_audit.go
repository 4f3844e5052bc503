package goPassgen

import (
	"context"
	"errors"
	"time"
)

const (
	auditEventGenerate        = "generate"
	auditEventGeneratePattern = "generate_pattern"
	auditEventGenerateBulk    = "generate_bulk"
	auditEventAssess          = "assess"
	auditEventHistoryRecord   = "history_record"
	auditEventReceiptIssue    = "receipt_issue"
	auditEventReceiptVerify   = "receipt_verify"
)

// AuditErrorCode is the stable error label written to AuditEvent.Error.
type AuditErrorCode string

const (
	auditErrInvalidOptions     AuditErrorCode = "invalid_options"
	auditErrEntropyBelowFloor  AuditErrorCode = "entropy_below_floor"
	auditErrBulkCount          AuditErrorCode = "bulk_count"
	auditErrPatternInvalid     AuditErrorCode = "pattern_invalid"
	auditErrRandomUnavailable  AuditErrorCode = "random_unavailable"
	auditErrHistoryUnavailable AuditErrorCode = "history_unavailable"
	auditErrHistoryDisabled    AuditErrorCode = "history_disabled"
	auditErrResource           AuditErrorCode = "resource"
	auditErrReceiptInvalid     AuditErrorCode = "receipt_invalid"
	auditErrReceiptsDisabled   AuditErrorCode = "receipts_disabled"
	auditErrResultDestroyed    AuditErrorCode = "result_destroyed"
	auditErrCanceled           AuditErrorCode = "canceled"
	auditErrInternal           AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		RequestID: requestIDFromContext(ctx),
		Subject:   subjectFromContext(ctx),
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrEntropyBelowFloor):
		return auditErrEntropyBelowFloor
	case errors.Is(err, ErrBulkCount):
		return auditErrBulkCount
	case errors.Is(err, ErrConfiguration):
		return auditErrInvalidOptions
	case errors.Is(err, ErrPattern):
		return auditErrPatternInvalid
	case errors.Is(err, ErrRandomUnavailable):
		return auditErrRandomUnavailable
	case errors.Is(err, ErrHistoryUnavailable):
		return auditErrHistoryUnavailable
	case errors.Is(err, ErrResource):
		return auditErrResource
	case errors.Is(err, ErrHistoryDisabled):
		return auditErrHistoryDisabled
	case errors.Is(err, ErrReceiptInvalid):
		return auditErrReceiptInvalid
	case errors.Is(err, ErrReceiptsDisabled):
		return auditErrReceiptsDisabled
	case errors.Is(err, ErrResultDestroyed):
		return auditErrResultDestroyed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return auditErrCanceled
	default:
		return auditErrInternal
	}
}
