package goPassgen

import (
	"io"

	"github.com/MrEthical07/goPassgen/internal/audit"
	"go.uber.org/zap"
)

// AuditEvent is one audit record. Events carry non-secret metadata only.
type AuditEvent = audit.Event

// AuditSink receives audit events from the engine's dispatcher goroutine.
type AuditSink = audit.Sink

// AuditSinkFunc adapts a function to AuditSink.
type AuditSinkFunc = audit.SinkFunc

// AuditStats reports dispatcher delivery counters.
type AuditStats = audit.Stats

// NoOpSink discards events.
type NoOpSink = audit.NoOpSink

// ChannelSink forwards events into a buffered channel.
type ChannelSink = audit.ChannelSink

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink = audit.JSONWriterSink

// ZapSink writes events to a zap logger. It is the default sink when audit is
// enabled without WithAuditSink.
type ZapSink = audit.ZapSink

// MultiSink fans each event out to several sinks.
type MultiSink = audit.MultiSink

// NewChannelSink returns a ChannelSink with the given buffer.
func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}

// NewJSONWriterSink returns a sink writing JSON lines to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}

// NewZapSink returns a sink logging through logger, named "audit".
func NewZapSink(logger *zap.Logger) *ZapSink {
	return audit.NewZapSink(logger)
}
