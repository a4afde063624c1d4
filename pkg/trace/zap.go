package trace

import (
	"go.uber.org/zap"

	"github.com/covenantnet/prelude/pkg/contracts"
)

// ZapSink forwards trace events to a structured logger at debug level.
// Intended for simulation mode; production evaluation keeps the no-op sink.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps the given logger. A nil logger yields a sink backed by
// zap.NewNop, which is equivalent to the discarding sink.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

// Log implements contracts.Sink.
func (s *ZapSink) Log(event contracts.Event) {
	s.logger.Debug(event.Message,
		zap.String("invocation_id", event.InvocationID),
		zap.String("label", event.Label),
	)
}
