package zstdstream

import (
	"go.uber.org/zap"
)

// COption configures a compression call.
type COption func(*cOptions) error

type cOptions struct {
	level  int
	logger *zap.Logger
}

func (o *cOptions) setDefault() {
	*o = cOptions{
		level:  DefaultLevel,
		logger: zap.NewNop(),
	}
}

// WithLevel sets the zstd compression level. Valid levels are
// [MinLevel, MaxLevel]; anything else fails with ErrCompressionLevel.
func WithLevel(level int) COption {
	return func(o *cOptions) error { o.level = level; return nil }
}

// WithCLogger sets the logger for a compression call.
func WithCLogger(l *zap.Logger) COption {
	return func(o *cOptions) error { o.logger = l; return nil }
}

// DOption configures a decompression call.
type DOption func(*dOptions) error

type dOptions struct {
	logger *zap.Logger
}

func (o *dOptions) setDefault() {
	*o = dOptions{
		logger: zap.NewNop(),
	}
}

// WithDLogger sets the logger for a decompression call.
func WithDLogger(l *zap.Logger) DOption {
	return func(o *dOptions) error { o.logger = l; return nil }
}
