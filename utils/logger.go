package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

const panicStackBufSize = 16384

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

// GetLogger returns the process-wide logger. The context is accepted for
// call-site uniformity; no per-request fields are attached.
func GetLogger(ctx context.Context) *zap.Logger {
	return zap.L()
}

func GetPanicInfo() string {
	buf := make([]byte, panicStackBufSize)
	l := runtime.Stack(buf, false)
	return string(buf[:l])
}
