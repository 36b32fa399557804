package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Initialize builds a production logger at the given level and installs it as
// the global zap.L().
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return nil
}
