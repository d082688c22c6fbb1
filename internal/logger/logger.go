package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/config"
)

// New builds the application logger. Output goes to stderr so it does not mix
// with the terminal screens on stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = level
	}

	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
