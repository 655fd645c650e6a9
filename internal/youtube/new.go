package youtube

import (
	"github.com/alexlaverty/yts/internal/config"
	"github.com/alexlaverty/yts/internal/logger"
	"github.com/alexlaverty/yts/pkg/executor"
)

type implClient struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Client instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Client {
	return &implClient{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
