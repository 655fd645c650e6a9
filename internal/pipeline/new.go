package pipeline

import (
	"github.com/alexlaverty/yts/internal/config"
	"github.com/alexlaverty/yts/internal/logger"
	"github.com/alexlaverty/yts/internal/summarizer"
	"github.com/alexlaverty/yts/internal/youtube"
)

type implPipeline struct {
	cfg       *config.Config
	youtube   youtube.Client
	generator summarizer.Generator
	logger    logger.Logger
}

// New creates a new Pipeline instance
func New(cfg *config.Config, yt youtube.Client, gen summarizer.Generator, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:       cfg,
		youtube:   yt,
		generator: gen,
		logger:    log,
	}
}
