package pipeline

import (
	"github.com/KellisLab/auto-meeting-minutes/internal/config"
	"github.com/KellisLab/auto-meeting-minutes/internal/logger"
	"github.com/KellisLab/auto-meeting-minutes/internal/refine"
	"github.com/KellisLab/auto-meeting-minutes/internal/render"
	"github.com/KellisLab/auto-meeting-minutes/internal/summarizer"
)

type implPipeline struct {
	cfg      *config.Config
	orch     summarizer.Orchestrator
	refiner  *refine.Refiner
	renderer *render.Renderer
	logger   logger.Logger
}

// New creates a Pipeline instance
func New(cfg *config.Config, orch summarizer.Orchestrator, refiner *refine.Refiner, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:      cfg,
		orch:     orch,
		refiner:  refiner,
		renderer: render.New(cfg.Video.ViewerURL),
		logger:   log,
	}
}
