package app

import (
	"senscode/internal/domain"
	"senscode/internal/logger"
	auditsvc "senscode/internal/services/audit"
	transcodesvc "senscode/internal/services/transcode"
)

// Wire bundles the services for the CLI and the MCP tool dispatcher.
type Wire struct {
	Transcoder domain.Transcoder
	Audit      domain.Fingerprinter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	logger.Setup(cfg.Debug)

	return &Wire{
		Transcoder: transcodesvc.New(),
		Audit:      auditsvc.New(),
	}
}
