package resolve

import (
	"context"

	"github.com/protolist-labs/protolist/internal/registry"
	"go.uber.org/zap"
)

// Config holds the vocabulary the passes work with.
type Config struct {
	BaseNodes  registry.BaseNodes
	Devices    []string // device keywords, e.g. "Camera", "LED"
	Containers []string // base nodes that may hold devices, e.g. "Solid"
	SlotNode   string   // base node of connectors, e.g. "Slot"
	Workers    int      // ancestor pool size, <= 0 for runtime.NumCPU()
}

// Run resolves base types, then runs the robot ancestor check and the slot
// type pass. The registry must be fully loaded.
func Run(ctx context.Context, reg *registry.Registry, cfg Config, logger *zap.Logger) error {
	if err := NewHierarchy(reg, cfg.BaseNodes, logger).Resolve(); err != nil {
		return err
	}

	ancestors, err := NewAncestors(cfg.Devices, cfg.Containers, cfg.Workers, logger)
	if err != nil {
		return err
	}
	if err := ancestors.Analyze(ctx, reg); err != nil {
		return err
	}

	return NewSlots(reg, cfg.BaseNodes, cfg.SlotNode, logger).Resolve()
}
