package resolve

import (
	"context"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/protolist-labs/protolist/internal/proto"
	"github.com/protolist-labs/protolist/internal/registry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Ancestors flags container based descriptors that contain a device node.
// The check is a presence test over the whole descriptor content: a device
// keyword anywhere (even in a comment) marks the descriptor.
type Ancestors struct {
	containers map[string]bool
	devices    *regexp.Regexp
	workers    int
	logger     *zap.Logger
}

// NewAncestors builds the pass from the device keyword vocabulary and the
// container base nodes. workers <= 0 means runtime.NumCPU().
func NewAncestors(devices, containers []string, workers int, logger *zap.Logger) (*Ancestors, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("device keyword list is empty")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	quoted := make([]string, 0, len(devices))
	seen := make(map[string]bool, len(devices))
	for _, dev := range devices {
		if dev == "" || seen[dev] {
			continue
		}
		seen[dev] = true
		quoted = append(quoted, regexp.QuoteMeta(dev))
	}
	re, err := regexp.Compile(`(?:^|\s)(?:` + strings.Join(quoted, "|") + `)\s`)
	if err != nil {
		return nil, fmt.Errorf("compiling device pattern: %w", err)
	}

	set := make(map[string]bool, len(containers))
	for _, c := range containers {
		set[c] = true
	}

	return &Ancestors{containers: set, devices: re, workers: workers, logger: logger}, nil
}

// Applies reports whether d is subject to the check.
func (a *Ancestors) Applies(d *proto.Descriptor) bool {
	return a.containers[d.BaseType]
}

// ContainsDevice reports whether content mentions a device keyword bounded by
// whitespace.
func (a *Ancestors) ContainsDevice(content string) bool {
	return a.devices.MatchString(content)
}

// Analyze runs the check for every qualifying descriptor on a fixed-size
// worker pool and sets NeedsRobotAncestor once all checks are done.
func (a *Ancestors) Analyze(ctx context.Context, reg *registry.Registry) error {
	var targets []*proto.Descriptor
	for _, d := range reg.All() {
		if a.Applies(d) {
			targets = append(targets, d)
		}
	}

	results := make([]bool, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, d := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.ContainsDevice(d.Content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("checking robot ancestor requirement: %w", err)
	}

	flagged := 0
	for i, d := range targets {
		d.NeedsRobotAncestor = results[i]
		if results[i] {
			flagged++
		}
	}

	a.logger.Debug("robot ancestor check done",
		zap.Int("checked", len(targets)),
		zap.Int("flagged", flagged),
		zap.Int("workers", a.workers))
	return nil
}
