package datasource

import (
	"context"
	"fmt"

	"barlens/internal/host"

	"github.com/shirou/gopsutil/v4/disk"
)

// SystemProvider charts disk usage per mountpoint, collected live from the
// local machine.
type SystemProvider struct{}

// NewSystemProvider builds the system provider.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

func (p *SystemProvider) Name() string { return "system" }

func (p *SystemProvider) Fetch(ctx context.Context) (*host.DataView, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get partitions: %w", err)
	}

	var categories, values []any
	for _, part := range partitions {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			// Unreadable mounts (permissions, stale network fs) are skipped.
			continue
		}
		categories = append(categories, part.Mountpoint)
		values = append(values, usage.UsedPercent)
	}
	return newDataView("Mountpoint", "Used %", categories, values), nil
}
