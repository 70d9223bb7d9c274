package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/avadel/chromedrv/internal/catalog"
)

// RealDetector implements Detector using actual host inspection.
type RealDetector struct{}

// NewDetector creates a new host platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect inspects the host and returns its catalog mapping.
//
// OS comes from runtime.GOOS. Architecture starts from runtime.GOARCH
// and is refined with the kernel architecture reported by gopsutil,
// which reflects the real hardware rather than how this binary was
// compiled. If gopsutil fails, the GOARCH-derived value stands
// (graceful fallback); cancellation is still a hard failure.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:       runtime.GOOS,
		ArchRaw:  runtime.GOARCH,
		Platform: mapOS(runtime.GOOS),
		Arch:     mapGoArch(runtime.GOARCH),
	}

	kernelArch, err := host.KernelArch()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}

	if arch := mapKernelArch(kernelArch); arch != catalog.ArchAny {
		info.Arch = arch
	}

	return info, nil
}
