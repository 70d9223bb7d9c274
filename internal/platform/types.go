// Package platform detects the host operating system and CPU
// architecture and maps them onto the catalog's platform/arch enums.
// Detection results are used as flag defaults only; every command flag
// can override them.
//
// Architecture detection consults the kernel (via gopsutil) in addition
// to runtime.GOARCH, so a 32-bit build of this tool running on a 64-bit
// host still defaults to the 64-bit driver the installed browser needs.
// Detection failures degrade gracefully: unsupported or undetectable
// hosts simply produce no default.
package platform

import (
	"context"

	"github.com/avadel/chromedrv/internal/catalog"
)

// Info contains host platform detection results.
type Info struct {
	OS      string // runtime.GOOS value, e.g. "linux", "windows"
	ArchRaw string // original GOARCH, e.g. "amd64", "386"

	// Platform is the catalog platform this host maps onto, or
	// catalog.PlatformAny when the host has no driver builds.
	Platform catalog.Platform

	// Arch is the catalog architecture this host maps onto, or
	// catalog.ArchAny when it could not be determined.
	Arch catalog.Arch
}

// Detector is the interface for host platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
