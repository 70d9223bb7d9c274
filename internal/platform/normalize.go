package platform

import (
	"strings"

	"github.com/avadel/chromedrv/internal/catalog"
)

// kernelArchMap maps `uname -m` style kernel architecture strings onto
// catalog architectures. ARM hosts have no driver builds in either
// catalog and deliberately stay unmapped.
var kernelArchMap = map[string]catalog.Arch{
	"x86_64": catalog.ArchX64,
	"amd64":  catalog.ArchX64,
	"i386":   catalog.ArchX86,
	"i486":   catalog.ArchX86,
	"i586":   catalog.ArchX86,
	"i686":   catalog.ArchX86,
	"x86":    catalog.ArchX86,
}

// mapOS maps a GOOS value onto a catalog platform. Hosts without driver
// builds (darwin, the BSDs) map to PlatformAny, meaning "no default".
func mapOS(goos string) catalog.Platform {
	switch goos {
	case "windows":
		return catalog.PlatformWindows
	case "linux":
		return catalog.PlatformLinux
	default:
		return catalog.PlatformAny
	}
}

// mapGoArch maps a GOARCH value onto a catalog architecture.
func mapGoArch(goarch string) catalog.Arch {
	switch goarch {
	case "amd64":
		return catalog.ArchX64
	case "386":
		return catalog.ArchX86
	default:
		return catalog.ArchAny
	}
}

// mapKernelArch maps a kernel architecture string onto a catalog
// architecture, or ArchAny when unrecognized.
func mapKernelArch(kernelArch string) catalog.Arch {
	normalized := strings.ToLower(strings.TrimSpace(kernelArch))
	if arch, ok := kernelArchMap[normalized]; ok {
		return arch
	}
	return catalog.ArchAny
}
