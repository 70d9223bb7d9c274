package catalog

import (
	"fmt"
)

// Platform is the operating system a driver build targets.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"

	// PlatformAny matches every platform when used in a Filter.
	PlatformAny Platform = ""
)

// String returns the string representation of the platform.
func (p Platform) String() string {
	return string(p)
}

// ParsePlatform validates a user-supplied platform name.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformWindows, PlatformLinux:
		return Platform(s), nil
	case PlatformAny:
		return PlatformAny, nil
	default:
		return PlatformAny, fmt.Errorf("unknown platform: %s (supported: windows, linux)", s)
	}
}

// Arch is the CPU architecture a driver build targets.
type Arch string

const (
	ArchX86 Arch = "x86"
	ArchX64 Arch = "x64"

	// ArchAny matches every architecture when used in a Filter.
	ArchAny Arch = ""
)

// String returns the string representation of the architecture.
func (a Arch) String() string {
	return string(a)
}

// ParseArch validates a user-supplied architecture name.
func ParseArch(s string) (Arch, error) {
	switch Arch(s) {
	case ArchX86, ArchX64:
		return Arch(s), nil
	case ArchAny:
		return ArchAny, nil
	default:
		return ArchAny, fmt.Errorf("unknown architecture: %s (supported: x86, x64)", s)
	}
}

// Source identifies which upstream catalog produced a record.
type Source string

const (
	SourceModern Source = "modern"
	SourceLegacy Source = "legacy"
)

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// Record is the canonical representation of one resolvable driver artifact.
// Adapters guarantee Version is a well-formed dotted numeric string.
type Record struct {
	Version     string
	Platform    Platform
	Arch        Arch
	Source      Source
	DownloadURL string
}

// Key uniquely identifies a download target across both catalogs.
type Key struct {
	Version  string
	Platform Platform
	Arch     Arch
}

// Key returns the record's identity for merging and deduplication.
func (r Record) Key() Key {
	return Key{Version: r.Version, Platform: r.Platform, Arch: r.Arch}
}

// Major returns the leading integer component of the record's version.
func (r Record) Major() int {
	return Major(r.Version)
}

// MajorDir returns the cache directory name the record installs into,
// e.g. "114.0" for version 114.0.5735.90.
func (r Record) MajorDir() string {
	return MajorDir(r.Version)
}

// Skipped describes a catalog entry that was dropped during parsing.
// Skips are diagnostics, never errors: both upstream listings contain
// entries that are simply not driver artifacts.
type Skipped struct {
	Entry  string
	Reason string
}

// ParseError reports an upstream catalog document that is structurally
// unreadable. It is fatal to that source's contribution only; the caller
// decides whether to proceed with the other source.
type ParseError struct {
	Source Source
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s catalog: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
