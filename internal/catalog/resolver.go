package catalog

import (
	"sort"
	"strings"
)

// Filter restricts the resolved catalog. The zero value matches every
// record from both sources.
type Filter struct {
	// Platform restricts records to one platform; PlatformAny disables it.
	Platform Platform
	// Arch restricts records to one architecture; ArchAny disables it.
	Arch Arch
	// Version matches exactly, or as a prefix on a dot boundary:
	// "114" matches "114.0.5735.90" but not "1140.0.0.0".
	Version string
	// LatestPerMajor reduces the result to the single greatest version
	// for every distinct major.
	LatestPerMajor bool
	// NoLegacy excludes legacy-source records before any filtering.
	NoLegacy bool
}

// Match reports whether a single record survives the filter's platform,
// arch and version restrictions.
func (f Filter) Match(r Record) bool {
	if f.Platform != PlatformAny && r.Platform != f.Platform {
		return false
	}
	if f.Arch != ArchAny && r.Arch != f.Arch {
		return false
	}
	return f.matchVersion(r.Version)
}

func (f Filter) matchVersion(v string) bool {
	if f.Version == "" {
		return true
	}
	return v == f.Version || strings.HasPrefix(v, f.Version+".")
}

// Merge concatenates modern and legacy records, deduplicating by
// (version, platform, arch) with the modern source taking precedence.
func Merge(modern, legacy []Record) []Record {
	seen := make(map[Key]struct{}, len(modern))

	merged := make([]Record, 0, len(modern)+len(legacy))
	for _, r := range modern {
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		merged = append(merged, r)
	}

	for _, r := range legacy {
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		merged = append(merged, r)
	}

	return merged
}

// Resolve merges both sources, applies the filter, optionally reduces to
// the latest record per major, and orders the result ascending by
// (major, version, platform, arch). The ordering is a determinism
// contract: identical inputs always yield the identical sequence.
//
// An empty result is a valid "no matches" outcome, not an error.
func Resolve(modern, legacy []Record, f Filter) []Record {
	if f.NoLegacy {
		legacy = nil
	}

	var filtered []Record
	for _, r := range Merge(modern, legacy) {
		if f.Match(r) {
			filtered = append(filtered, r)
		}
	}

	if f.LatestPerMajor {
		filtered = LatestPerMajor(filtered)
	}

	sortRecords(filtered)
	return filtered
}

// LatestPerMajor keeps, for every distinct major present in recs, only
// the record with the greatest version under CompareVersions. Exact
// version ties between sources resolve in favor of the modern source.
func LatestPerMajor(recs []Record) []Record {
	best := make(map[int]Record)

	for _, r := range recs {
		current, ok := best[r.Major()]
		if !ok {
			best[r.Major()] = r
			continue
		}

		switch CompareVersions(r.Version, current.Version) {
		case 1:
			best[r.Major()] = r
		case 0:
			if current.Source == SourceLegacy && r.Source == SourceModern {
				best[r.Major()] = r
			}
		}
	}

	reduced := make([]Record, 0, len(best))
	for _, r := range best {
		reduced = append(reduced, r)
	}
	return reduced
}

// sortRecords orders records ascending by major, then full version, then
// platform, arch and source for records sharing a version.
func sortRecords(recs []Record) {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]

		if a.Major() != b.Major() {
			return a.Major() < b.Major()
		}
		if cmp := CompareVersions(a.Version, b.Version); cmp != 0 {
			return cmp < 0
		}
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		if a.Arch != b.Arch {
			return a.Arch < b.Arch
		}
		// Modern sorts before legacy for equal keys (cannot happen
		// after Merge, but keeps the order total).
		return a.Source == SourceModern && b.Source == SourceLegacy
	})
}
