package catalog

import (
	"encoding/xml"
	"regexp"
	"strings"
)

// legacyListing mirrors the S3 ListBucketResult container returned by the
// legacy storage bucket. Only the object keys matter here.
type legacyListing struct {
	XMLName xml.Name `xml:"ListBucketResult"`
	Keys    []string `xml:"Contents>Key"`
}

// legacyKeyPattern matches driver archive keys in the legacy bucket:
// <version>/chromedriver_<platformkey>.zip. The bucket also holds release
// markers, notes and icons, which simply never match.
var legacyKeyPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)/chromedriver_(win32|win64|linux32|linux64)\.zip$`)

// legacyTargets maps legacy platform keys onto catalog enums.
var legacyTargets = map[string]target{
	"win32":   {Platform: PlatformWindows, Arch: ArchX86},
	"win64":   {Platform: PlatformWindows, Arch: ArchX64},
	"linux32": {Platform: PlatformLinux, Arch: ArchX86},
	"linux64": {Platform: PlatformLinux, Arch: ArchX64},
}

// ParseLegacy parses the legacy bucket listing into canonical records.
//
// Keys that match the legacy naming scheme produce one Record each, with
// the download URL formed by joining the key onto baseURL. Unmatched keys
// are collected as Skipped diagnostics, never errors. A ParseError is
// returned only when the listing is not well-formed XML at the container
// level.
func ParseLegacy(data []byte, baseURL string) ([]Record, []Skipped, error) {
	var listing legacyListing
	if err := xml.Unmarshal(data, &listing); err != nil {
		return nil, nil, &ParseError{Source: SourceLegacy, Err: err}
	}

	base := strings.TrimRight(baseURL, "/")

	var records []Record
	var skipped []Skipped

	for _, key := range listing.Keys {
		match := legacyKeyBreakdown(key)
		if match == nil {
			skipped = append(skipped, Skipped{
				Entry:  key,
				Reason: "not a driver archive key",
			})
			continue
		}

		records = append(records, Record{
			Version:     match.version,
			Platform:    match.target.Platform,
			Arch:        match.target.Arch,
			Source:      SourceLegacy,
			DownloadURL: base + "/" + key,
		})
	}

	return records, skipped, nil
}

type legacyKey struct {
	version string
	target  target
}

// legacyKeyBreakdown extracts version and platform from a bucket key,
// or nil when the key does not follow the driver archive naming scheme.
func legacyKeyBreakdown(key string) *legacyKey {
	groups := legacyKeyPattern.FindStringSubmatch(key)
	if groups == nil {
		return nil
	}

	tgt, ok := legacyTargets[groups[2]]
	if !ok {
		return nil
	}

	return &legacyKey{version: groups[1], target: tgt}
}
