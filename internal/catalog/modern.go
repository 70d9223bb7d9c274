package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// modernIndex mirrors the shape of the Chrome-for-Testing
// known-good-versions-with-downloads.json document.
type modernIndex struct {
	Versions []modernEntry `json:"versions"`
}

type modernEntry struct {
	Version   string          `json:"version"`
	Downloads modernDownloads `json:"downloads"`
}

type modernDownloads struct {
	Chromedriver []modernDownload `json:"chromedriver"`
}

type modernDownload struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// target pairs the catalog enums a source-specific platform key maps onto.
type target struct {
	Platform Platform
	Arch     Arch
}

// modernTargets maps Chrome-for-Testing platform keys onto catalog enums.
// Keys absent from this map (mac-x64, mac-arm64) are omissions, not errors.
var modernTargets = map[string]target{
	"win32":   {Platform: PlatformWindows, Arch: ArchX86},
	"win64":   {Platform: PlatformWindows, Arch: ArchX64},
	"linux64": {Platform: PlatformLinux, Arch: ArchX64},
}

// ParseModern parses the modern JSON catalog into canonical records.
//
// Every (version, platform, arch) combination present in the document
// produces one Record. Entries with malformed versions, unmapped platform
// keys, or missing URLs are collected as Skipped diagnostics. A ParseError
// is returned only when the document is not the expected object with a
// top-level versions list.
func ParseModern(data []byte) ([]Record, []Skipped, error) {
	var index modernIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, nil, &ParseError{Source: SourceModern, Err: err}
	}

	if index.Versions == nil {
		return nil, nil, &ParseError{Source: SourceModern, Err: errors.New("missing top-level versions list")}
	}

	var records []Record
	var skipped []Skipped

	for _, entry := range index.Versions {
		if !ValidVersion(entry.Version) {
			skipped = append(skipped, Skipped{
				Entry:  entry.Version,
				Reason: "malformed version string",
			})
			continue
		}

		// Entries without chromedriver downloads are chrome-only releases.
		for _, download := range entry.Downloads.Chromedriver {
			tgt, ok := modernTargets[download.Platform]
			if !ok {
				skipped = append(skipped, Skipped{
					Entry:  fmt.Sprintf("%s/%s", entry.Version, download.Platform),
					Reason: "unsupported platform key",
				})
				continue
			}

			if download.URL == "" {
				skipped = append(skipped, Skipped{
					Entry:  fmt.Sprintf("%s/%s", entry.Version, download.Platform),
					Reason: "missing download URL",
				})
				continue
			}

			records = append(records, Record{
				Version:     entry.Version,
				Platform:    tgt.Platform,
				Arch:        tgt.Arch,
				Source:      SourceModern,
				DownloadURL: download.URL,
			})
		}
	}

	return records, skipped, nil
}
