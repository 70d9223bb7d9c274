package catalog

import (
	"errors"
	"testing"
)

const modernFixture = `{
  "timestamp": "2024-05-01T00:00:00.000Z",
  "versions": [
    {
      "version": "115.0.5790.10",
      "downloads": {
        "chrome": [
          {"platform": "linux64", "url": "https://example.test/chrome/linux64.zip"}
        ],
        "chromedriver": [
          {"platform": "linux64", "url": "https://example.test/115/linux64/chromedriver-linux64.zip"},
          {"platform": "win32", "url": "https://example.test/115/win32/chromedriver-win32.zip"},
          {"platform": "win64", "url": "https://example.test/115/win64/chromedriver-win64.zip"},
          {"platform": "mac-arm64", "url": "https://example.test/115/mac-arm64/chromedriver-mac-arm64.zip"}
        ]
      }
    },
    {
      "version": "116.0.5845.96",
      "downloads": {}
    },
    {
      "version": "not-a-version",
      "downloads": {
        "chromedriver": [
          {"platform": "linux64", "url": "https://example.test/bad/chromedriver-linux64.zip"}
        ]
      }
    }
  ]
}`

func TestParseModern(t *testing.T) {
	records, skipped, err := ParseModern([]byte(modernFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// linux64, win32 and win64 map; mac-arm64 does not.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3: %+v", len(records), records)
	}

	want := map[Key]string{
		{Version: "115.0.5790.10", Platform: PlatformLinux, Arch: ArchX64}:   "https://example.test/115/linux64/chromedriver-linux64.zip",
		{Version: "115.0.5790.10", Platform: PlatformWindows, Arch: ArchX86}: "https://example.test/115/win32/chromedriver-win32.zip",
		{Version: "115.0.5790.10", Platform: PlatformWindows, Arch: ArchX64}: "https://example.test/115/win64/chromedriver-win64.zip",
	}

	for _, r := range records {
		url, ok := want[r.Key()]
		if !ok {
			t.Errorf("unexpected record: %+v", r)
			continue
		}
		if r.DownloadURL != url {
			t.Errorf("record %v URL = %q, want %q", r.Key(), r.DownloadURL, url)
		}
		if r.Source != SourceModern {
			t.Errorf("record %v source = %q, want modern", r.Key(), r.Source)
		}
	}

	// mac-arm64 and the malformed version both land in skipped.
	if len(skipped) != 2 {
		t.Errorf("got %d skipped entries, want 2: %+v", len(skipped), skipped)
	}
}

func TestParseModernEntriesWithoutDriverDownloads(t *testing.T) {
	// A chrome-only release is an omission, not an error or a skip.
	records, skipped, err := ParseModern([]byte(`{"versions": [{"version": "116.0.5845.96", "downloads": {}}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if len(skipped) != 0 {
		t.Errorf("got %d skipped entries, want 0: %+v", len(skipped), skipped)
	}
}

func TestParseModernMalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not_json", data: `<html>not json</html>`},
		{name: "top_level_array", data: `[{"version": "115.0.5790.10"}]`},
		{name: "missing_versions_list", data: `{"timestamp": "2024-05-01T00:00:00.000Z"}`},
		{name: "versions_not_a_list", data: `{"versions": "nope"}`},
		{name: "empty_input", data: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseModern([]byte(tt.data))
			if err == nil {
				t.Fatal("expected ParseError, got nil")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if parseErr.Source != SourceModern {
				t.Errorf("ParseError source = %q, want modern", parseErr.Source)
			}
		})
	}
}

func TestParseModernEmptyVersionsList(t *testing.T) {
	// An empty list is a valid catalog with nothing in it.
	records, skipped, err := ParseModern([]byte(`{"versions": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 || len(skipped) != 0 {
		t.Errorf("got %d records, %d skipped, want 0, 0", len(records), len(skipped))
	}
}
