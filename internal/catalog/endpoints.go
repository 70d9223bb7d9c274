package catalog

const (
	// DefaultModernURL is the Chrome-for-Testing known-good-versions index.
	DefaultModernURL = "https://googlechromelabs.github.io/chrome-for-testing/known-good-versions-with-downloads.json"

	// DefaultLegacyURL is the legacy driver storage bucket. Listing it
	// returns the S3 XML document ParseLegacy consumes, and artifact URLs
	// are keys joined onto this base.
	DefaultLegacyURL = "https://chromedriver.storage.googleapis.com/"
)

// Endpoints carries the two upstream catalog locations. They are injected
// configuration rather than compiled-in call sites so tests (and users
// behind mirrors) can substitute their own.
type Endpoints struct {
	ModernURL string
	LegacyURL string
}

// DefaultEndpoints returns the well-known upstream locations.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		ModernURL: DefaultModernURL,
		LegacyURL: DefaultLegacyURL,
	}
}
