package providers

import "strings"

// nonPhotoMarkers flags file titles and URLs that are almost never usable
// travel photos: UI assets, vector art, maps, heraldry.
var nonPhotoMarkers = []string{
	"icon", "logo", "svg", "map", "diagram", "chart",
	"flag", "coat", "seal", "symbol", "banner", "button",
}

// rasterExtensions are the accepted photo file formats.
var rasterExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// IsPhotoCandidate reports whether an image title or URL looks like an actual
// photograph: no non-photographic marker anywhere in it, and a raster image
// extension at the end. Applied to every provider's candidates before
// deduplication.
func IsPhotoCandidate(ref string) bool {
	lower := strings.ToLower(ref)

	for _, marker := range nonPhotoMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	for _, ext := range rasterExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
