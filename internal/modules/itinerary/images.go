package itinerary

import "github.com/msollami/vacabuilder/internal/providers"

// maxImagesPerDestination caps the merged, deduplicated gallery pool.
const maxImagesPerDestination = 10

// appendPhotoCandidates appends up to max usable candidates from src to dst,
// applying the shared photo filter to each one first. Filtering happens
// per provider, before the cross-provider dedup.
func appendPhotoCandidates(dst, src []string, max int) []string {
	taken := 0
	for _, ref := range src {
		if taken >= max {
			break
		}
		if !providers.IsPhotoCandidate(ref) {
			continue
		}
		dst = append(dst, ref)
		taken++
	}
	return dst
}

// dedupImages removes duplicate URLs, keeping the first occurrence of each
// and preserving order, then caps the result at max.
func dedupImages(urls []string, max int) []string {
	seen := make(map[string]struct{}, len(urls))
	var out []string
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
		if len(out) >= max {
			break
		}
	}
	return out
}
