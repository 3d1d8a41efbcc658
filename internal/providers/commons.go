package providers

import (
	"context"
	"net/url"
	"strconv"
)

const commonsAPI = "https://commons.wikimedia.org/w/api.php"

// CommonsClient searches Wikimedia Commons for destination photos. Its search
// index is keyed on literal file titles, so callers improve recall by issuing
// query variants ("Kyoto", "Kyoto landscape", ...).
type CommonsClient struct {
	mw mediaWikiClient
}

func NewCommonsClient(opts Options) *CommonsClient {
	return &CommonsClient{mw: mediaWikiClient{baseURL: commonsAPI, http: newHTTPClient(opts)}}
}

// SearchImages returns up to limit direct image URLs for the query, in search
// ranking order. Non-photographic files are filtered by title before their
// URLs are resolved.
func (c *CommonsClient) SearchImages(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", "File:"+query)
	// Namespace 6 is the File namespace.
	params.Set("srnamespace", "6")
	// Over-fetch so that title filtering still leaves enough candidates.
	params.Set("srlimit", strconv.Itoa(limit*2))

	resp, err := c.mw.query(ctx, params)
	if err != nil {
		return nil, err
	}

	var photoTitles []string
	for _, result := range resp.Query.Search {
		if len(photoTitles) >= limit {
			break
		}
		if IsPhotoCandidate(result.Title) {
			photoTitles = append(photoTitles, result.Title)
		}
	}

	urls, err := c.mw.imageURLs(ctx, photoTitles)
	if err != nil {
		return nil, err
	}
	if len(urls) > limit {
		urls = urls[:limit]
	}
	return urls, nil
}
