package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// mediaWikiClient is the shared core for the MediaWiki-family providers
// (Wikipedia, Wikivoyage, Wikimedia Commons). They all speak the same
// action=query API; only the base URL and the query parameters differ.
type mediaWikiClient struct {
	baseURL string
	http    *http.Client
}

type mwResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
		Pages map[string]mwPage `json:"pages"`
	} `json:"query"`
}

type mwPage struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	FullURL string `json:"fullurl"`
	Images  []struct {
		Title string `json:"title"`
	} `json:"images"`
	ImageInfo []struct {
		URL      string `json:"url"`
		ThumbURL string `json:"thumburl"`
	} `json:"imageinfo"`
}

func (c *mediaWikiClient) query(ctx context.Context, params url.Values) (*mwResponse, error) {
	params.Set("action", "query")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mediawiki api status %d", resp.StatusCode)
	}

	var out mwResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode mediawiki response: %w", err)
	}
	return &out, nil
}

// searchTitle returns the title of the best search match, or "" when the
// query matches nothing.
func (c *mediaWikiClient) searchTitle(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "1")

	resp, err := c.query(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Query.Search) == 0 {
		return "", nil
	}
	return resp.Query.Search[0].Title, nil
}

// firstPage returns the single page of a titles= query, if any.
func (r *mwResponse) firstPage() (mwPage, bool) {
	for _, p := range r.Query.Pages {
		return p, true
	}
	return mwPage{}, false
}

// imageTitles lists the file titles embedded in a page, capped at limit.
func (c *mediaWikiClient) imageTitles(ctx context.Context, pageTitle string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("titles", pageTitle)
	params.Set("prop", "images")
	params.Set("imlimit", "50")

	resp, err := c.query(ctx, params)
	if err != nil {
		return nil, err
	}
	page, ok := resp.firstPage()
	if !ok {
		return nil, nil
	}

	titles := make([]string, 0, limit)
	for _, img := range page.Images {
		if len(titles) >= limit {
			break
		}
		if img.Title != "" {
			titles = append(titles, img.Title)
		}
	}
	return titles, nil
}

// imageURLs resolves file titles to direct 800px-wide URLs, preserving the
// input order. Titles that resolve to nothing are skipped.
func (c *mediaWikiClient) imageURLs(ctx context.Context, fileTitles []string) ([]string, error) {
	if len(fileTitles) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("titles", strings.Join(fileTitles, "|"))
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("iiurlwidth", "800")

	resp, err := c.query(ctx, params)
	if err != nil {
		return nil, err
	}

	// The API keys pages by internal ID; index by title to keep input order.
	byTitle := make(map[string]mwPage, len(resp.Query.Pages))
	for _, p := range resp.Query.Pages {
		byTitle[p.Title] = p
	}

	var urls []string
	for _, title := range fileTitles {
		page, ok := byTitle[title]
		if !ok || len(page.ImageInfo) == 0 {
			continue
		}
		info := page.ImageInfo[0]
		if info.ThumbURL != "" {
			urls = append(urls, info.ThumbURL)
		} else if info.URL != "" {
			urls = append(urls, info.URL)
		}
	}
	return urls, nil
}
