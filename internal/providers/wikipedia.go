package providers

import (
	"context"
	"net/url"
)

const wikipediaAPI = "https://en.wikipedia.org/w/api.php"

const (
	wikiImageLimit   = 5
	wikiContentLimit = 2000
)

// WikiInfo is the encyclopedic summary of one destination. Fields are empty
// when Wikipedia has nothing usable; the struct itself is always returned.
type WikiInfo struct {
	Title   string
	Summary string
	URL     string
	Content string
	Images  []string
}

// WikipediaClient fetches destination summaries from the Wikipedia API.
type WikipediaClient struct {
	mw mediaWikiClient
}

func NewWikipediaClient(opts Options) *WikipediaClient {
	return &WikipediaClient{mw: mediaWikiClient{baseURL: wikipediaAPI, http: newHTTPClient(opts)}}
}

// DestinationInfo looks up the destination's article and returns its intro
// summary, canonical URL, and up to five photo URLs.
func (c *WikipediaClient) DestinationInfo(ctx context.Context, destination string) (WikiInfo, error) {
	title, err := c.mw.searchTitle(ctx, destination)
	if err != nil {
		return WikiInfo{}, err
	}
	if title == "" {
		return WikiInfo{}, nil
	}

	params := url.Values{}
	params.Set("titles", title)
	params.Set("prop", "extracts|info")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("inprop", "url")

	resp, err := c.mw.query(ctx, params)
	if err != nil {
		return WikiInfo{}, err
	}
	page, ok := resp.firstPage()
	if !ok {
		return WikiInfo{}, nil
	}

	info := WikiInfo{
		Title:   page.Title,
		Summary: page.Extract,
		URL:     page.FullURL,
		Content: truncate(page.Extract, wikiContentLimit),
	}

	// Image failures shouldn't cost us the summary we already have.
	titles, err := c.mw.imageTitles(ctx, title, 50)
	if err != nil {
		return info, nil
	}

	var photoTitles []string
	for _, t := range titles {
		if len(photoTitles) >= wikiImageLimit {
			break
		}
		if IsPhotoCandidate(t) {
			photoTitles = append(photoTitles, t)
		}
	}

	urls, err := c.mw.imageURLs(ctx, photoTitles)
	if err != nil {
		return info, nil
	}
	info.Images = urls
	return info, nil
}

// SearchAttractionTitles returns up to ten article titles matching a tourist
// attraction search for the destination. Purely title data; callers that need
// rated attractions use the point-of-interest provider instead.
func (c *WikipediaClient) SearchAttractionTitles(ctx context.Context, destination string) ([]string, error) {
	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", "Tourist attractions in "+destination)
	params.Set("srlimit", "10")

	resp, err := c.mw.query(ctx, params)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, result := range resp.Query.Search {
		titles = append(titles, result.Title)
	}
	return titles, nil
}

// truncate caps s at max runes without splitting a multibyte character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
