package providers

import (
	"context"
	"net/url"
	"regexp"
	"strings"
)

const wikivoyageAPI = "https://en.wikivoyage.org/w/api.php"

const (
	guideImageLimit   = 10
	guideSummaryLimit = 500
	guideSectionLimit = 1000
)

// GuideSections holds the travel-relevant sections of a Wikivoyage article,
// each capped to keep downstream prompts bounded.
type GuideSections struct {
	See      string
	Do       string
	Eat      string
	Sleep    string
	StaySafe string
}

// GuideInfo is the travel-guide view of one destination.
type GuideInfo struct {
	Title    string
	Summary  string
	URL      string
	Images   []string
	Sections GuideSections
}

// WikivoyageClient fetches travel-guide content from the Wikivoyage API.
type WikivoyageClient struct {
	mw mediaWikiClient
}

func NewWikivoyageClient(opts Options) *WikivoyageClient {
	return &WikivoyageClient{mw: mediaWikiClient{baseURL: wikivoyageAPI, http: newHTTPClient(opts)}}
}

// DestinationInfo looks up the destination's guide page and returns its
// summary, page URL, section texts, and up to ten photo URLs. The summary
// prefers the "Understand" section over the raw page lead.
func (c *WikivoyageClient) DestinationInfo(ctx context.Context, destination string) (GuideInfo, error) {
	title, err := c.mw.searchTitle(ctx, destination)
	if err != nil {
		return GuideInfo{}, err
	}
	if title == "" {
		return GuideInfo{}, nil
	}

	content, err := c.pageContent(ctx, title)
	if err != nil {
		return GuideInfo{}, err
	}

	sections := parseGuideSections(content)
	summary := sections.understand
	if summary == "" {
		summary = content
	}

	info := GuideInfo{
		Title:   title,
		Summary: truncate(summary, guideSummaryLimit),
		URL:     "https://en.wikivoyage.org/wiki/" + strings.ReplaceAll(title, " ", "_"),
		Sections: GuideSections{
			See:      sections.see,
			Do:       sections.do,
			Eat:      sections.eat,
			Sleep:    sections.sleep,
			StaySafe: sections.staySafe,
		},
	}

	titles, err := c.mw.imageTitles(ctx, title, 50)
	if err != nil {
		return info, nil
	}

	var photoTitles []string
	for _, t := range titles {
		if len(photoTitles) >= guideImageLimit {
			break
		}
		// Wikivoyage pages carry their own branding images on top of the
		// generic non-photo markers.
		if IsPhotoCandidate(t) && !strings.Contains(strings.ToLower(t), "wikivoyage") {
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

func (c *WikivoyageClient) pageContent(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("titles", title)
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("exsectionformat", "plain")

	resp, err := c.mw.query(ctx, params)
	if err != nil {
		return "", err
	}
	page, ok := resp.firstPage()
	if !ok {
		return "", nil
	}
	return page.Extract, nil
}

type guideSectionText struct {
	understand string
	see        string
	do         string
	eat        string
	sleep      string
	staySafe   string
}

var guideSectionNames = []string{"understand", "see", "do", "eat", "sleep", "stay safe"}

// parseGuideSections extracts the known section bodies from a plain-text
// Wikivoyage extract. Sections in the extract look like "Understand ==" or
// plain headings followed by body text up to the next heading.
func parseGuideSections(content string) guideSectionText {
	var out guideSectionText

	for _, name := range guideSectionNames {
		pattern := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(name) + `\s*==+\s*\n(.*?)(?:==|$)`)
		match := pattern.FindStringSubmatch(content)
		if match == nil {
			continue
		}
		text := truncate(strings.TrimSpace(match[1]), guideSectionLimit)

		switch name {
		case "understand":
			out.understand = text
		case "see":
			out.see = text
		case "do":
			out.do = text
		case "eat":
			out.eat = text
		case "sleep":
			out.sleep = text
		case "stay safe":
			out.staySafe = text
		}
	}
	return out
}
