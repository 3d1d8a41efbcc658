package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// fakeMediaWiki serves canned action=query responses keyed by the request's
// distinguishing parameter.
func fakeMediaWiki(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		w.Header().Set("Content-Type", "application/json")

		switch {
		case q.Get("list") == "search":
			if strings.HasPrefix(q.Get("srsearch"), "File:") {
				// Commons-style file search.
				writeFakeJSON(t, w, map[string]any{
					"query": map[string]any{
						"search": []map[string]any{
							{"title": "File:Kyoto street.jpg"},
							{"title": "File:Kyoto logo.jpg"},
							{"title": "File:Kyoto temple.png"},
						},
					},
				})
				return
			}
			if strings.HasPrefix(q.Get("srsearch"), "Tourist attractions in") {
				writeFakeJSON(t, w, map[string]any{
					"query": map[string]any{
						"search": []map[string]any{
							{"title": "Fushimi Inari-taisha"},
							{"title": "Kinkaku-ji"},
						},
					},
				})
				return
			}
			writeFakeJSON(t, w, map[string]any{
				"query": map[string]any{
					"search": []map[string]any{{"title": "Kyoto"}},
				},
			})

		case q.Get("prop") == "imageinfo":
			titles := strings.Split(q.Get("titles"), "|")
			pages := map[string]any{}
			for i, title := range titles {
				pages[string(rune('1'+i))] = map[string]any{
					"title": title,
					"imageinfo": []map[string]any{
						{"thumburl": "https://upload.example/800px-" + strings.TrimPrefix(title, "File:")},
					},
				}
			}
			writeFakeJSON(t, w, map[string]any{"query": map[string]any{"pages": pages}})

		case strings.Contains(q.Get("prop"), "extracts"):
			writeFakeJSON(t, w, map[string]any{
				"query": map[string]any{
					"pages": map[string]any{
						"42": map[string]any{
							"title":   "Kyoto",
							"extract": "Kyoto is the former imperial capital of Japan.",
							"fullurl": "https://en.wikipedia.org/wiki/Kyoto",
						},
					},
				},
			})

		case q.Get("prop") == "images":
			writeFakeJSON(t, w, map[string]any{
				"query": map[string]any{
					"pages": map[string]any{
						"42": map[string]any{
							"title": "Kyoto",
							"images": []map[string]any{
								{"title": "File:Kyoto panorama.jpg"},
								{"title": "File:City logo.png"},
								{"title": "File:Gion street.jpeg"},
							},
						},
					},
				},
			})

		default:
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
}

func writeFakeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode fake response: %v", err)
	}
}

func TestWikipediaClient_DestinationInfo(t *testing.T) {
	srv := fakeMediaWiki(t)
	defer srv.Close()

	c := NewWikipediaClient(Options{})
	c.mw.baseURL = srv.URL

	info, err := c.DestinationInfo(context.Background(), "Kyoto")
	if err != nil {
		t.Fatalf("DestinationInfo: %v", err)
	}

	if info.Title != "Kyoto" {
		t.Errorf("Title = %q", info.Title)
	}
	if info.Summary != "Kyoto is the former imperial capital of Japan." {
		t.Errorf("Summary = %q", info.Summary)
	}
	if info.URL != "https://en.wikipedia.org/wiki/Kyoto" {
		t.Errorf("URL = %q", info.URL)
	}

	// The logo file is filtered before URL resolution.
	want := []string{
		"https://upload.example/800px-Kyoto panorama.jpg",
		"https://upload.example/800px-Gion street.jpeg",
	}
	if !reflect.DeepEqual(info.Images, want) {
		t.Errorf("Images = %v, want %v", info.Images, want)
	}
}

func TestCommonsClient_SearchImages(t *testing.T) {
	srv := fakeMediaWiki(t)
	defer srv.Close()

	c := NewCommonsClient(Options{})
	c.mw.baseURL = srv.URL

	urls, err := c.SearchImages(context.Background(), "Kyoto", 5)
	if err != nil {
		t.Fatalf("SearchImages: %v", err)
	}

	want := []string{
		"https://upload.example/800px-Kyoto street.jpg",
		"https://upload.example/800px-Kyoto temple.png",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestWikipediaClient_SearchAttractionTitles(t *testing.T) {
	srv := fakeMediaWiki(t)
	defer srv.Close()

	c := NewWikipediaClient(Options{})
	c.mw.baseURL = srv.URL

	titles, err := c.SearchAttractionTitles(context.Background(), "Kyoto")
	if err != nil {
		t.Fatalf("SearchAttractionTitles: %v", err)
	}

	want := []string{"Fushimi Inari-taisha", "Kinkaku-ji"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("titles = %v, want %v", titles, want)
	}
}

func TestWikipediaClient_NoSearchResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"search":[]}}`))
	}))
	defer srv.Close()

	c := NewWikipediaClient(Options{})
	c.mw.baseURL = srv.URL

	info, err := c.DestinationInfo(context.Background(), "Xyzzy")
	if err != nil {
		t.Fatalf("DestinationInfo: %v", err)
	}
	if info.Summary != "" || len(info.Images) != 0 {
		t.Errorf("expected empty info, got %+v", info)
	}
}

func TestMediaWikiClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewWikivoyageClient(Options{})
	c.mw.baseURL = srv.URL

	if _, err := c.DestinationInfo(context.Background(), "Kyoto"); err == nil {
		t.Errorf("expected error on server failure")
	}
}
