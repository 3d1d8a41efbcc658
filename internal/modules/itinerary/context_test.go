package itinerary

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildContext_TruncatesLongSummary(t *testing.T) {
	long := strings.Repeat("x", 2000)
	got := buildContext([]EnrichedDestination{{
		Destination: Destination{Name: "Lisbon"},
		Summary:     long,
	}})

	wantOverview := "Overview: " + strings.Repeat("x", 500) + "..."
	if !strings.Contains(got.destinationsText, wantOverview) {
		t.Errorf("destinations text missing 500-char truncated overview")
	}
	if strings.Contains(got.destinationsText, strings.Repeat("x", 501)) {
		t.Errorf("overview exceeds the 500-character budget")
	}
}

func TestBuildContext_NumbersDestinationsWithDates(t *testing.T) {
	got := buildContext([]EnrichedDestination{
		{Destination: Destination{Name: "Rome", StartDate: "2026-09-01", EndDate: "2026-09-04"}},
		{Destination: Destination{Name: "Tokyo", StartDate: "2026-09-05"}},
		{Destination: Destination{Name: "Oslo"}},
	})

	for _, want := range []string{
		"1. Rome (2026-09-01 to 2026-09-04)",
		"2. Tokyo (2026-09-05 to TBD)",
		"3. Oslo",
	} {
		if !strings.Contains(got.destinationsText, want) {
			t.Errorf("destinations text missing %q:\n%s", want, got.destinationsText)
		}
	}
}

func TestBuildContext_CapsAttractionsAtSix(t *testing.T) {
	var attractions []Attraction
	for i := 0; i < 12; i++ {
		attractions = append(attractions, Attraction{Name: fmt.Sprintf("Sight %d", i), Rating: 4.5})
	}

	got := buildContext([]EnrichedDestination{{
		Destination: Destination{Name: "Madrid"},
		Attractions: attractions,
	}})

	if n := strings.Count(got.attractionsText, "- Sight"); n != 6 {
		t.Errorf("attraction entries = %d, want 6", n)
	}
}

func TestBuildContext_CapsTipsAtThree(t *testing.T) {
	got := buildContext([]EnrichedDestination{{
		Destination: Destination{Name: "Madrid"},
		Tips:        []string{"tip one", "tip two", "tip three", "tip four"},
	}})

	if n := strings.Count(got.attractionsText, "- tip"); n != 3 {
		t.Errorf("tip entries = %d, want 3", n)
	}
	if strings.Contains(got.attractionsText, "tip four") {
		t.Errorf("fourth tip leaked into context")
	}
}

func TestBuildContext_MissingRatingRendersNA(t *testing.T) {
	got := buildContext([]EnrichedDestination{{
		Destination: Destination{Name: "Porto"},
		Attractions: []Attraction{
			{Name: "Livraria Lello", Rating: 4.3},
			{Name: "Unrated Alley"},
		},
	}})

	if !strings.Contains(got.attractionsText, "Livraria Lello (Rating: 4.3)") {
		t.Errorf("rated attraction rendered wrong:\n%s", got.attractionsText)
	}
	if !strings.Contains(got.attractionsText, "Unrated Alley (Rating: N/A)") {
		t.Errorf("unrated attraction should render N/A:\n%s", got.attractionsText)
	}
}

func TestBuildContext_EmptyFieldsProduceNoSections(t *testing.T) {
	got := buildContext([]EnrichedDestination{{Destination: Destination{Name: "Nowhere"}}})

	if strings.Contains(got.destinationsText, "Overview:") {
		t.Errorf("empty summary still produced an overview line")
	}
	if got.attractionsText != "" {
		t.Errorf("attractions text = %q, want empty", got.attractionsText)
	}
}
