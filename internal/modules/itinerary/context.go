// README: Prompt context builder: bounded text blocks for the generation call.
package itinerary

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds that keep the aggregate prompt inside the model's context window
// across multi-destination requests. Hard capacity constraints.
const (
	contextSummaryChars = 500
	contextAttractions  = 6
	contextTips         = 3
)

// llmContext is the bounded, human-readable input to one generation call.
// Ephemeral: built, used once, discarded.
type llmContext struct {
	destinationsText string
	attractionsText  string
}

// buildContext renders the enriched destinations into two text blocks: a
// numbered destination overview and an attractions/tips digest. Pure
// function; destination order follows input order.
func buildContext(dests []EnrichedDestination) llmContext {
	var destinations strings.Builder
	var attractions strings.Builder

	for i, dest := range dests {
		dates := ""
		if dest.StartDate != "" {
			end := dest.EndDate
			if end == "" {
				end = "TBD"
			}
			dates = fmt.Sprintf(" (%s to %s)", dest.StartDate, end)
		}
		fmt.Fprintf(&destinations, "\n%d. %s%s", i+1, dest.Name, dates)

		if dest.Summary != "" {
			fmt.Fprintf(&destinations, "\n   Overview: %s...", truncateRunes(dest.Summary, contextSummaryChars))
		}

		if len(dest.Attractions) > 0 {
			fmt.Fprintf(&attractions, "\n\nAttractions in %s:", dest.Name)
			for _, attr := range capAttractions(dest.Attractions, contextAttractions) {
				fmt.Fprintf(&attractions, "\n- %s (Rating: %s)", attr.Name, formatRating(attr.Rating))
			}
		}

		if len(dest.Tips) > 0 {
			fmt.Fprintf(&attractions, "\n\nTravel Tips for %s:", dest.Name)
			for _, tip := range capStrings(dest.Tips, contextTips) {
				fmt.Fprintf(&attractions, "\n- %s", tip)
			}
		}
	}

	return llmContext{
		destinationsText: destinations.String(),
		attractionsText:  attractions.String(),
	}
}

func capAttractions(s []Attraction, max int) []Attraction {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func capStrings(s []string, max int) []string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// formatRating renders a rating for the prompt; a zero rating means the
// provider had none.
func formatRating(r float32) string {
	if r == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(float64(r), 'f', 1, 32)
}

// truncateRunes caps s at max runes without splitting a multibyte character.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
