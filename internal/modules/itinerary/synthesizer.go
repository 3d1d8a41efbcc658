// README: Document synthesizer: one generation call plus deterministic repair.
package itinerary

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/msollami/vacabuilder/internal/ai"
)

const (
	generationMaxTokens   = 3000
	generationTemperature = 0.7

	// Gallery embeds per destination.
	galleryImagesPerDestination = 5
)

const synthSystemPrompt = `You are a professional travel planner. Create detailed, engaging vacation itineraries based on the provided destination information and user preferences. Format your response in clean markdown with:
- Clear day-by-day schedule
- Activity recommendations with timing
- Dining suggestions
- Travel tips and local insights
- Must-see attractions

Be specific, practical, and enthusiastic. Make the itinerary feel personalized.`

const synthUserPromptFmt = `Create a vacation itinerary with the following information:

DESTINATIONS:
%s

USER PREFERENCES:
%s

AVAILABLE ATTRACTIONS AND INFO:
%s

Generate a complete, day-by-day itinerary in markdown format. Include specific times, practical advice, and make it exciting!`

// placeholderPhrases are generic headings models like to emit regardless of
// instructions; any leading line containing one is stripped before the real
// title is derived.
var placeholderPhrases = []string{"your dream vacation", "vacation itinerary"}

// Synthesizer turns enriched destinations into the final markdown document.
// It issues exactly one generation call per request.
type Synthesizer struct {
	gen ai.Generator
	now func() time.Time
}

func NewSynthesizer(gen ai.Generator) *Synthesizer {
	return &Synthesizer{gen: gen, now: time.Now}
}

// Synthesize builds the bounded context, generates the narrative in a single
// call, and repairs the raw output into a well-formed document. A generation
// error is recovered into a diagnostic body so a partial document is still
// produced.
func (s *Synthesizer) Synthesize(ctx context.Context, dests []EnrichedDestination, preferences string) string {
	blocks := buildContext(dests)
	prompt := fmt.Sprintf("%s\n\n%s", synthSystemPrompt,
		fmt.Sprintf(synthUserPromptFmt, blocks.destinationsText, preferences, blocks.attractionsText))

	body, err := s.gen.Generate(ctx, prompt, generationMaxTokens, generationTemperature)
	if err != nil {
		log.Printf("itinerary: generation failed: %v", err)
		body = fmt.Sprintf("Error generating response: %v", err)
	}

	return assembleDocument(stripPlaceholderHeader(body), dests, s.now())
}

// stripPlaceholderHeader discards leading lines that contain a known generic
// placeholder phrase, along with any blank lines that follow them. Idempotent
// and terminating even when the generator repeats the placeholder: each pass
// either consumes a line or returns.
func stripPlaceholderHeader(text string) string {
	lines := strings.Split(text, "\n")
	for {
		for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
		if len(lines) == 0 {
			return ""
		}

		lower := strings.ToLower(lines[0])
		placeholder := false
		for _, phrase := range placeholderPhrases {
			if strings.Contains(lower, phrase) {
				placeholder = true
				break
			}
		}
		if !placeholder {
			return strings.Join(lines, "\n")
		}
		lines = lines[1:]
	}
}

// assembleDocument treats the first line of the repaired body as the true
// title, inserts the generation timestamp right after it, and appends the
// photo gallery and resource links.
func assembleDocument(body string, dests []EnrichedDestination, generatedAt time.Time) string {
	title, rest, _ := strings.Cut(body, "\n")
	title = strings.TrimSpace(title)
	rest = strings.TrimSpace(rest)

	var doc strings.Builder
	doc.WriteString(title)
	doc.WriteString("\n\nGenerated on ")
	doc.WriteString(generatedAt.Format("January 2, 2006"))
	doc.WriteString("\n\n---\n\n")
	doc.WriteString(rest)
	doc.WriteString("\n\n---\n")

	if gallery := buildGallery(dests); gallery != "" {
		doc.WriteString("\n## Photo Gallery\n")
		doc.WriteString(gallery)
	}

	doc.WriteString("\n## Additional Resources\n")
	for _, dest := range dests {
		if dest.SourceURL == "" {
			continue
		}
		fmt.Fprintf(&doc, "\n- [%s](%s)", dest.Name, dest.SourceURL)
	}

	doc.WriteString("\n\n*Happy travels!*\n")
	return doc.String()
}

// buildGallery renders one third-level heading per destination that has
// images. Empty string when no destination contributed any image, so no
// empty gallery heading ever reaches the document.
func buildGallery(dests []EnrichedDestination) string {
	var gallery strings.Builder
	for _, dest := range dests {
		if len(dest.Images) == 0 {
			continue
		}
		fmt.Fprintf(&gallery, "\n### %s\n", dest.Name)
		for i, img := range dest.Images {
			if i >= galleryImagesPerDestination {
				break
			}
			fmt.Fprintf(&gallery, "\n![%s %d](%s)", dest.Name, i+1, img)
		}
		gallery.WriteString("\n")
	}
	return gallery.String()
}
