package providers

import (
	"strings"
	"testing"
)

const sampleGuideExtract = `Kyoto is the former imperial capital of Japan.

Understand ==
Kyoto served as Japan's capital for over a thousand years.
Its temples and gardens survived the war largely intact.

See ==
Fushimi Inari Shrine with its thousands of vermilion torii gates.

Do ==
Walk the Philosopher's Path in cherry blossom season.

Eat ==
Kaiseki dining is the local haute cuisine.

Sleep ==
Ryokan stays are the classic option.

Stay safe ==
Kyoto is a very safe city by any standard.

Go next ==
Nara and Osaka are short train rides away.`

func TestParseGuideSections(t *testing.T) {
	got := parseGuideSections(sampleGuideExtract)

	if !strings.Contains(got.understand, "capital for over a thousand years") {
		t.Errorf("understand = %q", got.understand)
	}
	if !strings.Contains(got.see, "Fushimi Inari Shrine") {
		t.Errorf("see = %q", got.see)
	}
	if !strings.Contains(got.do, "Philosopher's Path") {
		t.Errorf("do = %q", got.do)
	}
	if !strings.Contains(got.eat, "Kaiseki") {
		t.Errorf("eat = %q", got.eat)
	}
	if !strings.Contains(got.sleep, "Ryokan") {
		t.Errorf("sleep = %q", got.sleep)
	}
	if !strings.Contains(got.staySafe, "very safe city") {
		t.Errorf("staySafe = %q", got.staySafe)
	}
}

func TestParseGuideSections_MissingSections(t *testing.T) {
	got := parseGuideSections("Just a lead paragraph with no headings.")
	if got.understand != "" || got.see != "" || got.do != "" {
		t.Errorf("expected empty sections, got %+v", got)
	}
}

func TestParseGuideSections_CapsSectionLength(t *testing.T) {
	long := "Understand ==\n" + strings.Repeat("a", 3000)
	got := parseGuideSections(long)
	if len(got.understand) != guideSectionLimit {
		t.Errorf("understand length = %d, want %d", len(got.understand), guideSectionLimit)
	}
}
