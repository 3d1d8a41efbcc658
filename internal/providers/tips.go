package providers

import (
	"context"
	"fmt"
)

// TipsClient supplies generic, destination-templated travel tips. There is no
// reliable free tips API, so the tips are fixed templates; the interface
// matches the other providers so a real source can replace it later.
type TipsClient struct{}

func NewTipsClient() *TipsClient {
	return &TipsClient{}
}

// Tips returns general travel tips for the destination.
func (c *TipsClient) Tips(_ context.Context, destination string) ([]string, error) {
	return []string{
		fmt.Sprintf("Research %s weather patterns before your trip", destination),
		fmt.Sprintf("Check visa requirements for %s", destination),
		"Learn basic local phrases",
		"Book accommodations in advance during peak season",
		"Keep emergency contacts handy",
	}, nil
}
