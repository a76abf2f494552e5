// Package pictogram provides the ARASAAC pictogram search client, the
// image URL builder with its render options, and the debounced search
// trigger used by interactive pickers.
package pictogram

import "fmt"

// DefaultHost is the ARASAAC API host.
const DefaultHost = "api.arasaac.org"

// Pictogram is a remotely hosted symbol image identified by a numeric id.
type Pictogram struct {
	ID int `json:"_id"`
}

// URL returns the plain image resource URL without render options.
func (p Pictogram) URL() string {
	return fmt.Sprintf("https://%s/api/pictograms/%d", DefaultHost, p.ID)
}

// SearchMode selects the ARASAAC search endpoint variant.
type SearchMode string

const (
	SearchModeStandard SearchMode = "search"
	SearchModeBest     SearchMode = "bestsearch"
)

// DisplayName returns a human-readable label for the mode.
func (m SearchMode) DisplayName() string {
	switch m {
	case SearchModeBest:
		return "Best Search"
	default:
		return "Standard Search"
	}
}

// IsValid reports whether the mode is one of the supported endpoint
// variants.
func (m SearchMode) IsValid() bool {
	return m == SearchModeStandard || m == SearchModeBest
}
