// Package pseo derives the programmatic landing-page variants of the
// calculator: price/rate/region slugs and state/credit-tier rate pages.
package pseo

// State is a US state as it appears in URLs and headings.
type State struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
}

// PostCount is the number of state/credit-tier rate pages published.
const PostCount = 50

// CreditTiers are the credit tiers a rate page can target, best first.
var CreditTiers = []string{"excellent", "good", "fair", "poor"}

// States lists every state in slug order.
var States = []State{
	{"alabama", "Alabama"},
	{"alaska", "Alaska"},
	{"arizona", "Arizona"},
	{"arkansas", "Arkansas"},
	{"california", "California"},
	{"colorado", "Colorado"},
	{"connecticut", "Connecticut"},
	{"delaware", "Delaware"},
	{"florida", "Florida"},
	{"georgia", "Georgia"},
	{"hawaii", "Hawaii"},
	{"idaho", "Idaho"},
	{"illinois", "Illinois"},
	{"indiana", "Indiana"},
	{"iowa", "Iowa"},
	{"kansas", "Kansas"},
	{"kentucky", "Kentucky"},
	{"louisiana", "Louisiana"},
	{"maine", "Maine"},
	{"maryland", "Maryland"},
	{"massachusetts", "Massachusetts"},
	{"michigan", "Michigan"},
	{"minnesota", "Minnesota"},
	{"mississippi", "Mississippi"},
	{"missouri", "Missouri"},
	{"montana", "Montana"},
	{"nebraska", "Nebraska"},
	{"nevada", "Nevada"},
	{"new-hampshire", "New Hampshire"},
	{"new-jersey", "New Jersey"},
	{"new-mexico", "New Mexico"},
	{"new-york", "New York"},
	{"north-carolina", "North Carolina"},
	{"north-dakota", "North Dakota"},
	{"ohio", "Ohio"},
	{"oklahoma", "Oklahoma"},
	{"oregon", "Oregon"},
	{"pennsylvania", "Pennsylvania"},
	{"rhode-island", "Rhode Island"},
	{"south-carolina", "South Carolina"},
	{"south-dakota", "South Dakota"},
	{"tennessee", "Tennessee"},
	{"texas", "Texas"},
	{"utah", "Utah"},
	{"vermont", "Vermont"},
	{"virginia", "Virginia"},
	{"washington", "Washington"},
	{"west-virginia", "West Virginia"},
	{"wisconsin", "Wisconsin"},
	{"wyoming", "Wyoming"},
}

// FindState looks a state up by slug.
func FindState(slug string) (State, bool) {
	for _, s := range States {
		if s.Slug == slug {
			return s, true
		}
	}
	return State{}, false
}

// IsCreditTier reports whether tier is one of CreditTiers.
func IsCreditTier(tier string) bool {
	for _, t := range CreditTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// RatesPage identifies one state/credit-tier rate page.
type RatesPage struct {
	State string `json:"state"`
	Tier  string `json:"tier"`
}

// RatesPageParams returns the published rate pages: the first PostCount
// state/tier pairs, walking states in order and tiers within each state.
func RatesPageParams() []RatesPage {
	params := make([]RatesPage, 0, PostCount)
	for _, state := range States {
		for _, tier := range CreditTiers {
			if len(params) >= PostCount {
				return params
			}
			params = append(params, RatesPage{State: state.Slug, Tier: tier})
		}
	}
	return params
}
