package pseo

import "sync"

var (
	priceRangesK = []int{
		200, 250, 300, 350, 400, 450, 500, 550, 600, 650, 700, 750, 800, 850, 900, 950, 1000,
		1100, 1200, 1300, 1400, 1500, 1600, 1700, 1800, 1900, 2000,
	}
	slugRates = []float64{3.0, 3.5, 4.0, 4.5, 5.0, 5.5, 6.0, 6.5, 7.0, 7.5, 8.0, 8.5, 9.0, 9.5, 10.0}
	regions   = []string{
		"california", "texas", "florida", "new-york", "pennsylvania", "illinois", "ohio",
		"georgia", "north-carolina", "michigan", "new-jersey", "virginia", "washington",
		"arizona", "massachusetts", "tennessee", "indiana", "missouri", "maryland",
		"wisconsin", "colorado", "minnesota", "south-carolina", "alabama", "louisiana",
		"kentucky", "oregon", "oklahoma", "connecticut", "utah", "nevada", "iowa",
		"arkansas", "mississippi", "kansas", "new-mexico", "nebraska", "west-virginia",
		"idaho", "hawaii", "new-hampshire", "maine", "montana", "rhode-island", "delaware",
		"south-dakota", "north-dakota", "alaska", "vermont", "wyoming",
	}

	devPricesK  = []int{300, 500, 700, 1000}
	devRates    = []float64{4.0, 5.5, 7.0, 8.5}
	devRegions  = []string{"california", "texas", "florida", "new-york", "pennsylvania"}
	defaultPage = &PagesCache{}
)

// PagesCache memoizes the slug lists of the mortgage payment pages. The
// zero value is ready to use and safe for concurrent use.
type PagesCache struct {
	allOnce sync.Once
	all     []string
	devOnce sync.Once
	dev     []string
}

// DefaultPagesCache returns the process-wide cache.
func DefaultPagesCache() *PagesCache {
	return defaultPage
}

// AllSlugs returns every price/rate/region combination. The returned
// slice is shared and must not be modified.
func (c *PagesCache) AllSlugs() []string {
	c.allOnce.Do(func() {
		c.all = generateSlugs(priceRangesK, slugRates, regions)
	})
	return c.all
}

// DevSlugs returns the reduced set used outside production.
func (c *PagesCache) DevSlugs() []string {
	c.devOnce.Do(func() {
		c.dev = generateSlugs(devPricesK, devRates, devRegions)
	})
	return c.dev
}

// SlugsForBuild returns AllSlugs in production and DevSlugs otherwise.
func (c *PagesCache) SlugsForBuild(production bool) []string {
	if production {
		return c.AllSlugs()
	}
	return c.DevSlugs()
}

func generateSlugs(pricesK []int, rates []float64, regions []string) []string {
	slugs := make([]string, 0, len(pricesK)*len(rates)*len(regions))
	for _, priceK := range pricesK {
		for _, rate := range rates {
			for _, region := range regions {
				slugs = append(slugs, GenerateSlug(priceK, rate, region))
			}
		}
	}
	return slugs
}
