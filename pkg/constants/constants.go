// Package constants provides shared constants for the mortgage-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the number of decimal places currency is rounded to
	DecimalPlaces = 2

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// LoanTerms are the supported loan terms in years, ascending.
var LoanTerms = []int{10, 15, 20, 30}

// Input bounds accepted by validation.
const (
	MinHomePrice      = 10000.0
	MaxHomePrice      = 100000000.0
	MinInterestRate   = 0.0
	MaxInterestRate   = 20.0
	MaxPropertyTax    = 5000000.0
	MaxHomeInsurance  = 2000000.0
	MaxMonthlyHoaFees = 20000.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatPDF renders the amortization schedule as a PDF document
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultPDFOutputFile is where the CLI writes PDF output when no path is given
	DefaultPDFOutputFile = "amortization.pdf"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024

	// DefaultSiteURL is used for sitemap links when no site URL is configured
	DefaultSiteURL = "https://example.com"

	// DefaultCacheBackend is the result cache used when none is configured
	DefaultCacheBackend = "memory"

	// DefaultCacheTTL is how long computed results stay cached
	DefaultCacheTTL = "1h"

	// DefaultCacheMaxEntries bounds the in-memory result cache
	DefaultCacheMaxEntries = 4096

	// DefaultRateLimitRequests is the per-client request budget per window
	DefaultRateLimitRequests = 60

	// DefaultRateLimitWindow is the rate limiter refill window
	DefaultRateLimitWindow = "1m"
)
