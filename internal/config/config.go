// Package config defines the data structures related to configuration and
// includes functions for modifying the loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Scenarios []Scenario    `yaml:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, pdf
	File   string `yaml:"file,omitempty"`   // destination for pdf output
}

// Scenario holds the loan parameters of one named what-if.
type Scenario struct {
	Name               string  `yaml:"name"`
	Active             bool    `yaml:"active"`
	HomePrice          float64 `yaml:"homePrice"`
	DownPayment        float64 `yaml:"downPayment,omitempty"`
	DownPaymentPercent float64 `yaml:"downPaymentPercent,omitempty"`
	LoanTermYears      int     `yaml:"loanTermYears"`
	InterestRate       float64 `yaml:"interestRate"`
	PropertyTax        float64 `yaml:"propertyTax,omitempty"`
	HomeInsurance      float64 `yaml:"homeInsurance,omitempty"`
	HoaFees            float64 `yaml:"hoaFees,omitempty"`
	ShowSchedule       bool    `yaml:"showSchedule,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Inputs converts the scenario into engine inputs. An explicit down payment
// wins over downPaymentPercent and unsupported terms snap to the nearest
// supported one.
func (s Scenario) Inputs() mortgage.Inputs {
	down := s.DownPayment
	if down == 0 && s.DownPaymentPercent > 0 {
		_, down = validation.SyncDownPayment(s.HomePrice, s.DownPaymentPercent, 0, validation.DownPaymentPercent)
	}

	return mortgage.Inputs{
		HomePrice:                 s.HomePrice,
		DownPaymentValue:          down,
		LoanTermYears:             validation.NearestLoanTerm(s.LoanTermYears),
		AnnualInterestRatePercent: s.InterestRate,
		AnnualPropertyTax:         s.PropertyTax,
		AnnualHomeInsurance:       s.HomeInsurance,
		MonthlyHoaFee:             s.HoaFees,
	}
}

// ActiveScenarios returns the scenarios that will be calculated.
func (c *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	// Convert config structs to validator format
	scenarios := make([]validation.ScenarioConfig, 0, len(c.Scenarios))
	for _, scenario := range c.Scenarios {
		scenarios = append(scenarios, validation.ScenarioConfig{
			Name:               scenario.Name,
			Active:             scenario.Active,
			HomePrice:          scenario.HomePrice,
			DownPayment:        scenario.DownPayment,
			DownPaymentPercent: scenario.DownPaymentPercent,
			LoanTermYears:      scenario.LoanTermYears,
			InterestRate:       scenario.InterestRate,
		})
	}

	validator := validation.ConfigValidator{Scenarios: scenarios}
	return validator.ValidateAll()
}
