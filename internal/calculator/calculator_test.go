package calculator

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/iwvelando/mortgage-calculator/internal/cache"
	"github.com/iwvelando/mortgage-calculator/internal/metrics"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

func baseInputs() mortgage.Inputs {
	return mortgage.Inputs{
		HomePrice:                 500000,
		DownPaymentValue:          100000,
		LoanTermYears:             30,
		AnnualInterestRatePercent: 6.5,
		AnnualPropertyTax:         6000,
		AnnualHomeInsurance:       1200,
		MonthlyHoaFee:             200,
	}
}

type failingCache struct {
	gets, sets int
}

func (f *failingCache) Get(context.Context, string) ([]byte, bool, error) {
	f.gets++
	return nil, false, errors.New("connection refused")
}

func (f *failingCache) Set(context.Context, string, []byte) error {
	f.sets++
	return errors.New("connection refused")
}

type staticCache struct {
	value []byte
}

func (s staticCache) Get(context.Context, string) ([]byte, bool, error) {
	return s.value, true, nil
}

func (s staticCache) Set(context.Context, string, []byte) error {
	return nil
}

func TestCalculate(t *testing.T) {
	m := metrics.New()
	svc := NewService(zap.NewNop(), cache.NewMemoryCache(10, time.Minute), m)
	ctx := context.Background()

	first, err := svc.Calculate(ctx, baseInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if first.Cached {
		t.Error("first calculation should not come from the cache")
	}
	if first.Results.TotalMonthlyPayment != 3328.27 {
		t.Errorf("TotalMonthlyPayment = %.2f, expected 3328.27", first.Results.TotalMonthlyPayment)
	}

	second, err := svc.Calculate(ctx, baseInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if !second.Cached {
		t.Error("second calculation should come from the cache")
	}
	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Error("cached results differ from computed results")
	}

	if got := testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(metrics.SourceComputed)); got != 1 {
		t.Errorf("computed count = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(metrics.SourceCache)); got != 1 {
		t.Errorf("cache count = %v, expected 1", got)
	}
}

func TestCalculateRejectsInvalidInputs(t *testing.T) {
	m := metrics.New()
	svc := NewService(nil, nil, m)

	inputs := baseInputs()
	inputs.LoanTermYears = 25
	inputs.HomePrice = 5000
	inputs.DownPaymentValue = 1000

	_, err := svc.Calculate(context.Background(), inputs)
	var inputErr *validation.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *validation.InputError, got %v", err)
	}
	if len(inputErr.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(inputErr.Fields), inputErr)
	}
	if got := testutil.ToFloat64(m.ValidationFailures); got != 1 {
		t.Errorf("validation failures = %v, expected 1", got)
	}
}

func TestCalculateSurvivesCacheFailures(t *testing.T) {
	m := metrics.New()
	fc := &failingCache{}
	svc := NewService(zap.NewNop(), fc, m)

	outcome, err := svc.Calculate(context.Background(), baseInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if outcome.Cached || len(outcome.Results.Schedule) != 360 {
		t.Errorf("expected a freshly computed 360-period schedule, got cached=%v periods=%d",
			outcome.Cached, len(outcome.Results.Schedule))
	}
	if fc.gets != 1 || fc.sets != 1 {
		t.Errorf("expected one read and one write attempt, got %d and %d", fc.gets, fc.sets)
	}
	if got := testutil.ToFloat64(m.CacheErrors); got != 2 {
		t.Errorf("cache errors = %v, expected 2", got)
	}
}

func TestCalculateDiscardsCorruptCacheEntry(t *testing.T) {
	m := metrics.New()
	svc := NewService(zap.NewNop(), staticCache{value: []byte("{not json")}, m)

	outcome, err := svc.Calculate(context.Background(), baseInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if outcome.Cached {
		t.Error("a corrupt cache entry must not be served")
	}
	if outcome.Results.MonthlyPrincipalAndInterest != 2528.27 {
		t.Errorf("MonthlyPrincipalAndInterest = %.2f, expected 2528.27", outcome.Results.MonthlyPrincipalAndInterest)
	}
	if got := testutil.ToFloat64(m.CacheErrors); got != 1 {
		t.Errorf("cache errors = %v, expected 1", got)
	}
}

func TestCacheKey(t *testing.T) {
	base := baseInputs()
	if CacheKey(base) != "v1:500000:100000:30:6.5:6000:1200:200" {
		t.Errorf("CacheKey() = %s", CacheKey(base))
	}

	mutations := []func(*mortgage.Inputs){
		func(in *mortgage.Inputs) { in.HomePrice++ },
		func(in *mortgage.Inputs) { in.DownPaymentValue++ },
		func(in *mortgage.Inputs) { in.LoanTermYears = 15 },
		func(in *mortgage.Inputs) { in.AnnualInterestRatePercent = 6.25 },
		func(in *mortgage.Inputs) { in.AnnualPropertyTax++ },
		func(in *mortgage.Inputs) { in.AnnualHomeInsurance++ },
		func(in *mortgage.Inputs) { in.MonthlyHoaFee++ },
	}
	for i, mutate := range mutations {
		in := base
		mutate(&in)
		if CacheKey(in) == CacheKey(base) {
			t.Errorf("mutation %d did not change the cache key", i)
		}
	}
}
