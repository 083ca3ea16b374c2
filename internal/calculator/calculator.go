// Package calculator serves validated mortgage calculations backed by a
// result cache.
package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-calculator/internal/cache"
	"github.com/iwvelando/mortgage-calculator/internal/metrics"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

// cacheKeyVersion is bumped whenever the serialized Results change shape.
const cacheKeyVersion = "v1"

// Outcome is a calculation result and where it came from.
type Outcome struct {
	Results mortgage.Results
	Cached  bool
}

// Service validates inputs, consults the cache and computes schedules.
type Service struct {
	logger  *zap.Logger
	cache   cache.Cache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService wires a calculator. A nil logger, cache or metrics is replaced
// with a no-op implementation.
func NewService(logger *zap.Logger, c cache.Cache, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = cache.NopCache{}
	}
	if m == nil {
		m = metrics.New()
	}
	return &Service{logger: logger, cache: c, metrics: m, now: time.Now}
}

// Calculate returns the results for inputs. Invalid inputs yield a
// *validation.InputError. Cache failures are logged and never fail the
// calculation.
func (s *Service) Calculate(ctx context.Context, inputs mortgage.Inputs) (Outcome, error) {
	if err := validation.ValidateInputs(inputs); err != nil {
		s.metrics.ValidationFailures.Inc()
		var inputErr *validation.InputError
		if errors.As(err, &inputErr) {
			s.logger.Debug("rejected mortgage inputs",
				zap.String("op", "calculator.Calculate"),
				zap.Int("violations", len(inputErr.Fields)),
			)
		}
		return Outcome{}, err
	}

	key := CacheKey(inputs)
	if cached, ok := s.lookup(ctx, key); ok {
		s.metrics.ObserveCalculation(metrics.SourceCache, 0)
		return Outcome{Results: cached, Cached: true}, nil
	}

	start := s.now()
	results := mortgage.Compute(inputs)
	elapsed := s.now().Sub(start)
	s.metrics.ObserveCalculation(metrics.SourceComputed, elapsed)

	s.logger.Debug("computed mortgage schedule",
		zap.String("op", "calculator.Calculate"),
		zap.String("key", key),
		zap.Int("periods", len(results.Schedule)),
		zap.Duration("duration", elapsed),
	)

	s.store(ctx, key, results)
	return Outcome{Results: results}, nil
}

func (s *Service) lookup(ctx context.Context, key string) (mortgage.Results, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.metrics.CacheErrors.Inc()
		s.logger.Warn("result cache read failed",
			zap.String("op", "calculator.Calculate"),
			zap.String("key", key),
			zap.Error(err),
		)
		return mortgage.Results{}, false
	}
	if !ok {
		return mortgage.Results{}, false
	}

	var results mortgage.Results
	if err := json.Unmarshal(data, &results); err != nil {
		s.metrics.CacheErrors.Inc()
		s.logger.Warn("discarding undecodable cached result",
			zap.String("op", "calculator.Calculate"),
			zap.String("key", key),
			zap.Error(err),
		)
		return mortgage.Results{}, false
	}
	return results, true
}

func (s *Service) store(ctx context.Context, key string, results mortgage.Results) {
	data, err := json.Marshal(results)
	if err == nil {
		err = s.cache.Set(ctx, key, data)
	}
	if err != nil {
		s.metrics.CacheErrors.Inc()
		s.logger.Warn("result cache write failed",
			zap.String("op", "calculator.Calculate"),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// CacheKey derives a canonical key for inputs; equal inputs always map to
// the same key.
func CacheKey(in mortgage.Inputs) string {
	format := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join([]string{
		cacheKeyVersion,
		format(in.HomePrice),
		format(in.DownPaymentValue),
		strconv.Itoa(in.LoanTermYears),
		format(in.AnnualInterestRatePercent),
		format(in.AnnualPropertyTax),
		format(in.AnnualHomeInsurance),
		format(in.MonthlyHoaFee),
	}, ":")
}
