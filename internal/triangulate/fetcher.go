package triangulate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"macropilot.econdata.org/internal/logging"
	"macropilot.econdata.org/internal/metrics"
	"macropilot.econdata.org/internal/reference"
	"macropilot.econdata.org/internal/sources"
)

// ErrUnknownCountry and ErrUnknownIndicator distinguish bad input from
// upstream failures.
var (
	ErrUnknownCountry   = fmt.Errorf("unknown country code")
	ErrUnknownIndicator = fmt.Errorf("unknown indicator code")
)

// Fetcher triangulates indicator observations across FRED, the World Bank
// and the OECD, with a simulated fallback when live data is disabled.
type Fetcher struct {
	fred      sources.Source
	worldBank sources.Source
	oecd      sources.Source
	simulated *sources.Simulated

	liveData bool
	cache    Cache
	workers  int
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Options configures a Fetcher.
type Options struct {
	FRED      sources.Source
	WorldBank sources.Source
	OECD      sources.Source
	LiveData  bool
	Cache     Cache
	Workers   int
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

const defaultWorkers = 8

// NewFetcher builds a Fetcher. A nil cache disables caching; zero workers
// selects the default pool size for region and ranking scans.
func NewFetcher(opts Options) *Fetcher {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Fetcher{
		fred:      opts.FRED,
		worldBank: opts.WorldBank,
		oecd:      opts.OECD,
		simulated: sources.NewSimulated(),
		liveData:  opts.LiveData,
		cache:     opts.Cache,
		workers:   workers,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
}

// Observe returns the triangulated observation for one indicator/country
// pair, consulting the cache first.
func (f *Fetcher) Observe(ctx context.Context, indicatorCode, countryCode string) (*Observation, error) {
	country := reference.CountryByCode(countryCode)
	if country == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, countryCode)
	}
	ind := reference.IndicatorByCode(indicatorCode)
	if ind == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndicator, indicatorCode)
	}

	cacheKey := ObservationKey(indicatorCode, countryCode, time.Now())
	if f.cache != nil {
		if obs, ok := f.cache.Get(ctx, cacheKey); ok {
			if f.metrics != nil {
				f.metrics.CacheHit()
			}
			return obs, nil
		}
		if f.metrics != nil {
			f.metrics.CacheMiss()
		}
	}

	var obs *Observation
	if f.liveData {
		obs = f.observeLive(ctx, *ind, *country)
	} else {
		obs = f.observeSimulated(*ind, *country)
	}

	if f.cache != nil && obs.ConfidenceLevel != ConfidenceNoData {
		f.cache.Set(ctx, cacheKey, obs)
	}
	return obs, nil
}

// observeLive fans out one goroutine per source and assembles the result.
func (f *Fetcher) observeLive(ctx context.Context, ind reference.Indicator, country reference.Country) *Observation {
	type fetchResult struct {
		point sources.DataPoint
		dur   time.Duration
	}

	srcs := []sources.Source{f.fred, f.worldBank, f.oecd}
	results := make([]fetchResult, len(srcs))
	done := make(chan int, len(srcs))

	for i, src := range srcs {
		go func(i int, src sources.Source) {
			start := time.Now()
			point := src.Fetch(ctx, ind, country)
			results[i] = fetchResult{point: point, dur: time.Since(start)}
			done <- i
		}(i, src)
	}
	for range srcs {
		<-done
	}

	byName := make(map[string]sources.DataPoint, len(srcs))
	for i, src := range srcs {
		res := results[i]
		byName[src.Name()] = res.point

		outcome := "success"
		switch {
		case res.point.Err != nil:
			outcome = "error"
			logging.LogSourceFetch(f.logger, src.Name(), ind.Code, country.Code, res.dur, res.point.Err)
		case res.point.Skipped():
			outcome = "skipped"
		default:
			logging.LogSourceFetch(f.logger, src.Name(), ind.Code, country.Code, res.dur, nil)
		}
		if f.metrics != nil {
			f.metrics.ObserveSourceFetch(src.Name(), outcome, res.dur)
		}
	}

	return f.assemble(ind, country, byName[sources.SourceFRED], byName[sources.SourceWorldBank], byName[sources.SourceOECD], false)
}

func (f *Fetcher) observeSimulated(ind reference.Indicator, country reference.Country) *Observation {
	fv, wv, ov := f.simulated.Values(ind, country)
	fv = roundTo(fv, ind.DecimalPlaces)
	wv = roundTo(wv, ind.DecimalPlaces)
	ov = roundTo(ov, ind.DecimalPlaces)
	period := f.simulated.Period()

	fred := sources.DataPoint{Source: sources.SourceFRED, Value: &fv, Period: period}
	wb := sources.DataPoint{Source: sources.SourceWorldBank, Value: &wv, Period: period}
	oecd := sources.DataPoint{Source: sources.SourceOECD, Value: &ov, Period: period}

	return f.assemble(ind, country, fred, wb, oecd, true)
}

func (f *Fetcher) assemble(ind reference.Indicator, country reference.Country, fred, wb, oecd sources.DataPoint, simulated bool) *Observation {
	obs := &Observation{
		CountryCode:    country.Code,
		CountryName:    country.Name,
		Region:         country.Region,
		IncomeLevel:    string(country.IncomeLevel),
		IndicatorCode:  ind.Code,
		IndicatorName:  ind.DisplayName,
		Unit:           ind.Unit,
		FREDValue:      fred.Value,
		WorldBankValue: wb.Value,
		OECDValue:      oecd.Value,
		Period:         "N/A",
		Simulated:      simulated,
	}

	var values []float64
	for _, point := range []sources.DataPoint{fred, wb, oecd} {
		if point.Value != nil {
			values = append(values, *point.Value)
			obs.SourceCount++
			if obs.Period == "N/A" && point.Period != "" {
				obs.Period = point.Period
			}
		}
	}

	obs.ConsensusValue = consensusOf(values, ind)
	obs.ConfidenceLevel = classifyConfidence(values)
	obs.ConfidenceDescription = obs.ConfidenceLevel.Description()

	if obs.ConsensusValue != nil {
		obs.FormattedValue = ind.FormatValue(*obs.ConsensusValue)
		assessment := reference.Assess(ind.Code, *obs.ConsensusValue)
		obs.AssessmentLabel = assessment.Label
		obs.AssessmentDescription = assessment.Description
	} else {
		obs.AssessmentLabel = "Unknown"
		obs.AssessmentDescription = "Unable to assess"
	}

	return obs
}
