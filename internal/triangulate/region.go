package triangulate

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"macropilot.econdata.org/internal/reference"
)

// ErrUnknownRegion marks a region name that is not in the catalog.
var ErrUnknownRegion = fmt.Errorf("unknown region")

// RegionData returns observations for every country in a region, sorted
// best-first by the indicator's polarity.
func (f *Fetcher) RegionData(ctx context.Context, indicatorCode, region string) ([]*Observation, error) {
	countries := reference.CountriesForRegion(region)
	if countries == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}

	codes := make([]string, len(countries))
	for i, c := range countries {
		codes[i] = c.Code
	}

	results, err := f.observeAll(ctx, indicatorCode, codes)
	if err != nil {
		return nil, err
	}

	sortByPolarity(results, indicatorCode)
	return results, nil
}

// GlobalRanking returns the top countries worldwide for an indicator. The
// EU aggregate is excluded so rankings compare economies, not blocs.
func (f *Fetcher) GlobalRanking(ctx context.Context, indicatorCode string, limit int) ([]*Observation, error) {
	var codes []string
	for _, code := range reference.AllCountryCodes() {
		if code != reference.AggregateCode {
			codes = append(codes, code)
		}
	}

	results, err := f.observeAll(ctx, indicatorCode, codes)
	if err != nil {
		return nil, err
	}

	sortByPolarity(results, indicatorCode)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Comparison returns observations for an explicit set of countries, in the
// order requested. The EU aggregate is rejected.
func (f *Fetcher) Comparison(ctx context.Context, indicatorCode string, countryCodes []string) ([]*Observation, error) {
	for _, code := range countryCodes {
		if code == reference.AggregateCode {
			return nil, fmt.Errorf("%w: %s is an aggregate", ErrUnknownCountry, code)
		}
		if reference.CountryByCode(code) == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, code)
		}
	}

	results := make([]*Observation, 0, len(countryCodes))
	for _, code := range countryCodes {
		obs, err := f.Observe(ctx, indicatorCode, code)
		if err != nil {
			return nil, err
		}
		results = append(results, obs)
	}
	return results, nil
}

// observeAll fetches many countries with a bounded worker pool so region
// and ranking scans do not hammer the upstream APIs.
func (f *Fetcher) observeAll(ctx context.Context, indicatorCode string, codes []string) ([]*Observation, error) {
	if reference.IndicatorByCode(indicatorCode) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndicator, indicatorCode)
	}

	observations := make([]*Observation, len(codes))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := f.workers
	if workers > len(codes) {
		workers = len(codes)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				obs, err := f.Observe(ctx, indicatorCode, codes[i])
				if err == nil {
					observations[i] = obs
				}
			}
		}()
	}

	for i := range codes {
		if ctx.Err() != nil {
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Drop countries with no consensus so callers sort real values only.
	results := make([]*Observation, 0, len(observations))
	for _, obs := range observations {
		if obs != nil && obs.ConsensusValue != nil {
			results = append(results, obs)
		}
	}
	return results, nil
}

// sortByPolarity orders observations best-first: descending for
// higher-is-better and neutral indicators, ascending for lower-is-better.
func sortByPolarity(observations []*Observation, indicatorCode string) {
	ind := reference.IndicatorByCode(indicatorCode)
	ascending := ind != nil && ind.Polarity == reference.PolarityLowerBetter

	sort.SliceStable(observations, func(i, j int) bool {
		vi, vj := *observations[i].ConsensusValue, *observations[j].ConsensusValue
		if ascending {
			return vi < vj
		}
		return vi > vj
	})
}
