package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"macropilot.econdata.org/internal/llm"
	"macropilot.econdata.org/internal/logging"
	"macropilot.econdata.org/internal/metrics"
	"macropilot.econdata.org/internal/reference"
	"macropilot.econdata.org/internal/triangulate"
)

// Engine answers user queries by detecting intent, fetching the relevant
// observations and grounding the model's response in them.
type Engine struct {
	fetcher *triangulate.Fetcher
	model   *llm.Client
	history Store
	params  llm.GenerationParams
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// EngineOptions configure a chat engine. History defaults to an in-memory
// store and Params to the tuned defaults.
type EngineOptions struct {
	Fetcher *triangulate.Fetcher
	Model   *llm.Client
	History Store
	Params  *llm.GenerationParams
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func NewEngine(opts EngineOptions) *Engine {
	history := opts.History
	if history == nil {
		history = NewMemoryStore()
	}
	params := llm.DefaultGenerationParams()
	if opts.Params != nil {
		params = *opts.Params
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		fetcher: opts.Fetcher,
		model:   opts.Model,
		history: history,
		params:  params,
		logger:  logger,
		metrics: opts.Metrics,
	}
}

// Reply is the result of one chat turn.
type Reply struct {
	ConversationID string                     `json:"conversationId"`
	Reply          string                     `json:"reply"`
	Intent         Intent                     `json:"intent"`
	Data           []*triangulate.Observation `json:"data"`
}

// Respond runs a full chat turn and returns the complete answer.
func (e *Engine) Respond(ctx context.Context, conversationID, query string) (*Reply, error) {
	return e.respond(ctx, conversationID, query, nil)
}

// RespondStream runs a chat turn, invoking onToken for each generated
// token before returning the assembled reply.
func (e *Engine) RespondStream(ctx context.Context, conversationID, query string, onToken func(token string) error) (*Reply, error) {
	return e.respond(ctx, conversationID, query, onToken)
}

func (e *Engine) respond(ctx context.Context, conversationID, query string, onToken func(string) error) (*Reply, error) {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	intent := DetectIntent(query)

	fetchStart := time.Now()
	data := e.fetchRelevantData(ctx, intent)
	logging.LogOperation(e.logger, "chat_data_fetch",
		slog.Duration("duration", time.Since(fetchStart)),
		slog.String("intent", intent.Type),
		slog.Int("observations", len(data)))

	enhanced := query
	if dataContext := formatDataContext(data); dataContext != "" {
		enhanced = query + "\n\n" + dataContext
	}

	var (
		text   string
		tokens int
		err    error
	)
	if onToken == nil {
		text, err = e.model.Complete(ctx, llm.BuildPrompt(enhanced), e.params)
		tokens = len(strings.Fields(text))
	} else {
		var sb strings.Builder
		err = e.model.Stream(ctx, llm.BuildPrompt(enhanced), e.params, func(token string) error {
			sb.WriteString(token)
			tokens++
			return onToken(token)
		})
		text = sb.String()
	}
	if err != nil {
		return nil, fmt.Errorf("model generation: %w", err)
	}

	if e.metrics != nil {
		e.metrics.ObserveChatTurn(intent.Type, tokens)
	}

	turn := Turn{Query: query, Response: text, IntentType: intent.Type, CreatedAt: time.Now()}
	if err := e.history.Append(ctx, conversationID, turn); err != nil {
		logging.LogError(e.logger, "failed to record chat turn", err,
			slog.String("conversation_id", conversationID))
	}

	return &Reply{
		ConversationID: conversationID,
		Reply:          text,
		Intent:         intent,
		Data:           data,
	}, nil
}

// ClearHistory discards a conversation's history.
func (e *Engine) ClearHistory(ctx context.Context, conversationID string) error {
	return e.history.Clear(ctx, conversationID)
}

// fetchRelevantData pulls the observations an intent calls for. Fetch
// breadth is capped per intent type so the data context fits the model's
// context window.
func (e *Engine) fetchRelevantData(ctx context.Context, intent Intent) []*triangulate.Observation {
	if e.fetcher == nil {
		return nil
	}

	var data []*triangulate.Observation

	switch intent.Type {
	case IntentRanking:
		for _, indicator := range head(intent.Indicators, 1) {
			var (
				results []*triangulate.Observation
				err     error
			)
			if intent.IsRegional && intent.Region != "" {
				results, err = e.fetcher.RegionData(ctx, indicator, intent.Region)
			} else {
				results, err = e.fetcher.GlobalRanking(ctx, indicator, 10)
			}
			if err != nil {
				logging.LogError(e.logger, "ranking fetch failed", err, slog.String("indicator", indicator))
				continue
			}
			data = append(data, results...)
		}

	case IntentRegional:
		for _, indicator := range head(intent.Indicators, 2) {
			results, err := e.fetcher.RegionData(ctx, indicator, intent.Region)
			if err != nil {
				logging.LogError(e.logger, "regional fetch failed", err,
					slog.String("indicator", indicator), slog.String("region", intent.Region))
				continue
			}
			data = append(data, head(results, 10)...)
		}

	case IntentComparison:
		for _, country := range head(intent.Countries, 3) {
			for _, indicator := range head(intent.Indicators, 2) {
				data = e.appendObservation(ctx, data, indicator, country)
			}
		}

	case IntentSingleCountry:
		for _, country := range head(intent.Countries, 1) {
			for _, indicator := range head(intent.Indicators, 3) {
				data = e.appendObservation(ctx, data, indicator, country)
			}
		}
	}

	return data
}

func (e *Engine) appendObservation(ctx context.Context, data []*triangulate.Observation, indicator, country string) []*triangulate.Observation {
	obs, err := e.fetcher.Observe(ctx, indicator, country)
	if err != nil {
		logging.LogError(e.logger, "observation fetch failed", err,
			slog.String("indicator", indicator), slog.String("country", country))
		return data
	}
	if obs.ConsensusValue == nil {
		return data
	}
	return append(data, obs)
}

// formatDataContext renders observations as a dense block the model can
// cite. One line per observation keeps the token cost low.
func formatDataContext(data []*triangulate.Observation) string {
	if len(data) == 0 {
		return ""
	}

	lines := make([]string, 0, len(data)+1)
	lines = append(lines, "### DATA CONTEXT:")
	for _, d := range data {
		lines = append(lines, fmt.Sprintf("- %s (%s) | %s: %s | Conf: %s | Assess: %s | Period: %s",
			d.CountryName, d.Region, d.IndicatorName, d.FormattedValue,
			d.ConfidenceLevel, d.AssessmentLabel, d.Period))
	}
	return strings.Join(lines, "\n")
}

// SuggestedQuestions returns starter questions, tailored to a country when
// its code is known.
func SuggestedQuestions(countryCode string) []string {
	if country := reference.CountryByCode(countryCode); country != nil {
		return []string{
			fmt.Sprintf("What is the GDP growth rate for %s?", country.Name),
			fmt.Sprintf("What is the inflation rate in %s?", country.Name),
			fmt.Sprintf("What is the unemployment situation in %s?", country.Name),
			fmt.Sprintf("Compare %s's economy to regional peers.", country.Name),
		}
	}

	return []string{
		"What is India's GDP growth rate?",
		"Compare USA and China inflation.",
		"Which countries have the highest unemployment?",
		"What is the economic outlook for Europe?",
		"Tell me about Brazil's current account balance.",
		"What is Japan's government debt level?",
		"How is Vietnam's industrial production performing?",
		"Compare Germany and France GDP per capita.",
	}
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
