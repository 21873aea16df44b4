package exchangerate

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/puntoventa/puntoventa/internal/config"
	"github.com/puntoventa/puntoventa/internal/httpclient"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/shopspring/decimal"
)

// Quote is a USD/VES exchange-rate quote. It is an untrusted external
// value used only for display; no stored amount ever depends on it.
type Quote struct {
	Source    string          `json:"fuente"`
	Name      string          `json:"nombre"`
	Buy       decimal.Decimal `json:"compra"`
	Sell      decimal.Decimal `json:"venta"`
	Average   decimal.Decimal `json:"promedio"`
	UpdatedAt string          `json:"fechaActualizacion"`
}

// Provider returns the current USD quote. Implementations never fail the
// caller: when the source is unreachable they fall back to a configured
// constant and flag the quote as stale.
type Provider interface {
	GetUSDQuote(ctx context.Context) *Quote
}

const cacheKey = "usd_quote"

type httpProvider struct {
	cfg    config.ExchangeRateConfig
	client httpclient.Client
	cache  *gocache.Cache
	logger *logger.Logger
}

// NewProvider creates the HTTP quote provider. Successful quotes are
// cached for the configured TTL, matching how often the source publishes.
func NewProvider(cfg *config.Configuration, client httpclient.Client, log *logger.Logger) Provider {
	ttl := time.Duration(cfg.ExchangeRate.CacheTTLHours) * time.Hour
	return &httpProvider{
		cfg:    cfg.ExchangeRate,
		client: client,
		cache:  gocache.New(ttl, 2*ttl),
		logger: log,
	}
}

func (p *httpProvider) GetUSDQuote(ctx context.Context) *Quote {
	if cached, ok := p.cache.Get(cacheKey); ok {
		return cached.(*Quote)
	}

	quote, err := p.fetch(ctx)
	if err != nil {
		p.logger.Warnw("exchange rate source unavailable, using fallback",
			"url", p.cfg.URL,
			"error", err,
		)
		return p.fallback()
	}

	p.cache.SetDefault(cacheKey, quote)
	return quote
}

func (p *httpProvider) fetch(ctx context.Context) (*Quote, error) {
	resp, err := p.client.Send(ctx, &httpclient.Request{
		Method: http.MethodGet,
		URL:    p.cfg.URL,
	})
	if err != nil {
		return nil, err
	}

	var quote Quote
	if err := json.Unmarshal(resp.Body, &quote); err != nil {
		return nil, err
	}

	// a quote without a positive average is as good as no quote
	if quote.Average.LessThanOrEqual(decimal.Zero) {
		if quote.Buy.GreaterThan(decimal.Zero) && quote.Sell.GreaterThan(decimal.Zero) {
			quote.Average = quote.Buy.Add(quote.Sell).Div(decimal.NewFromInt(2))
		} else {
			return nil, errInvalidQuote
		}
	}

	return &quote, nil
}

func (p *httpProvider) fallback() *Quote {
	avg := p.cfg.FallbackAverage
	spread := avg.Mul(decimal.NewFromFloat(0.02))
	return &Quote{
		Source:    "respaldo",
		Name:      "Dólar estimado",
		Buy:       avg.Sub(spread),
		Sell:      avg.Add(spread),
		Average:   avg,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
