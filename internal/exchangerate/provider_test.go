package exchangerate

import (
	"context"
	"net/http"
	"testing"

	"github.com/puntoventa/puntoventa/internal/config"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/httpclient"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHTTPClient struct {
	body []byte
	err  error
	hits int
}

func (s *stubHTTPClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	s.hits++
	if s.err != nil {
		return nil, s.err
	}
	return &httpclient.Response{StatusCode: http.StatusOK, Body: s.body}, nil
}

func newTestProvider(t *testing.T, stub *stubHTTPClient) Provider {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.ExchangeRate.URL = "https://ve.dolarapi.com/v1/dolares/oficial"
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)
	return NewProvider(cfg, stub, log)
}

func TestGetUSDQuote(t *testing.T) {
	stub := &stubHTTPClient{
		body: []byte(`{"fuente":"oficial","nombre":"Oficial","compra":36.10,"venta":36.60,"promedio":36.35,"fechaActualizacion":"2026-08-28T12:00:00Z"}`),
	}
	provider := newTestProvider(t, stub)

	quote := provider.GetUSDQuote(context.Background())
	require.NotNil(t, quote)
	assert.Equal(t, "oficial", quote.Source)
	assert.True(t, quote.Average.Equal(decimal.NewFromFloat(36.35)))
}

func TestGetUSDQuoteCaches(t *testing.T) {
	stub := &stubHTTPClient{
		body: []byte(`{"fuente":"oficial","nombre":"Oficial","compra":36.10,"venta":36.60,"promedio":36.35,"fechaActualizacion":"2026-08-28T12:00:00Z"}`),
	}
	provider := newTestProvider(t, stub)

	provider.GetUSDQuote(context.Background())
	provider.GetUSDQuote(context.Background())
	assert.Equal(t, 1, stub.hits)
}

func TestGetUSDQuoteFallback(t *testing.T) {
	stub := &stubHTTPClient{
		err: ierr.NewError("connection refused").Mark(ierr.ErrHTTPClient),
	}
	provider := newTestProvider(t, stub)

	quote := provider.GetUSDQuote(context.Background())
	require.NotNil(t, quote)
	assert.Equal(t, "respaldo", quote.Source)
	assert.True(t, quote.Average.Equal(decimal.NewFromFloat(35.85)))
	assert.True(t, quote.Buy.LessThan(quote.Sell))
}

func TestGetUSDQuoteDerivesMissingAverage(t *testing.T) {
	stub := &stubHTTPClient{
		body: []byte(`{"fuente":"oficial","nombre":"Oficial","compra":36.00,"venta":37.00,"fechaActualizacion":"2026-08-28T12:00:00Z"}`),
	}
	provider := newTestProvider(t, stub)

	quote := provider.GetUSDQuote(context.Background())
	require.NotNil(t, quote)
	assert.True(t, quote.Average.Equal(decimal.NewFromFloat(36.5)))
}

func TestGetUSDQuoteInvalidPayloadFallsBack(t *testing.T) {
	stub := &stubHTTPClient{body: []byte(`{"fuente":"oficial"}`)}
	provider := newTestProvider(t, stub)

	quote := provider.GetUSDQuote(context.Background())
	require.NotNil(t, quote)
	assert.Equal(t, "respaldo", quote.Source)
}
