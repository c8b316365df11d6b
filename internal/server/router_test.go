package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-calc/internal/calculator"
	"go-calc/internal/observability"
	"go-calc/internal/testutil"
)

func TestNewRouterHealthEndpoint(t *testing.T) {
	observability.Logger = zap.NewNop()
	router := NewRouter(calculator.NewHistory())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}
}

func TestNewRouterMetricsReportHistorySize(t *testing.T) {
	observability.Logger = zap.NewNop()
	calc := calculator.New(calculator.NewHistory(), nil)
	router := NewRouter(calc.History())

	ctx := context.Background()
	_, _ = calc.Add(ctx, decimal.NewFromInt(1), decimal.NewFromInt(2))
	_, _ = calc.Add(ctx, decimal.NewFromInt(3), decimal.NewFromInt(4))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if body := w.Body.String(); !strings.Contains(body, "calc_history_records 2") {
		t.Fatalf("expected history gauge of 2 in metrics output, got:\n%s", body)
	}
}

func TestNewRouterMetricsScrapeDuringCalculations(t *testing.T) {
	observability.Logger = zap.NewNop()
	history := calculator.NewHistory()
	router := NewRouter(history)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			w := testutil.ExecuteRequest(req, router)
			if w.Code != http.StatusOK {
				t.Errorf("scrape %d: expected status %d, got %d", i, http.StatusOK, w.Code)
				return
			}
		}
	}()

	one := decimal.NewFromInt(1)
	for i := 0; i < 2000; i++ {
		history.Add(calculator.NewCalculation(one, one, calculator.Add))
		if i%100 == 0 {
			history.Clear()
		}
	}
	wg.Wait()
}

func TestNewRouterUnknownPath(t *testing.T) {
	observability.Logger = zap.NewNop()
	router := NewRouter(calculator.NewHistory())

	req := httptest.NewRequest(http.MethodGet, "/calculator/add", nil)
	w := testutil.ExecuteRequest(req, router)

	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}

func TestServeStopsOnCancel(t *testing.T) {
	observability.Logger = zap.NewNop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Serve(ctx, "127.0.0.1:0", NewRouter(calculator.NewHistory())); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
