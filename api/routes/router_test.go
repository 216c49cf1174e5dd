package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JasonR4/london-outfast-sub003/internal/deals"
	"github.com/JasonR4/london-outfast-sub003/internal/plans"
	"github.com/JasonR4/london-outfast-sub003/internal/quotes"
	pkgauth "github.com/JasonR4/london-outfast-sub003/pkg/auth"
	"github.com/JasonR4/london-outfast-sub003/pkg/config"
	"github.com/JasonR4/london-outfast-sub003/pkg/db/models"
	"github.com/JasonR4/london-outfast-sub003/pkg/enums"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
	"github.com/JasonR4/london-outfast-sub003/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubQuoteService struct {
	lastAuthenticated *bool
}

func (s *stubQuoteService) Preview(ctx context.Context, input quotes.PreviewInput, authenticated bool) (*quotes.PreviewResult, error) {
	if s.lastAuthenticated != nil {
		*s.lastAuthenticated = authenticated
	}
	visibility := quotes.VisibilityMasked
	if authenticated {
		visibility = quotes.VisibilityFull
	}
	return &quotes.PreviewResult{Visibility: visibility, Currency: enums.CurrencyGBP}, nil
}

func (s *stubQuoteService) Submit(ctx context.Context, sessionID string, input quotes.SubmitInput) (*models.Quote, error) {
	return &models.Quote{ID: uuid.New(), SessionID: sessionID}, nil
}

func (s *stubQuoteService) GetByID(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	return &models.Quote{ID: id}, nil
}

type stubPlanService struct{}

func (stubPlanService) UpsertPlan(ctx context.Context, sessionID string, input plans.UpsertPlanInput) (*models.PlanDraft, error) {
	return &models.PlanDraft{ID: uuid.New(), SessionID: sessionID}, nil
}

func (stubPlanService) GetActivePlan(ctx context.Context, sessionID string) (*models.PlanDraft, error) {
	return &models.PlanDraft{ID: uuid.New(), SessionID: sessionID}, nil
}

func (stubPlanService) ClearPlan(ctx context.Context, sessionID string) error {
	return nil
}

type stubRateCardService struct{}

func (stubRateCardService) GetByFormatName(ctx context.Context, formatName string) (*models.RateCard, error) {
	return &models.RateCard{ID: uuid.New(), FormatName: formatName}, nil
}

func (stubRateCardService) ListByCategory(ctx context.Context, category enums.FormatCategory) ([]models.RateCard, error) {
	return []models.RateCard{}, nil
}

type stubDealService struct{}

func (stubDealService) GetPricing(ctx context.Context, id uuid.UUID) (*deals.DealCalc, error) {
	return &deals.DealCalc{}, nil
}

func (stubDealService) GetPricingBySlug(ctx context.Context, slug string) (*deals.DealCalc, error) {
	return &deals.DealCalc{}, nil
}

func (stubDealService) ListActive(ctx context.Context) ([]deals.DealCalc, error) {
	return []deals.DealCalc{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer"},
	}
}

func newTestRouter(cfg *config.Config, quoteService quotes.Service) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	if quoteService == nil {
		quoteService = &stubQuoteService{}
	}
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		(*redis.Client)(nil),
		nil,
		quoteService,
		stubPlanService{},
		stubRateCardService{},
		stubDealService{},
	)
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), uuid.New(), "buyer@example.com", time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

const previewBody = `{"lines":[{"format_name":"48 Sheet Billboard","sites":3,"periods":[17,18,19],"sale_rate":500,"production_cost":300}]}`

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig(), nil)
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for live got %d", resp.Code)
	}
}

func TestPublicPing(t *testing.T) {
	router := newTestRouter(testConfig(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/public/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for public ping got %d", resp.Code)
	}
}

func TestPreviewWithoutTokenIsMasked(t *testing.T) {
	var authenticated bool
	svc := &stubQuoteService{lastAuthenticated: &authenticated}
	router := newTestRouter(testConfig(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/preview", strings.NewReader(previewBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for anonymous preview got %d: %s", resp.Code, resp.Body.String())
	}
	if authenticated {
		t.Fatal("expected anonymous preview to reach the service unauthenticated")
	}
	if !strings.Contains(resp.Body.String(), quotes.VisibilityMasked) {
		t.Fatalf("expected masked visibility in body: %s", resp.Body.String())
	}
}

func TestPreviewWithTokenIsFull(t *testing.T) {
	cfg := testConfig()
	var authenticated bool
	svc := &stubQuoteService{lastAuthenticated: &authenticated}
	router := newTestRouter(cfg, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/preview", strings.NewReader(previewBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for signed-in preview got %d: %s", resp.Code, resp.Body.String())
	}
	if !authenticated {
		t.Fatal("expected signed-in preview to reach the service authenticated")
	}
}

func TestPreviewRejectsInvalidToken(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/preview", strings.NewReader(previewBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token got %d", resp.Code)
	}
}

func TestPreviewRejectsBadJSON(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/preview", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestSubmitRequiresSessionHeader(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	body := `{"email":"buyer@example.com","name":"Buyer",` + previewBody[1:]
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header got %d", resp.Code)
	}
}

func TestSubmitWithSessionSucceeds(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	body := `{"email":"buyer@example.com","name":"Buyer",` + previewBody[1:]
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", "sess-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for submit got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestQuoteFetchRejectsBadID(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed quote id got %d", resp.Code)
	}
}

func TestPlanRoutesRequireSession(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/active", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header got %d", resp.Code)
	}

	withSession := httptest.NewRequest(http.MethodGet, "/api/v1/plans/active", nil)
	withSession.Header.Set("X-Session-Id", "sess-1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, withSession)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with session header got %d", resp.Code)
	}
}

func TestDealRoutes(t *testing.T) {
	router := newTestRouter(testConfig(), nil)

	list := httptest.NewRequest(http.MethodGet, "/api/v1/deals/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, list)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for deal list got %d", resp.Code)
	}

	pricing := httptest.NewRequest(http.MethodGet, "/api/v1/deals/summer-billboards/pricing", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, pricing)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for deal pricing got %d", resp.Code)
	}
}
