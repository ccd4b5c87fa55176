package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuoteRepo struct {
	byID map[string]*entity.Quote
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{byID: make(map[string]*entity.Quote)}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	cp := *q
	r.byID[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) Update(q *entity.Quote) error {
	cp := *q
	r.byID[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	var list []*entity.Quote
	for _, q := range r.byID {
		cp := *q
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeQuoteRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeOrderRepo struct {
	byID map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.byID[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	if o, ok := r.byID[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range r.byID {
		cp := *o
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeOrderRepo) ListByQuote(quoteID string) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range r.byID {
		if o.QuoteID == quoteID {
			cp := *o
			list = append(list, &cp)
		}
	}
	return list, nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes (sin
// transacción real).
type fakeTxRunner struct {
	quotes *fakeQuoteRepo
	orders *fakeOrderRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.QuoteRepository, repository.OrderRepository) error) error {
	return fn(r.quotes, r.orders)
}

// fakePDFGenerator devuelve bytes fijos para no depender del motor PDF.
type fakePDFGenerator struct{}

func (fakePDFGenerator) GenerateQuotePDF(_ context.Context, _ *entity.Quote) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app    *fiber.App
	quotes *fakeQuoteRepo
	orders *fakeOrderRepo
}

func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	quotes := newFakeQuoteRepo()
	orders := newFakeOrderRepo()

	quoteUC := usecase.NewQuoteUseCase(quotes)
	orderUC := usecase.NewOrderUseCase(orders, &fakeTxRunner{quotes: quotes, orders: orders})
	pdfUC := usecase.NewQuotePDFUseCase(quotes, fakePDFGenerator{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		QuoteUC:    quoteUC,
		QuotePDFUC: pdfUC,
		OrderUC:    orderUC,
	})
	return &testEnv{app: app, quotes: quotes, orders: orders}
}

// validInputs FOB → CIF: 100 unidades a 500, flete 100000, seguro 0.2%,
// comisión bancaria 0.6%, markup 15%, redondeo a 1.
func validInputs() quoting.Inputs {
	return quoting.Inputs{
		Currency:     "JPY",
		SupplierTerm: quoting.TermFOB,
		TargetTerm:   quoting.TermCIF,
		Products: []quoting.Product{{
			ID:            "p1",
			Name:          "producto p1",
			InputMode:     quoting.InputPerUnit,
			UnitPrice:     decimal.NewFromInt(500),
			TotalQuantity: decimal.NewFromInt(100),
			BoxQuantity:   decimal.NewFromInt(24),
		}},
		PricingMode:      quoting.PricingMarkup,
		MarkupPct:        decimal.NewFromInt(15),
		BankFeePct:       decimal.RequireFromString("0.6"),
		RoundingStep:     decimal.NewFromInt(1),
		MainFreight:      quoting.NewCostItem(decimal.NewFromInt(100000)),
		InsuranceRatePct: decimal.RequireFromString("0.2"),
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests preview
// ──────────────────────────────────────────────────────────────────────────────

func TestQuotePreview_CalculaSinPersistir(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/quotes/preview", validInputs())
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.QuoteDerivedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.True(t, out.Calculation.Totals.TotalQuote.Equal(decimal.NewFromInt(173900)),
		"cotización total esperada 173900, vino %s", out.Calculation.Totals.TotalQuote)
	assert.True(t, out.Calculation.PerUnit.UnitQuote.Equal(decimal.NewFromInt(1739)))
	require.Len(t, out.Products, 1)

	assert.Empty(t, env.quotes.byID, "preview no debe guardar nada")
}

func TestQuotePreview_TerminoInvalido_Retorna400(t *testing.T) {
	env := buildTestApp(t)
	in := validInputs()
	in.TargetTerm = "FCA"

	resp := doJSON(t, env.app, http.MethodPost, "/api/quotes/preview", in)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD de cotizaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteCreate_PersisteConDerivados(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/quotes", dto.CreateQuoteRequest{
		Title:  "Pedido Tokio",
		Inputs: validInputs(),
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Pedido Tokio", out.Title)
	assert.Equal(t, "JPY", out.Currency)
	assert.True(t, out.Derived.Calculation.Totals.TotalQuote.IsPositive())

	stored, err := env.quotes.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "la cotización debe quedar persistida")
	assert.True(t, stored.Derived.Calculation.Totals.TotalQuote.Equal(out.Derived.Calculation.Totals.TotalQuote))
}

func TestQuoteGetByID_NoExiste_Retorna404(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/quotes/no-existe", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuoteUpdate_RecalculaDerivados(t *testing.T) {
	env := buildTestApp(t)
	created := doJSON(t, env.app, http.MethodPost, "/api/quotes", dto.CreateQuoteRequest{Inputs: validInputs()})
	var quote dto.QuoteResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&quote))
	created.Body.Close()

	// Subir el markup debe subir la cotización sugerida.
	in := validInputs()
	in.MarkupPct = decimal.NewFromInt(30)
	resp := doJSON(t, env.app, http.MethodPut, "/api/quotes/"+quote.ID, dto.UpdateQuoteRequest{Inputs: &in})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.True(t, updated.Derived.Calculation.Totals.TotalQuote.
		GreaterThan(quote.Derived.Calculation.Totals.TotalQuote),
		"más markup debe producir una cotización mayor")
}

func TestQuoteDelete_Retorna204(t *testing.T) {
	env := buildTestApp(t)
	created := doJSON(t, env.app, http.MethodPost, "/api/quotes", dto.CreateQuoteRequest{Inputs: validInputs()})
	var quote dto.QuoteResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&quote))
	created.Body.Close()

	resp := doJSON(t, env.app, http.MethodDelete, "/api/quotes/"+quote.ID, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, env.quotes.byID)
}

func TestQuotePDF_DescargaConContentType(t *testing.T) {
	env := buildTestApp(t)
	created := doJSON(t, env.app, http.MethodPost, "/api/quotes", dto.CreateQuoteRequest{Inputs: validInputs()})
	var quote dto.QuoteResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&quote))
	created.Body.Close()

	resp := doJSON(t, env.app, http.MethodGet, "/api/quotes/"+quote.ID+"/pdf", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
}

func TestQuotePDF_NoExiste_Retorna404(t *testing.T) {
	env := buildTestApp(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/quotes/no-existe/pdf", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
