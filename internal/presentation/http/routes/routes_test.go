package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/investify-receipts/internal/application/render"
	"github.com/sangkips/investify-receipts/internal/application/service"
	"github.com/sangkips/investify-receipts/internal/config"
	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/domain/repository"
	"github.com/sangkips/investify-receipts/internal/presentation/http/handler"
	"github.com/sangkips/investify-receipts/internal/presentation/http/middleware"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/pagination"
	"github.com/sangkips/investify-receipts/pkg/printer"
	"github.com/sangkips/investify-receipts/pkg/utils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memJobRepo struct {
	mu   sync.Mutex
	jobs []entity.PrintJob
}

func (r *memJobRepo) Create(ctx context.Context, job *entity.PrintJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = uuid.New()
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *memJobRepo) MarkPrinted(ctx context.Context, id uuid.UUID, printedAt time.Time, printErr error) error {
	return nil
}

func (r *memJobRepo) List(ctx context.Context, filter repository.PrintJobFilter, params *pagination.PaginationParams) ([]entity.PrintJob, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.PrintJob
	for _, j := range r.jobs {
		if !j.ScheduledAt.Before(filter.From) && !j.ScheduledAt.After(filter.To) {
			out = append(out, j)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memJobRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

type memStoreRepo struct {
	profile *entity.StoreProfile
}

func (r *memStoreRepo) Get(ctx context.Context) (*entity.StoreProfile, error) {
	return r.profile, nil
}

func (r *memStoreRepo) Create(ctx context.Context, profile *entity.StoreProfile) error {
	r.profile = profile
	return nil
}

func (r *memStoreRepo) Update(ctx context.Context, profile *entity.StoreProfile) error {
	r.profile = profile
	return nil
}

type memIdempotencyRepo struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func (r *memIdempotencyRepo) GetByKey(ctx context.Context, key, terminalID string) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keys[terminalID+"/"+key], nil
}

func (r *memIdempotencyRepo) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[ikey.TerminalID+"/"+ikey.Key] = ikey
	return nil
}

func (r *memIdempotencyRepo) DeleteExpired(ctx context.Context) (int64, error) { return 0, nil }

type testAPI struct {
	router   *gin.Engine
	token    string
	jobs     *memJobRepo
	fs       afero.Fs
	receipts *service.ReceiptService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixed := time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC)
	cal := dateutil.NewCalendar(dateutil.PakistanLocation(), func() time.Time { return fixed })

	fs := afero.NewMemMapFs()
	jobs := &memJobRepo{}
	store := service.NewStoreService(&memStoreRepo{}, entity.StoreProfile{Name: "Investify Store"})
	receipts := service.NewReceiptService(
		printer.NewSpoolHost(fs, "/spool", 0),
		render.NewRenderer(cal),
		store,
		jobs,
		cal,
		time.Millisecond,
		zap.NewNop(),
	)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.GenerateTerminalToken("till-01", "Front counter")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "investify-receipts"
	cfg.Printer.Type = "spool"

	limiter := middleware.NewTerminalRateLimiter(middleware.DefaultRateLimiterConfig())
	t.Cleanup(limiter.Stop)

	router := Setup(&Handlers{
		Receipt:  handler.NewReceiptHandler(receipts),
		Store:    handler.NewStoreHandler(store),
		PrintJob: handler.NewPrintJobHandler(service.NewPrintJobService(jobs, cal)),
	}, &Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: &memIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}},
		RateLimiter:     limiter,
		Logger:          zap.NewNop(),
	})

	return &testAPI{router: router, token: token, jobs: jobs, fs: fs, receipts: receipts}
}

func (a *testAPI) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func saleBody() map[string]interface{} {
	return map[string]interface{}{
		"receipt_number": "R-1001",
		"invoice_number": "INV-1001",
		"sale_date":      "2024-03-15T10:00:00Z",
		"customer":       map[string]interface{}{"name": "Ayesha Khan"},
		"items": []map[string]interface{}{
			{"name": "Tea", "quantity": 2, "unit_price": 150, "total_price": 300},
		},
		"subtotal":       300,
		"total_amount":   300,
		"payment_method": "cash",
		"payment_status": "paid",
	}
}

func confirmationBody() map[string]interface{} {
	return map[string]interface{}{
		"original_sale_invoice": "INV-1001",
		"original_sale_receipt": "R-1001",
		"payment_date":          "2024-03-15T10:00:00Z",
		"customer":              map[string]interface{}{"name": "Ayesha Khan", "phone": "0300-1234567"},
		"payment_amount":        5000,
		"payment_method":        "bank_transfer",
		"remaining_amount":      2500,
		"transaction_status":    "partially_paid",
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	api.token = ""

	w := api.do(http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"printer":"spool"`)
}

func TestAPI_RequiresTerminalToken(t *testing.T) {
	api := newTestAPI(t)

	api.token = ""
	w := api.do(http.MethodPost, "/api/v1/receipts/sale", saleBody(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	api.token = "not-a-token"
	w = api.do(http.MethodGet, "/api/v1/store", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrintSaleReceipt(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/receipts/sale", saleBody(), nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var data struct {
		DocumentNumber string          `json:"document_number"`
		Job            entity.PrintJob `json:"job"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "R-1001", data.DocumentNumber)
	assert.Equal(t, "till-01", data.Job.TerminalID)
	assert.Equal(t, "spool", data.Job.HostType)

	api.receipts.Wait()
	printed, err := afero.ReadDir(api.fs, "/spool/"+printer.PrintedDirName)
	require.NoError(t, err)
	require.Len(t, printed, 1)

	html, err := afero.ReadFile(api.fs, "/spool/"+printer.PrintedDirName+"/"+printed[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(html), "Ayesha Khan")
	assert.Contains(t, string(html), "Investify Store")
}

func TestPrintSaleReceipt_ValidationFailure(t *testing.T) {
	api := newTestAPI(t)

	body := saleBody()
	delete(body, "receipt_number")
	body["items"] = []map[string]interface{}{{"name": "Tea", "quantity": 0}}

	w := api.do(http.MethodPost, "/api/v1/receipts/sale", body, nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, string(env.Errors), "ReceiptNumber")
	assert.Contains(t, string(env.Errors), "Items[0].Quantity")
	assert.Equal(t, 0, api.jobs.count())
}

func TestPrintBnplConfirmation_AssignsNumber(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/receipts/bnpl-confirmation", confirmationBody(), nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var data struct {
		ConfirmationNumber string `json:"confirmation_number"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	// 2024-03-15T20:30:00Z is 1710534600000 ms
	assert.Equal(t, "BNPL-34600000", data.ConfirmationNumber)
	api.receipts.Wait()
}

func TestPrintSaleReceipt_IdempotentReplay(t *testing.T) {
	api := newTestAPI(t)
	headers := map[string]string{"Idempotency-Key": "sale-R-1001"}

	first := api.do(http.MethodPost, "/api/v1/receipts/sale", saleBody(), headers)
	require.Equal(t, http.StatusAccepted, first.Code)

	second := api.do(http.MethodPost, "/api/v1/receipts/sale", saleBody(), headers)
	assert.Equal(t, http.StatusAccepted, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, api.jobs.count())

	api.receipts.Wait()
}

func TestPreviewSaleReceipt(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/receipts/sale/preview", saleBody(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>Receipt #R-1001</title>")
	assert.Equal(t, 0, api.jobs.count())
}

func TestPreviewBnplConfirmation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/receipts/bnpl-confirmation/preview", confirmationBody(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PAYMENT CONFIRMATION")
	assert.Contains(t, w.Body.String(), "0300-1234567")
}

func TestGetDateRange(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/date-range?period=today", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	// 20:30 UTC on the 15th is already the 16th in Pakistan
	assert.Equal(t, "2024-03-15T19:00:00.000Z", data.StartDate)
	assert.Equal(t, "2024-03-16T18:59:59.999Z", data.EndDate)
}

func TestGetDateRange_Rejections(t *testing.T) {
	api := newTestAPI(t)

	tests := []string{
		"/api/v1/date-range?period=fortnight",
		"/api/v1/date-range?period=custom&start_date=2024-03-01",
		"/api/v1/date-range?period=custom&start_date=yesterday&end_date=2024-03-02",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			w := api.do(http.MethodGet, path, nil, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestListPrintJobs(t *testing.T) {
	api := newTestAPI(t)

	require.Equal(t, http.StatusAccepted, api.do(http.MethodPost, "/api/v1/printer/test", nil, nil).Code)
	api.receipts.Wait()

	w := api.do(http.MethodGet, "/api/v1/print-jobs?period=today&page=1&per_page=10", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Items []entity.PrintJob `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "TEST-013000", data.Items[0].DocumentNumber)
}

func TestStoreProfile(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/store", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Investify Store")

	w = api.do(http.MethodPut, "/api/v1/store", map[string]string{"name": "Investify Gulberg", "ntn": "1234567-8"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/v1/receipts/sale/preview", saleBody(), nil)
	assert.Contains(t, w.Body.String(), "Investify Gulberg")
	assert.Contains(t, w.Body.String(), "1234567-8")
}

func TestPrinterStatus(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/printer/status", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"spool"`)
	assert.Contains(t, w.Body.String(), `"format":"html"`)
}
