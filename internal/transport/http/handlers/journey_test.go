package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"timekeep/internal/app/server"
	"timekeep/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestWorktimePayrollJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:       dbURL,
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		Environment:       "test",
		PayslipDir:        t.TempDir(),
		MigrationsDir:     "../../../../migrations",
		SeedAdminEmail:    "admin@test.local",
		SeedAdminPassword: "ChangeMe123!",
		EmailFrom:         "no-reply@test.local",
		RunMigrations:     true,
		RunSeed:           true,
		MaxBodyBytes:      1048576,
		StaleIntervalAge:  24 * time.Hour,
		ReminderSchedule:  "0 6 * * *",
		CleanupSchedule:   "30 6 * * *",
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	adminToken := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)

	employeeEmail := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	rate := 40.0
	employeeID := createUser(t, client, ts.URL, adminToken, map[string]any{
		"email":          employeeEmail,
		"password":       "Secret123!",
		"firstName":      "Jo",
		"lastName":       "Journey",
		"payrollCountry": "CH",
		"hourlyRate":     rate,
	})
	employeeToken := login(t, client, ts.URL, employeeEmail, "Secret123!")

	// Clock in and out, then fix the interval to a known Monday window.
	interval := struct {
		ID string `json:"id"`
	}{}
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/worktime/start", employeeToken, nil, http.StatusCreated, &interval)
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/worktime/stop", employeeToken, nil, http.StatusOK, nil)

	doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/worktime/intervals/"+interval.ID, adminToken, map[string]any{
		"startTime": "2025-03-10T08:00:00Z",
		"endTime":   "2025-03-10T15:00:00Z",
	}, http.StatusOK, nil)

	var hours struct {
		Regular  float64 `json:"regular"`
		Overtime float64 `json:"overtime"`
	}
	prefillURL := ts.URL + "/api/v1/payroll/prefill?userId=" + employeeID +
		"&periodStart=2025-03-01&periodEnd=2025-03-31"
	doJSON(t, client, http.MethodGet, prefillURL, adminToken, nil, http.StatusOK, &hours)
	if math.Abs(hours.Regular-7) > 1e-9 || hours.Overtime != 0 {
		t.Fatalf("unexpected prefill: %+v", hours)
	}

	var record struct {
		ID         string  `json:"id"`
		HourlyRate float64 `json:"hourlyRate"`
		Currency   string  `json:"currency"`
	}
	savePayload := map[string]any{
		"userId":      employeeID,
		"hours":       map[string]any{"regular": hours.Regular},
		"periodStart": "2025-03-01",
		"periodEnd":   "2025-03-31",
	}
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/hours", adminToken, savePayload, http.StatusCreated, &record)
	if record.HourlyRate != rate || record.Currency != "CHF" {
		t.Fatalf("unexpected record: %+v", record)
	}

	var calculated struct {
		GrossPay   float64 `json:"grossPay"`
		Deductions float64 `json:"deductions"`
		NetPay     float64 `json:"netPay"`
	}
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/payroll/calculate", adminToken, map[string]any{
		"recordId": record.ID,
	}, http.StatusOK, &calculated)

	wantGross := 7 * rate
	if math.Abs(calculated.GrossPay-wantGross) > 1e-6 {
		t.Fatalf("expected gross %.2f, got %.2f", wantGross, calculated.GrossPay)
	}
	wantNet := wantGross - wantGross*(0.106+0.15)
	if math.Abs(calculated.NetPay-wantNet) > 1e-6 {
		t.Fatalf("expected net %.2f, got %.2f", wantNet, calculated.NetPay)
	}

	// Saving hours into the same period must be rejected with the existing
	// record attached.
	req := newRequest(t, http.MethodPost, ts.URL+"/api/v1/payroll/hours", adminToken, savePayload)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("overlap request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for overlapping period, got %d", resp.StatusCode)
	}
	var conflict envelope
	if err := json.NewDecoder(resp.Body).Decode(&conflict); err != nil {
		t.Fatalf("decode conflict: %v", err)
	}
	if conflict.Error == nil || conflict.Error.Code != "period_overlap" {
		t.Fatalf("expected period_overlap error, got %+v", conflict.Error)
	}

	pdfReq := newRequest(t, http.MethodGet, ts.URL+"/api/v1/payroll/"+record.ID+"/pdf", employeeToken, nil)
	pdfResp, err := client.Do(pdfReq)
	if err != nil {
		t.Fatalf("pdf request failed: %v", err)
	}
	defer pdfResp.Body.Close()
	if pdfResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for pdf, got %d", pdfResp.StatusCode)
	}
	if ct := pdfResp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", ct)
	}
	pdfBytes, err := io.ReadAll(pdfResp.Body)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("expected a PDF payload")
	}
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	var out struct {
		Token string `json:"token"`
	}
	doJSON(t, client, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	}, http.StatusOK, &out)
	if out.Token == "" {
		t.Fatal("expected a token")
	}
	return out.Token
}

func createUser(t *testing.T, client *http.Client, baseURL, token string, payload map[string]any) string {
	t.Helper()
	var out struct {
		ID string `json:"id"`
	}
	doJSON(t, client, http.MethodPost, baseURL+"/api/v1/users", token, payload, http.StatusCreated, &out)
	if out.ID == "" {
		t.Fatal("expected a user id")
	}
	return out.ID
}

func newRequest(t *testing.T, method, url, token string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, payload any, wantStatus int, out any) {
	t.Helper()
	resp, err := client.Do(newRequest(t, method, url, token, payload))
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, url, wantStatus, resp.StatusCode, raw)
	}
	if out == nil {
		return
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
