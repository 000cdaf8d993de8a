package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hmorales/wedplan/internal/auth"
	"github.com/hmorales/wedplan/internal/storage/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "wedplan-server-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := sqlite.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret-0123456789abcdef", time.Hour)
	srv := New(store, jwtManager, logger)

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func registerAndLogin(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	body := `{"email":"planner@example.com","displayName":"Planner","password":"correct-horse"}`
	resp, err := http.Post(ts.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Register request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201 from register, got %d", resp.StatusCode)
	}

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode register response: %v", err)
	}
	if !env.Success || env.Data.Token == "" {
		t.Fatalf("Expected successful register with token, got %+v", env)
	}
	return env.Data.Token
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var env map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp, env
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/guests")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestVendorPaymentFlow(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts)

	resp, env := doJSON(t, ts, "POST", "/api/vendors", token,
		`{"name":"Luz Fotografia","category":"photography","pricingModel":"flat_rate","baseCost":2000}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201 creating vendor, got %d: %+v", resp.StatusCode, env)
	}
	data := env["data"].(map[string]any)
	vendorID := data["id"].(string)
	if data["paymentStatus"] != "unpaid" {
		t.Errorf("Expected new vendor to be unpaid, got %v", data["paymentStatus"])
	}

	resp, env = doJSON(t, ts, "POST", "/api/vendors/"+vendorID+"/payments", token, `{"amount":500}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 recording payment, got %d: %+v", resp.StatusCode, env)
	}
	info := env["data"].(map[string]any)
	if info["paymentStatus"] != "partial" {
		t.Errorf("Expected partial status after deposit, got %v", info["paymentStatus"])
	}
	if info["balanceDue"].(float64) != 1500 {
		t.Errorf("Expected balance 1500, got %v", info["balanceDue"])
	}

	// Overpayment is rejected without touching the record.
	resp, env = doJSON(t, ts, "POST", "/api/vendors/"+vendorID+"/payments", token, `{"amount":2000}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400 for overpayment, got %d", resp.StatusCode)
	}
	errObj := env["error"].(map[string]any)
	if errObj["code"] != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR code, got %v", errObj["code"])
	}

	resp, env = doJSON(t, ts, "GET", "/api/vendors/"+vendorID, token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 fetching vendor, got %d", resp.StatusCode)
	}
	vendor := env["data"].(map[string]any)
	if vendor["amountPaid"].(float64) != 500 {
		t.Errorf("Expected amount paid unchanged at 500, got %v", vendor["amountPaid"])
	}
}

func TestErrorCodeMapping(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts)

	resp, env := doJSON(t, ts, "GET", "/api/guests/missing-id", token, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for missing guest, got %d", resp.StatusCode)
	}
	errObj := env["error"].(map[string]any)
	if errObj["code"] != "NOT_FOUND" {
		t.Errorf("Expected NOT_FOUND code, got %v", errObj["code"])
	}

	resp, env = doJSON(t, ts, "POST", "/api/guests", token, `{"groupId":"","firstName":"","lastName":""}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid guest, got %d", resp.StatusCode)
	}
	errObj = env["error"].(map[string]any)
	if errObj["code"] != "VALIDATION_ERROR" {
		t.Errorf("Expected VALIDATION_ERROR code, got %v", errObj["code"])
	}

	// Duplicate registration conflicts.
	body := `{"email":"planner@example.com","displayName":"Again","password":"correct-horse"}`
	resp2, err := http.Post(ts.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Register request failed: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate email, got %d", resp2.StatusCode)
	}
}

func TestGuestCSVEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts)

	resp, env := doJSON(t, ts, "POST", "/api/guests", token,
		`{"groupId":"smith","firstName":"Ana","lastName":"Smith","ageType":"adult","guestType":"wedding_guest"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected 201 creating guest, got %d: %+v", resp.StatusCode, env)
	}

	req, _ := http.NewRequest("GET", ts.URL+"/api/guests/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	exportResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Export request failed: %v", err)
	}
	defer exportResp.Body.Close()
	if exportResp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from export, got %d", exportResp.StatusCode)
	}
	if ct := exportResp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected text/csv content type, got %q", ct)
	}
	body, _ := io.ReadAll(exportResp.Body)
	if !strings.Contains(string(body), "Ana") {
		t.Errorf("Expected exported CSV to contain the guest, got %q", body)
	}

	// Blank import body is a validation error.
	req, _ = http.NewRequest("POST", ts.URL+"/api/guests/import", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "text/csv")
	importResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Import request failed: %v", err)
	}
	defer importResp.Body.Close()
	if importResp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank import, got %d", importResp.StatusCode)
	}
}

func TestBudgetEndpoints(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts)

	doJSON(t, ts, "POST", "/api/vendors", token,
		`{"name":"Sabor Catering","category":"catering","pricingModel":"per_person","baseCost":1000}`)

	resp, env := doJSON(t, ts, "POST", "/api/budget", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from budget, got %d: %+v", resp.StatusCode, env)
	}
	breakdown := env["data"].(map[string]any)
	totals := breakdown["totals"].(map[string]any)
	if totals["grossTotal"].(float64) != 1000 {
		t.Errorf("Expected gross total 1000, got %v", totals["grossTotal"])
	}

	req, _ := http.NewRequest("GET", ts.URL+"/api/reports/budget.xlsx", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	xlsxResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Report request failed: %v", err)
	}
	defer xlsxResp.Body.Close()
	if xlsxResp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from xlsx report, got %d", xlsxResp.StatusCode)
	}
	data, _ := io.ReadAll(xlsxResp.Body)
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("Expected xlsx zip magic bytes, got %q", data[:2])
	}
}
