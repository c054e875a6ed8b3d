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
	"strconv"
	"testing"
	"time"

	"clickshr/internal/app/server"
	"clickshr/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		Addr:               ":0",
		DatabaseURL:        dbURL,
		JWTSecret:          "test-secret",
		Environment:        "test",
		RunMigrations:      true,
		MaxBodyBytes:       1048576,
		CORSAllowedOrigins: []string{"*"},
		ProtectedResources: []string{config.ResourceUsers, config.ResourceJobApplications},
		Timezone:           "UTC",
		TokenTTL:           time.Hour,
		DBMaxConns:         4,
		SeedAdminEmail:     "admin@test.local",
		SeedAdminPassword:  "ChangeMe123!",
	}
}

func startApp(t *testing.T) (*httptest.Server, config.Config) {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	cfg := testConfig(dbURL)
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	t.Cleanup(func() {
		ts.Close()
		app.Close()
	})
	return ts, cfg
}

func TestEmployeeWorkdayJourney(t *testing.T) {
	ts, cfg := startApp(t)
	client := ts.Client()
	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	payrollBefore := totalPayroll(t, client, ts.URL)

	stamp := time.Now().UnixNano()
	email := fmt.Sprintf("journey-%d@example.com", stamp)
	var user struct {
		ID        int64   `json:"id"`
		Status    string  `json:"status"`
		NetSalary float64 `json:"net_salary"`
	}
	decode(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/users", token, map[string]any{
		"full_name":   "Journey Employee",
		"email":       email,
		"password":    "secret-pass",
		"role":        "employee",
		"hire_date":   "2024-03-01",
		"base_salary": 3000,
		"bonus":       200,
		"deductions":  100,
	}, http.StatusCreated), &user)
	if user.Status != "Active" || user.NetSalary != 3100 {
		t.Fatalf("unexpected created user %+v", user)
	}
	userPath := ts.URL + "/api/users/" + strconv.FormatInt(user.ID, 10)

	env := doJSON(t, client, http.MethodPost, ts.URL+"/api/users", token, map[string]any{
		"full_name": "Copy", "email": email, "password": "x", "role": "employee",
	}, http.StatusConflict)
	if env.Error == nil || env.Error.Code != "conflict" {
		t.Fatalf("expected duplicate email conflict, got %+v", env)
	}

	var request struct {
		ID     int64   `json:"id"`
		Status string  `json:"status"`
		Days   float64 `json:"days"`
	}
	decode(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/requests", "", map[string]any{
		"user_id":      user.ID,
		"type":         "Annual leave",
		"period_start": "2025-07-01",
		"period_end":   "2025-07-03",
	}, http.StatusCreated), &request)
	if request.Status != "pending" || request.Days != 3 {
		t.Fatalf("expected pending 3-day request, got %+v", request)
	}

	// Two disjoint partial updates must both survive.
	doJSON(t, client, http.MethodPut, userPath, token, map[string]any{"phone": "555-0100"}, http.StatusOK)
	doJSON(t, client, http.MethodPut, userPath, token, map[string]any{"department": "Care", "bonus": 300}, http.StatusOK)
	var patched struct {
		FullName   string  `json:"full_name"`
		Phone      string  `json:"phone"`
		Department string  `json:"department"`
		NetSalary  float64 `json:"net_salary"`
	}
	decode(t, doJSON(t, client, http.MethodGet, userPath, token, nil, http.StatusOK), &patched)
	if patched.FullName != "Journey Employee" || patched.Phone != "555-0100" || patched.Department != "Care" || patched.NetSalary != 3200 {
		t.Fatalf("expected both partial updates to apply, got %+v", patched)
	}
	login(t, client, ts.URL, email, "secret-pass")

	doJSON(t, client, http.MethodPost, ts.URL+"/api/timesheets/check-in", "", map[string]any{"user_id": user.ID}, http.StatusCreated)
	env = doJSON(t, client, http.MethodPost, ts.URL+"/api/timesheets/check-in", "", map[string]any{"user_id": user.ID}, http.StatusBadRequest)
	if env.Error == nil || env.Error.Message != "already checked in" {
		t.Fatalf("expected already checked in, got %+v", env)
	}
	var sheet struct {
		CheckOut *string `json:"check_out"`
	}
	decode(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/timesheets/check-out", "", map[string]any{"user_id": user.ID}, http.StatusOK), &sheet)
	if sheet.CheckOut == nil {
		t.Fatal("expected check_out to be recorded")
	}

	var entry struct {
		NetSalary float64 `json:"net_salary"`
	}
	payrollPath := ts.URL + "/api/payroll/" + strconv.FormatInt(user.ID, 10)
	decode(t, doJSON(t, client, http.MethodGet, payrollPath, "", nil, http.StatusOK), &entry)
	if entry.NetSalary != 3200 {
		t.Fatalf("expected payroll net 3200, got %v", entry.NetSalary)
	}

	peerID := createUser(t, client, ts.URL, token, "Aaron Payroll", fmt.Sprintf("peer-%d@example.com", stamp), 1000)
	unpaidID := createUser(t, client, ts.URL, token, "Unpaid Volunteer", fmt.Sprintf("unpaid-%d@example.com", stamp), 0)

	var payroll []struct {
		ID       int64  `json:"id"`
		FullName string `json:"full_name"`
	}
	decode(t, doJSON(t, client, http.MethodGet, ts.URL+"/api/payroll", "", nil, http.StatusOK), &payroll)
	position := map[int64]int{}
	for i, e := range payroll {
		position[e.ID] = i
	}
	if _, ok := position[unpaidID]; ok {
		t.Fatal("users without a base salary must not be listed in payroll")
	}
	peerAt, peerOK := position[peerID]
	userAt, userOK := position[user.ID]
	if !peerOK || !userOK || peerAt > userAt {
		t.Fatalf("expected payroll ordered by name with both salaried users, got %+v", payroll)
	}

	if delta := totalPayroll(t, client, ts.URL) - payrollBefore; math.Abs(delta-4200) > 0.001 {
		t.Fatalf("expected totalPayroll to grow by 4200, grew by %v", delta)
	}

	resp, err := client.Get(payrollPath + "/payslip")
	if err != nil {
		t.Fatalf("payslip request failed: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("expected a pdf payslip, got %d", resp.StatusCode)
	}

	for _, id := range []int64{peerID, unpaidID} {
		doJSON(t, client, http.MethodDelete, ts.URL+"/api/users/"+strconv.FormatInt(id, 10), token, nil, http.StatusOK)
	}
	doJSON(t, client, http.MethodDelete, userPath, token, nil, http.StatusOK)
	doJSON(t, client, http.MethodGet, userPath, token, nil, http.StatusNotFound)

	// Timesheets cascade with the user, requests keep a null owner.
	doJSON(t, client, http.MethodGet, ts.URL+"/api/requests/"+strconv.FormatInt(request.ID, 10), "", nil, http.StatusOK)
}

func TestJobApplicationJourney(t *testing.T) {
	ts, cfg := startApp(t)
	client := ts.Client()

	var app struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decode(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/job-applications/public", "", map[string]any{
		"full_name":  "Applicant",
		"email":      "applicant@example.com",
		"position":   "Care Assistant",
		"resume_url": "https://example.com/cv.pdf",
	}, http.StatusCreated), &app)
	if app.Status != "pending" {
		t.Fatalf("expected pending application, got %q", app.Status)
	}
	appPath := ts.URL + "/api/job-applications/" + strconv.FormatInt(app.ID, 10)

	doJSON(t, client, http.MethodGet, appPath, "", nil, http.StatusUnauthorized)

	token := login(t, client, ts.URL, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	decode(t, doJSON(t, client, http.MethodPut, appPath+"/hold", token, nil, http.StatusOK), &app)
	if app.Status != "onhold" {
		t.Fatalf("expected onhold, got %q", app.Status)
	}
	doJSON(t, client, http.MethodDelete, appPath, token, nil, http.StatusOK)
	doJSON(t, client, http.MethodPut, appPath+"/hold", token, nil, http.StatusNotFound)
}

func createUser(t *testing.T, client *http.Client, baseURL, token, name, email string, salary float64) int64 {
	t.Helper()
	var user struct {
		ID int64 `json:"id"`
	}
	decode(t, doJSON(t, client, http.MethodPost, baseURL+"/api/users", token, map[string]any{
		"full_name":   name,
		"email":       email,
		"password":    "secret-pass",
		"role":        "employee",
		"base_salary": salary,
	}, http.StatusCreated), &user)
	return user.ID
}

func totalPayroll(t *testing.T, client *http.Client, baseURL string) float64 {
	t.Helper()
	var stats struct {
		TotalPayroll float64 `json:"totalPayroll"`
	}
	decode(t, doJSON(t, client, http.MethodGet, baseURL+"/api/dashboard/stats", "", nil, http.StatusOK), &stats)
	return stats.TotalPayroll
}

func login(t *testing.T, client *http.Client, baseURL, email, password string) string {
	t.Helper()
	env := doJSON(t, client, http.MethodPost, baseURL+"/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	}, http.StatusOK)
	var payload map[string]any
	decode(t, env, &payload)
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatal("expected token")
	}
	return token
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body any, want int) envelope {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode != want {
		t.Fatalf("%s %s: expected status %d, got %d: %s", method, url, want, resp.StatusCode, string(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func decode(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}
