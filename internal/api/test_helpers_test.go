package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/i18n"
	"github.com/terraincognita07/cyclenote/internal/services"
	"golang.org/x/crypto/bcrypt"
)

const (
	testOwnerPassword = "StrongPass1"
	testSecretKey     = "test-secret-key-0123456789"
)

type testApp struct {
	app     *fiber.App
	handler *Handler
	kv      *services.MemoryKeyValueStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testOwnerPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash owner password: %v", err)
	}

	kv := services.NewMemoryKeyValueStore()
	tracker, err := services.NewTracker(services.OpenDayStore(context.Background(), kv, services.DefaultCycleSettings().PeriodLength, nil), services.DefaultCycleSettings(), nil)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	manager, err := i18n.NewManager(i18n.LangEN)
	if err != nil {
		t.Fatalf("new i18n manager: %v", err)
	}

	handler, err := NewHandler(Options{
		Tracker:           tracker,
		I18n:              manager,
		SecretKey:         testSecretKey,
		OwnerPasswordHash: string(hash),
		TokenTTL:          time.Hour,
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testApp{app: app, handler: handler, kv: kv}
}

func (harness *testApp) do(t *testing.T, method string, path string, body any, authCookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	switch typed := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(typed)
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if reader != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := harness.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func (harness *testApp) doWithHeader(t *testing.T, method string, path string, header string, value string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	request.Header.Set(header, value)
	response, err := harness.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func (harness *testApp) login(t *testing.T) string {
	t.Helper()

	response := harness.do(t, http.MethodPost, "/api/auth/login", map[string]string{"password": testOwnerPassword}, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	value := responseCookieValue(response.Cookies(), authCookieName)
	if value == "" {
		t.Fatal("expected auth cookie in login response")
	}
	return authCookieName + "=" + value
}

func (harness *testApp) markPeriod(t *testing.T, cookie string, days ...string) {
	t.Helper()
	for _, day := range days {
		response := harness.do(t, http.MethodPut, "/api/days/"+day, map[string]any{"period": true}, cookie)
		response.Body.Close()
		if response.StatusCode != http.StatusOK {
			t.Fatalf("PUT day %s expected 200, got %d", day, response.StatusCode)
		}
	}
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(payload), err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSON(t, response, &payload)
	return payload["error"]
}
