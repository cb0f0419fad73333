package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/handler"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/garajhub/admin-panel/internal/repository/mocks"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/validator"
	"github.com/garajhub/admin-panel/internal/web"
	ws "github.com/garajhub/admin-panel/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

type testApp struct {
	router *gin.Engine
	store  repository.Store
}

func newTestApp(t *testing.T, store repository.Store) *testApp {
	t.Helper()
	log := zerolog.Nop()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		GinMode:            gin.TestMode,
		SecretKey:          "router-test",
		SessionTTL:         24 * time.Hour,
		BcryptCost:         bcrypt.MinCost,
		LoginRatePerMinute: 100,
		SiteName:           "GarajHub",
		AdminEmail:         "admin@garajhub.uz",
		Timezone:           "Asia/Tashkent",
		BotToken:           "987654:SECRETVALUE",
		ChannelUsername:    "@GarajHub_uz",
	}
	accounts := []model.AdminAccount{{
		Username: "admin", PasswordHash: string(hash), FullName: "Super Admin",
		Email: "admin@garajhub.uz", Role: "superadmin", CreatedAt: "2024-01-01",
	}}

	fallback := repository.NewFixtureStore()
	hub := ws.NewHub(log)
	authService, err := service.NewAuthService(cfg, accounts, repository.NewMemorySessionStore(), log)
	require.NoError(t, err)
	notifier := service.NewNotificationService(store, nil, hub, 0, log)
	userService := service.NewUserService(store, fallback, log)
	startupService := service.NewStartupService(store, fallback, notifier, hub, log)
	analyticsService := service.NewAnalyticsService(store, fallback, log)
	panelService := service.NewPanelService(cfg, notifier, log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	handlers := &Handlers{
		Page:      handler.NewPageHandler(web.Index(), store.Mode, notifier.Online),
		Auth:      handler.NewAuthHandler(authService, cfg.SessionTTL, false, log),
		User:      handler.NewUserHandler(userService),
		Startup:   handler.NewStartupHandler(startupService, log),
		Broadcast: handler.NewBroadcastHandler(notifier, log),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Setting:   handler.NewSettingHandler(panelService, authService),
		WS:        handler.NewWSHandler(hub, log, nil),
	}
	return &testApp{router: SetupRouter(ctx, authService, handlers, cfg, log), store: store}
}

func (a *testApp) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == service.SessionCookieName {
			return c
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

var protectedRoutes = []struct{ method, path string }{
	{http.MethodGet, "/api/statistics"},
	{http.MethodGet, "/api/users"},
	{http.MethodGet, "/api/startups"},
	{http.MethodGet, "/api/startup/1"},
	{http.MethodPost, "/api/startup/2/approve"},
	{http.MethodPost, "/api/startup/2/reject"},
	{http.MethodPost, "/api/broadcast"},
	{http.MethodGet, "/api/analytics/user-growth"},
	{http.MethodGet, "/api/analytics/startup-distribution"},
	{http.MethodGet, "/api/activity"},
	{http.MethodGet, "/api/activity/stream"},
	{http.MethodGet, "/api/settings"},
	{http.MethodPost, "/api/settings"},
	{http.MethodGet, "/api/admins"},
	{http.MethodGet, "/api/backups"},
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	forged := &http.Cookie{Name: service.SessionCookieName, Value: "forged"}

	for _, r := range protectedRoutes {
		for _, cookies := range [][]*http.Cookie{nil, {forged}} {
			w := app.do(t, r.method, r.path, "", cookies...)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.path)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String(), "%s %s", r.method, r.path)
		}
	}

	// The rejected approve/reject calls must not have touched the data.
	st, err := app.store.GetStartup(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, model.StartupStatusPending, st.Status)
}

func TestLogin_CheckAuth_Logout(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())

	w := app.do(t, http.MethodGet, "/api/check_auth", "")
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	w = app.do(t, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, "Super Admin", user["full_name"])
	assert.Equal(t, "admin@garajhub.uz", user["email"])
	assert.Equal(t, "superadmin", user["role"])

	cookie := app.login(t)
	assert.True(t, cookie.HttpOnly)

	w = app.do(t, http.MethodGet, "/api/check_auth", "", cookie)
	body = decode(t, w)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, "admin", body["user"].(map[string]any)["username"])

	w = app.do(t, http.MethodPost, "/api/logout", "", cookie)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/statistics", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout without a session still succeeds.
	w = app.do(t, http.MethodPost, "/api/logout", "")
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestLogin_Errors(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())

	w := app.do(t, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Noto'g'ri login yoki parol", decode(t, w)["error"])
	assert.Empty(t, w.Result().Cookies())

	w = app.do(t, http.MethodPost, "/api/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username va password kiriting", decode(t, w)["error"])
}

func TestUsers_DemoSecondPage(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	w := app.do(t, http.MethodGet, "/api/users?page=2&per_page=1", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "Dilnoza Rahimova", first["first_name"].(string)+" "+first["last_name"].(string))
	assert.Equal(t, map[string]any{
		"page": float64(2), "per_page": float64(1), "total": float64(3), "total_pages": float64(3),
	}, body["pagination"])
}

func TestUsers_InvalidQuery(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	w := app.do(t, http.MethodGet, "/api/users?page=abc", "", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLists_HugePageIsEmpty(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	for _, path := range []string{
		"/api/users?page=9223372036854775807&per_page=20",
		"/api/startups?page=9223372036854775807&per_page=20",
		"/api/startups?status=active&page=9223372036854775807",
	} {
		w := app.do(t, http.MethodGet, path, "", cookie)
		require.Equal(t, http.StatusOK, w.Code, path)
		body := decode(t, w)
		assert.Equal(t, true, body["success"], path)
		assert.Empty(t, body["data"], path)
	}
}

func TestApproveThenDetail(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	w := app.do(t, http.MethodPost, "/api/startup/2/approve", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Startap tasdiqlandi (demo)"}`, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/startup/2", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, "▶️ Faol", data["status_text"])

	w = app.do(t, http.MethodPost, "/api/startup/3/reject", "", cookie)
	assert.JSONEq(t, `{"success":true,"message":"Startap rad etildi (demo)"}`, w.Body.String())
}

func TestStartupDetail_NotFound(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	w := app.do(t, http.MethodGet, "/api/startup/404", "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Startap topilmadi", body["error"])
}

func TestApprove_LiveNotFound(t *testing.T) {
	store := new(mocks.Store)
	store.On("Mode").Return(repository.ModeLive)
	store.On("UpdateStartupStatus", mock.Anything, "missing", model.StartupStatusActive).Return(repository.ErrNotFound)

	app := newTestApp(t, store)
	cookie := app.login(t)

	w := app.do(t, http.MethodPost, "/api/startup/missing/approve", "", cookie)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Startap topilmadi", body["error"])
	assert.Equal(t, string(response.ErrStartupNotFound), body["code"])
}

func TestReject_LiveStoreError(t *testing.T) {
	store := new(mocks.Store)
	store.On("Mode").Return(repository.ModeLive)
	store.On("UpdateStartupStatus", mock.Anything, "x", model.StartupStatusRejected).Return(assert.AnError)

	app := newTestApp(t, store)
	cookie := app.login(t)

	w := app.do(t, http.MethodPost, "/api/startup/x/reject", "", cookie)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, string(response.ErrStore), body["code"])
}

func TestBroadcast(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	w := app.do(t, http.MethodPost, "/api/broadcast", `{"message":"   "}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Xabar matni kiritilmagan", body["error"])

	w = app.do(t, http.MethodPost, "/api/broadcast", `{"message":"Salom"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Xabar yuborildi", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(0), data["sent_count"])
	assert.Equal(t, "all", data["recipient_type"])
	assert.Equal(t, "admin", data["sent_by"])
}

func TestAnalyticsEndpoints(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	w := app.do(t, http.MethodGet, "/api/analytics/user-growth?period=week", "", cookie)
	data := decode(t, w)["data"].(map[string]any)
	assert.Len(t, data["labels"], 7)

	w = app.do(t, http.MethodGet, "/api/analytics/startup-distribution", "", cookie)
	body := decode(t, w)
	assert.Equal(t, float64(42), body["total"])

	w = app.do(t, http.MethodGet, "/api/statistics", "", cookie)
	stats := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(125), stats["total_users"])
	assert.Equal(t, float64(75), stats["activity_rate"])

	w = app.do(t, http.MethodGet, "/api/activity", "", cookie)
	assert.Len(t, decode(t, w)["data"], 10)
}

func TestSettingsAdminsBackups(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())
	cookie := app.login(t)

	w := app.do(t, http.MethodGet, "/api/settings", "", cookie)
	settings := decode(t, w)["data"].(map[string]any)
	assert.NotContains(t, settings["bot_token"], "SECRETVALUE")
	assert.Equal(t, "offline", settings["bot_status"])

	w = app.do(t, http.MethodPost, "/api/settings", `{"site_name":"X"}`, cookie)
	assert.JSONEq(t, `{"success":true,"message":"Sozlamalar saqlandi"}`, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/admins", "", cookie)
	admins := decode(t, w)["data"].([]any)
	require.Len(t, admins, 1)
	assert.NotNil(t, admins[0].(map[string]any)["last_login"])
	assert.NotContains(t, admins[0], "password_hash")

	w = app.do(t, http.MethodGet, "/api/backups", "", cookie)
	assert.Len(t, decode(t, w)["data"], 5)
}

func TestNotFoundAndIndex(t *testing.T) {
	app := newTestApp(t, repository.NewFixtureStore())

	w := app.do(t, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Sahifa topilmadi"}`, w.Body.String())

	w = app.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "GarajHub Admin")

	w = app.do(t, http.MethodGet, "/static/panel.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))

	w = app.do(t, http.MethodGet, "/health", "")
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "demo", data["mode"])
	assert.Equal(t, "offline", data["bot"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Live and demo answers must share a shape so the panel renders either.
func TestUsers_DemoAndLiveShareShape(t *testing.T) {
	live := new(mocks.Store)
	live.On("Mode").Return(repository.ModeLive)
	tg := int64(1001)
	live.On("RecentUsers", mock.Anything, mock.Anything).Return([]model.User{
		{ID: 10, TelegramID: &tg, FirstName: "Jasur", LastName: "Aliyev", Phone: "+998911111111", JoinedAt: time.Now()},
	}, nil)

	failing := new(mocks.Store)
	failing.On("Mode").Return(repository.ModeLive)
	failing.On("RecentUsers", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	responses := map[string]map[string]any{}
	for name, store := range map[string]repository.Store{
		"demo":     repository.NewFixtureStore(),
		"live":     live,
		"degraded": failing,
	} {
		app := newTestApp(t, store)
		cookie := app.login(t)
		w := app.do(t, http.MethodGet, "/api/users", "", cookie)
		require.Equal(t, http.StatusOK, w.Code, name)
		responses[name] = decode(t, w)
	}

	assert.Equal(t, keys(responses["demo"]), keys(responses["live"]))
	assert.Equal(t, keys(responses["demo"]), keys(responses["degraded"]))
	assert.Equal(t, false, responses["degraded"]["success"])

	item := func(name string) map[string]any {
		return responses[name]["data"].([]any)[0].(map[string]any)
	}
	assert.Equal(t, keys(item("demo")), keys(item("live")))
	assert.Equal(t, keys(item("demo")), keys(item("degraded")))
}
