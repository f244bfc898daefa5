package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"scenedirector/internal/http/handlers"
	"scenedirector/internal/session"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	app := handlers.NewApp(zerolog.Nop(), session.NewStore())
	return NewRouter(app, Options{Logger: zerolog.Nop(), CompileRateLimit: 100})
}

type sceneEnvelope struct {
	Session struct {
		ID     string `json:"id"`
		Locked bool   `json:"locked"`
		State  struct {
			Subject     string `json:"subject"`
			Camera      string `json:"camera"`
			Atmosphere  string `json:"atmosphere"`
			AspectRatio string `json:"aspect_ratio"`
			Model       string `json:"model"`
			Characters  []struct {
				ID      string `json:"id"`
				Content string `json:"content"`
			} `json:"characters"`
		} `json:"state"`
	} `json:"session"`
	Conflicts struct {
		BlockedAtmospheres  []string `json:"blocked_atmospheres"`
		AllowedAspectRatios []string `json:"allowed_aspect_ratios"`
	} `json:"conflicts"`
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeScene(t *testing.T, rec *httptest.ResponseRecorder) sceneEnvelope {
	t.Helper()
	var env sceneEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode scene response: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

func createScene(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/v1/scenes", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create scene: status %d, body %s", rec.Code, rec.Body.String())
	}
	env := decodeScene(t, rec)
	if env.Session.ID == "" {
		t.Fatal("create scene returned no id")
	}
	return env.Session.ID
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/v1/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestCatalogListsModels(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/v1/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"midjourney", "nano-banana", "overhead-drone", "wes-anderson"} {
		if !strings.Contains(body, want) {
			t.Fatalf("catalog missing %q", want)
		}
	}
}

func TestCameraChangeClearsConflictingAtmosphere(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	rec := do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"atmosphere":"noir"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set atmosphere: status %d", rec.Code)
	}
	if env := decodeScene(t, rec); env.Session.State.Atmosphere != "noir" {
		t.Fatalf("atmosphere not set: %+v", env.Session.State)
	}

	rec = do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"camera":"overhead-drone"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set camera: status %d", rec.Code)
	}
	env := decodeScene(t, rec)
	if env.Session.State.Camera != "overhead-drone" {
		t.Fatalf("camera not set: %+v", env.Session.State)
	}
	if env.Session.State.Atmosphere != "" {
		t.Fatalf("conflicting atmosphere survived: %q", env.Session.State.Atmosphere)
	}
	var blocked bool
	for _, a := range env.Conflicts.BlockedAtmospheres {
		if a == "noir" {
			blocked = true
		}
	}
	if !blocked {
		t.Fatalf("noir not reported blocked: %v", env.Conflicts.BlockedAtmospheres)
	}
	if len(env.Conflicts.AllowedAspectRatios) == 0 {
		t.Fatal("expected restricted aspect ratio list for overhead-drone")
	}
}

func TestBlockedValueCannotBeWrittenDirectly(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	if rec := do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"camera":"overhead-drone"}`); rec.Code != http.StatusOK {
		t.Fatalf("set camera: status %d", rec.Code)
	}

	// The camera already blocks noir; writing it afterwards must not stick.
	rec := do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"atmosphere":"noir"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set atmosphere: status %d", rec.Code)
	}
	env := decodeScene(t, rec)
	if env.Session.State.Atmosphere != "" {
		t.Fatalf("blocked atmosphere accepted: %q", env.Session.State.Atmosphere)
	}

	rec = do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"aspect_ratio":"4:5"}`)
	if env := decodeScene(t, rec); env.Session.State.AspectRatio != "" {
		t.Fatalf("disallowed aspect ratio accepted: %q", env.Session.State.AspectRatio)
	}

	rec = do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"atmosphere":"fog"}`)
	if env := decodeScene(t, rec); env.Session.State.Atmosphere != "fog" {
		t.Fatalf("compatible atmosphere rejected: %q", env.Session.State.Atmosphere)
	}
}

func TestUpdateRejectsUnknownModel(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	rec := do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"model":"bogus"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "unsupported_model") {
		t.Fatalf("wrong error body: %s", rec.Body.String())
	}
}

func TestLockMakesUpdatesNoOps(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	if rec := do(t, h, http.MethodPost, "/v1/scenes/"+id+"/lock", ""); rec.Code != http.StatusOK {
		t.Fatalf("lock: status %d", rec.Code)
	}

	rec := do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"subject":"a fox"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch while locked: status %d", rec.Code)
	}
	if env := decodeScene(t, rec); env.Session.State.Subject != "" {
		t.Fatalf("locked scene was mutated: %+v", env.Session.State)
	}

	if rec := do(t, h, http.MethodPost, "/v1/scenes/"+id+"/unlock", ""); rec.Code != http.StatusOK {
		t.Fatalf("unlock: status %d", rec.Code)
	}
	rec = do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"subject":"a fox"}`)
	if env := decodeScene(t, rec); env.Session.State.Subject != "a fox" {
		t.Fatalf("unlocked scene not mutated: %+v", env.Session.State)
	}
}

func TestCharacterLifecycle(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	rec := do(t, h, http.MethodPost, "/v1/scenes/"+id+"/characters", `{"content":"a hunter"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add character: status %d", rec.Code)
	}
	env := decodeScene(t, rec)
	if len(env.Session.State.Characters) != 1 || env.Session.State.Characters[0].Content != "a hunter" {
		t.Fatalf("character not added: %+v", env.Session.State.Characters)
	}
	charID := env.Session.State.Characters[0].ID

	rec = do(t, h, http.MethodDelete, "/v1/scenes/"+id+"/characters/"+charID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove character: status %d", rec.Code)
	}
	if env := decodeScene(t, rec); len(env.Session.State.Characters) != 0 {
		t.Fatalf("character not removed: %+v", env.Session.State.Characters)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"subject":"a fox","aspect_ratio":"16:9"}`)

	rec := do(t, h, http.MethodPost, "/v1/scenes/"+id+"/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: status %d", rec.Code)
	}
	env := decodeScene(t, rec)
	if env.Session.State.Subject != "" || env.Session.State.AspectRatio != "1:1" {
		t.Fatalf("reset did not restore defaults: %+v", env.Session.State)
	}
}

func TestCompilePrompt(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"subject":"a fox","location":"in a forest"}`)

	rec := do(t, h, http.MethodGet, "/v1/scenes/"+id+"/prompt", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("compile: status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Prompt string `json:"prompt"`
		Model  string `json:"model"`
		Style  string `json:"style"`
		Locale string `json:"locale"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Prompt, "a fox, in a forest") {
		t.Fatalf("prompt missing scene text: %q", resp.Prompt)
	}
	if resp.Model != "midjourney" || resp.Style != "tags" {
		t.Fatalf("unexpected metadata: %+v", resp)
	}
	if resp.Locale != "en" {
		t.Fatalf("expected default locale, got %q", resp.Locale)
	}
}

func TestCompilePromptModelOverride(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	do(t, h, http.MethodPatch, "/v1/scenes/"+id, `{"subject":"a fox"}`)

	rec := do(t, h, http.MethodGet, "/v1/scenes/"+id+"/prompt?model=dalle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("compile: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "I NEED this exact scene") {
		t.Fatalf("override not applied: %s", rec.Body.String())
	}
}

func TestCompilePromptUnknownModel(t *testing.T) {
	h := newTestRouter(t)
	id := createScene(t, h)

	rec := do(t, h, http.MethodGet, "/v1/scenes/"+id+"/prompt?model=bogus", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "unsupported_model") {
		t.Fatalf("wrong error body: %s", rec.Body.String())
	}
}

func TestUnknownSceneIs404(t *testing.T) {
	h := newTestRouter(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/v1/scenes/missing"},
		{http.MethodPatch, "/v1/scenes/missing"},
		{http.MethodGet, "/v1/scenes/missing/prompt"},
		{http.MethodPost, "/v1/scenes/missing/lock"},
	} {
		body := ""
		if tc.method == http.MethodPatch {
			body = `{}`
		}
		rec := do(t, h, tc.method, tc.path, body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s %s: status %d", tc.method, tc.path, rec.Code)
		}
	}
}
