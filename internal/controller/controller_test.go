package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/config"
	"typing-training-be/internal/constant"
	"typing-training-be/internal/entity"
	"typing-training-be/internal/pkg/logger"
	"typing-training-be/internal/pkg/serverutils"
	"typing-training-be/internal/service"
)

// Compact in-memory repositories with the same contract semantics as the
// mongo implementations.

type fakeContentRepo struct {
	docs  map[primitive.ObjectID]*entity.Content
	order []primitive.ObjectID
}

func (r *fakeContentRepo) Create(_ context.Context, content *entity.Content) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *content
	stored.ID = id
	r.docs[id] = &stored
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeContentRepo) FindAll(_ context.Context, limit int64) ([]*entity.Content, error) {
	result := make([]*entity.Content, 0)
	for _, id := range r.order {
		if int64(len(result)) >= limit {
			break
		}
		result = append(result, r.docs[id])
	}
	return result, nil
}

func (r *fakeContentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Content, error) {
	return r.docs[id], nil
}

func (r *fakeContentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *session
	stored.ID = id
	r.sessions = append(r.sessions, &stored)
	return id, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) FindByHandle(_ context.Context, handle string) (*entity.User, error) {
	return r.users[handle], nil
}

func (r *fakeUserRepo) IncrementXP(_ context.Context, handle string, delta int) error {
	if existing, ok := r.users[handle]; ok {
		existing.XP += delta
		return nil
	}
	r.users[handle] = &entity.User{
		ID:     primitive.NewObjectID(),
		Handle: handle,
		Rank:   entity.RankInitiate,
		XP:     delta,
	}
	return nil
}

type testEnv struct {
	app         *fiber.App
	contentRepo *fakeContentRepo
	sessionRepo *fakeSessionRepo
	userRepo    *fakeUserRepo
}

func newTestEnv() *testEnv {
	contentRepo := &fakeContentRepo{docs: make(map[primitive.ObjectID]*entity.Content)}
	sessionRepo := &fakeSessionRepo{}
	userRepo := &fakeUserRepo{users: make(map[string]*entity.User)}
	nop := logger.NewNopLogger()

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	NewStatusController(service.NewStatusService(nil, &config.Config{}, nop)).RegisterRoutes(app)
	api := app.Group("/api")
	NewContentController(service.NewContentService(contentRepo, nop)).RegisterRoutes(api)
	NewSessionController(service.NewSessionService(contentRepo, sessionRepo, userRepo, nop)).RegisterRoutes(api)
	NewUserController(service.NewUserService(userRepo)).RegisterRoutes(api)

	return &testEnv{app: app, contentRepo: contentRepo, sessionRepo: sessionRepo, userRepo: userRepo}
}

// newUnconfiguredEnv wires controllers over nil repositories, mirroring a
// process started without DATABASE_URL.
func newUnconfiguredEnv() *fiber.App {
	nop := logger.NewNopLogger()

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	NewStatusController(service.NewStatusService(nil, &config.Config{}, nop)).RegisterRoutes(app)
	api := app.Group("/api")
	NewContentController(service.NewContentService(nil, nop)).RegisterRoutes(api)
	NewSessionController(service.NewSessionService(nil, nil, nil, nop)).RegisterRoutes(api)
	NewUserController(service.NewUserService(nil)).RegisterRoutes(api)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func (e *testEnv) seedContent(t *testing.T) string {
	t.Helper()
	id, err := e.contentRepo.Create(context.Background(), &entity.Content{
		Title: "Passage", Section: "S", Sender: "A", TopicTag: "T",
		Difficulty: "Medium", TimeEstimate: "6 min", Words: 120,
		Text: "text", Context: "context",
	})
	require.NoError(t, err)
	return id.Hex()
}

func TestRootEndpoint(t *testing.T) {
	env := newTestEnv()

	resp, body := doRequest(t, env.app, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "Men's Club Training Backend Running", res["message"])
}

func TestStatusEndpointWithoutStore(t *testing.T) {
	env := newTestEnv()

	resp, body := doRequest(t, env.app, "GET", "/test", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]any
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "✅ Running", res["backend"])
	assert.Equal(t, "❌ Not Available", res["database"])
	assert.Equal(t, "Not Connected", res["connection_status"])
}

func TestSeedEndpointIsIdempotent(t *testing.T) {
	env := newTestEnv()

	resp, body := doRequest(t, env.app, "POST", "/api/seed", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var first map[string]any
	require.NoError(t, json.Unmarshal(body, &first))
	assert.Equal(t, true, first["seeded"])
	assert.Equal(t, float64(len(constant.SeedContent)), first["count"])

	resp, body = doRequest(t, env.app, "POST", "/api/seed", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var second map[string]any
	require.NoError(t, json.Unmarshal(body, &second))
	assert.Equal(t, false, second["seeded"])
	assert.Equal(t, "Content already exists", second["message"])

	assert.Len(t, env.contentRepo.docs, len(constant.SeedContent))
}

func TestSeedEndpointUnconfiguredStore(t *testing.T) {
	app := newUnconfiguredEnv()

	resp, _ := doRequest(t, app, "POST", "/api/seed", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestListContentLimitAndShape(t *testing.T) {
	env := newTestEnv()
	env.seedContent(t)
	env.seedContent(t)
	env.seedContent(t)

	resp, body := doRequest(t, env.app, "GET", "/api/content?limit=1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 1)

	// The internal identifier must be reshaped to a string `id` field.
	id, ok := items[0]["id"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, id)
	_, hasRawId := items[0]["_id"]
	assert.False(t, hasRawId)
}

func TestListContentDefaultLimit(t *testing.T) {
	env := newTestEnv()
	env.seedContent(t)

	resp, body := doRequest(t, env.app, "GET", "/api/content", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body, &items))
	assert.Len(t, items, 1)
}

func TestGetContentInvalidIdentifier(t *testing.T) {
	env := newTestEnv()

	resp, _ := doRequest(t, env.app, "GET", "/api/content/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetContentNotFound(t *testing.T) {
	env := newTestEnv()

	resp, _ := doRequest(t, env.app, "GET", "/api/content/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetContentById(t *testing.T) {
	env := newTestEnv()
	id := env.seedContent(t)

	resp, body := doRequest(t, env.app, "GET", "/api/content/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]any
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, id, res["id"])
	assert.Equal(t, "Passage", res["title"])
}

func TestCompleteSessionEndpoint(t *testing.T) {
	env := newTestEnv()
	id := env.seedContent(t)

	resp, body := doRequest(t, env.app, "POST", "/api/session", map[string]any{
		"content_id":   id,
		"words_typed":  100,
		"duration_sec": 300,
		"reflection":   "owning my time",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]any
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, true, res["ok"])
	assert.NotEmpty(t, res["session_id"])

	resp, body = doRequest(t, env.app, "POST", "/api/session", map[string]any{
		"content_id":  id,
		"words_typed": 50,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Both completions credited exactly once.
	resp, body = doRequest(t, env.app, "GET", "/api/profile", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, float64(150), profile["xp"])
	assert.Equal(t, entity.RankInitiate, profile["rank"])
}

func TestCompleteSessionInvalidId(t *testing.T) {
	env := newTestEnv()

	resp, _ := doRequest(t, env.app, "POST", "/api/session", map[string]any{
		"content_id": "nope",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.sessionRepo.sessions)
}

func TestCompleteSessionMissingContent(t *testing.T) {
	env := newTestEnv()

	resp, _ := doRequest(t, env.app, "POST", "/api/session", map[string]any{
		"content_id":  primitive.NewObjectID().Hex(),
		"words_typed": 100,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, env.sessionRepo.sessions)
	assert.Empty(t, env.userRepo.users)
}

func TestProfileDefault(t *testing.T) {
	env := newTestEnv()

	resp, body := doRequest(t, env.app, "GET", "/api/profile", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]any
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, constant.AnonHandle, res["handle"])
	assert.Equal(t, entity.RankInitiate, res["rank"])
	assert.Equal(t, float64(0), res["xp"])
	assert.Equal(t, float64(0), res["streak"])
	_, hasId := res["id"]
	assert.False(t, hasId)

	// The default is synthesized, never written back.
	assert.Empty(t, env.userRepo.users)
}
