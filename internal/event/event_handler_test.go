package event_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/event"
	eventerrors "github.com/pharod/boltnew-company-timeline/internal/event/errors"
	"github.com/pharod/boltnew-company-timeline/internal/middleware"
	"github.com/pharod/boltnew-company-timeline/internal/shared/apperror"
	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeEventService struct {
	RecordFn   func(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error)
	GetFn      func(ctx context.Context, id string) (event.EventResponse, error)
	ListFn     func(ctx context.Context, q event.ListQuery) ([]event.EventResponse, error)
	TimelineFn func(ctx context.Context, q event.ListQuery) ([]event.TimelineEntryResponse, error)
	LogFn      func(ctx context.Context) ([]timeline.Event, error)
}

func (f *fakeEventService) Record(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	return f.RecordFn(ctx, req)
}
func (f *fakeEventService) Get(ctx context.Context, id string) (event.EventResponse, error) {
	return f.GetFn(ctx, id)
}
func (f *fakeEventService) List(ctx context.Context, q event.ListQuery) ([]event.EventResponse, error) {
	return f.ListFn(ctx, q)
}
func (f *fakeEventService) Timeline(ctx context.Context, q event.ListQuery) ([]event.TimelineEntryResponse, error) {
	return f.TimelineFn(ctx, q)
}
func (f *fakeEventService) Log(ctx context.Context) ([]timeline.Event, error) {
	return f.LogFn(ctx)
}

func TestEventHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{
			RecordFn: func(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
				assert.Equal(t, "NEW_EMPLOYEE", req.Kind)
				assert.Equal(t, "Alice Smith", req.Name)
				return event.EventResponse{
					ID:    "e1",
					Kind:  req.Kind,
					Label: "New Employee",
				}, nil
			},
		}
		h := event.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"kind":"NEW_EMPLOYEE","name":"Alice Smith","start_date":"2024-04-01","position":"Backend Developer","project":"Apollo","salary":95000}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Record(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "New Employee")
	})

	t.Run("validation error - missing kind", func(t *testing.T) {
		svc := &fakeEventService{}
		h := event.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Record(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error maps to http status", func(t *testing.T) {
		svc := &fakeEventService{
			RecordFn: func(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
				return event.EventResponse{}, eventerrors.ErrUnsupportedEventKind
			},
		}
		h := event.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"kind":"EMPLOYEE_PROMOTED"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Record(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unsupported event kind")
	})
}

func TestEventHandler_Record_Idempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("releases lock, caches response, replays on retry", func(t *testing.T) {
		resp := event.EventResponse{ID: "e9", Kind: "NEW_EMPLOYEE", Label: "New Employee"}
		payload, _ := json.Marshal(resp)

		recordCalls := 0
		svc := &fakeEventService{
			RecordFn: func(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
				recordCalls++
				return resp, nil
			},
		}

		rdb, redisMock := redismock.NewClientMock()
		h := event.NewHandlerWithRedis(svc, rdb)

		r := gin.New()
		r.POST("/events", middleware.Idempotency(rdb), h.Record)

		// httptest requests come from 192.0.2.1, which the middleware folds
		// into its cache key.
		cacheKey := "idemp:/events:192.0.2.1:key-1"
		lockKey := cacheKey + ":lock"
		body := `{"kind":"NEW_EMPLOYEE","name":"Alice Smith","start_date":"2024-04-01","position":"Backend Developer","project":"Apollo","salary":95000}`

		// First request: lock taken, handler runs, response cached, lock
		// released when the handler returns.
		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		redisMock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		redisMock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, recordCalls)

		// Retry with the same key replays the cached response instead of
		// hitting the service or reporting a conflict.
		redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		w2 := httptest.NewRecorder()
		req2 := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
		req2.Header.Set("Content-Type", "application/json")
		req2.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w2, req2)

		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Contains(t, w2.Body.String(), "e9")
		assert.Equal(t, 1, recordCalls)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("lock released on service failure", func(t *testing.T) {
		svc := &fakeEventService{
			RecordFn: func(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
				return event.EventResponse{}, eventerrors.ErrUnsupportedEventKind
			},
		}

		rdb, redisMock := redismock.NewClientMock()
		h := event.NewHandlerWithRedis(svc, rdb)

		r := gin.New()
		r.POST("/events", middleware.Idempotency(rdb), h.Record)

		cacheKey := "idemp:/events:192.0.2.1:key-2"
		lockKey := cacheKey + ":lock"

		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		// No cached response on failure, only the lock release.
		redisMock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"kind":"EMPLOYEE_PROMOTED"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-2")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestEventHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{
			GetFn: func(ctx context.Context, id string) (event.EventResponse, error) {
				assert.Equal(t, "e1", id)
				return event.EventResponse{ID: "e1", Kind: "NEW_EMPLOYEE", Label: "New Employee"}, nil
			},
		}
		h := event.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "e1"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events/e1", nil)

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "New Employee")
	})

	t.Run("missing event returns 404", func(t *testing.T) {
		svc := &fakeEventService{
			GetFn: func(ctx context.Context, id string) (event.EventResponse, error) {
				return event.EventResponse{}, apperror.ErrNotFound
			},
		}
		h := event.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events/missing", nil)

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query dimensions through", func(t *testing.T) {
		svc := &fakeEventService{
			ListFn: func(ctx context.Context, q event.ListQuery) ([]event.EventResponse, error) {
				assert.Equal(t, "Alice Smith", q.Employee)
				assert.Empty(t, q.Type)
				return []event.EventResponse{{ID: "e1", Kind: "NEW_EMPLOYEE"}}, nil
			},
		}
		h := event.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events?employee=Alice+Smith", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "e1")
	})

	t.Run("conflicting dimensions rejected", func(t *testing.T) {
		svc := &fakeEventService{
			ListFn: func(ctx context.Context, q event.ListQuery) ([]event.EventResponse, error) {
				return nil, eventerrors.ErrMultipleFilterDimensions
			},
		}
		h := event.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events?employee=A&project=P", nil)

		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventHandler_Timeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEventService{
		TimelineFn: func(ctx context.Context, q event.ListQuery) ([]event.TimelineEntryResponse, error) {
			return []event.TimelineEntryResponse{
				{
					EventResponse: event.EventResponse{ID: "marker", Kind: "CURRENT_DATE"},
					NewYear:       true,
					NewMonth:      true,
					Year:          2025,
					Month:         "February",
				},
			}, nil
		},
	}
	h := event.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/events/timeline", nil)

	h.Timeline(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CURRENT_DATE")
	assert.Contains(t, w.Body.String(), "February")
}
