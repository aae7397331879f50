package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"smart-clinic-portal/internal/delivery/dto"
	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/render"
	"smart-clinic-portal/internal/repository"
	"smart-clinic-portal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doctorServer serves GET /doctor from a fixed list and records every request
type doctorServer struct {
	mu       sync.Mutex
	requests []*http.Request
	doctors  []map[string]any
	write    http.HandlerFunc
}

func (s *doctorServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(context.Background()))
	doctors := s.doctors
	s.mu.Unlock()

	if r.Method != http.MethodGet {
		s.write(w, r)
		return
	}
	if doctors == nil {
		doctors = []map[string]any{}
	}
	_ = json.NewEncoder(w).Encode(doctors)
}

func (s *doctorServer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *doctorServer) last() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

type adminFixture struct {
	server    *doctorServer
	region    *render.Region
	notifier  *recordingNotifier
	confirmer *stubConfirmer
	modals    *recordingModals
	usecase   AdminDashboardUsecase
}

func newAdminFixture(t *testing.T, session entity.Session) *adminFixture {
	t.Helper()

	f := &adminFixture{
		server: &doctorServer{
			doctors: []map[string]any{
				{"id": 1, "name": "Ana Lee", "specialty": "Cardiology", "email": "ana@clinic.test", "availability": []string{"Monday 09:00-12:00"}},
				{"id": 2, "name": "Bo Chen", "specialty": "Dermatology", "email": "bo@clinic.test"},
			},
		},
		region:    render.NewRegion("content"),
		notifier:  &recordingNotifier{},
		confirmer: &stubConfirmer{answer: true},
		modals:    &recordingModals{},
	}
	ts := httptest.NewServer(f.server)
	t.Cleanup(ts.Close)

	f.usecase = NewAdminDashboardUsecase(
		newAPI(t, ts.URL, "query"),
		repository.NewMemorySessionRepository(session),
		validator.NewValidator(),
		f.region,
		f.notifier,
		f.confirmer,
		f.modals,
		quietLogger(),
	)
	return f
}

func TestAdminDashboard_ActivateLoadsUnfiltered(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})

	require.NoError(t, f.usecase.Activate(context.Background()))

	require.Equal(t, 1, f.server.count())
	assert.Equal(t, "/doctor", f.server.last().URL.Path)
	assert.Empty(t, f.server.last().URL.RawQuery)

	require.Equal(t, 2, f.region.Len())
	content := f.region.HTML()
	assert.Less(t, strings.Index(content, "Dr. Ana Lee"), strings.Index(content, "Dr. Bo Chen"))
	assert.Contains(t, content, `data-action="delete-doctor"`)
}

func TestAdminDashboard_SpecialtyOnlyFilter(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})
	ctx := context.Background()
	require.NoError(t, f.usecase.Activate(ctx))

	f.server.mu.Lock()
	f.server.doctors = []map[string]any{}
	f.server.mu.Unlock()

	require.NoError(t, f.usecase.SetSpecialtyFilter(ctx, "Cardiology"))

	assert.Equal(t, "specialty=Cardiology", f.server.last().URL.RawQuery)
	assert.Equal(t, 1, f.region.Len())
	assert.Contains(t, f.region.HTML(), "No doctors found matching your criteria.")
}

func TestAdminDashboard_FiltersCompose(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})
	ctx := context.Background()
	require.NoError(t, f.usecase.Activate(ctx))

	require.NoError(t, f.usecase.SetSearchText(ctx, " ana "))
	require.NoError(t, f.usecase.SetTimeFilter(ctx, "AM"))
	assert.Equal(t, "name=ana&time=AM", f.server.last().URL.RawQuery)

	require.NoError(t, f.usecase.SetSearchText(ctx, ""))
	require.NoError(t, f.usecase.SetTimeFilter(ctx, ""))
	assert.Empty(t, f.server.last().URL.RawQuery)
	assert.Equal(t, entity.DoctorFilter{}, f.usecase.Criteria())
}

func TestAdminDashboard_EmptyUnfilteredList(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})
	f.server.doctors = []map[string]any{}

	require.NoError(t, f.usecase.Activate(context.Background()))
	assert.Equal(t, "<p>No doctors found.</p>", f.region.HTML())
}

func TestAdminDashboard_AbandonedLoadRendersError(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.usecase.Activate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, f.region.HTML(), "Failed to load doctors. Please try again later.")
}

func TestAdminDashboard_RequiresActivation(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})

	assert.ErrorIs(t, f.usecase.SetSearchText(context.Background(), "x"), ErrNotActive)
	assert.Equal(t, 0, f.server.count())
}

func TestAdminDashboard_DeleteWithoutToken(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})
	require.NoError(t, f.usecase.Activate(context.Background()))
	before := f.server.count()

	res := f.usecase.DeleteDoctor(context.Background(), 1)

	assert.False(t, res.Success)
	assert.Equal(t, before, f.server.count(), "no request without a token")
	assert.Contains(t, f.notifier.Last(), "token missing")
}

func TestAdminDashboard_DeleteDeclined(t *testing.T) {
	f := newAdminFixture(t, entity.Session{Token: "tok", Role: entity.RoleAdmin})
	f.confirmer.answer = false

	res := f.usecase.DeleteDoctor(context.Background(), 1)

	assert.False(t, res.Success)
	assert.Len(t, f.confirmer.asked, 1)
	assert.Equal(t, 0, f.server.count())
	assert.Empty(t, f.notifier.Messages())
}

func TestAdminDashboard_DeleteReloads(t *testing.T) {
	f := newAdminFixture(t, entity.Session{Token: "tok", Role: entity.RoleAdmin})
	f.server.write = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Doctor removed"}`))
	}
	ctx := context.Background()
	require.NoError(t, f.usecase.Activate(ctx))

	res := f.usecase.DeleteDoctor(ctx, 2)
	require.True(t, res.Success)

	f.server.mu.Lock()
	requests := f.server.requests
	f.server.mu.Unlock()
	require.Len(t, requests, 3)
	assert.Equal(t, http.MethodDelete, requests[1].Method)
	assert.Equal(t, "/doctor/2", requests[1].URL.Path)
	assert.Equal(t, "Bearer tok", requests[1].Header.Get("Authorization"))
	assert.Equal(t, http.MethodGet, requests[2].Method)
	assert.Equal(t, "Doctor removed", f.notifier.Last())
}

func TestAdminDashboard_AddDoctor(t *testing.T) {
	valid := &dto.CreateDoctorRequest{
		Name:         "Cara Diaz",
		Specialty:    "Neurology",
		Email:        "cara@clinic.test",
		Password:     "password123",
		MobileNo:     "5551234567",
		Availability: []string{"Tuesday 09:00-12:00"},
	}

	t.Run("invalid form sends nothing", func(t *testing.T) {
		f := newAdminFixture(t, entity.Session{Token: "tok"})

		res := f.usecase.AddDoctor(context.Background(), &dto.CreateDoctorRequest{Name: "C", Email: "nope"})

		assert.False(t, res.Success)
		assert.Equal(t, 0, f.server.count())
		assert.Contains(t, f.notifier.Last(), "name must be at least 2 characters")
	})

	t.Run("missing token sends nothing", func(t *testing.T) {
		f := newAdminFixture(t, entity.Session{})

		res := f.usecase.AddDoctor(context.Background(), valid)

		assert.False(t, res.Success)
		assert.Equal(t, 0, f.server.count())
		assert.Contains(t, f.notifier.Last(), "token missing")
	})

	t.Run("server rejection is alerted without reload", func(t *testing.T) {
		f := newAdminFixture(t, entity.Session{Token: "tok"})
		f.server.write = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"Email already registered"}`))
		}

		res := f.usecase.AddDoctor(context.Background(), valid)

		assert.False(t, res.Success)
		assert.Equal(t, "Email already registered", f.notifier.Last())
		assert.Equal(t, 1, f.server.count())
	})

	t.Run("success posts the form and reloads", func(t *testing.T) {
		f := newAdminFixture(t, entity.Session{Token: "tok"})
		var posted dto.CreateDoctorRequest
		f.server.write = func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&posted)
			w.WriteHeader(http.StatusCreated)
		}
		ctx := context.Background()
		require.NoError(t, f.usecase.Activate(ctx))

		res := f.usecase.AddDoctor(ctx, valid)

		require.True(t, res.Success)
		assert.Equal(t, *valid, posted)
		assert.Equal(t, "Doctor added successfully.", f.notifier.Last())
		assert.Equal(t, 3, f.server.count())
		assert.Equal(t, http.MethodGet, f.server.last().Method)
	})
}

func TestAdminDashboard_OpenAddDoctor(t *testing.T) {
	f := newAdminFixture(t, entity.Session{})
	f.usecase.OpenAddDoctor()
	assert.Equal(t, []string{ModalAddDoctor}, f.modals.opened)
}

func TestAdminDashboard_StaleResponseIsDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "a" {
			close(firstArrived)
			<-releaseFirst
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "name": "result-for-" + name}})
	}))
	defer ts.Close()

	region := render.NewRegion("content")
	uc := NewAdminDashboardUsecase(
		newAPI(t, ts.URL, "query"),
		repository.NewMemorySessionRepository(entity.Session{}),
		validator.NewValidator(),
		region,
		&recordingNotifier{},
		&stubConfirmer{},
		&recordingModals{},
		quietLogger(),
	)
	ctx := context.Background()
	require.NoError(t, uc.Activate(ctx))

	done := make(chan error, 1)
	go func() { done <- uc.SetSearchText(ctx, "a") }()

	<-firstArrived
	require.NoError(t, uc.SetSearchText(ctx, "ab"))
	assert.Contains(t, region.HTML(), "result-for-ab")

	close(releaseFirst)
	require.NoError(t, <-done)

	assert.Contains(t, region.HTML(), "result-for-ab")
	assert.NotContains(t, region.HTML(), "result-for-a<")
}

func TestAdminDashboard_DeactivateDropsInFlightLoad(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "late" {
			close(arrived)
			<-release
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "name": "late"}})
	}))
	defer ts.Close()

	region := render.NewRegion("content")
	uc := NewAdminDashboardUsecase(
		newAPI(t, ts.URL, "query"),
		repository.NewMemorySessionRepository(entity.Session{}),
		validator.NewValidator(),
		region,
		&recordingNotifier{},
		&stubConfirmer{},
		&recordingModals{},
		quietLogger(),
	)
	ctx := context.Background()
	require.NoError(t, uc.Activate(ctx))
	region.Replace()

	done := make(chan error, 1)
	go func() { done <- uc.SetSearchText(ctx, "late") }()

	<-arrived
	uc.Deactivate()
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, 0, region.Len())
}
