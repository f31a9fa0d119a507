package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/config"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/router"
	"jobboard/internal/delivery/http/router/handler"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/infra/validation"
	mockUsecase "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"
	"jobboard/internal/usecase/impl"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// gatewayFixtures holds the gateway under test and its use case mocks.
type gatewayFixtures struct {
	echo         *echo.Echo
	session      *mockUsecase.MockSessionUsecase
	catalog      *mockUsecase.MockCatalogUsecase
	applications *mockUsecase.MockApplicationUsecase
	dashboards   *mockUsecase.MockDashboardUsecase
}

func createTestGateway(t *testing.T, current entity.Session) gatewayFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Gate: &config.GateConfig{LoginPath: "/login", HomePath: "/"}}

	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Session().Return(current).Maybe()
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	applications := mockUsecase.NewMockApplicationUsecase(t)
	dashboards := mockUsecase.NewMockDashboardUsecase(t)

	e := NewEcho(cfg, logger, validation.New())
	router.NewRouter(router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{SessionUC: session, Logger: logger}),
		JobHandler:         handler.NewJobHandler(handler.JobHandlerParams{CatalogUC: catalog, Logger: logger}),
		ApplicationHandler: handler.NewApplicationHandler(handler.ApplicationHandlerParams{ApplicationUC: applications, Logger: logger}),
		DashboardHandler:   handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: dashboards, Logger: logger}),
		GateMiddleware:     middleware.NewGateMiddleware(impl.NewAuthGate(cfg), session, logger),
	}).RegisterRoutes(e)

	return gatewayFixtures{
		echo:         e,
		session:      session,
		catalog:      catalog,
		applications: applications,
		dashboards:   dashboards,
	}
}

func signedIn(role entity.Role) entity.Session {
	return entity.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &entity.User{ID: 9, Email: "user@example.com", Role: role, DisplayName: "User"},
	}
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestGateway_Gate_RedirectsAnonymousToLogin(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	rec := serve(fx.echo, http.MethodGet, "/seeker/applications?status=pending", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fseeker%2Fapplications%3Fstatus%3Dpending", rec.Header().Get(echo.HeaderLocation))
}

func TestGateway_Gate_RoleMismatchRedirectsHomeWithoutLogout(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleJobSeeker))

	rec := serve(fx.echo, http.MethodGet, "/employer/dashboard", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	fx.session.AssertNotCalled(t, "Logout", mock.Anything)
}

func TestGateway_Login(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	fx.session.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "ada@example.com", Password: "pw"}).
		Return(&entity.User{ID: 9, Email: "ada@example.com", Role: entity.RoleJobSeeker, DisplayName: "Ada"}, nil)

	rec := serve(fx.echo, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	assert.JSONEq(t, `{"id":9,"email":"ada@example.com","user_type":"job_seeker","display_name":"Ada"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestGateway_Login_InvalidCredentials(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	fx.session.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "exchange"))

	rec := serve(fx.echo, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestGateway_Register_FieldErrors(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	fx.session.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError().Add("email", "user with this email already exists."))

	rec := serve(fx.echo, http.MethodPost, "/auth/register", `{"email":"ada@example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.JSONEq(t, `{"email":["user with this email already exists."]}`, string(env.Error.Details))
}

func TestGateway_Logout(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleEmployer))

	fx.session.EXPECT().Logout(mock.Anything).Once()

	rec := serve(fx.echo, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGateway_Me_SignedOut(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	fx.session.EXPECT().CurrentUser().Return(nil)

	rec := serve(fx.echo, http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateway_ListJobs_BuildsFilter(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	category := int64(3)
	minSalary := 50000.0
	want := entity.NewJobFilter().
		WithSearch("go").
		WithCategory(&category).
		WithJobType(entity.JobTypeFullTime).
		WithSalaryRange(&minSalary, nil).
		WithPage(2)

	fx.catalog.EXPECT().List(mock.Anything, want).Return(&entity.Page[*entity.Job]{
		Items:       []*entity.Job{{ID: 1, Title: "Go Developer", JobType: entity.JobTypeFullTime}},
		TotalCount:  11,
		Number:      2,
		HasPrevious: true,
	}, nil)

	rec := serve(fx.echo, http.MethodGet, "/jobs?search=go&category=3&job_type=full_time&min_salary=50000&page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page handler.PageResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &page))
	assert.Equal(t, 11, page.Count)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Go Developer", page.Results[0].Title)
}

func TestGateway_ListJobs_BadQuery(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	rec := serve(fx.echo, http.MethodGet, "/jobs?page=two", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(decode(t, rec).Error.Details), "page")
}

func TestGateway_SearchJobs_Stale(t *testing.T) {
	fx := createTestGateway(t, entity.Session{})

	fx.catalog.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrStaleResult))

	rec := serve(fx.echo, http.MethodGet, "/jobs/search?search=g", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGateway_Apply(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleJobSeeker))

	fx.applications.EXPECT().Apply(mock.Anything, int64(7), usecase.ApplyInput{CoverLetter: "Hi"}).
		Return(&usecase.ApplyOutput{
			Application: &entity.Application{ID: 44, JobID: 7, Status: entity.StatusPending},
			Job:         &entity.Job{ID: 7, HasApplied: true},
		}, nil)

	rec := serve(fx.echo, http.MethodPost, "/seeker/jobs/7/apply", `{"cover_letter":"Hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var out handler.ApplyResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "pending", out.Application.Status)
	assert.Equal(t, []string{"reviewed", "rejected"}, out.Application.NextStatuses)
	assert.True(t, out.Job.HasApplied)
}

func TestGateway_Apply_AlreadyApplied(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleJobSeeker))

	fx.applications.EXPECT().Apply(mock.Anything, int64(7), mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrAlreadyApplied))

	rec := serve(fx.echo, http.MethodPost, "/seeker/jobs/7/apply", `{}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_APPLIED", decode(t, rec).Error.Code)
}

func TestGateway_UpdateStatus(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleEmployer))

	fx.applications.EXPECT().UpdateStatus(mock.Anything, int64(5), entity.StatusShortlisted).
		Return(&entity.Application{ID: 5, Status: entity.StatusShortlisted}, nil)

	rec := serve(fx.echo, http.MethodPatch, "/employer/applications/5/status", `{"status":"shortlisted"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGateway_UpdateStatus_MissingStatus(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleEmployer))

	rec := serve(fx.echo, http.MethodPatch, "/employer/applications/5/status", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(decode(t, rec).Error.Details), "status")
}

func TestGateway_SavedJobs(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleJobSeeker))

	fx.applications.EXPECT().EnsureSaved(mock.Anything, int64(7), true).Return(nil).Once()
	fx.applications.EXPECT().EnsureSaved(mock.Anything, int64(7), false).Return(nil).Once()
	fx.applications.EXPECT().ToggleSaved(mock.Anything, int64(8)).Return(true, nil).Once()

	assert.Equal(t, http.StatusOK, serve(fx.echo, http.MethodPost, "/seeker/saved/7", "").Code)
	assert.Equal(t, http.StatusOK, serve(fx.echo, http.MethodPut, "/seeker/saved/7", `{"saved":false}`).Code)

	rec := serve(fx.echo, http.MethodPost, "/seeker/saved/8/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"job_id":8,"saved":true}`, string(decode(t, rec).Data))
}

func TestGateway_SeekerDashboard_UpstreamFailureHidesDetails(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleJobSeeker))

	fx.dashboards.EXPECT().SeekerDashboard(mock.Anything).
		Return(nil, domainerrors.ErrNetwork.WithDetails("dial tcp 10.0.0.1:443: connection refused"))

	rec := serve(fx.echo, http.MethodGet, "/seeker/dashboard", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, decode(t, rec).Error.Details)
}

func TestGateway_EmployerJobManagement(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleEmployer))

	fx.catalog.EXPECT().
		CreateJob(mock.Anything, mock.MatchedBy(func(in usecase.JobInput) bool {
			return in.Title != nil && *in.Title == "Go Engineer" && in.SalaryMin != nil && *in.SalaryMin == 50000 && in.Location == nil
		})).
		Return(&entity.Job{ID: 12, Title: "Go Engineer", IsActive: true}, nil).Once()
	fx.catalog.EXPECT().SetJobActive(mock.Anything, int64(12), false).
		Return(&entity.Job{ID: 12, Title: "Go Engineer"}, nil).Once()
	fx.catalog.EXPECT().DeleteJob(mock.Anything, int64(12)).Return(nil).Once()

	rec := serve(fx.echo, http.MethodPost, "/employer/jobs", `{"title":"Go Engineer","salary_min":50000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var job handler.JobResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &job))
	assert.Equal(t, int64(12), job.ID)
	assert.True(t, job.IsActive)

	rec = serve(fx.echo, http.MethodPut, "/employer/jobs/12/active", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &job))
	assert.False(t, job.IsActive)

	rec = serve(fx.echo, http.MethodPut, "/employer/jobs/12/active", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(decode(t, rec).Error.Details), "is_active")

	assert.Equal(t, http.StatusNoContent, serve(fx.echo, http.MethodDelete, "/employer/jobs/12", "").Code)
}

func TestGateway_UpdateJob_ServiceFieldErrors(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleEmployer))

	fx.catalog.EXPECT().UpdateJob(mock.Anything, int64(12), mock.Anything).
		Return(nil, domainerrors.NewValidationError().Add("deadline", "Deadline cannot be in the past"))

	rec := serve(fx.echo, http.MethodPatch, "/employer/jobs/12", `{"deadline":"2020-01-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"deadline":["Deadline cannot be in the past"]}`, string(decode(t, rec).Error.Details))
}

func TestGateway_EmployerJobWrites_SeekerRedirectedHome(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleJobSeeker))

	rec := serve(fx.echo, http.MethodPost, "/employer/jobs", `{"title":"Go Engineer"}`)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestGateway_UpdateProfile(t *testing.T) {
	fx := createTestGateway(t, signedIn(entity.RoleEmployer))

	fx.session.EXPECT().UpdateProfile(mock.Anything, usecase.UpdateProfileInput{CompanyName: "Acme GmbH"}).
		Return(&entity.User{ID: 9, Email: "user@example.com", Role: entity.RoleEmployer, DisplayName: "Acme GmbH"}, nil)

	rec := serve(fx.echo, http.MethodPatch, "/auth/profile", `{"company_name":"Acme GmbH"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":9,"email":"user@example.com","user_type":"employer","display_name":"Acme GmbH"}`, string(decode(t, rec).Data))
}
