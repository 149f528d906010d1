package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upadhyayaniket29/student-management-system/internal/auth"
	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/routes"
	"github.com/upadhyayaniket29/student-management-system/internal/store/memstore"
)

type testServer struct {
	t      *testing.T
	db     *memstore.DB
	authn  *auth.Authenticator
	router *mux.Router
}

func newTestServer(t *testing.T) *testServer {
	db := memstore.Open()
	authn := auth.NewAuthenticator("test-secret")
	router := routes.Build(routes.Stores{
		Users:         db.Users(),
		Courses:       db.Courses(),
		Enrollments:   db.Enrollments(),
		Fees:          db.Fees(),
		Announcements: db.Announcements(),
		Faculties:     db.Faculties(),
		Gallery:       db.Gallery(),
		Suggestions:   db.Suggestions(),
		Activities:    db.Activities(),
	}, authn)
	return &testServer{t: t, db: db, authn: authn, router: router}
}

// seedUser inserts an account directly and returns it with a valid token,
// bypassing the signup endpoint.
func (s *testServer) seedUser(name string, role models.UserRole) (models.User, string) {
	s.t.Helper()
	hashed, err := auth.HashPassword("hunter22")
	require.NoError(s.t, err)
	user, err := s.db.Users().Insert(context.Background(), models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: hashed,
		Role:     role,
		IsActive: true,
	})
	require.NoError(s.t, err)
	token, err := s.authn.GenerateJWT(user.ID.Hex(), string(role))
	require.NoError(s.t, err)
	return user, token
}

func (s *testServer) seedCourse(title string, fee float64, capacity int, active bool) models.Course {
	s.t.Helper()
	course, err := s.db.Courses().Insert(context.Background(), models.Course{
		Title:    title,
		Duration: "3 months",
		Fee:      fee,
		Capacity: capacity,
		IsActive: active,
	})
	require.NoError(s.t, err)
	return course
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignupAndLogin(t *testing.T) {
	s := newTestServer(t)

	signup := map[string]string{"name": "Asha", "email": "asha@example.com", "password": "hunter22"}
	rec := s.do(http.MethodPost, "/api/auth/student/signup", "", signup)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}](t, rec)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, models.RoleStudent, created.User.Role)

	// Same email again is rejected.
	rec = s.do(http.MethodPost, "/api/auth/student/signup", "", signup)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already in use")

	login := map[string]string{"email": "asha@example.com", "password": "hunter22"}
	rec = s.do(http.MethodPost, "/api/auth/login", "", login)
	assert.Equal(t, http.StatusOK, rec.Code)

	login["password"] = "wrong-password"
	rec = s.do(http.MethodPost, "/api/auth/login", "", login)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	s := newTestServer(t)
	user, _ := s.seedUser("asha", models.RoleStudent)
	user.IsActive = false
	require.NoError(t, s.db.Users().Update(context.Background(), user))

	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account is deactivated")
}

func TestRoleGates(t *testing.T) {
	s := newTestServer(t)
	_, studentToken := s.seedUser("asha", models.RoleStudent)

	// No token at all.
	rec := s.do(http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Student token on an admin route.
	rec = s.do(http.MethodGet, "/api/enrollments", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin token on a student route.
	_, adminToken := s.seedUser("root", models.RoleAdmin)
	rec = s.do(http.MethodPost, "/api/enrollments", adminToken, map[string]string{"course_id": "000000000000000000000000"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEnrollmentOverHTTP(t *testing.T) {
	s := newTestServer(t)
	_, studentToken := s.seedUser("asha", models.RoleStudent)
	course := s.seedCourse("Go Basics", 4999, 1, true)

	rec := s.do(http.MethodPost, "/api/enrollments", studentToken, map[string]string{"course_id": course.ID.Hex()})
	require.Equal(t, http.StatusCreated, rec.Code)
	detail := decodeBody[models.EnrollmentDetail](t, rec)
	assert.Equal(t, "Go Basics", detail.Course.Title)

	// Enrolling twice in the same course.
	rec = s.do(http.MethodPost, "/api/enrollments", studentToken, map[string]string{"course_id": course.ID.Hex()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Already enrolled in this course")

	// Second student hits the capacity limit.
	_, otherToken := s.seedUser("bala", models.RoleStudent)
	rec = s.do(http.MethodPost, "/api/enrollments", otherToken, map[string]string{"course_id": course.ID.Hex()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Course is full")

	// Unknown and inactive courses.
	rec = s.do(http.MethodPost, "/api/enrollments", otherToken, map[string]string{"course_id": "ffffffffffffffffffffffff"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	inactive := s.seedCourse("Archived", 1000, 10, false)
	rec = s.do(http.MethodPost, "/api/enrollments", otherToken, map[string]string{"course_id": inactive.ID.Hex()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Course is not available for enrollment")

	// The student sees their enrollment.
	rec = s.do(http.MethodGet, "/api/enrollments/student/me", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decodeBody[[]models.EnrollmentDetail](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, course.ID, mine[0].CourseID)
}

func TestUnenrollPermissionsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	_, ownerToken := s.seedUser("asha", models.RoleStudent)
	_, otherToken := s.seedUser("bala", models.RoleStudent)
	course := s.seedCourse("Go Basics", 4999, 10, true)

	rec := s.do(http.MethodPost, "/api/enrollments", ownerToken, map[string]string{"course_id": course.ID.Hex()})
	require.Equal(t, http.StatusCreated, rec.Code)
	detail := decodeBody[models.EnrollmentDetail](t, rec)

	rec = s.do(http.MethodDelete, "/api/enrollments/"+detail.ID.Hex(), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/enrollments/"+detail.ID.Hex(), ownerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/enrollments/"+detail.ID.Hex(), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeePaymentOverHTTP(t *testing.T) {
	s := newTestServer(t)
	_, studentToken := s.seedUser("asha", models.RoleStudent)
	_, adminToken := s.seedUser("root", models.RoleAdmin)
	course := s.seedCourse("Go Basics", 4999, 10, true)

	rec := s.do(http.MethodPost, "/api/enrollments", studentToken, map[string]string{"course_id": course.ID.Hex()})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/fees/student/me", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fees := decodeBody[[]models.FeeDetail](t, rec)
	require.Len(t, fees, 1)
	assert.Equal(t, models.FeePending, fees[0].Status)
	assert.Equal(t, 4999.0, fees[0].Amount)

	payPath := "/api/fees/" + fees[0].ID.Hex() + "/pay"

	// Unsupported payment method fails validation.
	rec = s.do(http.MethodPost, payPath, studentToken, map[string]string{"payment_method": "cheque"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, payPath, studentToken, map[string]string{"payment_method": "card"})
	require.Equal(t, http.StatusOK, rec.Code)
	paid := decodeBody[models.FeeDetail](t, rec)
	assert.Equal(t, models.FeePaid, paid.Status)
	assert.NotEmpty(t, paid.TransactionID)

	rec = s.do(http.MethodPost, payPath, studentToken, map[string]string{"payment_method": "card"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fee already paid")

	rec = s.do(http.MethodGet, "/api/fees/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[models.FeeStats](t, rec)
	assert.Equal(t, 4999.0, stats.TotalAmount)
	assert.Equal(t, 4999.0, stats.PaidAmount)
	assert.Equal(t, 0.0, stats.PendingAmount)
}

func TestSuggestionWorkflow(t *testing.T) {
	s := newTestServer(t)
	_, studentToken := s.seedUser("asha", models.RoleStudent)
	_, adminToken := s.seedUser("root", models.RoleAdmin)

	rec := s.do(http.MethodPost, "/api/suggestions", studentToken, map[string]string{
		"title":   "Longer lab hours",
		"content": "The lab closes too early during exams.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Suggestion](t, rec)
	assert.Equal(t, models.SuggestionPending, created.Status)
	assert.Equal(t, models.CategoryOther, created.Category)

	rec = s.do(http.MethodPatch, "/api/suggestions/"+created.ID.Hex()+"/status", adminToken, map[string]string{
		"status":         "implemented",
		"admin_response": "Lab hours extended to 10pm during exam weeks.",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Suggestion](t, rec)
	assert.Equal(t, models.SuggestionImplemented, updated.Status)

	rec = s.do(http.MethodGet, "/api/suggestions/student/me", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decodeBody[[]models.Suggestion](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, "Lab hours extended to 10pm during exam weeks.", mine[0].AdminResponse)
}

func TestDeleteSuggestionPermissions(t *testing.T) {
	s := newTestServer(t)
	_, ownerToken := s.seedUser("asha", models.RoleStudent)
	_, otherToken := s.seedUser("bala", models.RoleStudent)
	_, adminToken := s.seedUser("root", models.RoleAdmin)

	submit := func() models.Suggestion {
		rec := s.do(http.MethodPost, "/api/suggestions", ownerToken, map[string]string{
			"title":   "More water fountains",
			"content": "The east wing has none.",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeBody[models.Suggestion](t, rec)
	}

	// Another student cannot delete it; the submitter can.
	suggestion := submit()
	rec := s.do(http.MethodDelete, "/api/suggestions/"+suggestion.ID.Hex(), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/suggestions/"+suggestion.ID.Hex(), ownerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/suggestions/"+suggestion.ID.Hex(), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Admins can delete any suggestion.
	suggestion = submit()
	rec = s.do(http.MethodDelete, "/api/suggestions/"+suggestion.ID.Hex(), adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/suggestions/student/me", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Suggestion](t, rec))
}

func TestActivityTrail(t *testing.T) {
	s := newTestServer(t)
	student, studentToken := s.seedUser("asha", models.RoleStudent)
	_, adminToken := s.seedUser("root", models.RoleAdmin)
	course := s.seedCourse("Go Basics", 4999, 10, true)

	rec := s.do(http.MethodPost, "/api/enrollments", studentToken, map[string]string{"course_id": course.ID.Hex()})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/activities/student/"+student.ID.Hex(), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	trail := decodeBody[[]models.ActivityDetail](t, rec)
	require.Len(t, trail, 1)
	assert.Equal(t, models.ActionCourseEnroll, trail[0].Action)
	assert.Equal(t, "asha", trail[0].User.Name)

	rec = s.do(http.MethodGet, "/api/activities?action=course_enroll", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decodeBody[[]models.ActivityDetail](t, rec)
	assert.Len(t, filtered, 1)

	rec = s.do(http.MethodGet, "/api/activities/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[models.ActivityStats](t, rec)
	assert.EqualValues(t, 1, stats.TotalActivities)
	assert.EqualValues(t, 1, stats.TodayActivities)
}

func TestCourseDeleteCascadesEnrollments(t *testing.T) {
	s := newTestServer(t)
	_, studentToken := s.seedUser("asha", models.RoleStudent)
	_, adminToken := s.seedUser("root", models.RoleAdmin)
	course := s.seedCourse("Doomed", 1000, 10, true)

	rec := s.do(http.MethodPost, "/api/enrollments", studentToken, map[string]string{"course_id": course.ID.Hex()})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodDelete, "/api/courses/"+course.ID.Hex(), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/enrollments/student/me", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decodeBody[[]models.EnrollmentDetail](t, rec)
	assert.Empty(t, mine)

	// Fees survive the cascade.
	rec = s.do(http.MethodGet, "/api/fees/student/me", studentToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fees := decodeBody[[]models.FeeDetail](t, rec)
	assert.Len(t, fees, 1)
}
