package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/upadhyayaniket29/student-management-system/internal/auth"
	"github.com/upadhyayaniket29/student-management-system/internal/config"
	"github.com/upadhyayaniket29/student-management-system/internal/handlers"
	"github.com/upadhyayaniket29/student-management-system/internal/middleware"
	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
	"github.com/upadhyayaniket29/student-management-system/internal/store/mongostore"
)

// Stores bundles the persistence interfaces the route table is built on.
type Stores struct {
	Users         store.UserStore
	Courses       store.CourseStore
	Enrollments   store.EnrollmentStore
	Fees          store.FeeStore
	Announcements store.AnnouncementStore
	Faculties     store.FacultyStore
	Gallery       store.GalleryStore
	Suggestions   store.SuggestionStore
	Activities    store.ActivityStore
}

// SetupRouter wires the MongoDB-backed stores into the route table.
func SetupRouter(client *mongo.Client, cfg config.Config) *mux.Router {
	db := client.Database(cfg.DatabaseName)

	return Build(Stores{
		Users:         mongostore.NewUserStore(db),
		Courses:       mongostore.NewCourseStore(db),
		Enrollments:   mongostore.NewEnrollmentStore(db),
		Fees:          mongostore.NewFeeStore(db),
		Announcements: mongostore.NewAnnouncementStore(db),
		Faculties:     mongostore.NewFacultyStore(db),
		Gallery:       mongostore.NewGalleryStore(db),
		Suggestions:   mongostore.NewSuggestionStore(db),
		Activities:    mongostore.NewActivityStore(db),
	}, auth.NewAuthenticator(cfg.JWTSecret))
}

// Build assembles services, handlers and middleware over the given stores.
func Build(s Stores, authn *auth.Authenticator) *mux.Router {
	activityLogger := services.NewActivityLogger(s.Activities)
	enrollmentSvc := services.NewEnrollmentService(s.Courses, s.Enrollments, s.Fees, s.Users, activityLogger)
	feeSvc := services.NewFeeService(s.Fees, s.Courses, s.Users, activityLogger)

	authHandler := handlers.NewAuthHandler(s.Users, authn, activityLogger)
	studentHandler := handlers.NewStudentHandler(s.Users, s.Enrollments, activityLogger)
	courseHandler := handlers.NewCourseHandler(s.Courses, s.Enrollments)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentSvc, s.Enrollments)
	feeHandler := handlers.NewFeeHandler(feeSvc, s.Fees)
	announcementHandler := handlers.NewAnnouncementHandler(s.Announcements)
	facultyHandler := handlers.NewFacultyHandler(s.Faculties)
	galleryHandler := handlers.NewGalleryHandler(s.Gallery)
	suggestionHandler := handlers.NewSuggestionHandler(s.Suggestions, activityLogger)
	activityHandler := handlers.NewActivityHandler(s.Activities)

	authd := middleware.AuthMiddleware(authn)
	admin := middleware.AdminAuthMiddleware(authn)
	student := middleware.StudentAuthMiddleware(authn)

	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	// Auth
	router.HandleFunc("/api/auth/student/signup", authHandler.StudentSignup).Methods("POST")
	router.HandleFunc("/api/auth/admin/signup", authHandler.AdminSignup).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.Handle("/api/auth/me", authd(http.HandlerFunc(authHandler.Me))).Methods("GET")

	// Students
	router.Handle("/api/students", admin(http.HandlerFunc(studentHandler.GetStudents))).Methods("GET")
	router.Handle("/api/students/profile/me", student(http.HandlerFunc(studentHandler.GetProfile))).Methods("GET")
	router.Handle("/api/students/profile/me", student(http.HandlerFunc(studentHandler.UpdateProfile))).Methods("PUT")
	router.Handle("/api/students/{id}", admin(http.HandlerFunc(studentHandler.GetStudentByID))).Methods("GET")
	router.Handle("/api/students/{id}/status", admin(http.HandlerFunc(studentHandler.UpdateStudentStatus))).Methods("PATCH")
	router.Handle("/api/students/{id}/activity", admin(http.HandlerFunc(studentHandler.GetStudentActivity))).Methods("GET")

	// Courses
	router.Handle("/api/courses", authd(http.HandlerFunc(courseHandler.GetCourses))).Methods("GET")
	router.Handle("/api/courses", admin(http.HandlerFunc(courseHandler.CreateCourse))).Methods("POST")
	router.Handle("/api/courses/{id}", authd(http.HandlerFunc(courseHandler.GetCourseByID))).Methods("GET")
	router.Handle("/api/courses/{id}", admin(http.HandlerFunc(courseHandler.UpdateCourse))).Methods("PUT")
	router.Handle("/api/courses/{id}", admin(http.HandlerFunc(courseHandler.DeleteCourse))).Methods("DELETE")

	// Enrollments
	router.Handle("/api/enrollments", admin(http.HandlerFunc(enrollmentHandler.GetEnrollments))).Methods("GET")
	router.Handle("/api/enrollments", student(http.HandlerFunc(enrollmentHandler.CreateEnrollment))).Methods("POST")
	router.Handle("/api/enrollments/student/me", student(http.HandlerFunc(enrollmentHandler.GetMyEnrollments))).Methods("GET")
	router.Handle("/api/enrollments/{id}", authd(http.HandlerFunc(enrollmentHandler.DeleteEnrollment))).Methods("DELETE")

	// Fees
	router.Handle("/api/fees", admin(http.HandlerFunc(feeHandler.GetFees))).Methods("GET")
	router.Handle("/api/fees", admin(http.HandlerFunc(feeHandler.CreateFee))).Methods("POST")
	router.Handle("/api/fees/stats", admin(http.HandlerFunc(feeHandler.GetFeeStats))).Methods("GET")
	router.Handle("/api/fees/student/me", student(http.HandlerFunc(feeHandler.GetMyFees))).Methods("GET")
	router.Handle("/api/fees/{id}/pay", student(http.HandlerFunc(feeHandler.PayFee))).Methods("POST")

	// Announcements
	router.Handle("/api/announcements", authd(http.HandlerFunc(announcementHandler.GetAnnouncements))).Methods("GET")
	router.Handle("/api/announcements", admin(http.HandlerFunc(announcementHandler.CreateAnnouncement))).Methods("POST")
	router.Handle("/api/announcements/{id}", authd(http.HandlerFunc(announcementHandler.GetAnnouncementByID))).Methods("GET")
	router.Handle("/api/announcements/{id}", admin(http.HandlerFunc(announcementHandler.UpdateAnnouncement))).Methods("PUT")
	router.Handle("/api/announcements/{id}", admin(http.HandlerFunc(announcementHandler.DeleteAnnouncement))).Methods("DELETE")

	// Faculties
	router.Handle("/api/faculties", authd(http.HandlerFunc(facultyHandler.GetFaculties))).Methods("GET")
	router.Handle("/api/faculties", admin(http.HandlerFunc(facultyHandler.CreateFaculty))).Methods("POST")
	router.Handle("/api/faculties/{id}", authd(http.HandlerFunc(facultyHandler.GetFacultyByID))).Methods("GET")
	router.Handle("/api/faculties/{id}", admin(http.HandlerFunc(facultyHandler.UpdateFaculty))).Methods("PUT")
	router.Handle("/api/faculties/{id}", admin(http.HandlerFunc(facultyHandler.DeleteFaculty))).Methods("DELETE")

	// Gallery
	router.Handle("/api/gallery", authd(http.HandlerFunc(galleryHandler.GetGalleryImages))).Methods("GET")
	router.Handle("/api/gallery", admin(http.HandlerFunc(galleryHandler.CreateGalleryImage))).Methods("POST")
	router.Handle("/api/gallery/{id}", admin(http.HandlerFunc(galleryHandler.UpdateGalleryImage))).Methods("PUT")
	router.Handle("/api/gallery/{id}", admin(http.HandlerFunc(galleryHandler.DeleteGalleryImage))).Methods("DELETE")

	// Suggestions
	router.Handle("/api/suggestions", admin(http.HandlerFunc(suggestionHandler.GetSuggestions))).Methods("GET")
	router.Handle("/api/suggestions", student(http.HandlerFunc(suggestionHandler.CreateSuggestion))).Methods("POST")
	router.Handle("/api/suggestions/student/me", student(http.HandlerFunc(suggestionHandler.GetMySuggestions))).Methods("GET")
	router.Handle("/api/suggestions/{id}/status", admin(http.HandlerFunc(suggestionHandler.UpdateSuggestionStatus))).Methods("PATCH")
	router.Handle("/api/suggestions/{id}", authd(http.HandlerFunc(suggestionHandler.DeleteSuggestion))).Methods("DELETE")

	// Activities
	router.Handle("/api/activities", admin(http.HandlerFunc(activityHandler.GetActivities))).Methods("GET")
	router.Handle("/api/activities/recent", admin(http.HandlerFunc(activityHandler.GetRecentActivities))).Methods("GET")
	router.Handle("/api/activities/stats", admin(http.HandlerFunc(activityHandler.GetActivityStats))).Methods("GET")
	router.Handle("/api/activities/student/{id}", admin(http.HandlerFunc(activityHandler.GetStudentActivities))).Methods("GET")

	return router
}
