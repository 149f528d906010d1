package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
	"github.com/upadhyayaniket29/student-management-system/internal/store/memstore"
)

func newEnrollmentService(db *memstore.DB) *services.EnrollmentService {
	return services.NewEnrollmentService(
		db.Courses(), db.Enrollments(), db.Fees(), db.Users(),
		services.NewActivityLogger(db.Activities()),
	)
}

func seedStudent(t *testing.T, db *memstore.DB, name string) models.User {
	t.Helper()
	user, err := db.Users().Insert(context.Background(), models.User{
		Name:     name,
		Email:    name + "@example.com",
		Role:     models.RoleStudent,
		IsActive: true,
	})
	require.NoError(t, err)
	return user
}

func seedCourse(t *testing.T, db *memstore.DB, title string, fee float64, capacity int, active bool) models.Course {
	t.Helper()
	course, err := db.Courses().Insert(context.Background(), models.Course{
		Title:    title,
		Duration: "3 months",
		Fee:      fee,
		Capacity: capacity,
		IsActive: active,
	})
	require.NoError(t, err)
	return course
}

func TestEnrollCreatesFeeAndIncrementsCount(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)

	detail, err := svc.Enroll(context.Background(), student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, detail.StudentID)
	assert.Equal(t, course.ID, detail.CourseID)
	assert.Equal(t, "Go Basics", detail.Course.Title)
	assert.Equal(t, "asha", detail.Student.Name)

	updated, err := db.Courses().FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.EnrolledCount)

	fees, err := db.Fees().ListByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, models.FeePending, fees[0].Status)
	assert.Equal(t, 4999.0, fees[0].Amount)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), fees[0].DueDate, time.Minute)

	activities, err := db.Activities().ListByUser(context.Background(), student.ID, 10)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActionCourseEnroll, activities[0].Action)
}

func TestEnrollCourseNotFound(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	student := seedStudent(t, db, "asha")

	_, err := svc.Enroll(context.Background(), student.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEnrollInactiveCourse(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Archived", 1000, 10, false)

	_, err := svc.Enroll(context.Background(), student.ID, course.ID)
	assert.ErrorIs(t, err, services.ErrCourseInactive)

	fees, err := db.Fees().ListByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Empty(t, fees)
}

func TestEnrollFullCourse(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	first := seedStudent(t, db, "asha")
	second := seedStudent(t, db, "bala")
	course := seedCourse(t, db, "Tiny Seminar", 500, 1, true)

	_, err := svc.Enroll(context.Background(), first.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), second.ID, course.ID)
	assert.ErrorIs(t, err, services.ErrCourseFull)

	n, err := db.Enrollments().CountByCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)

	_, err := svc.Enroll(context.Background(), student.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), student.ID, course.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyEnrolled)

	updated, err := db.Courses().FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.EnrolledCount)

	fees, err := db.Fees().ListByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, fees, 1)
}

// blindEnrollmentStore hides existing enrollments from the pre-insert
// lookup so the insert itself runs into the unique index, the way a
// concurrent duplicate request would.
type blindEnrollmentStore struct {
	store.EnrollmentStore
}

func (s blindEnrollmentStore) FindByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (models.Enrollment, error) {
	return models.Enrollment{}, store.ErrNotFound
}

func TestEnrollDuplicateIndexBackstop(t *testing.T) {
	db := memstore.Open()
	svc := services.NewEnrollmentService(
		db.Courses(), blindEnrollmentStore{db.Enrollments()}, db.Fees(), db.Users(),
		services.NewActivityLogger(db.Activities()),
	)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)

	_, err := svc.Enroll(context.Background(), student.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), student.ID, course.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyEnrolled)

	n, err := db.Enrollments().CountByCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestEnrolledCountMatchesEnrollmentRows(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	course := seedCourse(t, db, "Popular Course", 2500, 20, true)

	names := []string{"asha", "bala", "chen", "devi", "esha"}
	for _, name := range names {
		student := seedStudent(t, db, name)
		_, err := svc.Enroll(context.Background(), student.ID, course.ID)
		require.NoError(t, err)
	}

	updated, err := db.Courses().FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	rows, err := db.Enrollments().CountByCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, updated.EnrolledCount, rows)
	assert.Equal(t, len(names), updated.EnrolledCount)
}

func TestUnenrollReleasesSeatAndKeepsFee(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	first := seedStudent(t, db, "asha")
	second := seedStudent(t, db, "bala")
	course := seedCourse(t, db, "Tiny Seminar", 500, 1, true)

	detail, err := svc.Enroll(context.Background(), first.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), second.ID, course.ID)
	require.ErrorIs(t, err, services.ErrCourseFull)

	err = svc.Unenroll(context.Background(), detail.ID, first.ID, models.RoleStudent)
	require.NoError(t, err)

	updated, err := db.Courses().FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.EnrolledCount)

	// The fee generated at enrollment stays behind, still pending.
	fees, err := db.Fees().ListByStudent(context.Background(), first.ID)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, models.FeePending, fees[0].Status)

	// The freed seat is available again.
	_, err = svc.Enroll(context.Background(), second.ID, course.ID)
	assert.NoError(t, err)
}

func TestUnenrollByOtherStudentForbidden(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	owner := seedStudent(t, db, "asha")
	other := seedStudent(t, db, "bala")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)

	detail, err := svc.Enroll(context.Background(), owner.ID, course.ID)
	require.NoError(t, err)

	err = svc.Unenroll(context.Background(), detail.ID, other.ID, models.RoleStudent)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = db.Enrollments().FindByID(context.Background(), detail.ID)
	assert.NoError(t, err)
}

func TestUnenrollByAdmin(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	owner := seedStudent(t, db, "asha")
	admin := seedStudent(t, db, "root")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)

	detail, err := svc.Enroll(context.Background(), owner.ID, course.ID)
	require.NoError(t, err)

	err = svc.Unenroll(context.Background(), detail.ID, admin.ID, models.RoleAdmin)
	require.NoError(t, err)

	_, err = db.Enrollments().FindByID(context.Background(), detail.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUnenrollMissingEnrollment(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	student := seedStudent(t, db, "asha")

	err := svc.Unenroll(context.Background(), primitive.NewObjectID(), student.ID, models.RoleStudent)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUnenrollCounterNeverNegative(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Drifted", 1000, 10, true)

	// An enrollment row without a matching counter increment, the kind of
	// drift a failed increment leaves behind.
	enrollment, err := db.Enrollments().Insert(context.Background(), models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	err = svc.Unenroll(context.Background(), enrollment.ID, student.ID, models.RoleStudent)
	require.NoError(t, err)

	updated, err := db.Courses().FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.EnrolledCount)
}

func TestUnenrollAfterCourseDeleted(t *testing.T) {
	db := memstore.Open()
	svc := newEnrollmentService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Doomed", 1000, 10, true)

	detail, err := svc.Enroll(context.Background(), student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, db.Courses().Delete(context.Background(), course.ID))

	err = svc.Unenroll(context.Background(), detail.ID, student.ID, models.RoleStudent)
	require.NoError(t, err)

	_, err = db.Enrollments().FindByID(context.Background(), detail.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// rendezvousCourseStore holds every FindByID caller at a barrier until
// all expected callers have read the course, forcing the capacity checks
// of concurrent enrollments to run against the same stale snapshot.
type rendezvousCourseStore struct {
	store.CourseStore
	barrier *sync.WaitGroup
}

func (s *rendezvousCourseStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	course, err := s.CourseStore.FindByID(ctx, id)
	s.barrier.Done()
	s.barrier.Wait()
	return course, err
}

func TestConcurrentEnrollmentsOverfillCourse(t *testing.T) {
	db := memstore.Open()
	var barrier sync.WaitGroup
	barrier.Add(2)
	svc := services.NewEnrollmentService(
		&rendezvousCourseStore{db.Courses(), &barrier}, db.Enrollments(), db.Fees(), db.Users(),
		services.NewActivityLogger(db.Activities()),
	)
	first := seedStudent(t, db, "asha")
	second := seedStudent(t, db, "bala")
	course := seedCourse(t, db, "Last Seat", 500, 1, true)

	errs := make(chan error, 2)
	for _, id := range []primitive.ObjectID{first.ID, second.ID} {
		go func(studentID primitive.ObjectID) {
			_, err := svc.Enroll(context.Background(), studentID, course.ID)
			errs <- err
		}(id)
	}
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	// Both requests passed the capacity check against enrolled_count 0,
	// so a one-seat course ends up with two enrollments.
	rows, err := db.Enrollments().CountByCourse(context.Background(), course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, rows)
}
