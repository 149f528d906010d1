package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

// feeDueDays is how long after enrollment a generated fee falls due.
const feeDueDays = 30

// EnrollmentService orchestrates the enrollment lifecycle: capacity
// enforcement, enrollment uniqueness, fee generation on enroll and the
// counter decrement on unenroll.
//
// The capacity check is check-then-act over the denormalized
// enrolled_count with no transaction around the read-check-write
// sequence, so two concurrent requests can both claim the last seat. The
// unique (student_id, course_id) index is the only guard the store
// enforces atomically.
type EnrollmentService struct {
	courses     store.CourseStore
	enrollments store.EnrollmentStore
	fees        store.FeeStore
	users       store.UserStore
	activity    *ActivityLogger
}

func NewEnrollmentService(
	courses store.CourseStore,
	enrollments store.EnrollmentStore,
	fees store.FeeStore,
	users store.UserStore,
	activity *ActivityLogger,
) *EnrollmentService {
	return &EnrollmentService{
		courses:     courses,
		enrollments: enrollments,
		fees:        fees,
		users:       users,
		activity:    activity,
	}
}

// Enroll registers a student in a course, increments the course's
// enrolled count and creates a pending fee for the course's current fee
// amount. There is no rollback if a later step fails.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID primitive.ObjectID) (models.EnrollmentDetail, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.EnrollmentDetail{}, ErrNotFound
		}
		return models.EnrollmentDetail{}, err
	}

	if !course.IsActive {
		return models.EnrollmentDetail{}, ErrCourseInactive
	}

	if course.EnrolledCount >= course.Capacity {
		return models.EnrollmentDetail{}, ErrCourseFull
	}

	_, err = s.enrollments.FindByStudentAndCourse(ctx, studentID, courseID)
	if err == nil {
		return models.EnrollmentDetail{}, ErrAlreadyEnrolled
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.EnrollmentDetail{}, err
	}

	now := time.Now()
	enrollment, err := s.enrollments.Insert(ctx, models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		CreatedAt: now,
	})
	if err != nil {
		// The unique index may reject a duplicate that slipped past the
		// pre-check; surface it as the same conflict.
		if errors.Is(err, store.ErrDuplicate) {
			return models.EnrollmentDetail{}, ErrAlreadyEnrolled
		}
		return models.EnrollmentDetail{}, err
	}

	course.EnrolledCount++
	if err := s.courses.Update(ctx, course); err != nil {
		return models.EnrollmentDetail{}, err
	}

	_, err = s.fees.Insert(ctx, models.Fee{
		StudentID: studentID,
		CourseID:  courseID,
		Amount:    course.Fee,
		Status:    models.FeePending,
		DueDate:   now.AddDate(0, 0, feeDueDays),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return models.EnrollmentDetail{}, err
	}

	s.activity.Log(ctx, studentID, models.ActionCourseEnroll,
		fmt.Sprintf("Enrolled in course: %s", course.Title),
		bson.M{"course_id": courseID, "enrollment_id": enrollment.ID})

	detail := models.EnrollmentDetail{Enrollment: enrollment, Course: course.Summary()}
	if student, err := s.users.FindByID(ctx, studentID); err == nil {
		detail.Student = student.Summary()
	}
	return detail, nil
}

// Unenroll removes an enrollment. The acting user must be the owning
// student or an admin. The course counter is decremented unless already
// zero; the fee generated at enrollment time is left untouched.
func (s *EnrollmentService) Unenroll(ctx context.Context, enrollmentID, actingUserID primitive.ObjectID, actingRole models.UserRole) error {
	enrollment, err := s.enrollments.FindByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if actingRole != models.RoleAdmin && enrollment.StudentID != actingUserID {
		return ErrForbidden
	}

	// The course may have been deleted out from under the enrollment;
	// skip the decrement silently in that case and when already zero.
	courseTitle := "Unknown"
	course, err := s.courses.FindByID(ctx, enrollment.CourseID)
	if err == nil {
		courseTitle = course.Title
		if course.EnrolledCount > 0 {
			course.EnrolledCount--
			if err := s.courses.Update(ctx, course); err != nil {
				return err
			}
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	s.activity.Log(ctx, actingUserID, models.ActionCourseUnenroll,
		fmt.Sprintf("Unenrolled from course: %s", courseTitle),
		bson.M{"course_id": enrollment.CourseID, "enrollment_id": enrollment.ID})

	return s.enrollments.Delete(ctx, enrollment.ID)
}
