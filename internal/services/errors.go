package services

import "errors"

// Failure kinds surfaced by the workflows. Handlers translate these into
// HTTP statuses; everything else propagates as an internal error.
var (
	ErrNotFound        = errors.New("record not found")
	ErrCourseInactive  = errors.New("course is not available for enrollment")
	ErrCourseFull      = errors.New("course is full")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrAlreadyPaid     = errors.New("fee already paid")
	ErrForbidden       = errors.New("not authorized")
)
