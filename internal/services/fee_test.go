package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store/memstore"
)

func newFeeService(db *memstore.DB) *services.FeeService {
	return services.NewFeeService(
		db.Fees(), db.Courses(), db.Users(),
		services.NewActivityLogger(db.Activities()),
	)
}

func seedPendingFee(t *testing.T, db *memstore.DB, studentID, courseID primitive.ObjectID, amount float64) models.Fee {
	t.Helper()
	now := time.Now()
	fee, err := db.Fees().Insert(context.Background(), models.Fee{
		StudentID: studentID,
		CourseID:  courseID,
		Amount:    amount,
		Status:    models.FeePending,
		DueDate:   now.AddDate(0, 0, 30),
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return fee
}

func TestPayFeeMarksPaid(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)
	fee := seedPendingFee(t, db, student.ID, course.ID, 4999)

	detail, err := svc.Pay(context.Background(), fee.ID, student.ID, "card", "TXN-1234")
	require.NoError(t, err)
	assert.Equal(t, models.FeePaid, detail.Status)
	assert.Equal(t, "card", detail.PaymentMethod)
	assert.Equal(t, "TXN-1234", detail.TransactionID)
	require.NotNil(t, detail.PaymentDate)
	assert.WithinDuration(t, time.Now(), *detail.PaymentDate, time.Minute)
	assert.Equal(t, "asha", detail.Student.Name)
	assert.Equal(t, "Go Basics", detail.Course.Title)

	activities, err := db.Activities().ListByUser(context.Background(), student.ID, 10)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActionFeePayment, activities[0].Action)
}

func TestPayFeeGeneratesReceiptID(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)
	fee := seedPendingFee(t, db, student.ID, course.ID, 4999)

	detail, err := svc.Pay(context.Background(), fee.ID, student.ID, "cash", "")
	require.NoError(t, err)
	_, err = uuid.Parse(detail.TransactionID)
	assert.NoError(t, err)
}

func TestPayFeeTwiceRejected(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)
	fee := seedPendingFee(t, db, student.ID, course.ID, 4999)

	paid, err := svc.Pay(context.Background(), fee.ID, student.ID, "online", "TXN-1")
	require.NoError(t, err)

	_, err = svc.Pay(context.Background(), fee.ID, student.ID, "card", "TXN-2")
	assert.ErrorIs(t, err, services.ErrAlreadyPaid)

	// The first payment record is untouched.
	stored, err := db.Fees().FindByID(context.Background(), fee.ID)
	require.NoError(t, err)
	assert.Equal(t, "TXN-1", stored.TransactionID)
	assert.Equal(t, "online", stored.PaymentMethod)
	assert.Equal(t, paid.PaymentDate.Unix(), stored.PaymentDate.Unix())
}

func TestPayFeeByNonOwnerForbidden(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	owner := seedStudent(t, db, "asha")
	other := seedStudent(t, db, "bala")
	course := seedCourse(t, db, "Go Basics", 4999, 10, true)
	fee := seedPendingFee(t, db, owner.ID, course.ID, 4999)

	_, err := svc.Pay(context.Background(), fee.ID, other.ID, "card", "")
	assert.ErrorIs(t, err, services.ErrForbidden)

	stored, err := db.Fees().FindByID(context.Background(), fee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FeePending, stored.Status)
}

func TestPayFeeMissing(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	student := seedStudent(t, db, "asha")

	_, err := svc.Pay(context.Background(), primitive.NewObjectID(), student.ID, "card", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateFeeCopiesCourseAmount(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 7500, 10, true)

	detail, err := svc.Create(context.Background(), student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 7500.0, detail.Amount)
	assert.Equal(t, models.FeePending, detail.Status)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), detail.DueDate, time.Minute)
}

func TestCreateFeeMissingCourse(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	student := seedStudent(t, db, "asha")

	_, err := svc.Create(context.Background(), student.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFeeStatsTotals(t *testing.T) {
	db := memstore.Open()
	svc := newFeeService(db)
	student := seedStudent(t, db, "asha")
	course := seedCourse(t, db, "Go Basics", 1000, 10, true)

	paid := seedPendingFee(t, db, student.ID, course.ID, 1000)
	seedPendingFee(t, db, student.ID, course.ID, 2500)

	_, err := svc.Pay(context.Background(), paid.ID, student.ID, "card", "")
	require.NoError(t, err)

	stats, err := db.Fees().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3500.0, stats.TotalAmount)
	assert.Equal(t, 1000.0, stats.PaidAmount)
	assert.Equal(t, 2500.0, stats.PendingAmount)
}
