package services

import (
	"math"
	"testing"

	"github.com/anjiri1684/tutor_marketplace/apperrors"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
)

func TestSplitAmount(t *testing.T) {
	cases := []struct {
		name           string
		total          float64
		wantCommission float64
		wantTeacher    float64
	}{
		{"round hundred", 100.00, 10.00, 90.00},
		{"zero", 0, 0, 0},
		{"odd cents", 33.33, 3.33, 30.00},
		{"rounds half up", 10.25, 1.03, 9.22},
		{"small amount", 0.04, 0.00, 0.04},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			commission, teacherAmount := SplitAmount(tc.total, 0.10)
			if commission != tc.wantCommission {
				t.Errorf("commission = %v, want %v", commission, tc.wantCommission)
			}
			if math.Abs(teacherAmount-tc.wantTeacher) > 1e-9 {
				t.Errorf("teacher amount = %v, want %v", teacherAmount, tc.wantTeacher)
			}
			if commission+teacherAmount != tc.total {
				t.Errorf("split does not sum back: %v + %v != %v", commission, teacherAmount, tc.total)
			}
			if commission != math.Round(tc.total*0.10*100)/100 {
				t.Errorf("commission %v is not round(total * rate)", commission)
			}
		})
	}
}

func TestRecordPaymentDerivesSplit(t *testing.T) {
	db := setupTestDB(t)
	teacher := seedProfile(t, db, models.RoleTeacher)
	student := seedProfile(t, db, models.RoleStudent)
	lesson := seedLesson(t, db, teacher.ID, 100)
	booking := seedBooking(t, db, lesson, student.ID, models.BookingStatusCompleted)

	ref := "mpesa-xyz-001"
	txn, err := RecordPayment(db, booking.ID, RecordPaymentInput{
		TotalAmount: 100,
		Method:      "mpesa",
		ExternalRef: &ref,
		Status:      models.PaymentStatusCompleted,
	})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}

	if txn.PlatformCommission != 10.00 {
		t.Errorf("commission = %v, want 10.00", txn.PlatformCommission)
	}
	if txn.TeacherAmount != 90.00 {
		t.Errorf("teacher amount = %v, want 90.00", txn.TeacherAmount)
	}
	if txn.StudentID != student.ID || txn.TeacherID != teacher.ID {
		t.Error("transaction participants not copied from booking")
	}
}

func TestRecordPaymentUpdatesSingleTransaction(t *testing.T) {
	db := setupTestDB(t)
	teacher := seedProfile(t, db, models.RoleTeacher)
	student := seedProfile(t, db, models.RoleStudent)
	lesson := seedLesson(t, db, teacher.ID, 100)
	booking := seedBooking(t, db, lesson, student.ID, models.BookingStatusCompleted)

	first, err := RecordPayment(db, booking.ID, RecordPaymentInput{
		TotalAmount: 100,
		Method:      "card",
		Status:      models.PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("first RecordPayment failed: %v", err)
	}

	second, err := RecordPayment(db, booking.ID, RecordPaymentInput{
		TotalAmount: 80,
		Method:      "card",
		Status:      models.PaymentStatusCompleted,
	})
	if err != nil {
		t.Fatalf("second RecordPayment failed: %v", err)
	}

	if first.ID != second.ID {
		t.Error("a booking must keep a single transaction across settlements")
	}
	if second.PlatformCommission != 8.00 || second.TeacherAmount != 72.00 {
		t.Errorf("split not recomputed on update: got %v/%v", second.PlatformCommission, second.TeacherAmount)
	}
	if second.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("status = %s, want completed", second.PaymentStatus)
	}

	var count int64
	db.Model(&models.Transaction{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count != 1 {
		t.Errorf("transaction count = %d, want 1", count)
	}
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	db := setupTestDB(t)

	_, err := RecordPayment(db, uuid.New(), RecordPaymentInput{
		TotalAmount: 50,
		Method:      "card",
		Status:      models.PaymentStatusPending,
	})
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expected NotFound for unknown booking, got %v", err)
	}
}
