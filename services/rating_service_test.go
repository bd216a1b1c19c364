package services

import (
	"math"
	"testing"

	"github.com/anjiri1684/tutor_marketplace/apperrors"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
)

func TestSubmitReviewRecomputesAggregate(t *testing.T) {
	db := setupTestDB(t)
	teacher := seedProfile(t, db, models.RoleTeacher)
	students := []models.Profile{
		seedProfile(t, db, models.RoleStudent),
		seedProfile(t, db, models.RoleStudent),
		seedProfile(t, db, models.RoleStudent),
	}
	lesson := seedLesson(t, db, teacher.ID, 100)

	ratings := []int{4, 5, 3}
	for i, student := range students {
		booking := seedBooking(t, db, lesson, student.ID, models.BookingStatusCompleted)
		if _, err := SubmitReview(db, booking.ID, student.ID, ratings[i], "solid lesson"); err != nil {
			t.Fatalf("SubmitReview failed: %v", err)
		}
	}

	var profile models.Profile
	db.First(&profile, "id = ?", teacher.ID)
	want := (4.0 + 5.0 + 3.0) / 3.0
	if math.Abs(profile.Rating-want) > 1e-9 {
		t.Errorf("teacher rating = %v, want %v", profile.Rating, want)
	}
}

func TestSubmitReviewRequiresCompletedBooking(t *testing.T) {
	db := setupTestDB(t)
	teacher := seedProfile(t, db, models.RoleTeacher)
	student := seedProfile(t, db, models.RoleStudent)
	lesson := seedLesson(t, db, teacher.ID, 100)

	for _, status := range []string{models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled} {
		booking := seedBooking(t, db, lesson, student.ID, status)
		_, err := SubmitReview(db, booking.ID, student.ID, 5, "")
		if apperrors.KindOf(err) != apperrors.KindState {
			t.Errorf("review on %s booking should be a State error, got %v", status, err)
		}
	}
}

func TestSubmitReviewRequiresBookingStudent(t *testing.T) {
	db := setupTestDB(t)
	teacher := seedProfile(t, db, models.RoleTeacher)
	student := seedProfile(t, db, models.RoleStudent)
	intruder := seedProfile(t, db, models.RoleStudent)
	lesson := seedLesson(t, db, teacher.ID, 100)
	booking := seedBooking(t, db, lesson, student.ID, models.BookingStatusCompleted)

	_, err := SubmitReview(db, booking.ID, intruder.ID, 5, "")
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Errorf("expected PermissionDenied for non-participant, got %v", err)
	}
}

func TestSubmitReviewUnknownBooking(t *testing.T) {
	db := setupTestDB(t)
	student := seedProfile(t, db, models.RoleStudent)

	_, err := SubmitReview(db, uuid.New(), student.ID, 4, "")
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expected NotFound for unknown booking, got %v", err)
	}
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	student := seedProfile(t, db, models.RoleStudent)

	for _, rating := range []int{0, 6, -1} {
		_, err := SubmitReview(db, uuid.New(), student.ID, rating, "")
		if apperrors.KindOf(err) != apperrors.KindValidation {
			t.Errorf("rating %d should be a Validation error, got %v", rating, err)
		}
	}
}

func TestSecondReviewUpdatesInPlace(t *testing.T) {
	db := setupTestDB(t)
	teacher := seedProfile(t, db, models.RoleTeacher)
	student := seedProfile(t, db, models.RoleStudent)
	lesson := seedLesson(t, db, teacher.ID, 100)
	booking := seedBooking(t, db, lesson, student.ID, models.BookingStatusCompleted)

	if _, err := SubmitReview(db, booking.ID, student.ID, 4, "good"); err != nil {
		t.Fatalf("first SubmitReview failed: %v", err)
	}
	if _, err := SubmitReview(db, booking.ID, student.ID, 2, "changed my mind"); err != nil {
		t.Fatalf("second SubmitReview failed: %v", err)
	}

	var count int64
	db.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count != 1 {
		t.Errorf("review count = %d, want 1 (update, not duplicate)", count)
	}

	var profile models.Profile
	db.First(&profile, "id = ?", teacher.ID)
	if profile.Rating != 2.0 {
		t.Errorf("teacher rating = %v, want 2.0 after the update", profile.Rating)
	}
}

func TestRatingDefaultsToZero(t *testing.T) {
	db := setupTestDB(t)
	teacher := seedProfile(t, db, models.RoleTeacher)

	var profile models.Profile
	db.First(&profile, "id = ?", teacher.ID)
	if profile.Rating != 0 {
		t.Errorf("teacher with no reviews should have rating 0, got %v", profile.Rating)
	}
}
