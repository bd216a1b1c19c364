// Package policy centralizes the per-entity authorization rules so
// every handler evaluates the same table before touching the store.
//
// Profile reads use the open variant: any caller may read any profile.
package policy

import (
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
)

type Caller struct {
	ID   uuid.UUID
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

func CanReadProfile(Caller, models.Profile) bool {
	return true
}

func CanUpdateProfile(c Caller, p models.Profile) bool {
	return c.ID == p.ID || c.IsAdmin()
}

func CanWriteSubject(c Caller) bool {
	return c.IsAdmin()
}

func CanReadLesson(c Caller, l models.Lesson) bool {
	return l.IsActive || c.ID == l.TeacherID
}

func CanCreateLesson(c Caller, teacherID uuid.UUID) bool {
	return c.Role == models.RoleTeacher && c.ID == teacherID
}

func CanUpdateLesson(c Caller, l models.Lesson) bool {
	return c.ID == l.TeacherID
}

func CanCreateBooking(c Caller) bool {
	return c.Role == models.RoleStudent
}

func CanReadBooking(c Caller, b models.Booking) bool {
	return c.ID == b.StudentID || c.ID == b.TeacherID || c.IsAdmin()
}

func CanUpdateBooking(c Caller, b models.Booking) bool {
	return c.ID == b.StudentID || c.ID == b.TeacherID
}

func CanReadTransaction(c Caller, t models.Transaction) bool {
	return c.ID == t.StudentID || c.ID == t.TeacherID || c.IsAdmin()
}

// CanRecordPayment: transactions are written by the system on behalf
// of the payment collaborator, never by a student or teacher directly.
func CanRecordPayment(c Caller) bool {
	return c.IsAdmin()
}

func CanSubmitReview(c Caller, b models.Booking) bool {
	return c.ID == b.StudentID
}

func CanAddMaterial(c Caller, l models.Lesson) bool {
	return c.ID == l.TeacherID
}

func CanReadMaterials(c Caller, l models.Lesson, hasBooking bool) bool {
	return c.ID == l.TeacherID || hasBooking
}
