package policy

import (
	"testing"

	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
)

var (
	teacherID  = uuid.New()
	studentID  = uuid.New()
	adminID    = uuid.New()
	strangerID = uuid.New()

	teacher  = Caller{ID: teacherID, Role: models.RoleTeacher}
	student  = Caller{ID: studentID, Role: models.RoleStudent}
	admin    = Caller{ID: adminID, Role: models.RoleAdmin}
	stranger = Caller{ID: strangerID, Role: models.RoleStudent}
)

func TestProfilePolicy(t *testing.T) {
	profile := models.Profile{ID: teacherID, Role: models.RoleTeacher}

	if !CanReadProfile(stranger, profile) {
		t.Error("profile reads are public")
	}
	if !CanUpdateProfile(teacher, profile) {
		t.Error("owner can update own profile")
	}
	if !CanUpdateProfile(admin, profile) {
		t.Error("admin can update any profile")
	}
	if CanUpdateProfile(stranger, profile) {
		t.Error("stranger cannot update another profile")
	}
}

func TestSubjectPolicy(t *testing.T) {
	if !CanWriteSubject(admin) {
		t.Error("admin can manage subjects")
	}
	if CanWriteSubject(teacher) || CanWriteSubject(student) {
		t.Error("only admin can manage subjects")
	}
}

func TestLessonPolicy(t *testing.T) {
	active := models.Lesson{TeacherID: teacherID, IsActive: true}
	inactive := models.Lesson{TeacherID: teacherID, IsActive: false}

	if !CanReadLesson(stranger, active) {
		t.Error("active lessons are public")
	}
	if CanReadLesson(stranger, inactive) {
		t.Error("inactive lessons are hidden from the public")
	}
	if !CanReadLesson(teacher, inactive) {
		t.Error("owner still sees an inactive lesson")
	}

	if !CanCreateLesson(teacher, teacherID) {
		t.Error("teacher can publish own lesson")
	}
	if CanCreateLesson(teacher, uuid.New()) {
		t.Error("teacher cannot publish for someone else")
	}
	if CanCreateLesson(student, studentID) {
		t.Error("students cannot publish lessons")
	}

	if !CanUpdateLesson(teacher, active) {
		t.Error("owner can update lesson")
	}
	if CanUpdateLesson(admin, active) {
		t.Error("lesson writes are owner-only")
	}
}

func TestBookingPolicy(t *testing.T) {
	booking := models.Booking{StudentID: studentID, TeacherID: teacherID}

	if !CanCreateBooking(student) {
		t.Error("students create bookings")
	}
	if CanCreateBooking(teacher) {
		t.Error("teachers do not create bookings")
	}

	for _, c := range []Caller{student, teacher, admin} {
		if !CanReadBooking(c, booking) {
			t.Errorf("%s should read the booking", c.Role)
		}
	}
	if CanReadBooking(stranger, booking) {
		t.Error("stranger cannot read the booking")
	}

	if !CanUpdateBooking(student, booking) || !CanUpdateBooking(teacher, booking) {
		t.Error("both participants can update the booking")
	}
	if CanUpdateBooking(admin, booking) {
		t.Error("booking writes are participant-only")
	}
}

func TestTransactionPolicy(t *testing.T) {
	txn := models.Transaction{StudentID: studentID, TeacherID: teacherID}

	for _, c := range []Caller{student, teacher, admin} {
		if !CanReadTransaction(c, txn) {
			t.Errorf("%s should read the transaction", c.Role)
		}
	}
	if CanReadTransaction(stranger, txn) {
		t.Error("stranger cannot read the transaction")
	}

	if !CanRecordPayment(admin) {
		t.Error("the platform records payments")
	}
	if CanRecordPayment(student) || CanRecordPayment(teacher) {
		t.Error("participants never write transactions directly")
	}
}

func TestReviewPolicy(t *testing.T) {
	booking := models.Booking{StudentID: studentID, TeacherID: teacherID}

	if !CanSubmitReview(student, booking) {
		t.Error("the booking's student can review")
	}
	if CanSubmitReview(teacher, booking) || CanSubmitReview(stranger, booking) {
		t.Error("only the booking's student can review")
	}
}

func TestMaterialPolicy(t *testing.T) {
	lesson := models.Lesson{TeacherID: teacherID, IsActive: true}

	if !CanAddMaterial(teacher, lesson) {
		t.Error("owner attaches materials")
	}
	if CanAddMaterial(student, lesson) {
		t.Error("students cannot attach materials")
	}

	if !CanReadMaterials(teacher, lesson, false) {
		t.Error("owner reads materials")
	}
	if !CanReadMaterials(student, lesson, true) {
		t.Error("booked student reads materials")
	}
	if CanReadMaterials(stranger, lesson, false) {
		t.Error("unbooked stranger cannot read materials")
	}
}
