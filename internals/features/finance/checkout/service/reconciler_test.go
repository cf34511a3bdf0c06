// file: internals/features/finance/checkout/service/reconciler_test.go
package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "bootcampku_backend/internals/features/courses/courses/model"
	enrollModel "bootcampku_backend/internals/features/enrollments/enrollments/model"
	model "bootcampku_backend/internals/features/finance/checkout/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// satu koneksi supaya :memory: konsisten dan tx serial
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&courseModel.CourseModel{},
		&enrollModel.EnrollmentModel{},
		&model.CheckoutEventModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, id string, maxStudents string, enrollments int) {
	t.Helper()
	now := time.Now().UTC()
	c := courseModel.CourseModel{
		CourseID:          id,
		CourseTitle:       "Data Analytics Bootcamp",
		CoursePrice:       "99.00",
		CourseMaxStudents: maxStudents,
		CourseStartDate:   "2026-09-15",
		CourseEnrollments: enrollments,
		CourseStatus:      courseModel.CourseStatusActive,
		CourseCreatedAt:   now,
		CourseUpdatedAt:   now,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) SendAsync(to, subject, html string) <-chan error {
	f.mu.Lock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, HTML: html})
	f.mu.Unlock()
	ch := make(chan error, 1)
	ch <- nil
	close(ch)
	return ch
}

func completedEvent(eventID, sessionID, courseID string) CompletedEvent {
	return CompletedEvent{
		EventID:     eventID,
		EventType:   "checkout.session.completed",
		SessionID:   sessionID,
		PaymentID:   "pi_" + sessionID,
		AmountTotal: 9900,
		Metadata: map[string]string{
			"courseId":     courseID,
			"courseTitle":  "Data Analytics Bootcamp",
			"studentEmail": "jo@example.com",
			"studentName":  "Jo Bloggs",
		},
		RawPayload: []byte(`{"id":"` + eventID + `"}`),
		Signature:  "t=1,v1=test",
	}
}

func courseEnrollments(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var c courseModel.CourseModel
	if err := db.First(&c, "course_id = ?", id).Error; err != nil {
		t.Fatalf("load course: %v", err)
	}
	return c.CourseEnrollments
}

func TestProcessRecordsEnrollmentAndIncrementsCounter(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-1", "25", 3)
	mail := &fakeMailer{}
	rec := NewReconciler(db, mail)

	out, err := rec.Process(context.Background(), completedEvent("evt_1", "cs_1", "course-1"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out != OutcomeProcessed {
		t.Fatalf("outcome = %s, want %s", out, OutcomeProcessed)
	}

	if got := courseEnrollments(t, db, "course-1"); got != 4 {
		t.Fatalf("course_enrollments = %d, want 4", got)
	}

	var enr enrollModel.EnrollmentModel
	if err := db.First(&enr, "enrollment_id = ?", "cs_1").Error; err != nil {
		t.Fatalf("enrollment not written: %v", err)
	}
	if enr.EnrollmentCourseID != "course-1" {
		t.Errorf("enrollment course = %s", enr.EnrollmentCourseID)
	}
	if enr.EnrollmentStudentEmail != "jo@example.com" {
		t.Errorf("enrollment email = %s", enr.EnrollmentStudentEmail)
	}
	if enr.EnrollmentPaymentAmount != 99.00 {
		t.Errorf("payment amount = %v, want 99.00 (9900 minor units)", enr.EnrollmentPaymentAmount)
	}
	if enr.EnrollmentPaymentID == nil || *enr.EnrollmentPaymentID != "pi_cs_1" {
		t.Errorf("payment id = %v", enr.EnrollmentPaymentID)
	}
	if enr.EnrollmentStatus != enrollModel.EnrollmentStatusActive {
		t.Errorf("status = %s", enr.EnrollmentStatus)
	}

	var ev model.CheckoutEventModel
	if err := db.First(&ev, "checkout_event_external_id = ?", "evt_1").Error; err != nil {
		t.Fatalf("audit row not written: %v", err)
	}
	if ev.CheckoutEventStatus != model.CheckoutEventStatusSuccess {
		t.Errorf("event status = %s, want success", ev.CheckoutEventStatus)
	}
	if ev.CheckoutEventProcessedAt == nil {
		t.Errorf("processed_at not set")
	}
}

func TestProcessDuplicateEventDoesNotDoubleCount(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-1", "25", 0)
	rec := NewReconciler(db, &fakeMailer{})

	ev := completedEvent("evt_dup", "cs_dup", "course-1")
	if _, err := rec.Process(context.Background(), ev); err != nil {
		t.Fatalf("first process: %v", err)
	}

	out, err := rec.Process(context.Background(), ev)
	if err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	if out != OutcomeDuplicate {
		t.Fatalf("outcome = %s, want %s", out, OutcomeDuplicate)
	}

	if got := courseEnrollments(t, db, "course-1"); got != 1 {
		t.Fatalf("course_enrollments = %d, want 1 (exactly once)", got)
	}

	var enrCount int64
	db.Model(&enrollModel.EnrollmentModel{}).Count(&enrCount)
	if enrCount != 1 {
		t.Fatalf("enrollments = %d, want 1", enrCount)
	}

	var evCount int64
	db.Model(&model.CheckoutEventModel{}).Where("checkout_event_external_id = ?", "evt_dup").Count(&evCount)
	if evCount != 1 {
		t.Fatalf("event rows = %d, want 1", evCount)
	}
}

func TestProcessConcurrentDistinctEvents(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-1", "100", 0)
	rec := NewReconciler(db, &fakeMailer{})

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ev := completedEvent(
				fmt.Sprintf("evt_%d", i),
				fmt.Sprintf("cs_%d", i),
				"course-1",
			)
			if _, err := rec.Process(context.Background(), ev); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent process: %v", err)
	}

	if got := courseEnrollments(t, db, "course-1"); got != n {
		t.Fatalf("course_enrollments = %d, want %d (atomic increment)", got, n)
	}
}

func TestProcessWithoutCourseMetadataIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-1", "25", 5)
	rec := NewReconciler(db, &fakeMailer{})

	ev := completedEvent("evt_nometa", "cs_nometa", "course-1")
	ev.Metadata = map[string]string{} // session dibuat di luar flow kita

	out, err := rec.Process(context.Background(), ev)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out != OutcomeNoCourse {
		t.Fatalf("outcome = %s, want %s", out, OutcomeNoCourse)
	}

	if got := courseEnrollments(t, db, "course-1"); got != 5 {
		t.Fatalf("course_enrollments changed to %d", got)
	}
	var enrCount int64
	db.Model(&enrollModel.EnrollmentModel{}).Count(&enrCount)
	if enrCount != 0 {
		t.Fatalf("enrollments = %d, want 0", enrCount)
	}

	// tetap tercatat di audit log
	var ev2 model.CheckoutEventModel
	if err := db.First(&ev2, "checkout_event_external_id = ?", "evt_nometa").Error; err != nil {
		t.Fatalf("audit row missing: %v", err)
	}
}

func TestProcessUnknownCourseRollsBack(t *testing.T) {
	db := setupTestDB(t)
	rec := NewReconciler(db, &fakeMailer{})

	_, err := rec.Process(context.Background(), completedEvent("evt_x", "cs_x", "course-missing"))
	if err == nil {
		t.Fatal("want error for unknown course")
	}

	// rollback harus membuang row event, supaya retry provider bisa jalan
	var evCount int64
	db.Model(&model.CheckoutEventModel{}).Where("checkout_event_external_id = ?", "evt_x").Count(&evCount)
	if evCount != 0 {
		t.Fatalf("event rows = %d, want 0 after rollback", evCount)
	}
}

func TestProcessSoftDeletedCourseRollsBack(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-del", "25", 0)
	now := time.Now().UTC()
	if err := db.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", "course-del").
		Update("course_deleted_at", &now).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	rec := NewReconciler(db, &fakeMailer{})

	if _, err := rec.Process(context.Background(), completedEvent("evt_d", "cs_d", "course-del")); err == nil {
		t.Fatal("want error for soft-deleted course")
	}
	if got := courseEnrollments(t, db, "course-del"); got != 0 {
		t.Fatalf("course_enrollments = %d, want 0", got)
	}
}

func TestProcessRedeliveryOverwritesNothing(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-1", "25", 0)
	rec := NewReconciler(db, &fakeMailer{})

	if _, err := rec.Process(context.Background(), completedEvent("evt_a", "cs_same", "course-1")); err != nil {
		t.Fatalf("first: %v", err)
	}

	// event BEDA tapi session sama → upsert enrollment, counter tetap naik
	// (dua completed event untuk satu session praktisnya tidak terjadi,
	// tapi semantik set/overwrite harus tahan)
	if _, err := rec.Process(context.Background(), completedEvent("evt_b", "cs_same", "course-1")); err != nil {
		t.Fatalf("second: %v", err)
	}

	var enrCount int64
	db.Model(&enrollModel.EnrollmentModel{}).Where("enrollment_id = ?", "cs_same").Count(&enrCount)
	if enrCount != 1 {
		t.Fatalf("enrollment rows = %d, want 1 (upsert)", enrCount)
	}
}

func TestProcessFillsLastSpot(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-1", "20", 19)
	rec := NewReconciler(db, &fakeMailer{})

	if _, err := rec.Process(context.Background(), completedEvent("evt_last", "cs_last", "course-1")); err != nil {
		t.Fatalf("process: %v", err)
	}

	var c courseModel.CourseModel
	if err := db.First(&c, "course_id = ?", "course-1").Error; err != nil {
		t.Fatalf("load course: %v", err)
	}
	if c.CourseEnrollments != 20 {
		t.Fatalf("course_enrollments = %d, want 20", c.CourseEnrollments)
	}
	if c.SpotsRemaining() != 0 {
		t.Fatalf("spots remaining = %d, want 0", c.SpotsRemaining())
	}
}

func TestProcessSendsConfirmationEmail(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db, "course-1", "25", 0)
	mail := &fakeMailer{}
	rec := NewReconciler(db, mail)

	if _, err := rec.Process(context.Background(), completedEvent("evt_mail", "cs_mail", "course-1")); err != nil {
		t.Fatalf("process: %v", err)
	}

	mail.mu.Lock()
	defer mail.mu.Unlock()
	if len(mail.sent) != 1 {
		t.Fatalf("emails sent = %d, want 1", len(mail.sent))
	}
	if mail.sent[0].To != "jo@example.com" {
		t.Errorf("email to = %s", mail.sent[0].To)
	}
	if mail.sent[0].Subject == "" {
		t.Errorf("empty subject")
	}
}
