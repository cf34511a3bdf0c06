// file: internals/features/finance/checkout/service/reconciler.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "bootcampku_backend/internals/features/courses/courses/model"
	enrollModel "bootcampku_backend/internals/features/enrollments/enrollments/model"
	model "bootcampku_backend/internals/features/finance/checkout/model"
	"bootcampku_backend/internals/helpers/mailer"
)

// ErrCourseNotFound: event bawa courseId tapi course tidak ada / sudah dihapus.
// Ini processing error (500), bukan 404 — provider boleh retry.
var ErrCourseNotFound = errors.New("course not found for checkout event")

/* =========================================================
   Mailer abstraction (best-effort, tidak pernah fail-kan webhook)
========================================================= */

type Mailer interface {
	SendAsync(to, subject, html string) <-chan error
}

/* =========================================================
   Reconciler
========================================================= */

type Outcome string

const (
	OutcomeProcessed Outcome = "processed"
	OutcomeNoCourse  Outcome = "no_course_metadata"
	OutcomeDuplicate Outcome = "duplicate_event"
)

// CompletedEvent: hasil parse event checkout.session.completed yang
// SUDAH lolos verifikasi signature di controller.
type CompletedEvent struct {
	EventID     string
	EventType   string
	SessionID   string
	PaymentID   string // payment intent
	AmountTotal int64  // minor units; 0 kalau provider tidak kirim
	Metadata    map[string]string
	RawPayload  []byte
	Signature   string
}

type Reconciler struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewReconciler(db *gorm.DB, m Mailer) *Reconciler {
	return &Reconciler{DB: db, Mailer: m}
}

// Process menjalankan step 4-7 reconciliation dalam SATU transaksi DB:
//  1. insert row checkout_events (unique event id = guard dedup);
//     kalau sudah ada → event redelivery, skip tanpa write lain
//  2. atomic increment course_enrollments (UPDATE ... + 1, bukan
//     read-modify-write) sekaligus existence check
//  3. upsert enrollment keyed by session id (set/overwrite semantics)
//
// Email konfirmasi dikirim SETELAH commit, async, best-effort.
func (s *Reconciler) Process(ctx context.Context, ev CompletedEvent) (Outcome, error) {
	now := time.Now().UTC()
	evRow := s.buildEventRow(ev, now)

	courseID := strings.TrimSpace(ev.Metadata["courseId"])
	if courseID == "" {
		// tidak ada yang perlu direkonsiliasi; catat audit saja
		evRow.CheckoutEventStatus = model.CheckoutEventStatusSuccess
		evRow.CheckoutEventProcessedAt = &now
		if err := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "checkout_event_external_id"}},
				DoNothing: true,
			}).Create(&evRow).Error; err != nil {
			log.Printf("[WARN] failed to record no-op checkout event %s: %v", ev.EventID, err)
		}
		return OutcomeNoCourse, nil
	}

	outcome := OutcomeProcessed
	var course courseModel.CourseModel
	var enr *enrollModel.EnrollmentModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "checkout_event_external_id"}},
			DoNothing: true,
		}).Create(&evRow)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// event id sudah pernah diproses → exactly-once guard
			outcome = OutcomeDuplicate
			return nil
		}

		res = tx.Model(&courseModel.CourseModel{}).
			Where("course_id = ? AND course_deleted_at IS NULL", courseID).
			UpdateColumn("course_enrollments", gorm.Expr("course_enrollments + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCourseNotFound
		}

		if err := tx.First(&course, "course_id = ?", courseID).Error; err != nil {
			return err
		}

		email := strings.TrimSpace(ev.Metadata["studentEmail"])
		if email != "" && ev.SessionID != "" {
			e := enrollModel.EnrollmentModel{
				EnrollmentID:            ev.SessionID,
				EnrollmentCourseID:      courseID,
				EnrollmentCourseName:    metaOr(ev.Metadata, "courseTitle", "Course Enrollment"),
				EnrollmentStudentEmail:  email,
				EnrollmentStudentName:   metaOr(ev.Metadata, "studentName", "Student"),
				EnrollmentPaymentAmount: float64(ev.AmountTotal) / 100,
				EnrollmentStatus:        enrollModel.EnrollmentStatusActive,
				EnrollmentCreatedAt:     now,
				EnrollmentUpdatedAt:     now,
			}
			if ev.PaymentID != "" {
				pid := ev.PaymentID
				e.EnrollmentPaymentID = &pid
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "enrollment_id"}},
				UpdateAll: true,
			}).Create(&e).Error; err != nil {
				return err
			}
			enr = &e
		}
		return nil
	})

	if err != nil {
		// rollback ikut membuang row event → event id tetap bebas,
		// retry berikutnya dari provider bisa diproses ulang
		log.Printf("[ERROR] reconcile event %s failed: %v", ev.EventID, err)
		return "", err
	}
	if outcome == OutcomeDuplicate {
		return outcome, nil
	}

	s.markEvent(ctx, ev.EventID, model.CheckoutEventStatusSuccess, "")

	if enr != nil && s.Mailer != nil {
		subject, html := mailer.BuildEnrollmentConfirmation(
			enr.EnrollmentStudentName,
			enr.EnrollmentCourseName,
			course.CourseStartDate,
			enr.EnrollmentPaymentAmount,
		)
		errCh := s.Mailer.SendAsync(enr.EnrollmentStudentEmail, subject, html)
		sessionID := ev.SessionID
		go func() {
			if mailErr := <-errCh; mailErr != nil {
				log.Printf("[WARN] confirmation email for session %s failed: %v", sessionID, mailErr)
			}
		}()
	}

	return outcome, nil
}

func (s *Reconciler) buildEventRow(ev CompletedEvent, now time.Time) model.CheckoutEventModel {
	row := model.CheckoutEventModel{
		CheckoutEventID:         uuid.NewString(),
		CheckoutEventProvider:   "stripe",
		CheckoutEventType:       ev.EventType,
		CheckoutEventExternalID: ev.EventID,
		CheckoutEventStatus:     model.CheckoutEventStatusProcessing,
		CheckoutEventReceivedAt: now,
		CheckoutEventCreatedAt:  now,
		CheckoutEventUpdatedAt:  now,
	}
	if ev.SessionID != "" {
		sid := ev.SessionID
		row.CheckoutEventSessionID = &sid
	}
	if len(ev.RawPayload) > 0 {
		row.CheckoutEventPayload = datatypes.JSON(ev.RawPayload)
	}
	if ev.Signature != "" {
		sig := ev.Signature
		row.CheckoutEventSignature = &sig
	}
	return row
}

// markEvent: update status audit log setelah commit, best-effort.
func (s *Reconciler) markEvent(ctx context.Context, externalID string, status model.CheckoutEventStatus, errMsg string) {
	now := time.Now().UTC()
	updates := map[string]interface{}{
		"checkout_event_status":       status,
		"checkout_event_processed_at": &now,
		"checkout_event_updated_at":   now,
	}
	if errMsg != "" {
		updates["checkout_event_error"] = errMsg
	}
	if err := s.DB.WithContext(ctx).Model(&model.CheckoutEventModel{}).
		Where("checkout_event_external_id = ?", externalID).
		Updates(updates).Error; err != nil {
		log.Printf("[WARN] failed to mark checkout event %s as %s: %v", externalID, status, err)
	}
}

func metaOr(m map[string]string, key, def string) string {
	if v := strings.TrimSpace(m[key]); v != "" {
		return v
	}
	return def
}
