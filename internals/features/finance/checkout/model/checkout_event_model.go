// file: internals/features/finance/checkout/model/checkout_event_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type CheckoutEventStatus string

const (
	CheckoutEventStatusReceived   CheckoutEventStatus = "received"
	CheckoutEventStatusProcessing CheckoutEventStatus = "processing"
	CheckoutEventStatusSuccess    CheckoutEventStatus = "success"
	CheckoutEventStatusFailed     CheckoutEventStatus = "failed"
)

/*
  checkout_events = LOG WEBHOOK PROVIDER + GUARD DEDUP
  - Satu row per event id provider (unique) → redelivery event yang sama
    tidak pernah memproses ulang counter.
  - Nyimpen raw payload & signature buat debug / replay.
*/

type CheckoutEventModel struct {
	CheckoutEventID string `gorm:"column:checkout_event_id;primaryKey" json:"checkout_event_id"`

	CheckoutEventProvider   string  `gorm:"column:checkout_event_provider;not null;default:'stripe'" json:"checkout_event_provider"`
	CheckoutEventType       string  `gorm:"column:checkout_event_type;not null" json:"checkout_event_type"`
	CheckoutEventExternalID string  `gorm:"column:checkout_event_external_id;not null;uniqueIndex" json:"checkout_event_external_id"`
	CheckoutEventSessionID  *string `gorm:"column:checkout_event_session_id;index" json:"checkout_event_session_id"`

	CheckoutEventPayload   datatypes.JSON `gorm:"column:checkout_event_payload" json:"checkout_event_payload"`
	CheckoutEventSignature *string        `gorm:"column:checkout_event_signature" json:"checkout_event_signature"`

	CheckoutEventStatus CheckoutEventStatus `gorm:"column:checkout_event_status;not null;default:'received'" json:"checkout_event_status"`
	CheckoutEventError  *string             `gorm:"column:checkout_event_error" json:"checkout_event_error"`

	CheckoutEventReceivedAt  time.Time  `gorm:"column:checkout_event_received_at;not null" json:"checkout_event_received_at"`
	CheckoutEventProcessedAt *time.Time `gorm:"column:checkout_event_processed_at" json:"checkout_event_processed_at"`

	CheckoutEventCreatedAt time.Time `gorm:"column:checkout_event_created_at;not null" json:"checkout_event_created_at"`
	CheckoutEventUpdatedAt time.Time `gorm:"column:checkout_event_updated_at;not null" json:"checkout_event_updated_at"`
}

func (CheckoutEventModel) TableName() string { return "checkout_events" }
