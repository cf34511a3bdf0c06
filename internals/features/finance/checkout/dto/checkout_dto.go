package dto

import (
	"errors"
	"strconv"
	"strings"
)

/* =========================================================
   CREATE CHECKOUT SESSION
   Wire format ngikutin frontend lama (camelCase).
========================================================= */

type CustomerInfo struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type CreateCheckoutSessionRequest struct {
	CourseID     string       `json:"courseId" validate:"required"`
	CourseTitle  string       `json:"courseTitle" validate:"required"`
	CoursePrice  string       `json:"coursePrice" validate:"required"`
	CustomerInfo CustomerInfo `json:"customerInfo" validate:"required"`
}

// UnitAmount konversi harga ke minor units provider (x100, truncate).
func (r *CreateCheckoutSessionRequest) UnitAmount() (int64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(r.CoursePrice), 64)
	if err != nil || price < 0 {
		return 0, errors.New("coursePrice must be a non-negative decimal string")
	}
	return int64(price * 100), nil
}

func (r *CreateCheckoutSessionRequest) StudentName() string {
	return strings.TrimSpace(r.CustomerInfo.FirstName + " " + r.CustomerInfo.LastName)
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}
