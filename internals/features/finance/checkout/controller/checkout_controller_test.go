// file: internals/features/finance/checkout/controller/checkout_controller_test.go
package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollModel "bootcampku_backend/internals/features/enrollments/enrollments/model"
	service "bootcampku_backend/internals/features/finance/checkout/service"
)

type fakeGateway struct {
	lastInput *service.CreateSessionInput
	session   *service.CheckoutSession
	err       error
}

func (f *fakeGateway) CreateSession(ctx context.Context, in service.CreateSessionInput) (*service.CheckoutSession, error) {
	f.lastInput = &in
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func (f *fakeGateway) GetSession(ctx context.Context, id string) (*service.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func newCheckoutApp(t *testing.T, db *gorm.DB, gw service.Gateway) *fiber.App {
	t.Helper()
	app := fiber.New()
	NewCheckoutController(db, gw).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func validCheckoutBody(courseID string) map[string]interface{} {
	return map[string]interface{}{
		"courseId":    courseID,
		"courseTitle": "Web Development Bootcamp",
		"coursePrice": "150.00",
		"customerInfo": map[string]string{
			"email":     "sam@example.com",
			"firstName": "Sam",
			"lastName":  "Jones",
		},
	}
}

func TestCreateCheckoutSessionMissingFields(t *testing.T) {
	db := setupCtrlDB(t)
	gw := &fakeGateway{}
	app := newCheckoutApp(t, db, gw)

	body := validCheckoutBody("course-1")
	delete(body, "courseId")

	status, _ := postJSON(t, app, "/checkout-sessions", body)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if gw.lastInput != nil {
		t.Fatal("gateway must not be called on invalid input")
	}
}

func TestCreateCheckoutSessionInvalidPrice(t *testing.T) {
	db := setupCtrlDB(t)
	app := newCheckoutApp(t, db, &fakeGateway{})

	body := validCheckoutBody("course-1")
	body["coursePrice"] = "abc"

	status, _ := postJSON(t, app, "/checkout-sessions", body)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestCreateCheckoutSessionUnknownCourse(t *testing.T) {
	db := setupCtrlDB(t)
	app := newCheckoutApp(t, db, &fakeGateway{})

	status, _ := postJSON(t, app, "/checkout-sessions", validCheckoutBody("course-missing"))
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestCreateCheckoutSessionCourseFull(t *testing.T) {
	db := setupCtrlDB(t)
	seedCtrlCourse(t, db, "course-full", "10", 10)
	gw := &fakeGateway{}
	app := newCheckoutApp(t, db, gw)

	status, _ := postJSON(t, app, "/checkout-sessions", validCheckoutBody("course-full"))
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if gw.lastInput != nil {
		t.Fatal("gateway must not be called for full course")
	}
}

func TestCreateCheckoutSessionSuccess(t *testing.T) {
	db := setupCtrlDB(t)
	seedCtrlCourse(t, db, "course-1", "25", 3)
	gw := &fakeGateway{session: &service.CheckoutSession{ID: "cs_test_abc"}}
	app := newCheckoutApp(t, db, gw)

	status, raw := postJSON(t, app, "/checkout-sessions", validCheckoutBody("course-1"))
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", status, raw)
	}

	var body map[string]string
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["sessionId"] != "cs_test_abc" {
		t.Errorf("sessionId = %q", body["sessionId"])
	}

	if gw.lastInput == nil {
		t.Fatal("gateway not called")
	}
	if gw.lastInput.UnitAmount != 15000 {
		t.Errorf("unit amount = %d, want 15000 (150.00 x100)", gw.lastInput.UnitAmount)
	}
	if gw.lastInput.CustomerEmail != "sam@example.com" {
		t.Errorf("email = %s", gw.lastInput.CustomerEmail)
	}
	if gw.lastInput.StudentName != "Sam Jones" {
		t.Errorf("student name = %s", gw.lastInput.StudentName)
	}

	// tidak boleh ada write lokal sebelum webhook
	var enrCount int64
	db.Model(&enrollModel.EnrollmentModel{}).Count(&enrCount)
	if enrCount != 0 {
		t.Fatalf("enrollments = %d, want 0 before webhook", enrCount)
	}
}

func TestCreateCheckoutSessionGatewayFailure(t *testing.T) {
	db := setupCtrlDB(t)
	seedCtrlCourse(t, db, "course-1", "25", 0)
	gw := &fakeGateway{err: errors.New("stripe: boom")}
	app := newCheckoutApp(t, db, gw)

	status, _ := postJSON(t, app, "/checkout-sessions", validCheckoutBody("course-1"))
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
}
