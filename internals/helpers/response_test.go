package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type errorEnvelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func doRequest(t *testing.T, handler fiber.Handler) (int, errorEnvelope) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	return resp.StatusCode, env
}

func TestErrorEnvelopeCodes(t *testing.T) {
	cases := []struct {
		status   int
		wantCode string
	}{
		{fiber.StatusBadRequest, CodeValidation},
		{fiber.StatusUnauthorized, CodeAuth},
		{fiber.StatusForbidden, CodeForbidden},
		{fiber.StatusNotFound, CodeNotFound},
		{fiber.StatusConflict, CodeConflict},
		{fiber.StatusInternalServerError, CodePersistence},
	}

	for _, tc := range cases {
		status, env := doRequest(t, func(c *fiber.Ctx) error {
			return Error(c, tc.status, "pesan uji")
		})
		if status != tc.status {
			t.Errorf("status = %d, mau %d", status, tc.status)
		}
		if env.Error != tc.wantCode {
			t.Errorf("status %d: error = %q, mau %q", tc.status, env.Error, tc.wantCode)
		}
		if env.Status != "error" {
			t.Errorf("field status = %q, mau %q", env.Status, "error")
		}
		if env.Code != tc.status {
			t.Errorf("field code = %d, mau %d", env.Code, tc.status)
		}
		if env.Message != "pesan uji" {
			t.Errorf("message = %q", env.Message)
		}
	}
}

func TestErrorWithCodeOverridesTaxonomy(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return ErrorWithCode(c, fiber.StatusUnauthorized, CodeNotFound, "Pengguna tidak ditemukan")
	})
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, mau 401", status)
	}
	if env.Error != CodeNotFound {
		t.Errorf("error = %q, mau %q", env.Error, CodeNotFound)
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}
	v := validator.New()
	verr := v.Struct(payload{})

	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return ValidationError(c, verr)
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, mau 400", status)
	}
	if env.Error != CodeValidation {
		t.Errorf("error = %q, mau %q", env.Error, CodeValidation)
	}
	if env.Errors["Email"] == "" || env.Errors["Name"] == "" {
		t.Errorf("field error tidak lengkap: %v", env.Errors)
	}
}

func TestFromFiberError(t *testing.T) {
	status, env := doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusNotFound, "Pelajaran tidak ditemukan atau akses ditolak"))
	})
	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, mau 404", status)
	}
	if env.Error != CodeNotFound {
		t.Errorf("error = %q, mau %q", env.Error, CodeNotFound)
	}

	// Error ber-kode eksplisit dari service layer: 400 dengan kode CONFLICT,
	// bukan VALIDATION_ERROR bawaan status 400.
	status, env = doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, NewCodedError(fiber.StatusBadRequest, CodeConflict, "Ada murid duplikat di daftar"))
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, mau 400", status)
	}
	if env.Error != CodeConflict {
		t.Errorf("error = %q, mau %q", env.Error, CodeConflict)
	}

	status, env = doRequest(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, io.ErrUnexpectedEOF)
	})
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d, mau 500", status)
	}
	if env.Error != CodePersistence {
		t.Errorf("error = %q, mau %q", env.Error, CodePersistence)
	}
	if env.Message == io.ErrUnexpectedEOF.Error() {
		t.Error("detail error internal bocor ke response")
	}
}
