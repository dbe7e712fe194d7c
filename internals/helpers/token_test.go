package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func extractToken(t *testing.T, authorization string) string {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return c.SendString(GetRawAccessToken(c))
	})

	req := httptest.NewRequest("GET", "/x", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func TestGetRawAccessToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer normal", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"spasi ekstra", "Bearer   abc.def.ghi", "abc.def.ghi"},
		{"tanpa header", "", ""},
		{"skema lain", "Basic abc", ""},
		{"bearer kosong", "Bearer ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractToken(t, tc.header); got != tc.want {
				t.Errorf("got %q, mau %q", got, tc.want)
			}
		})
	}
}
