package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", target, nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Paging
	}{
		{"default", "/x", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"page dan per_page", "/x?page=3&per_page=20", Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20}},
		{"alias limit", "/x?limit=50", Paging{Page: 1, PerPage: 50, Offset: 0, Limit: 50}},
		{"per_page melebihi max", "/x?per_page=9999", Paging{Page: 1, PerPage: 500, Offset: 0, Limit: 500}},
		{"nilai negatif", "/x?page=-2&per_page=-5", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"bukan angka", "/x?page=abc&per_page=def", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveFor(t, tc.target, 100, 500)
			if got != tc.want {
				t.Errorf("got %+v, mau %+v", got, tc.want)
			}
		})
	}
}
