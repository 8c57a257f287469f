package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		query string
		want  Page
	}{
		{"", Page{Page: 1, Limit: 10, Offset: 0}},
		{"?page=3&limit=20", Page{Page: 3, Limit: 20, Offset: 40}},
		{"?page=0&limit=-5", Page{Page: 1, Limit: 10, Offset: 0}},
		{"?page=abc&limit=2", Page{Page: 1, Limit: 2, Offset: 0}},
		{"?page=2&limit=10000", Page{Page: 2, Limit: 500, Offset: 500}},
	}

	for _, tt := range tests {
		var got Page
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			got = ParsePage(c, 10)
			return c.SendStatus(fiber.StatusNoContent)
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Equal(t, tt.want, got, tt.query)
	}
}
