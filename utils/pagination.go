package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const maxPageSize = 500

type Page struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePage reads ?page and ?limit. Missing, malformed or non-positive
// values fall back to page 1 and defaultLimit.
func ParsePage(c *fiber.Ctx, defaultLimit int) Page {
	page := positiveQuery(c, "page", 1)
	limit := positiveQuery(c, "limit", defaultLimit)
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return Page{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func positiveQuery(c *fiber.Ctx, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
