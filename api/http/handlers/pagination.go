package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

func parsePageQuery(c *fiber.Ctx) resume.ListParams {
	p := resume.ListParams{Page: 1, Limit: 10}
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			p.Limit = n
		}
	}
	p.Search = strings.TrimSpace(c.Query("search"))
	return p
}
