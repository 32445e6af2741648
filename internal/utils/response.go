package utils

import (
	"net/url"
	"strconv"

	"yamdb-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// PageResponse is the envelope of every list endpoint.
type PageResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// DetailResponse carries a single human-readable error.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ValidationResponse maps fields to their messages.
type ValidationResponse map[string][]string

// PageFromQuery reads ?page= and ?limit=.
func PageFromQuery(c *fiber.Ctx, defaultSize int) repository.Page {
	return repository.NewPage(c.QueryInt("page", 1), c.QueryInt("limit", defaultSize), defaultSize)
}

// SuccessResponse sends data as the whole body.
func SuccessResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// PaginatedResponse wraps results in the list envelope with links to the
// neighbouring pages.
func PaginatedResponse(c *fiber.Ctx, page repository.Page, total int64, results interface{}) error {
	return c.Status(fiber.StatusOK).JSON(CreatePageResponse(c, page, total, results))
}

func CreatePageResponse(c *fiber.Ctx, page repository.Page, total int64, results interface{}) PageResponse {
	totalPages := int((total + int64(page.Size) - 1) / int64(page.Size))

	resp := PageResponse{
		Count:   total,
		Results: results,
	}
	if page.Number < totalPages {
		resp.Next = pageLink(c, page.Number+1)
	}
	if page.Number > 1 {
		resp.Previous = pageLink(c, page.Number-1)
	}
	return resp
}

func pageLink(c *fiber.Ctx, number int) *string {
	u, err := url.Parse(c.OriginalURL())
	if err != nil {
		return nil
	}
	query := u.Query()
	query.Set("page", strconv.Itoa(number))
	u.RawQuery = query.Encode()

	link := c.BaseURL() + u.String()
	return &link
}

// ErrorResponse sends {"detail": message}.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(DetailResponse{Detail: message})
}

// ValidationErrorResponse sends field errors with status 400.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ValidationResponse(fields))
}
