package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope every endpoint answers with. Read
// paths that find nothing still answer success with an empty data value.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PaginationMeta describes the page window of a list response.
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func statusLabel(code int) string {
	switch {
	case code < 400:
		return "success"
	case code < 500:
		return "error"
	default:
		return "fail"
	}
}

func write(c *fiber.Ctx, code int, message string, data, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  statusLabel(code),
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// SuccessResponse sends a success envelope.
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return write(c, code, message, data, nil)
}

// SuccessWithMetaResponse sends a success envelope with pagination meta.
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data, meta interface{}) error {
	return write(c, code, message, data, meta)
}

// ErrorResponse sends an error envelope with no data.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return write(c, code, message, nil, nil)
}

// CreatePaginationMeta derives the page window from a total row count.
// Callers pass the effective window they served; out-of-range values are
// normalized so the division below is always defined.
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
