package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"photoevent-admin-go/internal/listquery"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// listParams extracts the table pipeline inputs from the query string:
// ?q=&sort=&dir=&page=&pageSize=. Missing or malformed values fall back to
// the pipeline defaults via Normalize.
func listParams(c *gin.Context) listquery.Params {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return listquery.Params{
		Query:      c.Query("q"),
		SortColumn: c.Query("sort"),
		Direction:  c.Query("dir"),
		Page:       page,
		PageSize:   pageSize,
	}.Normalize()
}
