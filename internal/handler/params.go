package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikol804/dotapost/internal/repository"
)

// DefaultPageSize is used when a listing request names no limit.
const DefaultPageSize = 10

// PageQuery selects a window of a listing either by limit/offset or by a
// 1-based page number of limit items.
type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
	Page   int `form:"page" binding:"omitempty,min=1"`
}

// Bounds converts the query into repository bounds. A page number wins over
// an explicit offset.
func (q PageQuery) Bounds() repository.Page {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	offset := q.Offset
	if q.Page > 0 {
		offset = (q.Page - 1) * limit
	}
	return repository.Page{Limit: limit, Offset: offset}
}

func bindPage(c *gin.Context) (repository.Page, bool) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return repository.Page{}, false
	}
	return q.Bounds(), true
}

// permalink is the path of a post detail URL.
type permalink struct {
	Year  int
	Month int
	Slug  string
}

// bindPermalink reads :year/:month/:slug. Paths that cannot name a post are
// reported as not found, the same as a post that does not exist.
func bindPermalink(c *gin.Context) (permalink, bool) {
	year, yerr := strconv.Atoi(c.Param("year"))
	month, merr := strconv.Atoi(c.Param("month"))
	if yerr != nil || merr != nil || month < 1 || month > 12 || c.Param("slug") == "" {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNotFound})
		return permalink{}, false
	}
	return permalink{Year: year, Month: month, Slug: c.Param("slug")}, true
}
