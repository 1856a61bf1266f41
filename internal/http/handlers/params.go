package handlers

import (
	"strconv"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/repositories"

	"github.com/gin-gonic/gin"
)

func pageRequest(c *gin.Context) repositories.PageRequest {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return repositories.PageRequest{Page: page, Limit: limit}
}

func sortParams(c *gin.Context) (string, string) {
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	return sortBy, sortOrder
}

func queryString(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}

func queryInt64(c *gin.Context, name string) *int64 {
	if v, ok := c.GetQuery(name); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return &n
		}
	}
	return nil
}

func queryBool(c *gin.Context, name string) *bool {
	if v, ok := c.GetQuery(name); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}

func queryDate(c *gin.Context, name string) *time.Time {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

// jobFilter assembles the sparse job filter from query parameters; absent
// parameters contribute nothing.
func jobFilter(c *gin.Context) repositories.JobFilter {
	f := repositories.JobFilter{
		MinSalary:   queryInt64(c, "minSalary"),
		MaxSalary:   queryInt64(c, "maxSalary"),
		Location:    queryString(c, "location"),
		CompanyName: queryString(c, "companyName"),
		Title:       queryString(c, "title"),
		StartDate:   queryDate(c, "startDate"),
		EndDate:     queryDate(c, "endDate"),
	}
	if v := queryString(c, "employmentType"); v != nil {
		et := domain.EmploymentType(*v)
		if et.Valid() {
			f.EmploymentType = &et
		}
	}
	if v := queryString(c, "workArrangement"); v != nil {
		wa := domain.WorkArrangement(*v)
		if wa.Valid() {
			f.WorkArrangement = &wa
		}
	}
	return f
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
