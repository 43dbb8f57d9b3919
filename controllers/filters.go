package controllers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Arnab1999india/bazaar/services"
	"github.com/gin-gonic/gin"
)

// attributes[color]=red,blue style facet parameters.
var attributeParam = regexp.MustCompile(`^attributes\[([a-zA-Z0-9_-]+)\]$`)

// ParseProductQuery reads listing parameters from the request. Parsing is
// permissive: a malformed value drops its filter dimension instead of
// failing the request.
func ParseProductQuery(c *gin.Context) services.ProductQuery {
	q := services.ProductQuery{
		Search:      firstParam(c, "q", "search"),
		Category:    strings.TrimSpace(c.Query("category")),
		Brand:       strings.TrimSpace(c.Query("brand")),
		StockStatus: strings.TrimSpace(c.Query("stockStatus")),
		SortBy:      firstParam(c, "sort", "sortBy"),
		SortOrder:   strings.TrimSpace(c.Query("sortOrder")),
		Page:        parseInt(c.Query("page")),
		Limit:       parseInt(c.Query("limit")),
	}

	q.MinPrice = parseFloat(c.Query("minPrice"))
	q.MaxPrice = parseFloat(c.Query("maxPrice"))
	q.RatingGte = parseFloat(c.Query("ratingGte"))

	if raw := c.Query("inStock"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			q.InStock = &v
		}
	}

	q.Attributes = parseAttributes(c)

	return q
}

// parseAttributes collects attributes[name]=v1,v2 parameters. Names are
// sorted so the query (and any cache key derived from it) is deterministic
// regardless of parameter order.
func parseAttributes(c *gin.Context) []services.AttributeFilter {
	byName := map[string][]string{}
	for key, raw := range c.Request.URL.Query() {
		m := attributeParam.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		for _, joined := range raw {
			for _, v := range strings.Split(joined, ",") {
				v = strings.ToLower(strings.TrimSpace(v))
				if v != "" {
					byName[name] = append(byName[name], v)
				}
			}
		}
	}
	if len(byName) == 0 {
		return nil
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	filters := make([]services.AttributeFilter, 0, len(names))
	for _, name := range names {
		filters = append(filters, services.AttributeFilter{Name: name, Values: byName[name]})
	}
	return filters
}

// firstParam returns the first non-empty query parameter among aliases.
func firstParam(c *gin.Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			return v
		}
	}
	return ""
}

func parseInt(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
