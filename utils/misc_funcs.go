package utils

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

func ColorText(text, color string) string {
	return color + text + Reset
}

func ColorStatus(statusCode int) string {
	text := fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
	switch {
	case statusCode >= 500:
		return ColorText(text, Red)
	case statusCode >= 400:
		return ColorText(text, Yellow)
	case statusCode >= 200 && statusCode < 300:
		return ColorText(text, Green)
	default:
		return text
	}
}

// GetAPIHitter returns the authenticated caller's id, or "anonymous".
func GetAPIHitter(c *gin.Context) string {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return "anonymous"
}

// HumanizeField turns a JSON field name like "videoCount" into "Video Count".
func HumanizeField(field string) string {
	if field == "" {
		return field
	}
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English, cases.NoLower).String(b.String())
}
