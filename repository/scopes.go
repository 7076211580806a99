package repository

import (
	"strings"

	"github.com/uchkunrakhimow/edtech-platform/domain"
	"gorm.io/gorm"
)

// paginate applies skip/take. A zero take returns an empty page.
func paginate(p domain.Pagination) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Take <= 0 {
			return db.Limit(0)
		}
		return db.Offset(p.Skip).Limit(p.Take)
	}
}

func selectUserBrief(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func selectUserName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func selectCourseBrief(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title", "instructor_id")
}

func selectTestBrief(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title", "course_id")
}

// likePattern builds a case-insensitive substring pattern, escaping the
// LIKE wildcards in the search term. Use with `LIKE ? ESCAPE '\'`.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
