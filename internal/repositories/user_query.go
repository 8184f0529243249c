package repositories

import (
	"strings"

	"github.com/HimeshRasaily/FlowArt/internal/models"
)

// FilterAll is the sentinel filter value meaning "no constraint". The
// frontend sends it for the default dropdown selection; it is never a real
// data value.
const FilterAll = "All"

// UserFilter carries the optional listing parameters as received from the
// caller. Zero values mean "no constraint".
type UserFilter struct {
	Medium     string
	Experience string
	Search     string
	Limit      int
}

// Clause is one conjunct of a user query. Expr/Args is the SQL form applied
// by the GORM repository; Match is the equivalent in-process form used by the
// in-memory repository.
type Clause struct {
	Expr  string
	Args  []interface{}
	Match func(user *models.User) bool
}

// UserQuery is a composed predicate over the user collection. Clauses are
// combined with AND semantics; an empty clause list matches every record.
type UserQuery struct {
	Clauses []Clause
	Limit   int
}

// Matches reports whether a user satisfies every clause of the query.
func (q UserQuery) Matches(user *models.User) bool {
	for _, clause := range q.Clauses {
		if !clause.Match(user) {
			return false
		}
	}
	return true
}

// BuildUserQuery translates listing filters into a UserQuery. Absent filters
// and the "All" sentinel impose no constraint; a search term expands into a
// case-insensitive substring match across name, username and bio. The
// function is pure and total: every input yields a valid predicate.
func BuildUserQuery(filter UserFilter) UserQuery {
	var query UserQuery

	if filter.Medium != "" && filter.Medium != FilterAll {
		medium := filter.Medium
		query.Clauses = append(query.Clauses, Clause{
			Expr: "medium = ?",
			Args: []interface{}{medium},
			Match: func(user *models.User) bool {
				return user.Medium == medium
			},
		})
	}

	if filter.Experience != "" && filter.Experience != FilterAll {
		experience := filter.Experience
		query.Clauses = append(query.Clauses, Clause{
			Expr: "experience = ?",
			Args: []interface{}{experience},
			Match: func(user *models.User) bool {
				return user.Experience == experience
			},
		})
	}

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		pattern := "%" + needle + "%"
		query.Clauses = append(query.Clauses, Clause{
			Expr: "(lower(name) LIKE ? OR lower(username) LIKE ? OR lower(bio) LIKE ?)",
			Args: []interface{}{pattern, pattern, pattern},
			Match: func(user *models.User) bool {
				return strings.Contains(strings.ToLower(user.Name), needle) ||
					strings.Contains(strings.ToLower(user.Username), needle) ||
					strings.Contains(strings.ToLower(user.Bio), needle)
			},
		})
	}

	if filter.Limit > 0 {
		query.Limit = filter.Limit
	}

	return query
}
