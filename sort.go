package diggpager

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction is the sort direction of a column.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

type (
	// Sort is an ordered list of sort fields. Offset pagination is only stable
	// when the last field is unique.
	Sort      []SortField
	SortField struct {
		Column    string
		Direction Direction
	}

	// SortAliases maps the column names clients may send to real column names.
	SortAliases = map[string]string
)

var _columnNameCharset = append([]rune("_."), lo.AlphanumericCharset...)

// String returns "<column> <direction>".
func (f SortField) String() string {
	return fmt.Sprintf("%s %s", f.Column, f.Direction)
}

func (f SortField) validate() error {
	if !f.Direction.Valid() {
		return fmt.Errorf("%w: direction '%s'", ErrInvalidSort, f.Direction)
	}

	if f.Column == "" || !lo.Every(_columnNameCharset, []rune(f.Column)) {
		return fmt.Errorf("%w: column name '%s'", ErrInvalidSort, f.Column)
	}

	return nil
}

// String returns the ORDER BY expression, e.g. "name ASC, id DESC".
func (s Sort) String() string {
	return strings.Join(lo.Map(s, func(f SortField, _ int) string { return f.String() }), ", ")
}

// Apply adds the ORDER BY clause to db. An empty Sort leaves db unchanged.
func (s Sort) Apply(db *gorm.DB) *gorm.DB {
	if len(s) == 0 {
		return db
	}

	return db.Order(s.String())
}

// With returns a copy of s with fields appended. A column that is already present
// is moved to its new position.
func (s Sort) With(fields ...SortField) Sort {
	ret := slices.Clone(s)
	for _, f := range fields {
		ret = slices.DeleteFunc(ret, func(existing SortField) bool {
			return existing.Column == f.Column
		})
		ret = append(ret, f)
	}

	return ret
}

func (s Sort) validate() error {
	for _, f := range s {
		if err := f.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds a Sort from strings such as "name desc". The direction may be
// omitted and defaults to ascending. Columns are resolved through aliases; an
// unknown alias is reported together with the closest known one.
func ParseSort(raw []string, aliases SortAliases) (Sort, error) {
	ret := make(Sort, 0, len(raw))

	for _, item := range raw {
		parts := strings.Fields(item)
		if len(parts) == 0 || len(parts) > 2 {
			return nil, fmt.Errorf("%w: format '%s'", ErrInvalidSort, item)
		}

		direction := DirectionASC
		if len(parts) == 2 {
			direction = Direction(strings.ToUpper(parts[1]))
		}

		column, ok := aliases[parts[0]]
		if !ok {
			return nil, fmt.Errorf(
				"%w: unknown column '%s', did you mean '%s'?",
				ErrInvalidSort, parts[0], closestAlias(parts[0], lo.Keys(aliases)),
			)
		}

		field := SortField{Column: column, Direction: direction}
		if err := field.validate(); err != nil {
			return nil, err
		}

		ret = ret.With(field)
	}

	return ret, nil
}

func closestAlias(input string, aliases []string) string {
	// Sorted so that ties resolve the same way on every call.
	slices.Sort(aliases)

	minDist := math.MaxInt
	closest := ""
	for _, alias := range aliases {
		if dist := levenshtein([]rune(alias), []rune(input)); dist < minDist {
			minDist = dist
			closest = alias
		}
	}

	return closest
}
