package Models

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"
)

type QueryErrorKind int

const (
	// QueryErrorOther covers everything the fallback must not swallow.
	QueryErrorOther QueryErrorKind = iota
	// QueryErrorMissingCapability marks failures caused by the store lacking
	// the column/index the ordered query needs. Only this kind takes the
	// unordered-fallback branch.
	QueryErrorMissingCapability
)

type QueryError struct {
	Kind QueryErrorKind
	Err  error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

var missingCapabilityMarkers = []string{
	"sqlstate 42703", // undefined column (postgres)
	"sqlstate 42p01", // undefined table (postgres)
	"no such column",
	"no such table",
}

// ClassifyQueryError wraps err into a QueryError, tagging the
// missing-capability class the legacy code used to blanket-catch.
func ClassifyQueryError(err error) *QueryError {
	if err == nil {
		return nil
	}
	lower := strings.ToLower(err.Error())
	for _, marker := range missingCapabilityMarkers {
		if strings.Contains(lower, marker) {
			return &QueryError{Kind: QueryErrorMissingCapability, Err: err}
		}
	}
	return &QueryError{Kind: QueryErrorOther, Err: err}
}

func IsMissingCapability(err error) bool {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind == QueryErrorMissingCapability
	}
	return false
}

// FindOrderedBy returns the rows of the query sorted newest-first by
// orderColumn. If the ordered form fails because the store lacks the column
// or index, the same filter is re-issued without ordering and the rows are
// sorted in memory by their extracted instant instead; the two paths return
// the same set in the same order. Any other failure surfaces as a
// QueryError.
//
// query must build a fresh statement on each call; gorm statements are
// consumed by execution.
func FindOrderedBy[T any](query func() *gorm.DB, orderColumn string, instant func(*T) FlexTime) ([]T, error) {
	var rows []T
	err := query().Order(orderColumn + " desc").Find(&rows).Error
	if err == nil {
		return rows, nil
	}
	qe := ClassifyQueryError(err)
	if qe.Kind != QueryErrorMissingCapability {
		return nil, qe
	}

	rows = nil
	if err := query().Find(&rows).Error; err != nil {
		return nil, ClassifyQueryError(err)
	}
	SortByInstantDesc(rows, instant)
	return rows, nil
}

// FindOrderedByFiltered chains one more fallback onto FindOrderedBy for the
// case where the filter column itself is missing: the whole table is fetched
// and match is applied in memory, then the in-memory sort. Equality filters
// on legacy columns go through here.
func FindOrderedByFiltered[T any](filtered, unfiltered func() *gorm.DB, orderColumn string, instant func(*T) FlexTime, match func(*T) bool) ([]T, error) {
	rows, err := FindOrderedBy(filtered, orderColumn, instant)
	if err == nil {
		return rows, nil
	}
	if !IsMissingCapability(err) {
		return nil, err
	}

	var all []T
	if err := unfiltered().Find(&all).Error; err != nil {
		return nil, ClassifyQueryError(err)
	}
	matched := make([]T, 0, len(all))
	for i := range all {
		if match(&all[i]) {
			matched = append(matched, all[i])
		}
	}
	SortByInstantDesc(matched, instant)
	return matched, nil
}

// SortByInstantDesc orders rows newest-first. Epoch-zero instants (the
// unparseable-timestamp default) end up last.
func SortByInstantDesc[T any](rows []T, instant func(*T) FlexTime) {
	sort.SliceStable(rows, func(i, j int) bool {
		return instant(&rows[i]).Millis() > instant(&rows[j]).Millis()
	})
}
