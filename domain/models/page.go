package models

import (
	"fmt"
	"strings"
)

// SortField is a task attribute the paginated listing may be ordered by.
type SortField string

const (
	SortFieldID      SortField = "id"
	SortFieldTitle   SortField = "title"
	SortFieldStatus  SortField = "status"
	SortFieldDueDate SortField = "dueDate"
)

var sortFieldColumns = map[SortField]string{
	SortFieldID:      "id",
	SortFieldTitle:   "title",
	SortFieldStatus:  "status",
	SortFieldDueDate: "due_date",
}

// sort field enum spellings accepted alongside the field names
var sortFieldAliases = map[string]SortField{
	"ID":       SortFieldID,
	"TITLE":    SortFieldTitle,
	"STATUS":   SortFieldStatus,
	"DUE_DATE": SortFieldDueDate,
}

var SortFields = []SortField{SortFieldID, SortFieldTitle, SortFieldStatus, SortFieldDueDate}

// ParseSortField accepts a field name in any case or its enum spelling (DUE_DATE).
func ParseSortField(value string) (SortField, error) {
	for _, field := range SortFields {
		if strings.EqualFold(string(field), value) {
			return field, nil
		}
	}
	if field, ok := sortFieldAliases[strings.ToUpper(value)]; ok {
		return field, nil
	}
	return "", fmt.Errorf("unknown sort field %q", value)
}

// Column returns the table column backing the field.
func (f SortField) Column() string {
	return sortFieldColumns[f]
}

type Direction string

const (
	DirectionAsc  Direction = "ASC"
	DirectionDesc Direction = "DESC"
)

// ParseDirection upper-cases value and matches it against ASC and DESC.
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.ToUpper(value)) {
	case DirectionAsc:
		return DirectionAsc, nil
	case DirectionDesc:
		return DirectionDesc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", value)
	}
}

// Descending reports whether d is DESC.
func (d Direction) Descending() bool {
	return d == DirectionDesc
}

// PageRequest selects a zero-based page of a sorted result set.
type PageRequest struct {
	Page      int
	Size      int
	SortBy    SortField
	Direction Direction
}

// Offset is the number of rows before the page. Callers keep Page*Size within int.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
