package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// maxIdentifierLength matches the VARCHAR(255) author and name columns.
const maxIdentifierLength = 255

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Coordinate is a point as decoded from a request body.
type Coordinate struct {
	X int
	Y int
}

// CreateBlueprintRequest mirrors the fields needed for create blueprint validation.
type CreateBlueprintRequest struct {
	Author string
	Name   string
	Points []Coordinate
}

// ValidateCreateBlueprintRequest validates the fields of a create blueprint request.
// Returns a slice of field errors; empty slice means valid.
func ValidateCreateBlueprintRequest(req CreateBlueprintRequest) []FieldError {
	var errs []FieldError
	errs = append(errs, validateIdentifier("author", req.Author)...)
	errs = append(errs, validateIdentifier("name", req.Name)...)
	for i, p := range req.Points {
		errs = append(errs, validateCoordinate(fmt.Sprintf("points[%d].x", i), p.X)...)
		errs = append(errs, validateCoordinate(fmt.Sprintf("points[%d].y", i), p.Y)...)
	}
	return errs
}

// AppendPointRequest mirrors the fields needed for append point validation.
// Nil coordinates were absent from the request body.
type AppendPointRequest struct {
	X *int
	Y *int
}

// ValidateAppendPointRequest requires both coordinates to be present and
// within the stored integer range.
func ValidateAppendPointRequest(req AppendPointRequest) []FieldError {
	var errs []FieldError
	if req.X == nil {
		errs = append(errs, FieldError{Field: "x", Message: "x is required"})
	} else {
		errs = append(errs, validateCoordinate("x", *req.X)...)
	}
	if req.Y == nil {
		errs = append(errs, FieldError{Field: "y", Message: "y is required"})
	} else {
		errs = append(errs, validateCoordinate("y", *req.Y)...)
	}
	return errs
}

// validateCoordinate keeps values inside the INTEGER columns of the points table.
func validateCoordinate(field string, v int) []FieldError {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return []FieldError{{Field: field, Message: fmt.Sprintf("%s must be between %d and %d", field, math.MinInt32, math.MaxInt32)}}
	}
	return nil
}

// validateIdentifier checks an author or name. Both are used as URL path
// segments, so they may not contain a slash.
func validateIdentifier(field, value string) []FieldError {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		return []FieldError{{Field: field, Message: field + " is required"}}
	case utf8.RuneCountInString(trimmed) > maxIdentifierLength:
		return []FieldError{{Field: field, Message: field + " must be at most 255 characters"}}
	case strings.Contains(trimmed, "/"):
		return []FieldError{{Field: field, Message: field + " must not contain '/'"}}
	}
	return nil
}
