package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateProduct runs the pre-flight presence checks. Validation is the only
// user-visible failure before a backend call: title and a positive price are
// required, everything else is free-form.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, ProductValidationError{Field: "Title", Description: "Title is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	return errs
}
