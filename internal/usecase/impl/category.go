// Package impl contains the application-specific business rules implementations.
package impl

import (
	"fmt"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
)

// CheckCategory returns code as a Category when it is an exact key of the
// enumeration, and a NotFound error naming the code otherwise.
func CheckCategory(code string) (entity.Category, error) {
	category := entity.Category(code)
	if !category.IsValid() {
		return "", domainerrors.ErrCategoryNotFound.WithDetails(fmt.Sprintf("Event with category '%s' not found", code))
	}

	return category, nil
}
