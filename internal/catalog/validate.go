package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// recordValidate is shared by all record types. validator.Validate caches
// struct metadata and is safe for concurrent use.
var recordValidate = validator.New(validator.WithRequiredStructEnabled())

// ValidateCategories checks every record and reports the first invalid one.
func ValidateCategories(records []Category) error {
	for i := range records {
		if err := recordValidate.Struct(&records[i]); err != nil {
			return fmt.Errorf("category %d (id %q): %w", i, records[i].ID, err)
		}
	}
	return nil
}

// ValidateDestinations checks every record and reports the first invalid one.
func ValidateDestinations(records []Destination) error {
	for i := range records {
		if err := recordValidate.Struct(&records[i]); err != nil {
			return fmt.Errorf("destination %d (id %q): %w", i, records[i].ID, err)
		}
	}
	return nil
}
