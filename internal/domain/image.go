package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	// imagename keeps resolved names inside the storage root.
	_ = validatorInstance.RegisterValidation("imagename", validateImageName)
}

// maxImageNameBytes bounds a name in bytes; the max tag counts runes.
const maxImageNameBytes = 255

// validateImageName rejects names that cannot form a usable path under the
// storage root: control characters, absolute paths and parent segments.
func validateImageName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if len(name) > maxImageNameBytes {
		return false
	}

	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return false
	}
	if strings.Contains(name, "\\") {
		return false
	}

	return filepath.IsLocal(name)
}

// ImageRef identifies a stored image by the name it was stored under.
type ImageRef struct {
	Name string `json:"name" validate:"required,max=255,imagename"`
}

// Validate runs the struct tags against the reference.
func (r ImageRef) Validate() error {
	return validatorInstance.Struct(r)
}

// ValidateImageName reports ErrInvalidFileName when name could not be
// resolved to a file inside the storage root.
func ValidateImageName(name string) error {
	if err := (ImageRef{Name: name}).Validate(); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidFileName, name, err)
	}
	return nil
}
