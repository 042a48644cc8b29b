package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/artisan-market/models"
)

// Field names accepted by [ArtisanValidator].
const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldStyle    = "style"
)

// ArtisanValidator checks the "add artisan" form. Location is optional and
// never validated.
type ArtisanValidator struct{}

func NewArtisanValidator() *ArtisanValidator {
	return &ArtisanValidator{}
}

func (v *ArtisanValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.ArtisanInput:
		return v.validateInput(value, fields...)
	case *models.ArtisanInput:
		return v.validateInput(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ArtisanValidator) validateInput(input models.ArtisanInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategory, FieldStyle}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				return ErrEmptyName
			}
		case FieldCategory:
			if !slices.Contains(models.ListingCategories, input.Category) {
				return ErrInvalidCategory
			}
		case FieldStyle:
			if strings.TrimSpace(input.Style) == "" {
				return ErrEmptyStyle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
