package models

// CollectionCategory is the document collection holding categories,
// keyed logically by slug.
const CollectionCategory = "category"

// Category groups products for the storefront navigation
// (e.g. "custom-drones", "motors", "batteries").
type Category struct {
	Slug        string  `bson:"slug" json:"slug"`
	Name        string  `bson:"name" json:"name"`
	Description *string `bson:"description,omitempty" json:"description"`
	Icon        *string `bson:"icon,omitempty" json:"icon"`
}

// Validate enforces the category constraints.
func (c *Category) Validate() error {
	var violations []FieldError

	if c.Slug == "" {
		violations = append(violations, FieldError{Field: "slug", Reason: "is required"})
	}
	if c.Name == "" {
		violations = append(violations, FieldError{Field: "name", Reason: "is required"})
	}

	return validationError(violations)
}
