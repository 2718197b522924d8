package menu

import (
	"errors"
	"regexp"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category instance was not
	// created through the NewCategory factory method.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lowercase, non-alphanumeric
// runs collapsed to single hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Category groups menu items. The slug is always derived from the title and
// never set directly.
type Category struct {
	id    kernel.UUID
	title string
	slug  string

	isConstructed bool
}

// NewCategory creates a validated Category with a slug derived from the title.
func NewCategory(id kernel.UUID, title string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Category{
		id:            id,
		title:         title,
		slug:          Slugify(title),
		isConstructed: true,
	}, nil
}

// RestoreCategory rebuilds a Category from persistence.
func RestoreCategory(id kernel.UUID, title, slug string) (*Category, error) {
	c, err := NewCategory(id, title)
	if err != nil {
		return nil, err
	}
	if slug != "" {
		c.slug = slug
	}
	return c, nil
}

// Validate ensures the Category was created through its constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Title returns the display title.
func (c *Category) Title() string {
	return c.title
}

// Slug returns the URL-safe identifier derived from the title.
func (c *Category) Slug() string {
	return c.slug
}
