package catalog

import (
	"strings"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxCategoryDepth is the maximum depth of the category hierarchy
const MaxCategoryDepth = 8

// Category represents a point-of-sale product category.
// Categories form a tree through ParentID; laundry services are
// grouped under top-level categories.
type Category struct {
	shared.BaseAggregateRoot
	Name      string     `gorm:"type:varchar(100);not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Sequence  int        `gorm:"not null;default:0"`
	SeqNo     int64      `gorm:"autoIncrement;uniqueIndex"` // monotonic insertion order, used for deterministic tie-breaks
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "pos_categories"
}

// NewCategory creates a new root category
func NewCategory(name string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}, nil
}

// NewChildCategory creates a new category under a parent
func NewChildCategory(name string, parent *Category) (*Category, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is required")
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		ParentID:          &parent.ID,
	}, nil
}

// IsTopLevel returns true if the category has no parent
func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}

// TopLevelAncestor walks up the parent chain until it reaches a
// category with no parent. The resolve callback loads a category by
// ID. Depth is capped to guard against cyclic data.
func (c *Category) TopLevelAncestor(resolve func(uuid.UUID) (*Category, error)) (*Category, error) {
	current := c
	for depth := 0; current.ParentID != nil; depth++ {
		if depth >= MaxCategoryDepth {
			return nil, shared.NewDomainError("CATEGORY_CYCLE", "Category hierarchy exceeds maximum depth")
		}
		parent, err := resolve(*current.ParentID)
		if err != nil {
			return nil, err
		}
		current = parent
	}
	return current, nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
