package entities

import (
	"github.com/google/uuid"
)

type LabelCategory struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID `gorm:"uniqueIndex:idx_label_categories_org_name" json:"organization_id"`
	Name           string    `gorm:"not null;uniqueIndex:idx_label_categories_org_name" json:"name"`
	Icon           string    `json:"icon,omitempty"`
	DisplayOrder   int       `gorm:"default:0" json:"display_order"`

	Subcategories []*LabelSubcategory `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type LabelSubcategory struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID   uuid.UUID `gorm:"index" json:"category_id"`
	Name         string    `gorm:"not null" json:"name"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`

	Category *LabelCategory `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type Unit struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID `gorm:"index" json:"organization_id"`
	Name           string    `gorm:"not null" json:"name"`
	Abbreviation   string    `json:"abbreviation,omitempty"`

	Timestamp
}

type Allergen struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID uuid.UUID `gorm:"uniqueIndex:idx_allergens_org_name" json:"organization_id"`
	Name           string    `gorm:"not null;uniqueIndex:idx_allergens_org_name" json:"name"`
	Severity       string    `json:"severity"` // critical, warning, info
	IsCommon       bool      `gorm:"default:false" json:"is_common"`

	Timestamp
}

type Product struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrganizationID   uuid.UUID  `gorm:"uniqueIndex:idx_products_org_name" json:"organization_id"`
	Name             string     `gorm:"not null;uniqueIndex:idx_products_org_name" json:"name"`
	Description      string     `json:"description,omitempty"`
	CategoryID       *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID    *uuid.UUID `json:"subcategory_id,omitempty"`
	UnitID           *uuid.UUID `json:"unit_id,omitempty"`
	DefaultCondition string     `json:"default_condition,omitempty"` // fresh, cooked, frozen, dry, refrigerated
	ImageURL         string     `json:"image_url,omitempty"`

	Category    *LabelCategory    `gorm:"foreignKey:CategoryID"`
	Subcategory *LabelSubcategory `gorm:"foreignKey:SubcategoryID"`
	Unit        *Unit             `gorm:"foreignKey:UnitID"`
	Allergens   []*Allergen       `gorm:"many2many:product_allergens"`
	Timestamp
}
