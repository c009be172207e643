package label

import (
	"time"

	"github.com/google/uuid"

	"preplabel-backend/domain"
)

// ProductInfo is the catalog slice the assembler needs about a selected
// product. Allergens are intentionally absent: they are loaded separately,
// keyed by product id, and joined at dispatch time.
type ProductInfo struct {
	ID               uuid.UUID
	Name             string
	CategoryID       *uuid.UUID
	CategoryName     string
	SubcategoryID    *uuid.UUID
	SubcategoryName  string
	UnitName         string
	DefaultCondition Condition
}

// LabelData is the normalized, in-memory label record built per print
// action. It is never persisted as-is; only its committed form
// (entities.PrintedLabel) survives a successful dispatch.
type LabelData struct {
	ProductID       uuid.UUID
	ProductName     string
	CategoryID      *uuid.UUID
	CategoryName    string
	SubcategoryID   *uuid.UUID
	SubcategoryName string
	Condition       Condition
	PrepDate        time.Time
	ExpiryDate      time.Time
	Quantity        float64
	UnitName        string
	BatchNumber     string
	PreparedByID    uuid.UUID
	PreparedByName  string
}

// Assembler builds a LabelData value from a sequence of selections,
// enforcing the precedence rules between category, subcategory and product.
type Assembler struct {
	data       LabelData
	hasProduct bool
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// SelectCategory scopes the label to a category. A parent change
// invalidates narrower selections, so subcategory and product are cleared.
func (a *Assembler) SelectCategory(id uuid.UUID, name string) {
	a.data.CategoryID = &id
	a.data.CategoryName = name
	a.clearSubcategory()
	a.clearProduct()
}

// SelectAllCategories widens the scope back to every category, which
// invalidates the subcategory and product selections.
func (a *Assembler) SelectAllCategories() {
	a.data.CategoryID = nil
	a.data.CategoryName = ""
	a.clearSubcategory()
	a.clearProduct()
}

func (a *Assembler) SelectSubcategory(id uuid.UUID, name string) {
	a.data.SubcategoryID = &id
	a.data.SubcategoryName = name
	a.clearProduct()
}

// SelectProduct makes the product authoritative: its category, subcategory
// and default unit overwrite whatever was previously entered. Selecting the
// same product twice yields an identical LabelData.
func (a *Assembler) SelectProduct(p ProductInfo) {
	a.data.ProductID = p.ID
	a.data.ProductName = p.Name
	a.data.CategoryID = p.CategoryID
	a.data.CategoryName = p.CategoryName
	a.data.SubcategoryID = p.SubcategoryID
	a.data.SubcategoryName = p.SubcategoryName
	a.data.UnitName = p.UnitName
	a.hasProduct = true

	if a.data.Condition == "" && p.DefaultCondition != "" {
		a.data.Condition = p.DefaultCondition
	}
	a.recompute()
}

// SetCondition overrides the condition and recomputes the expiry date,
// last write wins.
func (a *Assembler) SetCondition(c Condition) {
	a.data.Condition = c
	a.recompute()
}

// SetPrepDate sets the preparation date and recomputes the expiry date.
func (a *Assembler) SetPrepDate(t time.Time) {
	a.data.PrepDate = t
	a.recompute()
}

func (a *Assembler) SetQuantity(q float64, unitName string) {
	a.data.Quantity = q
	if unitName != "" {
		a.data.UnitName = unitName
	}
}

func (a *Assembler) SetBatchNumber(batch string) {
	a.data.BatchNumber = batch
}

func (a *Assembler) SetPreparer(id uuid.UUID, name string) {
	a.data.PreparedByID = id
	a.data.PreparedByName = name
}

// Build validates the assembled record. Missing required fields surface as
// validation errors so dispatch is blocked before any network call.
func (a *Assembler) Build() (LabelData, error) {
	if !a.hasProduct {
		return LabelData{}, domain.ErrLabelMissingProduct
	}
	if a.data.Condition == "" {
		return LabelData{}, domain.ErrLabelMissingCondition
	}
	return a.data, nil
}

func (a *Assembler) recompute() {
	a.data.ExpiryDate = ExpiryDate(a.data.Condition, a.data.PrepDate)
}

func (a *Assembler) clearSubcategory() {
	a.data.SubcategoryID = nil
	a.data.SubcategoryName = ""
}

func (a *Assembler) clearProduct() {
	a.data.ProductID = uuid.Nil
	a.data.ProductName = ""
	a.data.UnitName = ""
	a.hasProduct = false
	a.recompute()
}
