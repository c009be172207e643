package label

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preplabel-backend/domain"
)

func sampleProduct() ProductInfo {
	categoryID := uuid.New()
	subcategoryID := uuid.New()
	return ProductInfo{
		ID:               uuid.New(),
		Name:             "Chicken Breast",
		CategoryID:       &categoryID,
		CategoryName:     "Proteins",
		SubcategoryID:    &subcategoryID,
		SubcategoryName:  "Poultry",
		UnitName:         "kg",
		DefaultCondition: ConditionRefrigerated,
	}
}

func TestAssemblerProductOverridesManualSelection(t *testing.T) {
	a := NewAssembler()
	a.SelectCategory(uuid.New(), "Sauces")

	product := sampleProduct()
	a.SelectProduct(product)
	a.SetPrepDate(date(2025, time.May, 1))
	a.SetPreparer(uuid.New(), "Dana")

	data, err := a.Build()
	require.NoError(t, err)

	assert.Equal(t, product.ID, data.ProductID)
	assert.Equal(t, "Proteins", data.CategoryName)
	assert.Equal(t, "Poultry", data.SubcategoryName)
	assert.Equal(t, ConditionRefrigerated, data.Condition)
	assert.Equal(t, date(2025, time.May, 8), data.ExpiryDate)
}

func TestAssemblerReselectingSameProductIsIdempotent(t *testing.T) {
	product := sampleProduct()

	a := NewAssembler()
	a.SelectProduct(product)
	a.SetPrepDate(date(2025, time.May, 1))
	a.SetPreparer(uuid.Nil, "Dana")
	first, err := a.Build()
	require.NoError(t, err)

	a.SelectProduct(product)
	second, err := a.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemblerDefaultConditionDoesNotOverrideExplicit(t *testing.T) {
	a := NewAssembler()
	a.SetCondition(ConditionFrozen)
	a.SelectProduct(sampleProduct())
	a.SetPrepDate(date(2025, time.January, 1))

	data, err := a.Build()
	require.NoError(t, err)

	assert.Equal(t, ConditionFrozen, data.Condition)
	assert.Equal(t, date(2025, time.January, 31), data.ExpiryDate)
}

func TestAssemblerCategoryChangeClearsNarrowerSelections(t *testing.T) {
	a := NewAssembler()
	a.SelectProduct(sampleProduct())
	a.SelectCategory(uuid.New(), "Bakery")

	_, err := a.Build()
	assert.ErrorIs(t, err, domain.ErrLabelMissingProduct)
}

func TestAssemblerSelectAllCategoriesResetsScope(t *testing.T) {
	a := NewAssembler()
	a.SelectProduct(sampleProduct())
	a.SelectAllCategories()

	_, err := a.Build()
	assert.ErrorIs(t, err, domain.ErrLabelMissingProduct)
}

func TestAssemblerConditionChangeRecomputesExpiry(t *testing.T) {
	a := NewAssembler()
	a.SelectProduct(sampleProduct())
	a.SetPrepDate(date(2025, time.May, 1))

	a.SetCondition(ConditionFresh)
	data, err := a.Build()
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.May, 2), data.ExpiryDate)

	a.SetCondition(ConditionDry)
	data, err = a.Build()
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.July, 30), data.ExpiryDate)
}

func TestAssemblerBuildRequiresCondition(t *testing.T) {
	product := sampleProduct()
	product.DefaultCondition = ""

	a := NewAssembler()
	a.SelectProduct(product)
	a.SetPrepDate(date(2025, time.May, 1))

	_, err := a.Build()
	assert.ErrorIs(t, err, domain.ErrLabelMissingCondition)
}

func TestAssemblerQuantityKeepsProductUnitWhenUnnamed(t *testing.T) {
	a := NewAssembler()
	a.SelectProduct(sampleProduct())
	a.SetQuantity(2.5, "")

	assert.Equal(t, "kg", a.data.UnitName)
	assert.Equal(t, 2.5, a.data.Quantity)

	a.SetQuantity(3, "portions")
	assert.Equal(t, "portions", a.data.UnitName)
}
