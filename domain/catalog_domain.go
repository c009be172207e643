package domain

import (
	"errors"
)

var (
	MessageSuccessCreateProduct     = "product created successfully"
	MessageSuccessUpdateProduct     = "product updated successfully"
	MessageSuccessDeleteProduct     = "product deleted successfully"
	MessageSuccessGetProducts       = "products retrieved successfully"
	MessageSuccessGetProductDetails = "product details retrieved successfully"
	MessageSuccessMergeProducts     = "products merged successfully"
	MessageSuccessFindSimilar       = "similar products retrieved successfully"
	MessageSuccessCreateCategory    = "category created successfully"
	MessageSuccessUpdateCategory    = "category updated successfully"
	MessageSuccessDeleteCategory    = "category deleted successfully"
	MessageSuccessGetCategories     = "categories retrieved successfully"
	MessageSuccessCreateAllergen    = "allergen created successfully"
	MessageSuccessGetAllergens      = "allergens retrieved successfully"
	MessageSuccessAssignAllergens   = "allergens assigned successfully"
	MessageSuccessCreateUnit        = "unit created successfully"
	MessageSuccessGetUnits          = "units retrieved successfully"

	MessageFailedCreateProduct     = "failed to create product"
	MessageFailedUpdateProduct     = "failed to update product"
	MessageFailedDeleteProduct     = "failed to delete product"
	MessageFailedGetProducts       = "failed to retrieve products"
	MessageFailedGetProductDetails = "failed to retrieve product details"
	MessageFailedMergeProducts     = "failed to merge products"
	MessageFailedFindSimilar       = "failed to retrieve similar products"
	MessageFailedCreateCategory    = "failed to create category"
	MessageFailedUpdateCategory    = "failed to update category"
	MessageFailedDeleteCategory    = "failed to delete category"
	MessageFailedGetCategories     = "failed to retrieve categories"
	MessageFailedCreateAllergen    = "failed to create allergen"
	MessageFailedGetAllergens      = "failed to retrieve allergens"
	MessageFailedAssignAllergens   = "failed to assign allergens"
	MessageFailedCreateUnit        = "failed to create unit"
	MessageFailedGetUnits          = "failed to retrieve units"

	ErrProductNotFound      = errors.New("product not found")
	ErrProductNameTaken     = errors.New("product name already exists")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameTaken    = errors.New("category name already exists")
	ErrSubcategoryNotFound  = errors.New("subcategory not found")
	ErrSubcategoryMismatch  = errors.New("subcategory does not belong to category")
	ErrAllergenNotFound     = errors.New("allergen not found")
	ErrAllergenNameTaken    = errors.New("allergen name already exists")
	ErrUnitNotFound         = errors.New("unit not found")
	ErrMergeSameProduct     = errors.New("cannot merge a product with itself")
)

type (
	CreateProductRequest struct {
		Name             string   `json:"name" validate:"required"`
		Description      string   `json:"description" validate:"omitempty"`
		CategoryID       string   `json:"category_id" validate:"omitempty,uuid"`
		SubcategoryID    string   `json:"subcategory_id" validate:"omitempty,uuid"`
		UnitID           string   `json:"unit_id" validate:"omitempty,uuid"`
		DefaultCondition string   `json:"default_condition" validate:"omitempty,oneof=fresh cooked frozen dry refrigerated"`
		AllergenIDs      []string `json:"allergen_ids" validate:"omitempty,dive,uuid"`
	}

	UpdateProductRequest struct {
		Name             string `json:"name" validate:"omitempty"`
		Description      string `json:"description" validate:"omitempty"`
		CategoryID       string `json:"category_id" validate:"omitempty,uuid"`
		SubcategoryID    string `json:"subcategory_id" validate:"omitempty,uuid"`
		UnitID           string `json:"unit_id" validate:"omitempty,uuid"`
		DefaultCondition string `json:"default_condition" validate:"omitempty,oneof=fresh cooked frozen dry refrigerated"`
	}

	ProductResponse struct {
		ID               string             `json:"id"`
		Name             string             `json:"name"`
		Description      string             `json:"description,omitempty"`
		CategoryID       string             `json:"category_id,omitempty"`
		CategoryName     string             `json:"category_name,omitempty"`
		SubcategoryID    string             `json:"subcategory_id,omitempty"`
		SubcategoryName  string             `json:"subcategory_name,omitempty"`
		UnitID           string             `json:"unit_id,omitempty"`
		UnitName         string             `json:"unit_name,omitempty"`
		DefaultCondition string             `json:"default_condition,omitempty"`
		ImageURL         string             `json:"image_url,omitempty"`
		Allergens        []AllergenResponse `json:"allergens,omitempty"`
	}

	SimilarProductRequest struct {
		Name  string `json:"name" validate:"required"`
		Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
	}

	SimilarProductResponse struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Similarity float64 `json:"similarity"`
	}

	CheckDuplicateResponse struct {
		IsDuplicate bool                     `json:"is_duplicate"`
		Matches     []SimilarProductResponse `json:"matches,omitempty"`
	}

	MergeProductsRequest struct {
		SourceID string `json:"source_id" validate:"required,uuid"`
		TargetID string `json:"target_id" validate:"required,uuid"`
	}

	CreateCategoryRequest struct {
		Name         string `json:"name" validate:"required"`
		Icon         string `json:"icon" validate:"omitempty"`
		DisplayOrder int    `json:"display_order" validate:"omitempty"`
	}

	CreateSubcategoryRequest struct {
		CategoryID   string `json:"category_id" validate:"required,uuid"`
		Name         string `json:"name" validate:"required"`
		DisplayOrder int    `json:"display_order" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID            string                `json:"id"`
		Name          string                `json:"name"`
		Icon          string                `json:"icon,omitempty"`
		DisplayOrder  int                   `json:"display_order"`
		Subcategories []SubcategoryResponse `json:"subcategories,omitempty"`
	}

	SubcategoryResponse struct {
		ID           string `json:"id"`
		CategoryID   string `json:"category_id"`
		Name         string `json:"name"`
		DisplayOrder int    `json:"display_order"`
	}

	CreateAllergenRequest struct {
		Name     string `json:"name" validate:"required"`
		Severity string `json:"severity" validate:"required,oneof=critical warning info"`
		IsCommon bool   `json:"is_common"`
	}

	AllergenResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Severity string `json:"severity"`
		IsCommon bool   `json:"is_common"`
	}

	AssignAllergensRequest struct {
		AllergenIDs []string `json:"allergen_ids" validate:"required,dive,uuid"`
	}

	CreateUnitRequest struct {
		Name         string `json:"name" validate:"required"`
		Abbreviation string `json:"abbreviation" validate:"omitempty"`
	}

	UnitResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation,omitempty"`
	}
)
