package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
)

const (
	// similarityThreshold is the minimum trigram score for a candidate to
	// appear in a similar-products result.
	similarityThreshold = 0.3
	// duplicateThreshold is the score above which the top candidate flags
	// the name as a probable duplicate.
	duplicateThreshold = 0.6
	similarityLimit    = 5
)

type (
	CatalogService interface {
		CreateProduct(ctx context.Context, req domain.CreateProductRequest, orgID string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, orgID string) error
		DeleteProduct(ctx context.Context, id string, orgID string) error
		GetProducts(ctx context.Context, orgID string, categoryID string, search string, page, limit int) ([]domain.ProductResponse, int64, error)
		GetProductFullDetails(ctx context.Context, id string, orgID string) (domain.ProductResponse, error)
		CheckDuplicateProduct(ctx context.Context, name string, orgID string) (domain.CheckDuplicateResponse, error)
		FindSimilarProducts(ctx context.Context, req domain.SimilarProductRequest, orgID string) ([]domain.SimilarProductResponse, error)
		MergeProducts(ctx context.Context, req domain.MergeProductsRequest, orgID string) error
		AssignAllergens(ctx context.Context, productID string, req domain.AssignAllergensRequest, orgID string) error

		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, orgID string) (domain.CategoryResponse, error)
		CreateSubcategory(ctx context.Context, req domain.CreateSubcategoryRequest, orgID string) (domain.SubcategoryResponse, error)
		GetCategories(ctx context.Context, orgID string) ([]domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string, orgID string) error

		CreateAllergen(ctx context.Context, req domain.CreateAllergenRequest, orgID string) (domain.AllergenResponse, error)
		GetAllergens(ctx context.Context, orgID string) ([]domain.AllergenResponse, error)

		CreateUnit(ctx context.Context, req domain.CreateUnitRequest, orgID string) (domain.UnitResponse, error)
		GetUnits(ctx context.Context, orgID string) ([]domain.UnitResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) CreateProduct(ctx context.Context, req domain.CreateProductRequest, orgID string) (domain.ProductResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	product := &entities.Product{
		ID:               uuid.New(),
		OrganizationID:   orgUUID,
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		DefaultCondition: req.DefaultCondition,
	}

	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ProductResponse{}, domain.ErrParseUUID
		}
		product.CategoryID = &categoryUUID
	}
	if req.SubcategoryID != "" {
		subcategoryUUID, err := uuid.Parse(req.SubcategoryID)
		if err != nil {
			return domain.ProductResponse{}, domain.ErrParseUUID
		}
		if err := s.checkSubcategoryParent(ctx, req.SubcategoryID, product.CategoryID); err != nil {
			return domain.ProductResponse{}, err
		}
		product.SubcategoryID = &subcategoryUUID
	}
	if req.UnitID != "" {
		unitUUID, err := uuid.Parse(req.UnitID)
		if err != nil {
			return domain.ProductResponse{}, domain.ErrParseUUID
		}
		product.UnitID = &unitUUID
	}

	if err := s.catalogRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	if len(req.AllergenIDs) > 0 {
		allergens, err := s.catalogRepository.GetAllergensByIDs(ctx, orgID, req.AllergenIDs)
		if err != nil {
			return domain.ProductResponse{}, err
		}
		if err := s.catalogRepository.ReplaceProductAllergens(ctx, product, allergens); err != nil {
			return domain.ProductResponse{}, err
		}
	}

	return s.GetProductFullDetails(ctx, product.ID.String(), orgID)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest, orgID string) error {
	product, err := s.catalogRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if product.OrganizationID.String() != orgID {
		return domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		product.Name = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.DefaultCondition != "" {
		product.DefaultCondition = req.DefaultCondition
	}
	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		product.CategoryID = &categoryUUID
		// parent change invalidates the narrower selection
		product.SubcategoryID = nil
		product.Subcategory = nil
	}
	if req.SubcategoryID != "" {
		subcategoryUUID, err := uuid.Parse(req.SubcategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		if err := s.checkSubcategoryParent(ctx, req.SubcategoryID, product.CategoryID); err != nil {
			return err
		}
		product.SubcategoryID = &subcategoryUUID
	}
	if req.UnitID != "" {
		unitUUID, err := uuid.Parse(req.UnitID)
		if err != nil {
			return domain.ErrParseUUID
		}
		product.UnitID = &unitUUID
	}

	return s.catalogRepository.UpdateProduct(ctx, product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string, orgID string) error {
	product, err := s.catalogRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	if product.OrganizationID.String() != orgID {
		return domain.ErrUserNotAllowed
	}
	return s.catalogRepository.DeleteProduct(ctx, id)
}

func (s *catalogService) checkSubcategoryParent(ctx context.Context, subcategoryID string, categoryID *uuid.UUID) error {
	subcategory, err := s.catalogRepository.GetSubcategoryByID(ctx, subcategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubcategoryNotFound
		}
		return err
	}
	if categoryID == nil || subcategory.CategoryID != *categoryID {
		return domain.ErrSubcategoryMismatch
	}
	return nil
}

func (s *catalogService) GetProducts(ctx context.Context, orgID string, categoryID string, search string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.catalogRepository.GetProducts(ctx, orgID, categoryID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}
	return response, count, nil
}

func (s *catalogService) GetProductFullDetails(ctx context.Context, id string, orgID string) (domain.ProductResponse, error) {
	product, err := s.catalogRepository.GetProductFullDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}
	if product.OrganizationID.String() != orgID {
		return domain.ProductResponse{}, domain.ErrUserNotAllowed
	}
	return toProductResponse(product), nil
}

func (s *catalogService) CheckDuplicateProduct(ctx context.Context, name string, orgID string) (domain.CheckDuplicateResponse, error) {
	matches, err := s.FindSimilarProducts(ctx, domain.SimilarProductRequest{Name: name, Limit: similarityLimit}, orgID)
	if err != nil {
		return domain.CheckDuplicateResponse{}, err
	}

	isDuplicate := false
	for _, match := range matches {
		if match.Similarity >= duplicateThreshold || strings.EqualFold(match.Name, strings.TrimSpace(name)) {
			isDuplicate = true
			break
		}
	}

	return domain.CheckDuplicateResponse{
		IsDuplicate: isDuplicate,
		Matches:     matches,
	}, nil
}

func (s *catalogService) FindSimilarProducts(ctx context.Context, req domain.SimilarProductRequest, orgID string) ([]domain.SimilarProductResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = similarityLimit
	}

	rows, err := s.catalogRepository.FindSimilarProducts(ctx, orgID, strings.TrimSpace(req.Name), similarityThreshold, limit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SimilarProductResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, domain.SimilarProductResponse{
			ID:         row.ID.String(),
			Name:       row.Name,
			Similarity: row.Similarity,
		})
	}
	return response, nil
}

func (s *catalogService) MergeProducts(ctx context.Context, req domain.MergeProductsRequest, orgID string) error {
	if req.SourceID == req.TargetID {
		return domain.ErrMergeSameProduct
	}
	if err := s.catalogRepository.MergeProducts(ctx, orgID, req.SourceID, req.TargetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) AssignAllergens(ctx context.Context, productID string, req domain.AssignAllergensRequest, orgID string) error {
	product, err := s.catalogRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	if product.OrganizationID.String() != orgID {
		return domain.ErrUserNotAllowed
	}

	allergens, err := s.catalogRepository.GetAllergensByIDs(ctx, orgID, req.AllergenIDs)
	if err != nil {
		return err
	}
	if len(allergens) != len(req.AllergenIDs) {
		return domain.ErrAllergenNotFound
	}

	return s.catalogRepository.ReplaceProductAllergens(ctx, product, allergens)
}

func (s *catalogService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, orgID string) (domain.CategoryResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.CategoryResponse{}, domain.ErrParseUUID
	}

	category := &entities.LabelCategory{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Name:           strings.TrimSpace(req.Name),
		Icon:           req.Icon,
		DisplayOrder:   req.DisplayOrder,
	}
	if err := s.catalogRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

func (s *catalogService) CreateSubcategory(ctx context.Context, req domain.CreateSubcategoryRequest, orgID string) (domain.SubcategoryResponse, error) {
	category, err := s.catalogRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubcategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.SubcategoryResponse{}, err
	}
	if category.OrganizationID.String() != orgID {
		return domain.SubcategoryResponse{}, domain.ErrUserNotAllowed
	}

	subcategory := &entities.LabelSubcategory{
		ID:           uuid.New(),
		CategoryID:   category.ID,
		Name:         strings.TrimSpace(req.Name),
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.catalogRepository.CreateSubcategory(ctx, subcategory); err != nil {
		return domain.SubcategoryResponse{}, err
	}
	return toSubcategoryResponse(subcategory), nil
}

func (s *catalogService) GetCategories(ctx context.Context, orgID string) ([]domain.CategoryResponse, error) {
	categories, err := s.catalogRepository.GetCategories(ctx, orgID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}
	return response, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string, orgID string) error {
	category, err := s.catalogRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	if category.OrganizationID.String() != orgID {
		return domain.ErrUserNotAllowed
	}
	return s.catalogRepository.DeleteCategory(ctx, id)
}

func (s *catalogService) CreateAllergen(ctx context.Context, req domain.CreateAllergenRequest, orgID string) (domain.AllergenResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.AllergenResponse{}, domain.ErrParseUUID
	}

	allergen := &entities.Allergen{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Name:           strings.TrimSpace(req.Name),
		Severity:       req.Severity,
		IsCommon:       req.IsCommon,
	}
	if err := s.catalogRepository.CreateAllergen(ctx, allergen); err != nil {
		return domain.AllergenResponse{}, err
	}
	return toAllergenResponse(allergen), nil
}

func (s *catalogService) GetAllergens(ctx context.Context, orgID string) ([]domain.AllergenResponse, error) {
	allergens, err := s.catalogRepository.GetAllergens(ctx, orgID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AllergenResponse, 0, len(allergens))
	for _, allergen := range allergens {
		response = append(response, toAllergenResponse(allergen))
	}
	return response, nil
}

func (s *catalogService) CreateUnit(ctx context.Context, req domain.CreateUnitRequest, orgID string) (domain.UnitResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.UnitResponse{}, domain.ErrParseUUID
	}

	unit := &entities.Unit{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Name:           strings.TrimSpace(req.Name),
		Abbreviation:   req.Abbreviation,
	}
	if err := s.catalogRepository.CreateUnit(ctx, unit); err != nil {
		return domain.UnitResponse{}, err
	}
	return toUnitResponse(unit), nil
}

func (s *catalogService) GetUnits(ctx context.Context, orgID string) ([]domain.UnitResponse, error) {
	units, err := s.catalogRepository.GetUnits(ctx, orgID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UnitResponse, 0, len(units))
	for _, unit := range units {
		response = append(response, toUnitResponse(unit))
	}
	return response, nil
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	response := domain.ProductResponse{
		ID:               product.ID.String(),
		Name:             product.Name,
		Description:      product.Description,
		DefaultCondition: product.DefaultCondition,
		ImageURL:         product.ImageURL,
	}
	if product.CategoryID != nil {
		response.CategoryID = product.CategoryID.String()
	}
	if product.Category != nil {
		response.CategoryName = product.Category.Name
	}
	if product.SubcategoryID != nil {
		response.SubcategoryID = product.SubcategoryID.String()
	}
	if product.Subcategory != nil {
		response.SubcategoryName = product.Subcategory.Name
	}
	if product.UnitID != nil {
		response.UnitID = product.UnitID.String()
	}
	if product.Unit != nil {
		response.UnitName = product.Unit.Name
	}
	for _, allergen := range product.Allergens {
		response.Allergens = append(response.Allergens, toAllergenResponse(allergen))
	}
	return response
}

func toCategoryResponse(category *entities.LabelCategory) domain.CategoryResponse {
	response := domain.CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Icon:         category.Icon,
		DisplayOrder: category.DisplayOrder,
	}
	for _, subcategory := range category.Subcategories {
		response.Subcategories = append(response.Subcategories, toSubcategoryResponse(subcategory))
	}
	return response
}

func toSubcategoryResponse(subcategory *entities.LabelSubcategory) domain.SubcategoryResponse {
	return domain.SubcategoryResponse{
		ID:           subcategory.ID.String(),
		CategoryID:   subcategory.CategoryID.String(),
		Name:         subcategory.Name,
		DisplayOrder: subcategory.DisplayOrder,
	}
}

func toAllergenResponse(allergen *entities.Allergen) domain.AllergenResponse {
	return domain.AllergenResponse{
		ID:       allergen.ID.String(),
		Name:     allergen.Name,
		Severity: allergen.Severity,
		IsCommon: allergen.IsCommon,
	}
}

func toUnitResponse(unit *entities.Unit) domain.UnitResponse {
	return domain.UnitResponse{
		ID:           unit.ID.String(),
		Name:         unit.Name,
		Abbreviation: unit.Abbreviation,
	}
}
