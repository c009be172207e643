package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"preplabel-backend/domain"
	"preplabel-backend/internal/api/presenters"
	"preplabel-backend/pkg/catalog"
)

type (
	CatalogHandler interface {
		CreateProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		CheckDuplicateProduct(c *fiber.Ctx) error
		FindSimilarProducts(c *fiber.Ctx) error
		MergeProducts(c *fiber.Ctx) error
		AssignAllergens(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		CreateSubcategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		CreateAllergen(c *fiber.Ctx) error
		GetAllergens(c *fiber.Ctx) error
		CreateUnit(c *fiber.Ctx) error
		GetUnits(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) CreateProduct(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.CreateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.catalogService.CreateProduct(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

func (h *catalogHandler) UpdateProduct(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	productID := c.Params("id")
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	if err := h.catalogService.UpdateProduct(c.Context(), productID, *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *catalogHandler) DeleteProduct(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	productID := c.Params("id")

	if err := h.catalogService.DeleteProduct(c.Context(), productID, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *catalogHandler) GetProducts(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	categoryID := c.Query("category_id", "")
	search := c.Query("search", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	products, count, err := h.catalogService.GetProducts(c.Context(), orgID, categoryID, search, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *catalogHandler) GetProductDetails(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	productID := c.Params("id")

	product, err := h.catalogService.GetProductFullDetails(c.Context(), productID, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProductDetails, err)
	}

	return presenters.SuccessResponse(c, product, fiber.StatusOK, domain.MessageSuccessGetProductDetails)
}

func (h *catalogHandler) CheckDuplicateProduct(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	name := c.Query("name", "")
	if name == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindSimilar, nil)
	}

	res, err := h.catalogService.CheckDuplicateProduct(c.Context(), name, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindSimilar, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFindSimilar)
}

func (h *catalogHandler) FindSimilarProducts(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.SimilarProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindSimilar, err)
	}

	res, err := h.catalogService.FindSimilarProducts(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFindSimilar, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFindSimilar)
}

func (h *catalogHandler) MergeProducts(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.MergeProductsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMergeProducts, err)
	}

	if err := h.catalogService.MergeProducts(c.Context(), *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMergeProducts, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMergeProducts)
}

func (h *catalogHandler) AssignAllergens(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	productID := c.Params("id")
	req := new(domain.AssignAllergensRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignAllergens, err)
	}

	if err := h.catalogService.AssignAllergens(c.Context(), productID, *req, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignAllergens, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAssignAllergens)
}

func (h *catalogHandler) CreateCategory(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.catalogService.CreateCategory(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *catalogHandler) CreateSubcategory(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.CreateSubcategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.catalogService.CreateSubcategory(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	categories, err := h.catalogService.GetCategories(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) DeleteCategory(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	categoryID := c.Params("id")

	if err := h.catalogService.DeleteCategory(c.Context(), categoryID, orgID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *catalogHandler) CreateAllergen(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.CreateAllergenRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAllergen, err)
	}

	res, err := h.catalogService.CreateAllergen(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAllergen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAllergen)
}

func (h *catalogHandler) GetAllergens(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	allergens, err := h.catalogService.GetAllergens(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllergens, err)
	}

	return presenters.SuccessResponse(c, allergens, fiber.StatusOK, domain.MessageSuccessGetAllergens)
}

func (h *catalogHandler) CreateUnit(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)
	req := new(domain.CreateUnitRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUnit, err)
	}

	res, err := h.catalogService.CreateUnit(c.Context(), *req, orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUnit, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateUnit)
}

func (h *catalogHandler) GetUnits(c *fiber.Ctx) error {
	orgID := c.Locals("organization_id").(string)

	units, err := h.catalogService.GetUnits(c.Context(), orgID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUnits, err)
	}

	return presenters.SuccessResponse(c, units, fiber.StatusOK, domain.MessageSuccessGetUnits)
}
