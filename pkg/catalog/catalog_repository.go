package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
)

type (
	// SimilarProduct is one row of the trigram similarity query.
	SimilarProduct struct {
		ID         uuid.UUID `json:"id"`
		Name       string    `json:"name"`
		Similarity float64   `json:"similarity"`
	}

	CatalogRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProductFullDetails(ctx context.Context, id string) (*entities.Product, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
		GetProducts(ctx context.Context, orgID string, categoryID string, search string, page, limit int) ([]*entities.Product, int64, error)
		FindSimilarProducts(ctx context.Context, orgID string, name string, threshold float64, limit int) ([]SimilarProduct, error)
		MergeProducts(ctx context.Context, orgID string, sourceID, targetID string) error
		ReplaceProductAllergens(ctx context.Context, product *entities.Product, allergens []*entities.Allergen) error
		GetProductAllergens(ctx context.Context, productID string) ([]*entities.Allergen, error)

		CreateCategory(ctx context.Context, category *entities.LabelCategory) error
		GetCategoryByID(ctx context.Context, id string) (*entities.LabelCategory, error)
		GetCategories(ctx context.Context, orgID string) ([]*entities.LabelCategory, error)
		UpdateCategory(ctx context.Context, category *entities.LabelCategory) error
		DeleteCategory(ctx context.Context, id string) error
		CreateSubcategory(ctx context.Context, subcategory *entities.LabelSubcategory) error
		GetSubcategoryByID(ctx context.Context, id string) (*entities.LabelSubcategory, error)

		CreateAllergen(ctx context.Context, allergen *entities.Allergen) error
		GetAllergens(ctx context.Context, orgID string) ([]*entities.Allergen, error)
		GetAllergensByIDs(ctx context.Context, orgID string, ids []string) ([]*entities.Allergen, error)

		CreateUnit(ctx context.Context, unit *entities.Unit) error
		GetUnits(ctx context.Context, orgID string) ([]*entities.Unit, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// isUniqueViolation reports whether the backend rejected a write with
// SQLSTATE 23505, so call sites can switch on a closed set of domain errors
// instead of probing the raw error shape.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductNameTaken
		}
		return err
	}
	return nil
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Preload("Unit").
		Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) GetProductFullDetails(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Preload("Unit").
		Preload("Allergens").
		Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductNameTaken
		}
		return err
	}
	return nil
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{}).Error
}

func (r *catalogRepository) GetProducts(ctx context.Context, orgID string, categoryID string, search string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Category").
		Preload("Subcategory").
		Preload("Unit").
		Offset(offset).Limit(limit).Order("name asc").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

// FindSimilarProducts runs the pg_trgm similarity query that used to live
// behind the find_similar_products stored procedure.
func (r *catalogRepository) FindSimilarProducts(ctx context.Context, orgID string, name string, threshold float64, limit int) ([]SimilarProduct, error) {
	var rows []SimilarProduct
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, similarity(name, ?) AS similarity
		FROM products
		WHERE organization_id = ? AND similarity(name, ?) >= ?
		ORDER BY similarity DESC
		LIMIT ?`,
		name, orgID, name, threshold, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MergeProducts consolidates the source product into the target atomically:
// printed labels and drafts are relinked, allergen links are unioned, and
// the source row is removed.
func (r *catalogRepository) MergeProducts(ctx context.Context, orgID string, sourceID, targetID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source, target entities.Product
		if err := tx.Where("id = ? AND organization_id = ?", sourceID, orgID).First(&source).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ? AND organization_id = ?", targetID, orgID).First(&target).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.PrintedLabel{}).
			Where("product_id = ?", sourceID).
			Update("product_id", targetID).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.LabelDraft{}).
			Where("product_id = ?", sourceID).
			Update("product_id", targetID).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
			INSERT INTO product_allergens (product_id, allergen_id)
			SELECT ?, allergen_id FROM product_allergens WHERE product_id = ?
			ON CONFLICT DO NOTHING`,
			targetID, sourceID,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM product_allergens WHERE product_id = ?`, sourceID).Error; err != nil {
			return err
		}

		return tx.Delete(&source).Error
	})
}

func (r *catalogRepository) ReplaceProductAllergens(ctx context.Context, product *entities.Product, allergens []*entities.Allergen) error {
	return r.db.WithContext(ctx).Model(product).Association("Allergens").Replace(allergens)
}

func (r *catalogRepository) GetProductAllergens(ctx context.Context, productID string) ([]*entities.Allergen, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Allergens").
		Where("id = ?", productID).First(&product).Error; err != nil {
		return nil, err
	}
	return product.Allergens, nil
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *entities.LabelCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (r *catalogRepository) GetCategoryByID(ctx context.Context, id string) (*entities.LabelCategory, error) {
	var category entities.LabelCategory
	if err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) GetCategories(ctx context.Context, orgID string) ([]*entities.LabelCategory, error) {
	var categories []*entities.LabelCategory
	if err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Where("organization_id = ?", orgID).
		Order("display_order asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *entities.LabelCategory) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entities.LabelSubcategory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.LabelCategory{}).Error
	})
}

func (r *catalogRepository) CreateSubcategory(ctx context.Context, subcategory *entities.LabelSubcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *catalogRepository) GetSubcategoryByID(ctx context.Context, id string) (*entities.LabelSubcategory, error) {
	var subcategory entities.LabelSubcategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&subcategory).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *catalogRepository) CreateAllergen(ctx context.Context, allergen *entities.Allergen) error {
	if err := r.db.WithContext(ctx).Create(allergen).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAllergenNameTaken
		}
		return err
	}
	return nil
}

func (r *catalogRepository) GetAllergens(ctx context.Context, orgID string) ([]*entities.Allergen, error) {
	var allergens []*entities.Allergen
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name asc").
		Find(&allergens).Error; err != nil {
		return nil, err
	}
	return allergens, nil
}

func (r *catalogRepository) GetAllergensByIDs(ctx context.Context, orgID string, ids []string) ([]*entities.Allergen, error) {
	var allergens []*entities.Allergen
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id IN ?", orgID, ids).
		Find(&allergens).Error; err != nil {
		return nil, err
	}
	return allergens, nil
}

func (r *catalogRepository) CreateUnit(ctx context.Context, unit *entities.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *catalogRepository) GetUnits(ctx context.Context, orgID string) ([]*entities.Unit, error) {
	var units []*entities.Unit
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name asc").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}
