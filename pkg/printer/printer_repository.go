package printer

import (
	"context"
	"time"

	"gorm.io/gorm"

	"preplabel-backend/entities"
)

type (
	PrinterRepository interface {
		CreatePrinter(ctx context.Context, printer *entities.Printer) error
		GetPrinterByID(ctx context.Context, id string) (*entities.Printer, error)
		UpdatePrinter(ctx context.Context, printer *entities.Printer) error
		DeletePrinter(ctx context.Context, id string) error
		GetPrinters(ctx context.Context, orgID string) ([]*entities.Printer, error)
		RecordProbe(ctx context.Context, id string, status string, latencyMS int64, at time.Time) error
	}

	printerRepository struct {
		db *gorm.DB
	}
)

func NewPrinterRepository(db *gorm.DB) PrinterRepository {
	return &printerRepository{db: db}
}

func (r *printerRepository) CreatePrinter(ctx context.Context, printer *entities.Printer) error {
	return r.db.WithContext(ctx).Create(printer).Error
}

func (r *printerRepository) GetPrinterByID(ctx context.Context, id string) (*entities.Printer, error) {
	var printer entities.Printer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&printer).Error; err != nil {
		return nil, err
	}
	return &printer, nil
}

func (r *printerRepository) UpdatePrinter(ctx context.Context, printer *entities.Printer) error {
	return r.db.WithContext(ctx).Save(printer).Error
}

func (r *printerRepository) DeletePrinter(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Printer{}).Error
}

func (r *printerRepository) GetPrinters(ctx context.Context, orgID string) ([]*entities.Printer, error) {
	var printers []*entities.Printer
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name asc").
		Find(&printers).Error; err != nil {
		return nil, err
	}
	return printers, nil
}

func (r *printerRepository) RecordProbe(ctx context.Context, id string, status string, latencyMS int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.Printer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          status,
			"last_latency_ms": latencyMS,
			"last_seen_at":    at,
		}).Error
}
