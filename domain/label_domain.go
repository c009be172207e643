package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPrintLabel      = "label printed successfully"
	MessageSuccessGetLabels       = "printed labels retrieved successfully"
	MessageSuccessGetExpiringSoon = "expiring labels retrieved successfully"
	MessageSuccessConsumeLabel    = "label marked as used"
	MessageSuccessDiscardLabel    = "label marked as wasted"
	MessageSuccessExtendLabel     = "label expiry extended"
	MessageSuccessBulkAction      = "bulk action applied"
	MessageSuccessSaveDraft       = "draft saved successfully"
	MessageSuccessGetDrafts       = "drafts retrieved successfully"
	MessageSuccessDeleteDraft     = "draft deleted successfully"

	MessageFailedPrintLabel      = "failed to print label"
	MessageFailedGetLabels       = "failed to retrieve printed labels"
	MessageFailedGetExpiringSoon = "failed to retrieve expiring labels"
	MessageFailedConsumeLabel    = "failed to mark label as used"
	MessageFailedDiscardLabel    = "failed to mark label as wasted"
	MessageFailedExtendLabel     = "failed to extend label expiry"
	MessageFailedBulkAction      = "failed to apply bulk action"
	MessageFailedSaveDraft       = "failed to save draft"
	MessageFailedGetDrafts       = "failed to retrieve drafts"
	MessageFailedDeleteDraft     = "failed to delete draft"

	ErrLabelNotFound         = errors.New("printed label not found")
	ErrInvalidPrepDate       = errors.New("invalid prep date")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrLabelTerminal         = errors.New("label is already used or wasted")
	ErrLabelMissingProduct   = errors.New("label requires a product")
	ErrLabelMissingCondition = errors.New("label requires a condition")
	ErrDiscardReasonRequired = errors.New("discard requires a reason")
	ErrExtendReasonRequired  = errors.New("extend requires a reason")
	ErrExtendDateInPast      = errors.New("new expiry date must not be before today")
	ErrDraftNotFound         = errors.New("draft not found")
	ErrDispatchFailed        = errors.New("label dispatch failed")
	ErrUnknownLabelFormat    = errors.New("unknown label format")
)

type (
	QuickPrintRequest struct {
		ProductID   string  `json:"product_id" validate:"required,uuid"`
		Condition   string  `json:"condition" validate:"omitempty,oneof=fresh cooked frozen dry refrigerated"`
		PrepDate    string  `json:"prep_date" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
		UnitName    string  `json:"unit_name" validate:"omitempty"`
		BatchNumber string  `json:"batch_number" validate:"omitempty"`
		Format      string  `json:"format" validate:"required,oneof=generic pdf thermal"`
		PrinterID   string  `json:"printer_id" validate:"omitempty,uuid"`
	}

	PrintedLabelResponse struct {
		ID              string    `json:"id"`
		ProductName     string    `json:"product_name"`
		CategoryName    string    `json:"category_name,omitempty"`
		SubcategoryName string    `json:"subcategory_name,omitempty"`
		Condition       string    `json:"condition"`
		PrepDate        time.Time `json:"prep_date"`
		ExpiryDate      time.Time `json:"expiry_date"`
		Quantity        float64   `json:"quantity"`
		UnitName        string    `json:"unit_name,omitempty"`
		BatchNumber     string    `json:"batch_number,omitempty"`
		PreparedByName  string    `json:"prepared_by_name"`
		Allergens       []string  `json:"allergens,omitempty"`
		Format          string    `json:"format"`
		Status          string    `json:"status"`
		Tier            string    `json:"tier,omitempty"`
		DaysUntilExpiry int       `json:"days_until_expiry"`
		CreatedAt       time.Time `json:"created_at"`
	}

	DiscardLabelRequest struct {
		Reason string `json:"reason" validate:"required"`
	}

	ExtendLabelRequest struct {
		NewExpiryDate string `json:"new_expiry_date" validate:"required"`
		Reason        string `json:"reason" validate:"required"`
	}

	BulkLabelActionRequest struct {
		LabelIDs []string `json:"label_ids" validate:"required,min=1,dive,uuid"`
		Reason   string   `json:"reason" validate:"omitempty"`
	}

	BulkLabelActionResponse struct {
		Succeeded []string           `json:"succeeded"`
		Failed    []BulkLabelFailure `json:"failed,omitempty"`
	}

	BulkLabelFailure struct {
		LabelID string `json:"label_id"`
		Reason  string `json:"reason"`
	}

	SaveDraftRequest struct {
		Name        string  `json:"name" validate:"required"`
		ProductID   string  `json:"product_id" validate:"omitempty,uuid"`
		Condition   string  `json:"condition" validate:"omitempty,oneof=fresh cooked frozen dry refrigerated"`
		PrepDate    string  `json:"prep_date" validate:"omitempty"`
		Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
		UnitName    string  `json:"unit_name" validate:"omitempty"`
		BatchNumber string  `json:"batch_number" validate:"omitempty"`
	}

	DraftResponse struct {
		ID          string     `json:"id"`
		Name        string     `json:"name"`
		ProductID   string     `json:"product_id,omitempty"`
		Condition   string     `json:"condition,omitempty"`
		PrepDate    *time.Time `json:"prep_date,omitempty"`
		Quantity    float64    `json:"quantity"`
		UnitName    string     `json:"unit_name,omitempty"`
		BatchNumber string     `json:"batch_number,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
