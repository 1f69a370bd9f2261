package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fieldserve/internal/domain/complaint"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/infrastructure/persistence/mappers"
	"fieldserve/internal/infrastructure/persistence/models"
	"fieldserve/internal/shared/db"
	"fieldserve/internal/shared/errors"
)

// allowedComplaintOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedComplaintOrderByFields = map[string]bool{
	"id":         true,
	"code":       true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"category":   true,
	"dealer_id":  true,
	"created_at": true,
	"updated_at": true,
}

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(gdb *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     gdb,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("complaint code already exists")
		}
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	return c.SetID(model.ID)
}

// Update writes the complaint with an optimistic version check. The WHERE
// clause pins the version the aggregate was loaded at; zero rows affected
// means a concurrent writer got there first.
func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"title":         model.Title,
			"description":   model.Description,
			"priority":      model.Priority,
			"address":       model.Address,
			"area":          model.Area,
			"city":          model.City,
			"landmark":      model.Landmark,
			"pincode":       model.Pincode,
			"contact_name":  model.ContactName,
			"contact_phone": model.ContactPhone,
			"status":        model.Status,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("complaint was modified concurrently, please retry")
	}

	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) GetByCode(ctx context.Context, code string) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ComplaintModel{})

	if filter.DealerID != nil {
		query = query.Where("dealer_id = ?", *filter.DealerID)
	}
	if filter.ComplaintIDs != nil {
		if len(filter.ComplaintIDs) == 0 {
			return []*complaint.Complaint{}, 0, nil
		}
		query = query.Where("id IN ?", filter.ComplaintIDs)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedComplaintOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var complaintModels []models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		complaints[i] = c
	}

	return complaints, total, nil
}

func (r *ComplaintRepository) CountByStatus(ctx context.Context, dealerID uint) (map[vo.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	type statusCount struct {
		Status string
		Count  int64
	}

	query := tx.Model(&models.ComplaintModel{}).
		Select("status, count(*) as count").
		Group("status")
	if dealerID != 0 {
		query = query.Where("dealer_id = ?", dealerID)
	}

	var rows []statusCount
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints by status: %w", err)
	}

	counts := make(map[vo.Status]int64, len(vo.AllStatuses()))
	for _, s := range vo.AllStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[vo.Status(row.Status)] = row.Count
	}

	return counts, nil
}
