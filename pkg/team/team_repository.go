package team

import (
	"context"

	"gorm.io/gorm"

	"preplabel-backend/entities"
)

type (
	TeamRepository interface {
		CreateOrganization(ctx context.Context, org *entities.Organization) error
		GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error)

		CreateMember(ctx context.Context, member *entities.TeamMember) error
		GetMemberByID(ctx context.Context, id string) (*entities.TeamMember, error)
		GetMemberByEmail(ctx context.Context, email string) (*entities.TeamMember, error)
		UpdateMember(ctx context.Context, member *entities.TeamMember) error
		DeleteMember(ctx context.Context, id string) error
		GetMembers(ctx context.Context, orgID string) ([]*entities.TeamMember, error)
		CheckEmailExist(ctx context.Context, email string) (bool, error)
	}

	teamRepository struct {
		db *gorm.DB
	}
)

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateOrganization(ctx context.Context, org *entities.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *teamRepository) GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error) {
	var org entities.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *teamRepository) CreateMember(ctx context.Context, member *entities.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepository) GetMemberByID(ctx context.Context, id string) (*entities.TeamMember, error) {
	var member entities.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) GetMemberByEmail(ctx context.Context, email string) (*entities.TeamMember, error) {
	var member entities.TeamMember
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) UpdateMember(ctx context.Context, member *entities.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *teamRepository) DeleteMember(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.TeamMember{}).Error
}

func (r *teamRepository) GetMembers(ctx context.Context, orgID string) ([]*entities.TeamMember, error) {
	var members []*entities.TeamMember
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) CheckEmailExist(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.TeamMember{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
