package group

import (
	"FoodShare-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

type (
	GroupRepository interface {
		CreateGroupWithCreator(ctx context.Context, group *entities.Group, member *entities.GroupMember) error
		GetGroupByID(ctx context.Context, id string) (*entities.Group, error)
		GetMembership(ctx context.Context, groupID, userID string) (*entities.GroupMember, error)
		AddGroupMember(ctx context.Context, member *entities.GroupMember) error
		GetMembershipsByUser(ctx context.Context, userID string) ([]*entities.GroupMember, error)
	}

	groupRepository struct {
		db *gorm.DB
	}
)

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// CreateGroupWithCreator inserts the group and the creator's membership
// together, so a group never exists without at least one member.
func (r *groupRepository) CreateGroupWithCreator(ctx context.Context, group *entities.Group, member *entities.GroupMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return tx.Create(member).Error
	})
}

func (r *groupRepository) GetGroupByID(ctx context.Context, id string) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) GetMembership(ctx context.Context, groupID, userID string) (*entities.GroupMember, error) {
	var member entities.GroupMember
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *groupRepository) AddGroupMember(ctx context.Context, member *entities.GroupMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *groupRepository) GetMembershipsByUser(ctx context.Context, userID string) ([]*entities.GroupMember, error) {
	var members []*entities.GroupMember
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Where("user_id = ?", userID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
