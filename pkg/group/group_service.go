package group

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/user"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroupService interface {
		CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID string) (domain.GroupResponse, error)
		InviteToGroup(ctx context.Context, groupID, invitedUserID, userID string) (domain.GroupMemberResponse, error)
		GetMyGroups(ctx context.Context, userID string) ([]domain.GroupMemberResponse, error)
	}

	groupService struct {
		groupRepository GroupRepository
		userRepository  user.UserRepository
	}
)

func NewGroupService(groupRepository GroupRepository, userRepository user.UserRepository) GroupService {
	return &groupService{
		groupRepository: groupRepository,
		userRepository:  userRepository,
	}
}

func toGroupResponse(group *entities.Group) domain.GroupResponse {
	return domain.GroupResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Type:        group.Type,
		CreatedByID: group.CreatedByID.String(),
		CreatedAt:   group.CreatedAt,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, req domain.CreateGroupRequest, userID string) (domain.GroupResponse, error) {
	creatorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroupResponse{}, domain.ErrParseUUID
	}

	group := &entities.Group{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		CreatedByID: creatorUUID,
	}

	member := &entities.GroupMember{
		ID:      uuid.New(),
		GroupID: group.ID,
		UserID:  creatorUUID,
	}

	if err := s.groupRepository.CreateGroupWithCreator(ctx, group, member); err != nil {
		return domain.GroupResponse{}, err
	}

	return toGroupResponse(group), nil
}

func (s *groupService) InviteToGroup(ctx context.Context, groupID, invitedUserID, userID string) (domain.GroupMemberResponse, error) {
	group, err := s.groupRepository.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroupMemberResponse{}, domain.ErrGroupNotFound
		}
		return domain.GroupMemberResponse{}, err
	}

	// Only an existing member may bring someone in.
	callerMembership, err := s.groupRepository.GetMembership(ctx, groupID, userID)
	if err != nil {
		return domain.GroupMemberResponse{}, err
	}
	if callerMembership == nil {
		return domain.GroupMemberResponse{}, domain.ErrNotGroupMember
	}

	invited, err := s.userRepository.GetUserByID(ctx, invitedUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroupMemberResponse{}, domain.ErrUserNotFound
		}
		return domain.GroupMemberResponse{}, err
	}

	existing, err := s.groupRepository.GetMembership(ctx, groupID, invitedUserID)
	if err != nil {
		return domain.GroupMemberResponse{}, err
	}
	if existing != nil {
		return domain.GroupMemberResponse{}, domain.ErrAlreadyGroupMember
	}

	member := &entities.GroupMember{
		ID:      uuid.New(),
		GroupID: group.ID,
		UserID:  invited.ID,
	}

	if err := s.groupRepository.AddGroupMember(ctx, member); err != nil {
		return domain.GroupMemberResponse{}, err
	}

	return domain.GroupMemberResponse{
		ID:      member.ID.String(),
		GroupID: member.GroupID.String(),
		UserID:  member.UserID.String(),
	}, nil
}

func (s *groupService) GetMyGroups(ctx context.Context, userID string) ([]domain.GroupMemberResponse, error) {
	members, err := s.groupRepository.GetMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.GroupMemberResponse
	for _, member := range members {
		item := domain.GroupMemberResponse{
			ID:      member.ID.String(),
			GroupID: member.GroupID.String(),
			UserID:  member.UserID.String(),
		}
		if member.Group != nil {
			group := toGroupResponse(member.Group)
			item.Group = &group
		}
		response = append(response, item)
	}

	return response, nil
}
