package group

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeGroupRepository struct {
	groups  map[string]*entities.Group
	members []*entities.GroupMember
}

func newFakeGroupRepository() *fakeGroupRepository {
	return &fakeGroupRepository{groups: make(map[string]*entities.Group)}
}

func (f *fakeGroupRepository) CreateGroupWithCreator(ctx context.Context, group *entities.Group, member *entities.GroupMember) error {
	f.groups[group.ID.String()] = group
	f.members = append(f.members, member)
	return nil
}

func (f *fakeGroupRepository) GetGroupByID(ctx context.Context, id string) (*entities.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return group, nil
}

func (f *fakeGroupRepository) GetMembership(ctx context.Context, groupID, userID string) (*entities.GroupMember, error) {
	for _, member := range f.members {
		if member.GroupID.String() == groupID && member.UserID.String() == userID {
			return member, nil
		}
	}
	return nil, nil
}

func (f *fakeGroupRepository) AddGroupMember(ctx context.Context, member *entities.GroupMember) error {
	f.members = append(f.members, member)
	return nil
}

func (f *fakeGroupRepository) GetMembershipsByUser(ctx context.Context, userID string) ([]*entities.GroupMember, error) {
	var result []*entities.GroupMember
	for _, member := range f.members {
		if member.UserID.String() == userID {
			if group, ok := f.groups[member.GroupID.String()]; ok {
				member.Group = group
			}
			result = append(result, member)
		}
	}
	return result, nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func seedUser(users *fakeUserRepository) *entities.User {
	user := &entities.User{
		ID:    uuid.New(),
		Name:  "Ana",
		Email: "ana@x.com",
		Role:  domain.RoleUser,
	}
	users.users[user.ID.String()] = user
	return user
}

func TestCreateGroupEnrollsCreator(t *testing.T) {
	groups := newFakeGroupRepository()
	users := newFakeUserRepository()
	service := NewGroupService(groups, users)
	creator := seedUser(users)

	res, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{
		Name: "Vecini",
		Type: "cartier",
	}, creator.ID.String())
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if res.CreatedByID != creator.ID.String() {
		t.Fatalf("expected creator %s, got %s", creator.ID, res.CreatedByID)
	}

	membership, err := groups.GetMembership(context.Background(), res.ID, creator.ID.String())
	if err != nil {
		t.Fatalf("get membership: %v", err)
	}
	if membership == nil {
		t.Fatal("expected creator to be enrolled as member")
	}
}

func TestInviteToGroupRequiresMembership(t *testing.T) {
	groups := newFakeGroupRepository()
	users := newFakeUserRepository()
	service := NewGroupService(groups, users)
	creator := seedUser(users)
	invited := seedUser(users)

	res, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{Name: "Vecini", Type: "cartier"}, creator.ID.String())
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	outsider := seedUser(users)
	_, err = service.InviteToGroup(context.Background(), res.ID, invited.ID.String(), outsider.ID.String())
	if !errors.Is(err, domain.ErrNotGroupMember) {
		t.Fatalf("expected ErrNotGroupMember, got %v", err)
	}
}

func TestInviteToGroupRejectsDuplicate(t *testing.T) {
	groups := newFakeGroupRepository()
	users := newFakeUserRepository()
	service := NewGroupService(groups, users)
	creator := seedUser(users)
	invited := seedUser(users)

	res, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{Name: "Vecini", Type: "cartier"}, creator.ID.String())
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	if _, err := service.InviteToGroup(context.Background(), res.ID, invited.ID.String(), creator.ID.String()); err != nil {
		t.Fatalf("first invite: %v", err)
	}
	_, err = service.InviteToGroup(context.Background(), res.ID, invited.ID.String(), creator.ID.String())
	if !errors.Is(err, domain.ErrAlreadyGroupMember) {
		t.Fatalf("expected ErrAlreadyGroupMember, got %v", err)
	}
}

func TestInviteToGroupUnknownGroup(t *testing.T) {
	service := NewGroupService(newFakeGroupRepository(), newFakeUserRepository())

	_, err := service.InviteToGroup(context.Background(), uuid.New().String(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestGetMyGroupsJoinsGroup(t *testing.T) {
	groups := newFakeGroupRepository()
	users := newFakeUserRepository()
	service := NewGroupService(groups, users)
	creator := seedUser(users)

	if _, err := service.CreateGroup(context.Background(), domain.CreateGroupRequest{Name: "Vecini", Type: "cartier"}, creator.ID.String()); err != nil {
		t.Fatalf("create group: %v", err)
	}

	res, err := service.GetMyGroups(context.Background(), creator.ID.String())
	if err != nil {
		t.Fatalf("get my groups: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("expected 1 membership, got %d", len(res))
	}
	if res[0].Group == nil || res[0].Group.Name != "Vecini" {
		t.Fatalf("expected joined group, got %+v", res[0])
	}
}
