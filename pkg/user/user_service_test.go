package user

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"errors"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

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

type fakeJWTService struct {
	issued []string
}

func (f *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	f.issued = append(f.issued, userId)
	return "token-" + userId
}

func (f *fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}

func (f *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := repo.users[res.ID]
	if stored == nil {
		t.Fatal("expected user to be stored")
	}
	if stored.Password == "secret1" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")); err != nil {
		t.Fatalf("expected valid bcrypt hash: %v", err)
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", stored.Role)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	if _, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Ana B", Email: "ana@x.com", Password: "secret2"})
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := &fakeJWTService{}
	service := NewUserService(repo, jwtService)

	registered, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := service.Login(context.Background(), domain.LoginRequest{Email: "ana@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token != "token-"+registered.ID {
		t.Fatalf("unexpected token %q", res.Token)
	}
	if res.User.Email != "ana@x.com" {
		t.Fatalf("unexpected user %+v", res.User)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	if _, err := service.Register(context.Background(), domain.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := service.Login(context.Background(), domain.LoginRequest{Email: "ana@x.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	_, err := service.Login(context.Background(), domain.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("expected ErrCredentialsInvalid, got %v", err)
	}
}

func TestMeUnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	_, err := service.Me(context.Background(), "11111111-1111-1111-1111-111111111111")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
