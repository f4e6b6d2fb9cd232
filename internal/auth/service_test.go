package auth

import (
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password, RoleStaff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDefaultsToStaffRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	user, err := service.Register("Test User", "test@example.com", "Password@123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleStaff {
		t.Fatalf("expected STAFF, got %s", user.Role)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123", "SUPERUSER"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("A", "test@example.com", "Password@123", RoleStaff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("B", "test@example.com", "Password@123", RoleStaff); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if err := service.EnsureAdmin("Administrator", "admin@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["admin@example.com"]
	if user == nil {
		t.Fatalf("admin not found")
	}
	if user.Role != RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", user.Role)
	}

	// Re-seeding must not touch the existing account
	firstID := user.ID
	if err := service.EnsureAdmin("Administrator", "admin@example.com", "other-password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.users["admin@example.com"].ID != firstID {
		t.Fatalf("re-seed replaced the existing admin account")
	}
}

// failingUserRepository errors on every lookup, simulating a DB outage.
type failingUserRepository struct{}

var errRepoDown = errors.New("repository unavailable")

func (failingUserRepository) Save(*User) error { return errRepoDown }

func (failingUserRepository) ExistsByEmail(string) (bool, error) { return false, errRepoDown }

func (failingUserRepository) FindByEmail(string) (*User, error) { return nil, errRepoDown }

func TestRegisterSurfacesRepositoryError(t *testing.T) {
	service := NewService(failingUserRepository{})

	_, err := service.Register("Test User", "test@example.com", "Password@123", RoleStaff)
	if !errors.Is(err, errRepoDown) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Test User", "test@example.com", "Password@123", RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login("test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", user.Role)
	}

	if _, err := service.Login("test@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "Password@123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
