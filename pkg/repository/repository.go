package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harborworks/fleetdeck/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrNotFound is returned by Update/Delete when no record matches the given
// identifier. Get methods return (nil, nil) for a missing record instead.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a create that failed referential or schema checks.
type ValidationError struct {
	Entity  string
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(e.Reasons, "; "))
}

type UserRepo interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) (string, error)
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id string) error
}

type ShipRepo interface {
	ListShips(ctx context.Context) ([]models.Ship, error)
	GetShip(ctx context.Context, id string) (*models.Ship, error)
	CreateShip(ctx context.Context, s *models.Ship) (string, error)
	UpdateShip(ctx context.Context, s *models.Ship) error
	// DeleteShip also removes the ship's components and every job tagged with
	// the ship, in one atomic operation.
	DeleteShip(ctx context.Context, id string) error
}

type ComponentRepo interface {
	ListComponents(ctx context.Context) ([]models.ShipComponent, error)
	ListComponentsByShip(ctx context.Context, shipID string) ([]models.ShipComponent, error)
	GetComponent(ctx context.Context, id string) (*models.ShipComponent, error)
	CreateComponent(ctx context.Context, c *models.ShipComponent) (string, error)
	UpdateComponent(ctx context.Context, c *models.ShipComponent) error
	// DeleteComponent also removes every job referencing the component.
	DeleteComponent(ctx context.Context, id string) error
}

type JobRepo interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListJobsByShip(ctx context.Context, shipID string) ([]models.Job, error)
	ListJobsByComponent(ctx context.Context, componentID string) ([]models.Job, error)
	ListJobsByEngineer(ctx context.Context, engineerID string) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	// CreateJob assigns CreatedAt/UpdatedAt and emits a "Job Created"
	// notification as part of the same operation.
	CreateJob(ctx context.Context, j *models.Job) (string, error)
	// UpdateJob refreshes UpdatedAt unconditionally and emits exactly one
	// notification when the status differs from the stored record.
	UpdateJob(ctx context.Context, j *models.Job) error
	DeleteJob(ctx context.Context, id string) error
}

type NotificationRepo interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	GetNotification(ctx context.Context, id string) (*models.Notification, error)
	CreateNotification(ctx context.Context, n *models.Notification) (string, error)
	MarkNotificationRead(ctx context.Context, id string) (*models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}

// SessionRepo is the single current-user pointer. Login never reveals which of
// email or password was wrong; it just reports success.
type SessionRepo interface {
	Login(ctx context.Context, email, password string) (bool, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	HasPermission(ctx context.Context, roles ...models.UserRole) (bool, error)
}
