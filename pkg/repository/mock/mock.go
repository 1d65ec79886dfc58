// Package mock provides an in-memory repository for handler tests.
package mock

import (
	"context"
	"fmt"

	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

// Store is a slice-backed implementation of every repository interface, with
// an injectable error for failure paths. It does not reproduce the cascade
// rules; handler tests only need the contract surface.
type Store struct {
	Users         []models.User
	Ships         []models.Ship
	Components    []models.ShipComponent
	Jobs          []models.Job
	Notifications []models.Notification
	Current       *models.User

	Err error
}

var _ repository.UserRepo = (*Store)(nil)
var _ repository.ShipRepo = (*Store)(nil)
var _ repository.ComponentRepo = (*Store)(nil)
var _ repository.JobRepo = (*Store)(nil)
var _ repository.NotificationRepo = (*Store)(nil)
var _ repository.SessionRepo = (*Store)(nil)

func New() *Store { return &Store{} }

func (m *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.Users, m.Err
}

func (m *Store) ListUsersByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.User{}
	for _, u := range m.Users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Users {
		if m.Users[i].ID == id {
			return &m.Users[i], nil
		}
	}
	return nil, nil
}

func (m *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Users {
		if m.Users[i].Email == email {
			return &m.Users[i], nil
		}
	}
	return nil, nil
}

func (m *Store) CreateUser(ctx context.Context, u *models.User) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	u.ID = fmt.Sprintf("user_%d", len(m.Users)+1)
	m.Users = append(m.Users, *u)
	return u.ID, nil
}

func (m *Store) UpdateUser(ctx context.Context, u *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Users {
		if m.Users[i].ID == u.ID {
			m.Users[i] = *u
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) DeleteUser(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Users {
		if m.Users[i].ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) ListShips(ctx context.Context) ([]models.Ship, error) {
	return m.Ships, m.Err
}

func (m *Store) GetShip(ctx context.Context, id string) (*models.Ship, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Ships {
		if m.Ships[i].ID == id {
			return &m.Ships[i], nil
		}
	}
	return nil, nil
}

func (m *Store) CreateShip(ctx context.Context, s *models.Ship) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	s.ID = fmt.Sprintf("ship_%d", len(m.Ships)+1)
	m.Ships = append(m.Ships, *s)
	return s.ID, nil
}

func (m *Store) UpdateShip(ctx context.Context, s *models.Ship) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Ships {
		if m.Ships[i].ID == s.ID {
			m.Ships[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) DeleteShip(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Ships {
		if m.Ships[i].ID == id {
			m.Ships = append(m.Ships[:i], m.Ships[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) ListComponents(ctx context.Context) ([]models.ShipComponent, error) {
	return m.Components, m.Err
}

func (m *Store) ListComponentsByShip(ctx context.Context, shipID string) ([]models.ShipComponent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.ShipComponent{}
	for _, c := range m.Components {
		if c.ShipID == shipID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *Store) GetComponent(ctx context.Context, id string) (*models.ShipComponent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Components {
		if m.Components[i].ID == id {
			return &m.Components[i], nil
		}
	}
	return nil, nil
}

func (m *Store) CreateComponent(ctx context.Context, c *models.ShipComponent) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	c.ID = fmt.Sprintf("component_%d", len(m.Components)+1)
	m.Components = append(m.Components, *c)
	return c.ID, nil
}

func (m *Store) UpdateComponent(ctx context.Context, c *models.ShipComponent) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Components {
		if m.Components[i].ID == c.ID {
			m.Components[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) DeleteComponent(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Components {
		if m.Components[i].ID == id {
			m.Components = append(m.Components[:i], m.Components[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	return m.Jobs, m.Err
}

func (m *Store) ListJobsByShip(ctx context.Context, shipID string) ([]models.Job, error) {
	return m.filterJobs(func(j models.Job) bool { return j.ShipID == shipID })
}

func (m *Store) ListJobsByComponent(ctx context.Context, componentID string) ([]models.Job, error) {
	return m.filterJobs(func(j models.Job) bool { return j.ComponentID == componentID })
}

func (m *Store) ListJobsByEngineer(ctx context.Context, engineerID string) ([]models.Job, error) {
	return m.filterJobs(func(j models.Job) bool { return j.AssignedEngineerID == engineerID })
}

func (m *Store) filterJobs(keep func(models.Job) bool) ([]models.Job, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.Job{}
	for _, j := range m.Jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *Store) GetJob(ctx context.Context, id string) (*models.Job, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Jobs {
		if m.Jobs[i].ID == id {
			return &m.Jobs[i], nil
		}
	}
	return nil, nil
}

func (m *Store) CreateJob(ctx context.Context, j *models.Job) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	j.ID = fmt.Sprintf("job_%d", len(m.Jobs)+1)
	m.Jobs = append(m.Jobs, *j)
	return j.ID, nil
}

func (m *Store) UpdateJob(ctx context.Context, j *models.Job) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Jobs {
		if m.Jobs[i].ID == j.ID {
			m.Jobs[i] = *j
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) DeleteJob(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Jobs {
		if m.Jobs[i].ID == id {
			m.Jobs = append(m.Jobs[:i], m.Jobs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return m.Notifications, m.Err
}

func (m *Store) GetNotification(ctx context.Context, id string) (*models.Notification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Notifications {
		if m.Notifications[i].ID == id {
			return &m.Notifications[i], nil
		}
	}
	return nil, nil
}

func (m *Store) CreateNotification(ctx context.Context, n *models.Notification) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	n.ID = fmt.Sprintf("notification_%d", len(m.Notifications)+1)
	m.Notifications = append(m.Notifications, *n)
	return n.ID, nil
}

func (m *Store) MarkNotificationRead(ctx context.Context, id string) (*models.Notification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Notifications {
		if m.Notifications[i].ID == id {
			m.Notifications[i].IsRead = true
			return &m.Notifications[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *Store) MarkAllNotificationsRead(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Notifications {
		m.Notifications[i].IsRead = true
	}
	return nil
}

func (m *Store) DeleteNotification(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Notifications {
		if m.Notifications[i].ID == id {
			m.Notifications = append(m.Notifications[:i], m.Notifications[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *Store) Login(ctx context.Context, email, password string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Users {
		if m.Users[i].Email == email && m.Users[i].Password == password {
			m.Current = &m.Users[i]
			return true, nil
		}
	}
	return false, nil
}

func (m *Store) Logout(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	m.Current = nil
	return nil
}

func (m *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	return m.Current, m.Err
}

func (m *Store) HasPermission(ctx context.Context, roles ...models.UserRole) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if m.Current == nil {
		return false, nil
	}
	for _, role := range roles {
		if m.Current.Role == role {
			return true, nil
		}
	}
	return false, nil
}
