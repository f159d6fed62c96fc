package repository

import (
	"github.com/mnakagawa/todolist-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
// Every method is scoped to an owner; no call can touch another owner's rows.
type TaskRepository interface {
	// ListByOwner returns the owner's tasks in ascending ID order
	ListByOwner(ownerID uint64) ([]models.Task, error)

	// Create creates a new task for the owner set on the task
	Create(task *models.Task) error

	// Update rewrites the mutable columns of the task matching both
	// task.ID and ownerID. Returns gorm.ErrRecordNotFound when no row matches.
	Update(ownerID uint64, task *models.Task) error

	// Delete removes the task matching both taskID and ownerID.
	// Returns gorm.ErrRecordNotFound when no row matches.
	Delete(ownerID, taskID uint64) error
}
