package repository

import (
	"github.com/mnakagawa/todolist-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByOwner returns the owner's tasks ordered by ID
func (r *GormTaskRepository) ListByOwner(ownerID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("user_id = ?", ownerID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// Update performs a full rewrite of the mutable columns for the row matching
// both id and owner. Select forces zero values (empty description, status 0)
// to be written too.
func (r *GormTaskRepository) Update(ownerID uint64, task *models.Task) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, ownerID).
		Select("title", "description", "category", "priority", "status").
		Updates(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete permanently removes the row matching both id and owner
func (r *GormTaskRepository) Delete(ownerID, taskID uint64) error {
	result := r.db.Where("id = ? AND user_id = ?", taskID, ownerID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
