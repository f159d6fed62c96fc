package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mnakagawa/todolist-api/internal/models"
	"github.com/mnakagawa/todolist-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("title required")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrTaskNotFound covers both a missing task and a task owned by someone
	// else; the message stays generic so existence is never disclosed.
	ErrTaskNotFound = errors.New("task not found or unauthorized")
)

// TaskService handles task business logic. Every operation takes the
// authenticated owner ID as its first parameter; the owner is never
// taken from caller-supplied data.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// TaskInput represents the mutable fields of a task. Empty category or
// priority means "not supplied" and falls back to the default.
type TaskInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Status      int
}

// ListTasks returns every task belonging to the owner, in ID order.
func (s *TaskService) ListTasks(ownerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask validates input and inserts a new task owned by ownerID.
func (s *TaskService) CreateTask(ownerID uint64, input TaskInput) (*models.Task, error) {
	category, priority, err := validateTaskInput(&input)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Priority:    priority,
		Status:      input.Status,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask validates input and rewrites every mutable field of the task
// matching taskID and ownerID.
func (s *TaskService) UpdateTask(ownerID, taskID uint64, input TaskInput) error {
	category, priority, err := validateTaskInput(&input)
	if err != nil {
		return err
	}

	task := &models.Task{
		ID:          taskID,
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Priority:    priority,
		Status:      input.Status,
	}

	if err := s.taskRepo.Update(ownerID, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// DeleteTask removes the task matching taskID and ownerID.
func (s *TaskService) DeleteTask(ownerID, taskID uint64) error {
	if err := s.taskRepo.Delete(ownerID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// validateTaskInput trims the title and resolves the enumeration fields,
// applying defaults for fields the caller omitted.
func validateTaskInput(input *TaskInput) (models.TaskCategory, models.TaskPriority, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return "", "", ErrTitleRequired
	}

	category := models.CategoryPersonal
	if input.Category != "" {
		category = models.TaskCategory(input.Category)
		if !category.Valid() {
			return "", "", ErrInvalidCategory
		}
	}

	priority := models.PriorityMedium
	if input.Priority != "" {
		priority = models.TaskPriority(input.Priority)
		if !priority.Valid() {
			return "", "", ErrInvalidPriority
		}
	}

	return category, priority, nil
}
