package services

import (
	"testing"

	"github.com/mnakagawa/todolist-api/internal/models"
	"github.com/mnakagawa/todolist-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Task{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewTaskService(repository.NewTaskRepository(db)), db
}

func createServiceUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestTaskService_CreateTask_AppliesDefaults(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createServiceUser(t, db, "alice")

	task, err := svc.CreateTask(alice.ID, TaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	require.NotZero(t, task.ID)
	require.Equal(t, alice.ID, task.UserID)
	require.Equal(t, "Buy milk", task.Title)
	require.Equal(t, "", task.Description)
	require.Equal(t, models.CategoryPersonal, task.Category)
	require.Equal(t, models.PriorityMedium, task.Priority)
	require.Equal(t, 0, task.Status)
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createServiceUser(t, db, "alice")

	cases := []struct {
		name  string
		input TaskInput
		want  error
	}{
		{"missing title", TaskInput{}, ErrTitleRequired},
		{"whitespace title", TaskInput{Title: "   \t"}, ErrTitleRequired},
		{"bad category", TaskInput{Title: "x", Category: "Chores"}, ErrInvalidCategory},
		{"bad priority", TaskInput{Title: "x", Priority: "Urgent"}, ErrInvalidPriority},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTask(alice.ID, tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Failed validation performs no write.
	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestTaskService_CreateTask_TrimsTitle(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createServiceUser(t, db, "alice")

	task, err := svc.CreateTask(alice.ID, TaskInput{Title: "  Buy milk  "})
	require.NoError(t, err)
	require.Equal(t, "Buy milk", task.Title)
}

func TestTaskService_UpdateTask_FullRewrite(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createServiceUser(t, db, "alice")

	task, err := svc.CreateTask(alice.ID, TaskInput{
		Title:       "Buy milk",
		Description: "whole",
		Category:    "Shopping",
		Priority:    "High",
		Status:      0,
	})
	require.NoError(t, err)

	err = svc.UpdateTask(alice.ID, task.ID, TaskInput{Title: "Buy oat milk", Status: 1})
	require.NoError(t, err)

	tasks, err := svc.ListTasks(alice.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Buy oat milk", tasks[0].Title)
	require.Equal(t, "", tasks[0].Description)
	require.Equal(t, models.CategoryPersonal, tasks[0].Category)
	require.Equal(t, models.PriorityMedium, tasks[0].Priority)
	require.Equal(t, 1, tasks[0].Status)
}

func TestTaskService_UpdateTask_ValidationBeforeWrite(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createServiceUser(t, db, "alice")

	task, err := svc.CreateTask(alice.ID, TaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	err = svc.UpdateTask(alice.ID, task.ID, TaskInput{Title: "changed", Category: "Nope"})
	require.ErrorIs(t, err, ErrInvalidCategory)

	tasks, err := svc.ListTasks(alice.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", tasks[0].Title)
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createServiceUser(t, db, "alice")
	bob := createServiceUser(t, db, "bob")

	task, err := svc.CreateTask(alice.ID, TaskInput{Title: "alice task"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdateTask(bob.ID, task.ID, TaskInput{Title: "hijack"}), ErrTaskNotFound)
	require.ErrorIs(t, svc.DeleteTask(bob.ID, task.ID), ErrTaskNotFound)

	tasks, err := svc.ListTasks(bob.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)

	tasks, err = svc.ListTasks(alice.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "alice task", tasks[0].Title)
}

func TestTaskService_DeleteTask_Idempotence(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createServiceUser(t, db, "alice")

	task, err := svc.CreateTask(alice.ID, TaskInput{Title: "ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(alice.ID, task.ID))
	require.ErrorIs(t, svc.DeleteTask(alice.ID, task.ID), ErrTaskNotFound)
	require.ErrorIs(t, svc.DeleteTask(alice.ID, 12345), ErrTaskNotFound)
}
