package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agencyops/internal/domain/entities"
	mock_interfaces "agencyops/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type taskMocks struct {
	tasks     *mock_interfaces.MockITaskRepository
	comments  *mock_interfaces.MockITaskCommentRepository
	projects  *mock_interfaces.MockIProjectRepository
	templates *mock_interfaces.MockITaskTemplateRepository
}

func newTestTaskUseCases(t *testing.T) (*TaskUseCase, *TaskTemplateUseCase, taskMocks) {
	ctrl := gomock.NewController(t)
	m := taskMocks{
		tasks:     mock_interfaces.NewMockITaskRepository(ctrl),
		comments:  mock_interfaces.NewMockITaskCommentRepository(ctrl),
		projects:  mock_interfaces.NewMockIProjectRepository(ctrl),
		templates: mock_interfaces.NewMockITaskTemplateRepository(ctrl),
	}
	tasks := NewTaskUseCase(m.tasks, m.comments, m.projects, nil)
	tasks.now = func() time.Time { return fixedNow }
	templates := NewTaskTemplateUseCase(m.templates, m.tasks, m.projects, nil)
	templates.now = func() time.Time { return fixedNow }
	return tasks, templates, m
}

func passThroughTask(_ context.Context, t entities.Task) (entities.Task, error) {
	return t, nil
}

func TestTaskUseCase_CreateTask(t *testing.T) {
	t.Run("requires an existing project", func(t *testing.T) {
		uc, _, m := newTestTaskUseCases(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p9").Return(entities.Project{}, nil)

		_, err := uc.CreateTask(context.Background(), TaskInput{ProjectID: "p9", Title: "Design"})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("appends after existing tasks", func(t *testing.T) {
		uc, _, m := newTestTaskUseCases(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1"}, nil)
		m.tasks.EXPECT().ListByProjectID(gomock.Any(), "p1").Return([]entities.Task{{ID: "a"}, {ID: "b"}}, nil)
		m.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTask)

		task, err := uc.CreateTask(context.Background(), TaskInput{ProjectID: "p1", Title: "Design"})
		require.NoError(t, err)
		assert.Equal(t, 2, task.Position)
		assert.Equal(t, entities.TaskStatusTodo, task.Status)
		assert.Equal(t, entities.TaskPriorityMedium, task.Priority)
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc, _, m := newTestTaskUseCases(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1"}, nil)

		_, err := uc.CreateTask(context.Background(), TaskInput{ProjectID: "p1", Title: "Design", Priority: "urgent"})
		assert.ErrorIs(t, err, ErrInvalidTaskInput)
	})
}

func TestTaskUseCase_UpdateTaskKeepsProject(t *testing.T) {
	uc, _, m := newTestTaskUseCases(t)
	m.tasks.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Task{ID: "t1", ProjectID: "p1", Status: entities.TaskStatusInProgress, Priority: entities.TaskPriorityHigh, Position: 4}, nil)
	m.tasks.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTask)

	task, err := uc.UpdateTask(context.Background(), "t1", TaskInput{ProjectID: "p2", Title: "Build"})
	require.NoError(t, err)
	assert.Equal(t, "p1", task.ProjectID)
	assert.Equal(t, entities.TaskStatusInProgress, task.Status)
	assert.Equal(t, entities.TaskPriorityHigh, task.Priority)
	assert.Equal(t, 4, task.Position)
}

func TestTaskUseCase_DeleteTaskCascadesComments(t *testing.T) {
	uc, _, m := newTestTaskUseCases(t)
	m.tasks.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Task{ID: "t1"}, nil)
	m.comments.EXPECT().ListByTaskID(gomock.Any(), "t1").Return([]entities.TaskComment{{ID: "c1"}, {ID: "c2"}}, nil)
	gomock.InOrder(
		m.comments.EXPECT().Delete(gomock.Any(), "c1").Return(true, nil),
		m.comments.EXPECT().Delete(gomock.Any(), "c2").Return(true, nil),
		m.tasks.EXPECT().Delete(gomock.Any(), "t1").Return(true, nil),
	)

	require.NoError(t, uc.DeleteTask(context.Background(), "t1"))
}

func TestTaskUseCase_DeleteTaskStopsOnCommentFailure(t *testing.T) {
	uc, _, m := newTestTaskUseCases(t)
	m.tasks.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Task{ID: "t1"}, nil)
	m.comments.EXPECT().ListByTaskID(gomock.Any(), "t1").Return([]entities.TaskComment{{ID: "c1"}}, nil)
	m.comments.EXPECT().Delete(gomock.Any(), "c1").Return(false, errors.New("throttled"))

	err := uc.DeleteTask(context.Background(), "t1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c1")
}

func TestTaskUseCase_Comments(t *testing.T) {
	t.Run("comment on missing task", func(t *testing.T) {
		uc, _, m := newTestTaskUseCases(t)
		m.tasks.EXPECT().GetByID(gomock.Any(), "t9").Return(entities.Task{}, nil)

		_, err := uc.AddComment(context.Background(), "t9", CommentInput{Author: "ada", Body: "hi"})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("empty body", func(t *testing.T) {
		uc, _, m := newTestTaskUseCases(t)
		m.tasks.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Task{ID: "t1"}, nil)

		_, err := uc.AddComment(context.Background(), "t1", CommentInput{Author: "ada", Body: "  "})
		assert.ErrorIs(t, err, ErrInvalidCommentInput)
	})

	t.Run("stores comment", func(t *testing.T) {
		uc, _, m := newTestTaskUseCases(t)
		m.tasks.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Task{ID: "t1"}, nil)
		m.comments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.TaskComment) (entities.TaskComment, error) {
			return c, nil
		})

		c, err := uc.AddComment(context.Background(), "t1", CommentInput{Author: "ada", Body: "looks good"})
		require.NoError(t, err)
		assert.Equal(t, "t1", c.TaskID)
		assert.True(t, c.CreatedAt.Equal(fixedNow))
	})

	t.Run("delete missing comment", func(t *testing.T) {
		uc, _, m := newTestTaskUseCases(t)
		m.comments.EXPECT().Delete(gomock.Any(), "c9").Return(false, nil)
		assert.ErrorIs(t, uc.DeleteComment(context.Background(), "c9"), ErrCommentNotFound)
	})
}

func TestTaskTemplateUseCase(t *testing.T) {
	t.Run("create defaults priority", func(t *testing.T) {
		_, uc, m := newTestTaskUseCases(t)
		m.templates.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tpl entities.TaskTemplate) (entities.TaskTemplate, error) {
			return tpl, nil
		})

		tpl, err := uc.CreateTemplate(context.Background(), TaskTemplateInput{
			Name:  "Website launch",
			Items: []entities.TaskTemplateItem{{Title: "Kickoff"}, {Title: "QA", Priority: entities.TaskPriorityHigh}},
		})
		require.NoError(t, err)
		assert.Equal(t, entities.TaskPriorityMedium, tpl.Items[0].Priority)
		assert.Equal(t, entities.TaskPriorityHigh, tpl.Items[1].Priority)
	})

	t.Run("create rejects empty items", func(t *testing.T) {
		_, uc, _ := newTestTaskUseCases(t)
		_, err := uc.CreateTemplate(context.Background(), TaskTemplateInput{Name: "Empty"})
		assert.ErrorIs(t, err, ErrInvalidTemplateInput)
	})

	t.Run("apply appends todo tasks", func(t *testing.T) {
		_, uc, m := newTestTaskUseCases(t)
		m.templates.EXPECT().GetByID(gomock.Any(), "tpl1").Return(entities.TaskTemplate{
			ID:    "tpl1",
			Items: []entities.TaskTemplateItem{{Title: "Kickoff", Priority: entities.TaskPriorityLow}, {Title: "QA", Priority: entities.TaskPriorityHigh}},
		}, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{ID: "p1"}, nil)
		m.tasks.EXPECT().ListByProjectID(gomock.Any(), "p1").Return([]entities.Task{{ID: "existing"}}, nil)
		m.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTask).Times(2)

		created, err := uc.ApplyTemplate(context.Background(), "tpl1", "p1")
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, 1, created[0].Position)
		assert.Equal(t, 2, created[1].Position)
		assert.Equal(t, entities.TaskStatusTodo, created[1].Status)
		assert.Equal(t, "p1", created[1].ProjectID)
	})

	t.Run("apply to missing project", func(t *testing.T) {
		_, uc, m := newTestTaskUseCases(t)
		m.templates.EXPECT().GetByID(gomock.Any(), "tpl1").Return(entities.TaskTemplate{ID: "tpl1"}, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "p9").Return(entities.Project{}, nil)

		_, err := uc.ApplyTemplate(context.Background(), "tpl1", "p9")
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}
