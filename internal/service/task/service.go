package task

import (
	"context"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/task"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

type TaskService interface {
	// ListVisible returns the project tasks the acting user may see.
	ListVisible(ctx context.Context, projectID string) ([]task.TaskResponse, error)
	Create(ctx context.Context, projectID string, req task.CreateTaskRequest) (task.TaskResponse, error)
	UpdateStatus(ctx context.Context, taskID string, req task.UpdateTaskStatusRequest) (task.TaskResponse, error)
}

type TaskServiceImpl struct {
	taskRepo    task.TaskRepository
	projectRepo project.ProjectRepository
}

func NewTaskService(taskRepo task.TaskRepository, projectRepo project.ProjectRepository) TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

func (s *TaskServiceImpl) ListVisible(ctx context.Context, projectID string) ([]task.TaskResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return task.ToResponses(task.FilterVisible(tasks, actingUser)), nil
}

func (s *TaskServiceImpl) Create(ctx context.Context, projectID string, req task.CreateTaskRequest) (task.TaskResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if actingUser.IsClient() {
		return task.TaskResponse{}, task.ErrClientCannotCreate
	}

	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !p.VisibleTo(actingUser) {
		return task.TaskResponse{}, project.ErrProjectAccessDenied
	}

	var assignee *user.User
	if req.AssigneeID != "" {
		found := false
		for i := range p.Members {
			if p.Members[i].ID == req.AssigneeID {
				member := p.Members[i]
				assignee = &member
				found = true
				break
			}
		}
		if !found {
			return task.TaskResponse{}, task.ErrAssigneeNotMember
		}
	}

	dueDate, _ := time.Parse("2006-01-02", req.DueDate)
	newTask := task.Task{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Title:     req.Title,
		Status:    task.StatusToDo,
		Assignee:  assignee,
		DueDate:   dueDate,
		Priority:  task.Priority(req.Priority),
	}

	created, err := s.taskRepo.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(created), nil
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, taskID string, req task.UpdateTaskStatusRequest) (task.TaskResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !t.IsVisibleTo(actingUser) {
		return task.TaskResponse{}, task.ErrTaskAccessDenied
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, taskID, task.Status(req.Status))
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}
