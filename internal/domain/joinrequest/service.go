package joinrequest

import (
	"context"
	"errors"
	"fmt"

	"campus-clubs-go/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Service owns the one write path of the system. Unlike the read services,
// Create reports failure to the caller instead of degrading: a rejected
// field and a failed insert must surface as different things.
type Service struct {
	repo     Repository
	validate *validator.Validate
	log      logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

// Create validates the form input, persists a pending request, and returns
// its id. The input values are stored verbatim; the status is always forced
// to pending regardless of what a caller might set.
func (s *Service) Create(ctx context.Context, input CreateInput) (uint, error) {
	if err := s.validate.Struct(input); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			return 0, validationError(fields[0].Field())
		}
		return 0, &ValidationError{Field: "", Message: "invalid input"}
	}

	request := JoinRequest{
		ClubID:      input.ClubID,
		StudentName: input.StudentName,
		Email:       input.Email,
		Phone:       input.Phone,
		Year:        input.Year,
		Department:  input.Department,
		Reason:      input.Reason,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, &request); err != nil {
		s.log.InternalError("join_requests.create: insert failed", err, "club_id", input.ClubID)
		return 0, fmt.Errorf("create join request: %w", err)
	}
	return request.ID, nil
}

func (s *Service) Get(ctx context.Context, id uint) *JoinRequest {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.InternalError("join_requests.get: query failed", err, "request_id", id)
		}
		return nil
	}
	return request
}

func (s *Service) ListByClub(ctx context.Context, clubID uint) []JoinRequest {
	requests, err := s.repo.ListByClub(ctx, clubID)
	if err != nil {
		s.log.InternalError("join_requests.list_by_club: query failed", err, "club_id", clubID)
		return []JoinRequest{}
	}
	return requests
}

func validationError(field string) *ValidationError {
	switch field {
	case "StudentName":
		return &ValidationError{Field: "student_name", Message: "please enter your name"}
	case "Email":
		return &ValidationError{Field: "email", Message: "please enter your email"}
	case "Year":
		return &ValidationError{Field: "year", Message: "please select your year"}
	case "Department":
		return &ValidationError{Field: "department", Message: "please enter your department"}
	case "ClubID":
		return &ValidationError{Field: "club_id", Message: "club is required"}
	default:
		return &ValidationError{Field: field, Message: "invalid input"}
	}
}
