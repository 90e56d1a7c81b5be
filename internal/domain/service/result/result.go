package service

import (
	"context"
	"log/slog"

	"git.appkode.ru/pub/go/failure"

	"results_api/internal/domain"
	"results_api/internal/domain/entity"
	"results_api/pkg/contextx"
	"results_api/pkg/errcodes"
	"results_api/pkg/logx"
)

const (
	MessageRequired    = "Name and phone are required"
	MessageFetchFailed = "Error fetching data from database"
	MessageSaveFailed  = "Error saving data to database"
	MessageClearFailed = "Error clearing data."
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ResultRepository interface {
	List(ctx context.Context) ([]entity.Result, error)
	Create(ctx context.Context, submission entity.Submission) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ResultService struct {
	resultRepo ResultRepository
}

func NewResultService(resultRepo ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// List returns every stored result, newest first.
func (s *ResultService) List(ctx context.Context) ([]entity.Result, error) {
	results, err := s.resultRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatabaseError, MessageFetchFailed)
	}

	logger(ctx).Debug("results listed", slog.Int(logx.FieldRows, len(results)))

	return results, nil
}

// Save stores a submission. Name and phone are checked before the
// repository is touched.
func (s *ResultService) Save(ctx context.Context, submission entity.Submission) error {
	if submission.Name == "" || submission.Phone == "" {
		return failure.NewInvalidArgumentError(
			"name or phone is empty",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(MessageRequired),
		)
	}

	if err := s.resultRepo.Create(ctx, submission); err != nil {
		return domain.WrapError(err, errcodes.DatabaseError, MessageSaveFailed)
	}

	return nil
}

// Clear removes all results.
func (s *ResultService) Clear(ctx context.Context) error {
	deleted, err := s.resultRepo.DeleteAll(ctx)
	if err != nil {
		return domain.WrapError(err, errcodes.DatabaseError, MessageClearFailed)
	}

	logger(ctx).Info("results cleared", slog.Int64(logx.FieldDeletedRows, deleted))

	return nil
}
