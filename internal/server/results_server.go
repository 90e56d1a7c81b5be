package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"results_api/internal/domain/entity"
	"results_api/pkg/errcodes"
	"results_api/pkg/httpx/reply"
	"results_api/pkg/httpx/req"
	"results_api/pkg/rest"
)

const (
	MessageSaved   = "Result saved successfully!"
	MessageCleared = "All data cleared successfully."
)

type resultService interface {
	List(context.Context) ([]entity.Result, error)
	Save(context.Context, entity.Submission) error
	Clear(context.Context) error
}

type ResultsServer struct {
	resultService resultService
}

func NewResultsServer(resultService resultService) ResultsServer {
	return ResultsServer{
		resultService: resultService,
	}
}

func (s ResultsServer) getResults(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	results, err := s.resultService.List(ctx)
	if err != nil {
		return fmt.Errorf("resultService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lo.Map(results, func(result entity.Result, _ int) rest.Result {
		return newRESTResult(result)
	}))

	return nil
}

func (s ResultsServer) postResults(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	// An empty body is an empty submission; the service rejects it.
	var request rest.SaveResultRequest
	if err := req.ReadOptional(r, &request); err != nil {
		return fmt.Errorf("req.ReadOptional: %w", err)
	}

	submission, err := newDomainSubmission(request)
	if err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("newDomainSubmission: %w", err).Error(),
			failure.WithCode(errcodes.InvalidItems),
			failure.WithDescription("liked and noped must be JSON arrays"),
		)
	}

	if err = s.resultService.Save(ctx, submission); err != nil {
		return fmt.Errorf("resultService.Save: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, rest.Message{Message: MessageSaved})

	return nil
}

func (s ResultsServer) deleteResults(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := s.resultService.Clear(ctx); err != nil {
		return fmt.Errorf("resultService.Clear: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Message{Message: MessageCleared})

	return nil
}
