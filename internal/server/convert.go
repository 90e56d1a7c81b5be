package server

import (
	"fmt"

	"github.com/samber/lo"

	"results_api/internal/domain/entity"
	"results_api/internal/domain/value"
	"results_api/pkg/rest"
)

func newRESTResult(result entity.Result) rest.Result {
	return rest.Result{
		ID:          result.ID,
		Name:        result.Name,
		Phone:       result.Phone,
		CompanyName: result.CompanyName,
		LikedItems:  result.LikedItems,
		NopedItems:  result.NopedItems,
		CreatedAt:   result.CreatedAt,
	}
}

func newDomainSubmission(request rest.SaveResultRequest) (entity.Submission, error) {
	liked, err := value.ParseItems(request.Liked)
	if err != nil {
		return entity.Submission{}, fmt.Errorf("liked: %w", err)
	}

	noped, err := value.ParseItems(request.Noped)
	if err != nil {
		return entity.Submission{}, fmt.Errorf("noped: %w", err)
	}

	return entity.Submission{
		Name:    request.Name,
		Phone:   request.Phone,
		Company: lo.EmptyableToPtr(request.Company),
		Liked:   liked,
		Noped:   noped,
	}, nil
}
