package dto

import (
	"cruisevoyager/internal/domains/review/model"
	"cruisevoyager/shared/constant"
	gModel "cruisevoyager/shared/model"
	"cruisevoyager/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=500"`
}

func (c *CreateReviewRequest) ToModel(userID, cruiseID string) model.Review {
	return model.Review{
		ID:       uuid.NewString(),
		UserID:   userID,
		CruiseID: cruiseID,
		Rating:   c.Rating,
		Comment:  c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type ReviewResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	CruiseID  string `json:"cruiseId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.CruiseID = model.CruiseID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Rating  float64          `json:"rating"`
	Count   int              `json:"reviewCount"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, rating model.Rating) {
	r.Rating = rating.Average
	r.Count = rating.Count

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
