package models

import "time"

type Review struct {
	ID           string    `json:"id"`
	ShiftID      string    `json:"shiftId"`
	ReviewerID   string    `json:"reviewerId"`
	ReviewerRole string    `json:"reviewerRole"`
	RevieweeID   string    `json:"revieweeId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SubmitReviewRequest struct {
	ShiftID    string  `json:"shiftId"`
	RevieweeID string  `json:"revieweeId"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
}

type UserReviewsResponse struct {
	Reviews   []Review `json:"reviews"`
	AvgRating float64  `json:"avgRating"`
	Count     int      `json:"count"`
}
