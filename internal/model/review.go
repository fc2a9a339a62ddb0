package model

import "time"

// Review is written once by a buyer and never edited. TransactionID is
// provenance only; it is stored as-is without checking the transaction
// outcome.
type Review struct {
	ID            string    `json:"id" firestore:"id"`
	ProductID     string    `json:"productId" firestore:"productId" validate:"required"`
	TransactionID string    `json:"transactionId" firestore:"transactionId"`
	Rating        int       `json:"rating" firestore:"rating" validate:"required,gte=1,lte=5"`
	Comment       string    `json:"comment" firestore:"comment"`
	UserName      string    `json:"userName" firestore:"userName"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}
