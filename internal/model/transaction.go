package model

import "time"

type TransactionStatus string

const (
	StatusPending             TransactionStatus = "pending"
	StatusWaitingVerification TransactionStatus = "waiting_verification"
	StatusSuccess             TransactionStatus = "success"
	StatusFailed              TransactionStatus = "failed"
)

// IsDecision reports whether s is a status an admin may set directly.
func (s TransactionStatus) IsDecision() bool {
	return s == StatusSuccess || s == StatusFailed
}

type Transaction struct {
	ID        string `json:"id" firestore:"id"`
	ProductID string `json:"productId" firestore:"productId"`

	// Snapshot of the product at checkout time, so history survives
	// catalog edits and deletes.
	ProductName string `json:"productName" firestore:"productName"`
	Amount      int64  `json:"amount" firestore:"amount"`

	Status        TransactionStatus `json:"status" firestore:"status"`
	PaymentMethod string            `json:"paymentMethod" firestore:"paymentMethod"`
	CustomerEmail string            `json:"customerEmail,omitempty" firestore:"customerEmail,omitempty"`

	// Minted once at creation, never regenerated. Sole lookup key for
	// post-payment file redemption.
	DownloadToken string `json:"downloadToken" firestore:"downloadToken"`

	ProofImageURL string `json:"proofImageUrl,omitempty" firestore:"proofImageUrl,omitempty"`
	Resi          string `json:"resi,omitempty" firestore:"resi,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
