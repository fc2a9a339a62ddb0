package model

import "fmt"

type PaymentMethodType string

const (
	PaymentBank    PaymentMethodType = "bank"
	PaymentEwallet PaymentMethodType = "ewallet"
	PaymentQris    PaymentMethodType = "qris"
)

// PaymentMethod is one configured payment channel, owned entirely by
// StoreSettings. The meaning of the detail fields depends on Type:
// bank and ewallet carry an account number and holder, qris carries an
// image reference instead.
type PaymentMethod struct {
	ID      string            `json:"id" firestore:"id"`
	Name    string            `json:"name" firestore:"name"`
	Type    PaymentMethodType `json:"type" firestore:"type"`
	Enabled bool              `json:"enabled" firestore:"enabled"`

	AccountNumber string `json:"accountNumber,omitempty" firestore:"accountNumber,omitempty"` // bank, ewallet
	AccountHolder string `json:"accountHolder,omitempty" firestore:"accountHolder,omitempty"` // bank, ewallet
	QrisImageURL  string `json:"qrisImageUrl,omitempty" firestore:"qrisImageUrl,omitempty"`   // qris

	LogoURL string `json:"logo,omitempty" firestore:"logo,omitempty"`
}

// Validate enforces the type-dependent field semantics.
func (m *PaymentMethod) Validate() error {
	if m.ID == "" || m.Name == "" {
		return fmt.Errorf("payment method needs id and name")
	}
	switch m.Type {
	case PaymentBank, PaymentEwallet:
		if m.AccountNumber == "" {
			return fmt.Errorf("payment method %s: account number is required for type %s", m.ID, m.Type)
		}
	case PaymentQris:
		if m.QrisImageURL == "" {
			return fmt.Errorf("payment method %s: QRIS image is required", m.ID)
		}
	default:
		return fmt.Errorf("payment method %s: unknown type %q", m.ID, m.Type)
	}
	return nil
}

// normalize migrates legacy records where the QRIS image was stored in
// the shared accountNumber field.
func (m *PaymentMethod) normalize() {
	if m.Type == PaymentQris && m.QrisImageURL == "" && m.AccountNumber != "" {
		m.QrisImageURL = m.AccountNumber
		m.AccountNumber = ""
	}
}

// StoreSettings is the singleton store configuration. The single-bank
// fields at the top are legacy, kept so older persisted records still
// deserialize; the current UI reads PaymentMethods only.
type StoreSettings struct {
	BankName      string `json:"bankName" firestore:"bankName"`           // legacy
	AccountNumber string `json:"accountNumber" firestore:"accountNumber"` // legacy
	AccountHolder string `json:"accountHolder" firestore:"accountHolder"` // legacy

	Instructions    string          `json:"instructions" firestore:"instructions"`
	AdminPhone      string          `json:"adminPhone" firestore:"adminPhone"`
	PaymentMethods  []PaymentMethod `json:"paymentMethods" firestore:"paymentMethods"`
	BackgroundImage string          `json:"backgroundImage,omitempty" firestore:"backgroundImage,omitempty"`
}

// SettingsDocID is the fixed document id of the settings singleton.
const SettingsDocID = "general"

// DefaultSettings is the baseline a fresh install starts from, and the
// value set stale records are merged over on read.
func DefaultSettings() *StoreSettings {
	return &StoreSettings{
		Instructions:   "Transfer the exact amount, then upload your proof of payment. Orders are verified manually by the admin.",
		AdminPhone:     "",
		PaymentMethods: []PaymentMethod{},
	}
}

// Normalize repairs legacy payment method records in place.
func (s *StoreSettings) Normalize() {
	for i := range s.PaymentMethods {
		s.PaymentMethods[i].normalize()
	}
}

// Validate checks the full payment method list. Save is wholesale, so a
// single bad entry rejects the whole write.
func (s *StoreSettings) Validate() error {
	for i := range s.PaymentMethods {
		if err := s.PaymentMethods[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
