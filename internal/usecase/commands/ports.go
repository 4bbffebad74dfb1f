package commands

import (
	"context"
	"time"

	"spa-pos/internal/domain/auth"
	"spa-pos/internal/domain/catalog"
	"spa-pos/internal/domain/discount"
	"spa-pos/internal/domain/session"
	"spa-pos/internal/domain/transaction"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type LoginGrant struct {
	AccessToken string
	UserID      string
	Name        string
	Email       string
	Role        string
	BranchID    *string
}

type VoucherVerdict struct {
	Valid   bool
	Message string
}

type BillingReceipt struct {
	Success bool
	Message string
}

type SubmissionStatus string

const (
	SubmissionProcessing SubmissionStatus = "processing"
	SubmissionCompleted  SubmissionStatus = "completed"
)

// SubmissionRecord tracks one billing submission per transaction, so a retried
// submit replays the receipt instead of billing twice.
type SubmissionRecord struct {
	TransactionID uuid.UUID
	OwnerID       string
	Status        SubmissionStatus
	Result        *SubmitResult
	ExpiresAt     time.Time
}

type Authenticator interface {
	Login(ctx context.Context, creds auth.Credentials) (*LoginGrant, error)
}

type VoucherValidator interface {
	CheckVoucher(ctx context.Context, sess *session.Session, code string) (*VoucherVerdict, error)
}

type MembershipLookup interface {
	FindMemberships(ctx context.Context, sess *session.Session, phone string) ([]discount.Record, error)
}

type BillingGateway interface {
	SubmitBilling(ctx context.Context, sess *session.Session, rec transaction.BillingRecord) (*BillingReceipt, error)
}

type SessionStore interface {
	Save(ctx context.Context, s *session.Session) error
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionStore runs fn under a per-store lock; Update keeps the change only
// when fn returns nil.
type TransactionStore interface {
	Create(ctx context.Context, t *transaction.Transaction) error
	View(ctx context.Context, id uuid.UUID, fn func(*transaction.Transaction) error) error
	Update(ctx context.Context, id uuid.UUID, fn func(*transaction.Transaction) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceCatalog interface {
	Lookup(ctx context.Context, scope string, serviceID string) (catalog.Service, bool)
}

// SubmissionLedger claims a transaction for submission. TryClaim fails with a
// conflict when a record already exists.
type SubmissionLedger interface {
	TryClaim(ctx context.Context, transactionID uuid.UUID, ownerID string) error
	Get(ctx context.Context, transactionID uuid.UUID) (*SubmissionRecord, error)
	Complete(ctx context.Context, transactionID uuid.UUID, result SubmitResult) error
	Release(ctx context.Context, transactionID uuid.UUID) error
}
