package usecase

import (
	"context"

	"github.com/clipdeals/backend/domain"
)

// Write operations buffered for retry.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the retry buffer so use cases stay storage-agnostic.
// Buffered writes are drained in the background once the primary store recovers.
type OperationBuffer interface {
	BufferCreatorInit(ctx context.Context, userID string) error
	BufferProfileCompletion(ctx context.Context, userID string) error
	BufferCampaign(ctx context.Context, operation string, campaign *domain.Campaign) error
	BufferSubmission(ctx context.Context, operation string, submission *domain.Submission) error
}
