package workflow

import (
	"context"

	"github.com/secmon-lab/kairos/pkg/domain/model"
)

// Service forwards payloads to the workflow-automation webhook
type Service interface {
	// Dispatch performs a single best-effort POST. It never returns an error;
	// failures are reported in the result and logged.
	Dispatch(ctx context.Context, payload model.WorkflowPayload) *model.DispatchResult
}
