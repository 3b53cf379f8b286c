package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/kairos/pkg/domain/interfaces"
	"github.com/secmon-lab/kairos/pkg/domain/model"
	"github.com/secmon-lab/kairos/pkg/service/classifier"
	"github.com/secmon-lab/kairos/pkg/service/workflow"
	"github.com/secmon-lab/kairos/pkg/utils/logging"
)

type VoiceUseCase struct {
	repo       interfaces.Repository
	classifier classifier.Service
	workflow   workflow.Service
}

func NewVoiceUseCase(repo interfaces.Repository, classifierSvc classifier.Service, workflowSvc workflow.Service) *VoiceUseCase {
	return &VoiceUseCase{
		repo:       repo,
		classifier: classifierSvc,
		workflow:   workflowSvc,
	}
}

// ProcessVoice classifies the utterance, logs it and triggers the workflow for
// actionable intents. Only store errors are returned; classifier and dispatch
// failures are absorbed by their services.
func (uc *VoiceUseCase) ProcessVoice(ctx context.Context, input *model.VoiceInput) (*model.Classification, error) {
	if err := model.Validate(input); err != nil {
		return nil, err
	}

	result := uc.classifier.Classify(ctx, input.Text)

	conv := &model.Conversation{
		UserID:    input.CopyUserID(),
		Text:      input.Text,
		Intent:    result.Intent,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.repo.Conversation().Create(ctx, conv); err != nil {
		return nil, goerr.Wrap(err, "failed to store conversation", goerr.V("intent", result.Intent))
	}

	if result.Intent.IsActionable() {
		payload := model.NewVoiceIntentPayload(result.Intent, conv.UserID, input.Text)
		dispatched := uc.workflow.Dispatch(ctx, payload)
		logging.From(ctx).Debug("voice intent dispatched",
			"intent", result.Intent,
			"delivered", dispatched.Delivered,
			"failure", dispatched.Failure)
	}

	return result, nil
}
