package usecase

import (
	"github.com/secmon-lab/kairos/pkg/domain/interfaces"
	"github.com/secmon-lab/kairos/pkg/service/classifier"
	"github.com/secmon-lab/kairos/pkg/service/workflow"
)

type UseCases struct {
	repo        interfaces.Repository
	classifier  classifier.Service
	workflow    workflow.Service
	Voice       *VoiceUseCase
	Appointment *AppointmentUseCase
}

type Option func(*UseCases)

func WithClassifier(svc classifier.Service) Option {
	return func(uc *UseCases) {
		uc.classifier = svc
	}
}

func WithWorkflow(svc workflow.Service) Option {
	return func(uc *UseCases) {
		uc.workflow = svc
	}
}

// New wires use cases. Without options the classifier always degrades and
// dispatch is a no-op.
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.classifier == nil {
		uc.classifier = classifier.New(nil)
	}
	if uc.workflow == nil {
		uc.workflow = workflow.New("")
	}

	uc.Voice = NewVoiceUseCase(repo, uc.classifier, uc.workflow)
	uc.Appointment = NewAppointmentUseCase(repo, uc.workflow)

	return uc
}
