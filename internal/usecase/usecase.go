package usecase

import (
	"context"
	"time"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/repository"
	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ContactUsecaseInterface
	MeetingRequestUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
