package usecases

import (
	"context"

	"fieldserve/internal/application/jobcard/dto"
)

type GenerateJobCardExecutor interface {
	Execute(ctx context.Context, cmd GenerateJobCardCommand) (*GenerateJobCardResult, error)
}

type UpdateJobCardExecutor interface {
	Execute(ctx context.Context, cmd UpdateJobCardCommand) (*dto.JobCardDTO, error)
}

type GetJobCardExecutor interface {
	Execute(ctx context.Context, query GetJobCardQuery) (*dto.JobCardDTO, error)
}
