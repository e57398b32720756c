package memory

import (
	"github.com/rightsgrid/rightsgrid/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	modelScore *modelScoreRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		modelScore: newModelScoreRepository(),
	}
}

func (m *Memory) ModelScore() interfaces.ModelScoreRepository {
	return m.modelScore
}

func (m *Memory) Close() error {
	return nil
}
