package complaint

import (
	"context"
	"fmt"
	"sync"

	"fieldserve/internal/shared/biztime"
)

// CodeGenerator produces the human-readable complaint code. Codes follow
// CMP-YYYYMMDD-NNNN with the sequence resetting each business day.
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultCodeGenerator is an in-process generator. It is only safe for a
// single instance; multi-instance deployments use the Redis-backed generator
// from the infrastructure layer.
type DefaultCodeGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultCodeGenerator() *DefaultCodeGenerator {
	return &DefaultCodeGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultCodeGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := biztime.BizDateKey(biztime.NowUTC())

	counter := g.counters[dateKey] + 1
	g.counters[dateKey] = counter

	return fmt.Sprintf("CMP-%s-%04d", dateKey, counter), nil
}
