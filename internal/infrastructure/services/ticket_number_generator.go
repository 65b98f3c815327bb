package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"devicedesk/internal/domain/workflow"
)

// TicketNumberGenerator issues sequential numbers like R-20260828-0001,
// scoped per tenant, kind and day.
type TicketNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewTicketNumberGenerator(db *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context, tenantID uint, kind workflow.Kind) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().UTC().Format("20060102")
	prefix := fmt.Sprintf("%s-%s-", kind.NumberPrefix(), dateStr)

	seq, err := g.getNextSequence(ctx, tenantID, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (g *TicketNumberGenerator) getNextSequence(ctx context.Context, tenantID uint, prefix string) (int, error) {
	cacheKey := fmt.Sprintf("%d:%s", tenantID, prefix)
	if seq, ok := g.cache[cacheKey]; ok {
		g.cache[cacheKey] = seq + 1
		return seq + 1, nil
	}

	// MAX(number) is NULL when no ticket matches yet, so scan into a
	// nullable holder.
	var maxNumber sql.NullString
	err := g.db.WithContext(ctx).
		Table("tickets").
		Select("MAX(number)").
		Where("tenant_id = ? AND number LIKE ?", tenantID, prefix+"%").
		Scan(&maxNumber).Error

	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max ticket number: %w", err)
	}

	seq := 1
	if maxNumber.Valid && maxNumber.String != "" {
		fmt.Sscanf(maxNumber.String, prefix+"%d", &seq)
		seq++
	}

	g.cache[cacheKey] = seq
	return seq, nil
}
