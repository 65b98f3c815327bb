package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devicedesk/internal/domain/tenant"
	"devicedesk/internal/shared/logger"
	"devicedesk/internal/shared/utils"
)

const (
	ContextKeyTenantID = "tenant_id"
)

// TenantMiddleware resolves the authenticated actor to their tenant. Every
// downstream query is scoped to that tenant; an actor without one cannot
// reach any ticket.
type TenantMiddleware struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewTenantMiddleware(tenantRepo tenant.Repository, logger logger.Interface) *TenantMiddleware {
	return &TenantMiddleware{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetUint(ContextKeyActorID)
		if actorID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
			c.Abort()
			return
		}

		tenantID, err := m.tenantRepo.ResolveByActor(c.Request.Context(), actorID)
		if err != nil {
			if errors.Is(err, tenant.ErrStaffMemberNotFound) {
				m.logger.Warnw("actor has no tenant", "actor_id", actorID)
				utils.ErrorResponse(c, http.StatusNotFound, "tenant not found")
				c.Abort()
				return
			}
			m.logger.Errorw("failed to resolve tenant for actor", "actor_id", actorID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve tenant")
			c.Abort()
			return
		}

		c.Set(ContextKeyTenantID, tenantID)

		c.Next()
	}
}
