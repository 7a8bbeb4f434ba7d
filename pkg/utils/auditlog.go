package utils

import (
	"encoding/json"
	"log"

	"github.com/delvaty/construccion-easy/internal/domain/audit"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/gin-gonic/gin"
)

// LogAuditWithConsole captures request metadata synchronously, then writes the
// audit row in the background. Failures are printed, never surfaced.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := writeAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			log.Printf("[LogAudit] error: %v", err)
		}
	}()
}

// LogAudit is the request-free variant used by services.
var LogAudit = func(userID uint, action, resourceType, resourceID string, before, after any, description string, repo repository.AuditRepo) {
	go func() {
		if err := writeAudit(userID, "", "", action, resourceType, resourceID, before, after, description, repo); err != nil {
			log.Printf("[LogAudit] error: %v", err)
		}
	}()
}

func writeAudit(userID uint, ip, ua, action, resourceType, resourceID string, before, after any, description string, repo repository.AuditRepo) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}

	return repo.CreateAuditLog(entry)
}
