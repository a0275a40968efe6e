package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"typing-training-be/internal/config"
	"typing-training-be/internal/dto"
	"typing-training-be/internal/pkg/logger"
)

type IStatusService interface {
	Check(ctx context.Context) *dto.StatusResponse
}

type statusService struct {
	db     *mongo.Database // nil when the store was never configured
	cfg    *config.Config
	logger logger.ILogger
}

func NewStatusService(db *mongo.Database, cfg *config.Config, sysLogger logger.ILogger) IStatusService {
	return &statusService{
		db:     db,
		cfg:    cfg,
		logger: sysLogger,
	}
}

// Check probes the store and reports availability in-band. It never fails:
// store errors become descriptive strings in the response body.
func (c *statusService) Check(ctx context.Context) *dto.StatusResponse {
	res := &dto.StatusResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if c.db == nil {
		return res
	}

	res.Database = "✅ Available"
	urlStatus := "❌ Not Set"
	if c.cfg.Database.URL != "" {
		urlStatus = "✅ Set"
	}
	res.DatabaseURL = &urlStatus

	name := c.db.Name()
	if name == "" {
		name = "Unknown"
	}
	res.DatabaseName = &name
	res.ConnectionStatus = "Connected"

	collections, err := c.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		res.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		c.logger.Warn("status", "Store probe failed", map[string]interface{}{
			"error": err.Error(),
		})
		return res
	}

	res.Collections = collections
	res.Database = "✅ Connected & Working"
	return res
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
