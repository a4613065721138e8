package user

import (
	"fmt"
	"time"

	"routinely/models"
	"routinely/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ChangePlan switches the billing-simulation plan and recomputes the expiry
// from now. No payment provider is involved; the plan only gates access via
// the expiry sweep.
func (s *DefaultUserService) ChangePlan(userID, plan string) (*models.User, error) {
	duration, ok := models.PlanDuration(plan)
	if !ok {
		return nil, fmt.Errorf("unknown plan %q", plan)
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"paymentType": plan,
		"expiredAt":   now.Add(duration),
		"updatedAt":   now,
	}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		utils.GetLogger().Error("Failed to change plan", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to change plan: %w", err)
	}

	return s.Repo.GetByIDWithProjection(userID, safeProjection)
}
