package userRepo

import (
	"fmt"
	"time"

	"routinely/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetRoutine fetches only the routine field of a user document.
func (r *MongoUserRepo) GetRoutine(id string) (models.WeekRoutine, error) {
	user, err := r.GetByIDWithProjection(id, bson.M{"routine": 1})
	if err != nil {
		return models.WeekRoutine{}, err
	}
	return user.Routine, nil
}

// UpdateRoutine replaces the user's entire routine document. The engine
// validates before commit, so the stored map is always internally
// consistent.
func (r *MongoUserRepo) UpdateRoutine(id string, routine models.WeekRoutine) error {
	update := bson.M{"$set": bson.M{
		"routine":   routine,
		"updatedAt": time.Now(),
	}}
	if err := r.UpdateWithDocument(id, update); err != nil {
		return fmt.Errorf("failed to update routine: %w", err)
	}
	return nil
}

// AppendHistory pushes one chat record onto the user's history array.
func (r *MongoUserRepo) AppendHistory(id string, rec models.ChatRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"history": rec},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append history for user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

// ExpireSubscriptions downgrades every plan whose expiry has passed.
func (r *MongoUserRepo) ExpireSubscriptions(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"expiredAt":   bson.M{"$lt": now},
		"paymentType": bson.M{"$ne": models.PlanExpired},
	}
	update := bson.M{"$set": bson.M{
		"paymentType": models.PlanExpired,
		"updatedAt":   now,
	}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}
	return result.ModifiedCount, nil
}
