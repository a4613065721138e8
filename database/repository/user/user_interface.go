package userRepo

import (
	"time"

	"routinely/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence for user documents. The routine is
// stored inline on the user document and replaced wholesale on every commit.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateWithDocument(id string, update bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)

	// Routine persistence: whole-document overwrite of the day -> task map.
	GetRoutine(id string) (models.WeekRoutine, error)
	UpdateRoutine(id string, routine models.WeekRoutine) error

	// AppendHistory pushes one chat record onto the user's history.
	AppendHistory(id string, rec models.ChatRecord) error

	// ExpireSubscriptions marks every lapsed paid plan as expired and
	// returns how many documents changed.
	ExpireSubscriptions(now time.Time) (int64, error)
}
