package usecase

import (
	"fmt"

	"videotube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// parseObjectID maps a malformed hex id to a validation failure named after
// the field, e.g. "Invalid videoId".
func parseObjectID(hexID, field string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hexID)
	if err != nil {
		return bson.ObjectID{}, model.NewValidationError(fmt.Sprintf("Invalid %s", field))
	}
	return id, nil
}
