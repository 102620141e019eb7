package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicID renders a store-native _id as the string exposed to API callers.
func PublicID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
