package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeDocument renders a raw record for the wire. The store's native
// identifier moves from "_id" to "id" as its string form, any other
// ObjectID value is stringified the same way, and BSON datetimes become
// time.Time so they marshal as RFC3339. The input document is not
// mutated.
func NormalizeDocument(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}

	out := make(bson.M, len(doc))
	for key, value := range doc {
		if key == "_id" {
			out["id"] = idString(value)
			continue
		}
		out[key] = normalizeValue(value)
	}
	return out
}

func idString(value any) string {
	if oid, ok := value.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(value)
}

// normalizeValue recurses into nested documents and arrays; the driver
// decodes embedded documents as bson.D when the target is an interface
// value, so both document forms are handled.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().UTC()
	case bson.M:
		out := make(bson.M, len(v))
		for key, nested := range v {
			out[key] = normalizeValue(nested)
		}
		return out
	case bson.D:
		out := make(bson.M, len(v))
		for _, elem := range v {
			out[elem.Key] = normalizeValue(elem.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(v))
		for i, nested := range v {
			out[i] = normalizeValue(nested)
		}
		return out
	default:
		return value
	}
}
