package backend

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToDocument flattens a tagged record, or normalizes a map, into a bson.M
// holding only driver-native values.
func ToDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeDoc converts a single document into out.
func DecodeDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// DecodeDocs converts documents into out, which must point to a slice.
func DecodeDocs(docs []bson.M, out any) error {
	if docs == nil {
		docs = []bson.M{}
	}

	t, data, err := bson.MarshalValue(docs)
	if err != nil {
		return err
	}
	return bson.RawValue{Type: t, Value: data}.Unmarshal(out)
}
