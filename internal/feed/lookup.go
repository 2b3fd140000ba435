package feed

import "strings"

// Find returns the first record whose field equals value. With fold set the
// comparison ignores case, which is how player handles are matched.
func Find(coll Collection, field, value string, fold bool) (Record, bool) {
	for _, rec := range coll {
		v := rec.String(field)
		if v == value || (fold && strings.EqualFold(v, value)) {
			return rec, true
		}
	}
	return nil, false
}

// Lookup is Find with a *NotFoundError for absent (or blank) keys.
func Lookup(feed string, coll Collection, field, value string, fold bool) (Record, error) {
	if strings.TrimSpace(value) == "" {
		return nil, &NotFoundError{Feed: feed, Field: field, Value: value}
	}
	rec, ok := Find(coll, field, value, fold)
	if !ok {
		return nil, &NotFoundError{Feed: feed, Field: field, Value: value}
	}
	return rec, nil
}

// Where returns the records whose field equals value, in feed order.
func Where(coll Collection, field, value string) Collection {
	var out Collection
	for _, rec := range coll {
		if rec.String(field) == value {
			out = append(out, rec)
		}
	}
	return out
}
