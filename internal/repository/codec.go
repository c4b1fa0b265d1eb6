package repository

import (
	"gopkg.in/yaml.v3"

	"foliot/internal/domain"
	"foliot/internal/errors"
)

// The storage format is YAML: human-readable and editable with the edit
// command, and stable under round-trips of field values.

// MarshalEntries serializes an entry collection.
func MarshalEntries(entries []domain.Entry) ([]byte, error) {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return nil, errors.NewStorageError("marshal entries", err)
	}
	return data, nil
}

// UnmarshalEntries deserializes an entry collection. Malformed content
// surfaces as a corrupt-data error carrying the storage key.
func UnmarshalEntries(key string, data []byte) ([]domain.Entry, error) {
	var entries []domain.Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewCorruptDataError(key, err)
	}
	return entries, nil
}

// MarshalMarker serializes a clock-in marker.
func MarshalMarker(marker domain.Marker) ([]byte, error) {
	data, err := yaml.Marshal(marker)
	if err != nil {
		return nil, errors.NewStorageError("marshal marker", err)
	}
	return data, nil
}

// UnmarshalMarker deserializes a clock-in marker.
func UnmarshalMarker(key string, data []byte) (domain.Marker, error) {
	var marker domain.Marker
	if err := yaml.Unmarshal(data, &marker); err != nil {
		return domain.Marker{}, errors.NewCorruptDataError(key, err)
	}
	return marker, nil
}
