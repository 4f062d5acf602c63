// internal/overlay/read.go
package overlay

import (
	"encoding/json"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Typed read helpers. The store is hand-editable local state, so a malformed
// value is treated the same as an absent one: the caller gets the zero value
// and a warning is logged, never an error.

func GetFloat(s Store, key string) (float64, bool) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": raw}).Warn("Discarding malformed float in overlay store")
		return 0, false
	}
	return f, true
}

func GetInt(s Store, key string) (int64, bool) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": raw}).Warn("Discarding malformed integer in overlay store")
		return 0, false
	}
	return n, true
}

// GetJSON unmarshals the stored value into out. Returns false when the key is
// absent or the stored JSON is corrupt; out is left untouched in both cases.
func GetJSON(s Store, key string, out interface{}) bool {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logrus.WithFields(logrus.Fields{"key": key}).Warn("Discarding corrupt JSON in overlay store")
		return false
	}
	return true
}

func SetFloat(s Store, key string, v float64) error {
	return s.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

func SetInt(s Store, key string, v int64) error {
	return s.Set(key, strconv.FormatInt(v, 10))
}

func SetJSON(s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(data))
}
