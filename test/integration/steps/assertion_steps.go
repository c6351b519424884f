package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/PaesslerAG/jsonpath"

	"github.com/finance-tracker/dashboard/config"
)

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.body == nil {
		return fmt.Errorf("response is not JSON: %s", t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expectedValue string) error {
	value, err := t.responseField(path)
	if err != nil {
		return err
	}

	if actual := formatValue(value); actual != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", path, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	_, err := t.responseField(path)
	return err
}

func (t *testContext) theResponseFieldShouldHaveItems(path string, quantity int) error {
	value, err := t.responseField(path)
	if err != nil {
		return err
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", path, value)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", path, quantity, len(items))
	}
	return nil
}

func (t *testContext) responseField(path string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	if t.response.body == nil {
		return nil, fmt.Errorf("response is not JSON: %s", t.response.raw)
	}

	value, err := jsonpath.Get(path, t.response.body)
	if err != nil {
		return nil, fmt.Errorf("field '%s' not found in response %s: %w", path, t.response.raw, err)
	}
	return value, nil
}

func (t *testContext) theStoredDocumentShouldHaveRecords(suffix string, quantity int) error {
	document, err := t.storedDocument(suffix)
	if err != nil {
		return err
	}

	records, ok := document.([]any)
	if !ok {
		return fmt.Errorf("stored %q document is not a list: %v", suffix, document)
	}
	if len(records) != quantity {
		return fmt.Errorf("expected %d records stored under %q, got %d", quantity, suffix, len(records))
	}
	return nil
}

func (t *testContext) theStoredDocumentFieldShouldBe(suffix, path, expectedValue string) error {
	document, err := t.storedDocument(suffix)
	if err != nil {
		return err
	}

	value, err := jsonpath.Get(path, document)
	if err != nil {
		return fmt.Errorf("field '%s' not found in stored %q document: %w", path, suffix, err)
	}
	if actual := formatValue(value); actual != expectedValue {
		return fmt.Errorf("stored field '%s' expected '%s', got '%s'", path, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theStoredDocumentShouldBe(suffix, expected string) error {
	raw, err := t.storedBytes(suffix)
	if err != nil {
		return err
	}
	if actual := string(bytes.TrimSpace(raw)); actual != expected {
		return fmt.Errorf("stored %q document expected %s, got %s", suffix, expected, actual)
	}
	return nil
}

func (t *testContext) nothingShouldBeStoredUnder(suffix string) error {
	kv, err := t.storage()
	if err != nil {
		return err
	}

	if _, err := kv.Get(context.Background(), t.cfg.Storage.KeyPrefix+suffix); err == nil {
		return fmt.Errorf("expected nothing stored under %q", suffix)
	}
	return nil
}

func (t *testContext) storedDocument(suffix string) (any, error) {
	raw, err := t.storedBytes(suffix)
	if err != nil {
		return nil, err
	}

	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("stored %q document is not JSON: %w", suffix, err)
	}
	return document, nil
}

func (t *testContext) storedBytes(suffix string) ([]byte, error) {
	kv, err := t.storage()
	if err != nil {
		return nil, err
	}

	raw, err := kv.Get(context.Background(), t.cfg.Storage.KeyPrefix+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored %q document: %w", suffix, err)
	}
	return raw, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if t.backend != config.StorageDriverSQLite {
		return fmt.Errorf("db assertions need the sqlite backend, scenario uses %q", t.backend)
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

		result := t.db.DbConn.Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

// formatValue renders a decoded JSON value the way it is written in feature files.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
