package steps

import (
	"errors"
	"fmt"
	"time"
)

func (t *testContext) theStorageBackendIs(backend string) error {
	if t.server != nil {
		return errors.New("the storage backend must be chosen before the server starts")
	}
	t.backend = backend
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(current)
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server != nil {
		return nil
	}
	return t.startServer()
}

// theApplicationIsRestarted rebuilds the whole application on top of the same storage.
func (t *testContext) theApplicationIsRestarted() error {
	t.stopServer()
	return t.startServer()
}
