package main

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

func TestExecuteClosesStorageWhenCommandFails(t *testing.T) {
	a := &app{}

	err := a.execute(context.Background(), []string{"--storage", "memory", "summary", "--date", "15/04/2023"})
	if err == nil {
		t.Fatal("expected an error for an invalid date")
	}

	var dashboardErr *domainerror.DashboardError
	if !errors.As(err, &dashboardErr) {
		t.Fatalf("expected a DashboardError, got %T: %v", err, err)
	}
	if dashboardErr.Code != domainerror.ErrCodeInvalidDateFormat {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDateFormat, dashboardErr.Code)
	}
	if a.injector != nil {
		t.Error("expected the storage to be closed after a failing command")
	}
}

func TestExecuteClosesStorageAfterSuccess(t *testing.T) {
	a := &app{}

	if err := a.execute(context.Background(), []string{"--storage", "memory", "dark-mode", "on"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.injector != nil {
		t.Error("expected the storage to be closed after the command")
	}
}

func TestExecuteRejectsInvalidArgsWithoutOpeningStorage(t *testing.T) {
	a := &app{}

	if err := a.execute(context.Background(), []string{"--storage", "memory", "dark-mode", "maybe"}); err == nil {
		t.Fatal("expected an error for an invalid argument")
	}
	if a.injector != nil {
		t.Error("expected no storage to be left open")
	}
}

func TestCloseWithoutOpen(t *testing.T) {
	if err := (&app{}).close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
