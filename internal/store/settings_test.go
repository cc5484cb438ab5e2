// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"staticcms/internal/models"
)

func TestSettingsStoreGetCreatesDefaultsMock(t *testing.T) {
	db, mock := mockDB(t)
	s := NewSettingsStore(db)

	def := models.DefaultUISettings()
	mock.ExpectQuery("FROM settings WHERE id = 1").
		WillReturnRows(sqlmock.NewRows([]string{"brand_primary", "brand_hover"}))
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(def.BrandPrimary, def.BrandHover).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != def {
		t.Errorf("Get = %+v, want %+v", got, def)
	}
}

func TestSettingsStoreGetErrorMock(t *testing.T) {
	db, mock := mockDB(t)
	s := NewSettingsStore(db)

	boom := errors.New("boom")
	mock.ExpectQuery("FROM settings").WillReturnError(boom)

	if _, err := s.Get(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestSettingsStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewSettingsStore(db)

	before, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	t.Cleanup(func() { s.Update(before) })

	want := models.UISettings{BrandPrimary: "#111111", BrandHover: "#222222"}
	got, err := s.Update(want)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got != want {
		t.Errorf("Update = %+v, want %+v", got, want)
	}
	if again, _ := s.Get(); again != want {
		t.Errorf("Get after update = %+v", again)
	}
}
