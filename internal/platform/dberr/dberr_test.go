// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/guildboard/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "list"))

	cause := errors.New("dial tcp: refused")
	err := dberr.Wrap(cause, "list_catalog_records")
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "list_catalog_records: dial tcp: refused")

	missing := &pgconn.PgError{Code: "42P01", Message: `relation "catalog.record" does not exist`}
	err = dberr.Wrap(missing, "list_catalog_records")
	assert.ErrorIs(t, err, dberr.ErrSchemaMissing)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)

	err = dberr.Wrap(&pgconn.PgError{Code: "57014", Message: "canceling statement"}, "list")
	assert.Contains(t, err.Error(), "SQLSTATE 57014")
}
