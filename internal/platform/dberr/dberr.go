// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr annotates PostgreSQL driver errors with the failing action
// before they become catalog load errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// undefinedTable is the SQLSTATE of a query against a missing table.
const undefinedTable = "42P01"

// ErrSchemaMissing reports that the catalog table does not exist yet.
var ErrSchemaMissing = errors.New("catalog schema missing (were migrations applied?)")

// Wrap prefixes err with action and surfaces the server-side SQLSTATE.
// The original error stays reachable through [errors.Is] and [errors.As].
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == undefinedTable {
			return fmt.Errorf("%s: %w: %w", action, ErrSchemaMissing, err)
		}
		return fmt.Errorf("%s: SQLSTATE %s: %w", action, pgErr.Code, err)
	}

	return fmt.Errorf("%s: %w", action, err)
}
