// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/guildboard/internal/platform/database/schema"
	"github.com/taibuivan/guildboard/internal/platform/dberr"
	"github.com/taibuivan/guildboard/pkg/pointer"
)

// Querier is the subset of [pgxpool.Pool] the postgres source needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads the catalog from the catalog.record table, ordered by
// position.
type PostgresSource struct {
	db Querier
}

// NewPostgresSource constructs a [PostgresSource].
func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// Name implements [Source].
func (source *PostgresSource) Name() string { return "postgres" }

// Load implements [Source].
func (source *PostgresSource) Load(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.CatalogRecord.Columns(), ", "),
		schema.CatalogRecord.Table,
		schema.CatalogRecord.Position,
	)

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_catalog_records")
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		var nickname, imageURL, link, year, foundedDate *string
		if err := rows.Scan(
			&record.Name, &record.Description, &record.Tags,
			&nickname, &imageURL, &link, &year, &foundedDate,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_catalog_record")
		}

		record.Nickname = pointer.Val(nickname)
		record.ImageURL = pointer.Val(imageURL)
		record.Link = pointer.Val(link)
		record.Year = pointer.Val(year)
		record.FoundedDate = pointer.Val(foundedDate)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_catalog_records")
	}

	return records, nil
}
