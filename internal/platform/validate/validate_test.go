// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/guildboard/internal/platform/apperr"
	"github.com/taibuivan/guildboard/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Vanguarda", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("name", tt.value)

			if tt.hasError {
				err := v.Err()
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, "name", ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MaxLen counts characters, not bytes.
*/
func TestValidator_MaxLen(t *testing.T) {
	v := &validate.Validator{}
	v.MaxLen("q", "ação", 4)
	assert.False(t, v.HasErrors())

	v.MaxLen("q", "açõesx", 5)
	assert.True(t, v.HasErrors())
}

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https", "https://example.com/data.json", true},
		{"http", "http://localhost:9000/data.yaml", true},
		{"empty_is_skipped", "", true},
		{"relative", "/data.json", false},
		{"other_scheme", "ftp://example.com/data.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("CATALOG_URL", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("source", "redis", "file", "redis")
	assert.False(t, v.HasErrors())

	v.OneOf("source", "s3", "file", "redis")
	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "Must be one of: file, redis", ae.Details[0].Message)
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("CATALOG_URL", "").
		MaxLen("filter", "abcdef", 3).
		Custom("LOAD_TIMEOUT", true, "Must be a positive duration").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
