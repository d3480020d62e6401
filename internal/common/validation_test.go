package common

import (
	"testing"

	"github.com/google/uuid"
)

func TestValidator_Field(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Validator
		wantErr bool
	}{
		{
			name: "all rules pass",
			build: func() *Validator {
				return NewValidator().
					Field("name", "Tasks", Required, MaxLength(64)).
					Field("file_id", uuid.New().String(), Required, UUID).
					Field("output_type", "array", OneOf("array", "object", "value"))
			},
			wantErr: false,
		},
		{
			name: "required rejects blank string",
			build: func() *Validator {
				return NewValidator().Field("name", "   ", Required)
			},
			wantErr: true,
		},
		{
			name: "max length counts runes",
			build: func() *Validator {
				return NewValidator().Field("name", "ééééé", MaxLength(5))
			},
			wantErr: false,
		},
		{
			name: "max length exceeded",
			build: func() *Validator {
				return NewValidator().Field("name", "abcdef", MaxLength(5))
			},
			wantErr: true,
		},
		{
			name: "invalid uuid",
			build: func() *Validator {
				return NewValidator().Field("file_id", "not-a-uuid", UUID)
			},
			wantErr: true,
		},
		{
			name: "one of rejects unknown value",
			build: func() *Validator {
				return NewValidator().Field("output_type", "tuple", OneOf("array", "object", "value"))
			},
			wantErr: true,
		},
		{
			name: "errors accumulate across fields",
			build: func() *Validator {
				return NewValidator().
					Field("name", "", Required).
					Field("file_id", "nope", UUID)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.build()
			if v.HasErrors() != tt.wantErr {
				t.Errorf("HasErrors() = %v, want %v (%s)", v.HasErrors(), tt.wantErr, v.ErrorMessage())
			}
			err := ValidateAndReturnError(v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndReturnError() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
