package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "bare pq serialization failure",
			err:  &pq.Error{Code: "40001"},
			want: true,
		},
		{
			name: "wrapped by transaction manager",
			err:  fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"}),
			want: true,
		},
		{
			name: "unique violation is a different code",
			err:  &pq.Error{Code: "23505"},
			want: false,
		},
		{
			name: "non-pq error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}

func TestPgCodeClassifiers(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.True(t, isUndefinedTable(&pq.Error{Code: "42P01"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "40001"}))
	assert.False(t, isUndefinedTable(errors.New("no table")))
}
