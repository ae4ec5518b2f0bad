package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestConvertDateTime(t *testing.T) {
	want := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   interface{}
		want time.Time
	}{
		{"time", want, want},
		{"sql text", "2024-01-01 10:30:00", want},
		{"rfc3339", "2024-01-01T10:30:00Z", want},
		{"bytes", []byte("2024-01-01 10:30:00"), want},
		{"date only", "2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"mongo", primitive.NewDateTimeFromTime(want), want},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertDateTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestConvertDateTimeRejectsGarbage(t *testing.T) {
	_, err := ConvertDateTime("yesterday")
	assert.Error(t, err)

	_, err = ConvertDateTime(3.5)
	assert.Error(t, err)
}

func TestConvertToInt(t *testing.T) {
	tests := []struct {
		in   interface{}
		want int
	}{
		{1433, 1433},
		{int64(1433), 1433},
		{float64(1433), 1433},
		{"1433", 1433},
		{" 1433 ", 1433},
		{[]byte("1433"), 1433},
		{json.Number("1433"), 1433},
	}

	for _, tt := range tests {
		got, err := ConvertToInt(tt.in)
		require.NoError(t, err, "%#v", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ConvertToInt(14.33)
	assert.Error(t, err)
	_, err = ConvertToInt("port")
	assert.Error(t, err)
	_, err = ConvertToInt(true)
	assert.Error(t, err)
}
