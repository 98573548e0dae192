package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"redsox", "Boston Red Sox"},
		{"Red Sox", "Boston Red Sox"},
		{"  blue jays ", "Toronto Blue Jays"},
		{"MARINERS", "Seattle Mariners"},
		{"white sox", "Chicago White Sox"},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestResolve_UnknownAliasFails(t *testing.T) {
	_, err := Resolve("expos")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"expos"`)
}
