package pdfreport_test

import (
	"os"
	"path/filepath"
	"testing"

	"trade_manager/pkg/pdfreport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	headers := []string{"ID", "Name"}
	rows := [][]string{
		{"1", "Мёд липовый"},
		{"2"}, // short row pads with empty cells
	}
	require.NoError(t, pdfreport.Write(path, "Отчёт", headers, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestWriteNoColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	err := pdfreport.Write(path, "Empty", nil, nil)
	assert.Error(t, err)
}
