package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteClientsXLSX(t *testing.T) {
	faker := gofakeit.New(42)
	last := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	clients := []domain.Client{
		{Name: faker.Name(), Phone: faker.Phone(), IsFavorite: true, TotalSpent: decimal.RequireFromString("200.00"), LastServiceDate: &last},
		{Name: faker.Name(), Email: faker.Email(), TotalSpent: decimal.Zero},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClientsXLSX(&buf, clients))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ClientsSheetName}, f.GetSheetList())

	rows, err := f.GetRows(ClientsSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Nome", rows[0][0])
	assert.Equal(t, clients[0].Name, rows[1][0])
	assert.Equal(t, "Sim", rows[1][4])
	assert.Equal(t, "05/03/2024", rows[1][6])
	assert.Equal(t, clients[1].Name, rows[2][0])
	assert.Equal(t, "Não", rows[2][4])

	raw, err := f.GetCellValue(ClientsSheetName, "F2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "200", raw)
}

func TestWriteClientsXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteClientsXLSX(&buf, nil))
	assert.NotZero(t, buf.Len())
}
