// Package export renders account data as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ClientsSheetName is the name of the single sheet of the clients workbook.
const ClientsSheetName = "Clientes"

var clientHeaders = []string{
	"Nome", "Telefone", "E-mail", "Endereço", "Favorito", "Total gasto", "Último serviço", "Observações",
}

// WriteClientsXLSX writes an .xlsx workbook listing clients with their statistics.
func WriteClientsXLSX(w io.Writer, clients []domain.Client) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ClientsSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F4B6C2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	for i, header := range clientHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ClientsSheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(ClientsSheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for rowIdx, c := range clients {
		row := rowIdx + 2
		favorite := "Não"
		if c.IsFavorite {
			favorite = "Sim"
		}
		lastService := ""
		if c.LastServiceDate != nil {
			lastService = c.LastServiceDate.Format("02/01/2006")
		}
		total := utils.MoneyFloat(c.TotalSpent)

		values := []any{c.Name, c.Phone, c.Email, c.Address, favorite, total, lastService, c.Notes}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(ClientsSheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		moneyCell := fmt.Sprintf("F%d", row)
		if err := f.SetCellStyle(ClientsSheetName, moneyCell, moneyCell, moneyStyle); err != nil {
			return fmt.Errorf("failed to style row %d: %w", row, err)
		}
	}

	for i := range clientHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(ClientsSheetName, col, col, 18)
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
