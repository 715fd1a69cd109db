package export

import (
	"github.com/Ritik8097/EmployeeTask/internal/task"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Tasks"

func renderSpreadsheet(tasks []task.TaskWithOwner) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, boldStyle); err != nil {
		return nil, err
	}

	for i, t := range tasks {
		values := rowValues(t)
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
