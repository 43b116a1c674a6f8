package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/firehall/personnel-agent/internal/store"
)

type ReportService struct {
	store     *store.Store
	inventory *InventoryService
}

func NewReportService(st *store.Store, inventory *InventoryService) *ReportService {
	return &ReportService{store: st, inventory: inventory}
}

// ExportPersonnelRoster renders the personnel collection as an XLSX
// workbook and returns the file contents with a dated filename.
func (s *ReportService) ExportPersonnelRoster(ctx context.Context) (*bytes.Buffer, string, error) {
	personnel, err := s.store.Records().GetAll(ctx, store.CollectionPersonnel)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Personnel"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "First Name", "Last Name", "Rank", "Username", "Vacation", "Sick", "Emergency"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, rec := range personnel {
		id, _ := rec.ID()
		values := []any{
			id,
			rec.String("first_name"),
			rec.String("last_name"),
			rec.String("rank"),
			rec.String("username"),
			floatField(rec, "earned_vacation"),
			floatField(rec, "earned_sick"),
			floatField(rec, "earned_emergency"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("personnel-roster-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ExportInventory renders the inventory with assignee names joined in.
func (s *ReportService) ExportInventory(ctx context.Context) (*bytes.Buffer, string, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Item", "Code", "Category", "Status", "Assigned To", "Purchase Date", "Last Checked"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, item := range items {
		id, _ := item.Item.ID()
		values := []any{
			id,
			item.Item.String("item_name"),
			item.Item.String("item_code"),
			item.Item.String("category"),
			item.Item.String("status"),
			item.AssignedName,
			item.Item.String("purchase_date"),
			item.Item.String("last_checked"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
