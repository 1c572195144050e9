package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
)

const exportTimeLayout = "2006-01-02 15:04"

type ExportStore interface {
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	ListOnboardings(ctx context.Context) ([]models.OwnerOnboarding, error)
}

// ExportService writes admin tables as .xlsx workbooks.
type ExportService struct {
	store ExportStore
	log   *zap.Logger
}

func NewExportService(s ExportStore, log *zap.Logger) *ExportService {
	return &ExportService{store: s, log: log}
}

func (s *ExportService) WriteInquiries(ctx context.Context, w io.Writer) error {
	rows, err := s.store.ListInquiries(ctx)
	if err != nil {
		return fmt.Errorf("list inquiries: %w", err)
	}

	header := []interface{}{"ID", "Created", "Name", "Phone", "Email", "Message", "Common", "PG", "PG Type", "Status"}
	data := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		pgTitle, pgType := "", ""
		if r.PG != nil {
			pgTitle, pgType = r.PG.Title, r.PG.Type
		}
		data = append(data, []interface{}{
			r.ID, r.CreatedAt.Format(exportTimeLayout), r.Name, r.Phone, deref(r.Email),
			r.Message, r.IsCommon, pgTitle, pgType, r.Status,
		})
	}
	return s.write(w, "Inquiries", header, data)
}

func (s *ExportService) WriteOnboardings(ctx context.Context, w io.Writer) error {
	rows, err := s.store.ListOnboardings(ctx)
	if err != nil {
		return fmt.Errorf("list onboarding requests: %w", err)
	}

	header := []interface{}{"ID", "Created", "Name", "Phone", "Email", "PG Name", "PG Type",
		"Address", "City", "State", "Pincode", "Capacity", "Existing Rooms", "Message", "Status"}
	data := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		data = append(data, []interface{}{
			r.ID, r.CreatedAt.Format(exportTimeLayout), r.Name, r.Phone, r.Email, r.PGName, r.PGType,
			r.PGAddress, r.PGCity, r.PGState, r.PGPincode, intOrBlank(r.Capacity), intOrBlank(r.ExistingRooms),
			deref(r.Message), r.Status,
		})
	}
	return s.write(w, "Owner Onboarding", header, data)
}

func (s *ExportService) write(w io.Writer, sheet string, header []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	lastCol, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	s.log.Info("export written", zap.String("sheet", sheet), zap.Int("rows", len(rows)))
	return nil
}

// ExportFilename is the download name for a sheet, stamped with today's date.
func ExportFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, now.Format("20060102"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrBlank(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}
