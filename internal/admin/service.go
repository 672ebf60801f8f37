package admin

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"

	"county-portal-api/internal/geocode"
	"county-portal-api/internal/government"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnknownKind   = errors.New("unknown backfill kind")
	ErrUnknownFormat = errors.New("format must be xlsx or csv")
)

type AdminService struct {
	Enricher BackfillRunner
	// Stores maps a backfill kind to the records it enriches.
	Stores   map[string]geocode.Store
	Councils CouncilSource
}

func (as *AdminService) Backfill(ctx context.Context, kind string, onProgress func(geocode.Progress)) (geocode.Report, error) {
	store, ok := as.Stores[kind]
	if !ok {
		return geocode.Report{}, ErrUnknownKind
	}
	return as.Enricher.Backfill(ctx, store, onProgress)
}

// ExportCouncils builds the council directory as a workbook with one sheet per tier,
// or as a single CSV with a kind column.
func (as *AdminService) ExportCouncils(ctx context.Context, format string) (contentType, filename string, out []byte, err error) {
	if format != FormatXLSX && format != FormatCSV {
		return "", "", nil, ErrUnknownFormat
	}

	counties, districts, parishes, err := as.Councils.AllCouncils(ctx)
	if err != nil {
		return "", "", nil, err
	}

	sheets := []struct {
		name string
		rows [][]string
	}{
		{"County Councils", countyRows(counties)},
		{"District Councils", districtRows(districts)},
		{"Parish Councils", parishRows(parishes)},
	}

	if format == FormatCSV {
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		if err := w.Write(exportHeader); err != nil {
			return "", "", nil, err
		}
		for _, s := range sheets {
			if err := w.WriteAll(s.rows); err != nil {
				return "", "", nil, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", "", nil, err
		}
		return "text/csv; charset=utf-8", "councils.csv", buf.Bytes(), nil
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFF2CC"}, Pattern: 1},
	})
	if err != nil {
		return "", "", nil, err
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return "", "", nil, err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return "", "", nil, err
		}

		if err := writeRow(f, s.name, 1, exportHeader); err != nil {
			return "", "", nil, err
		}
		if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
			return "", "", nil, err
		}
		for r, row := range s.rows {
			if err := writeRow(f, s.name, r+2, row); err != nil {
				return "", "", nil, err
			}
		}
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return "", "", nil, err
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "councils.xlsx", b.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return f.SetSheetRow(sheet, cell, &vals)
}

func baseRow(kind string, b government.CouncilBase, leader string, parent *uint, typ, precept string) []string {
	parentID := ""
	if parent != nil {
		parentID = strconv.FormatUint(uint64(*parent), 10)
	}
	return []string{
		kind,
		strconv.FormatUint(uint64(b.ID), 10),
		b.Name,
		b.County,
		b.Headquarters,
		strconv.Itoa(b.PopulationServed),
		b.Website,
		b.Established,
		leader,
		parentID,
		typ,
		precept,
	}
}

func countyRows(cs []government.CountyCouncil) [][]string {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, baseRow(string(government.KindCounty), c.CouncilBase, c.CouncilLeader, nil, "", ""))
	}
	return rows
}

func districtRows(ds []government.DistrictCouncil) [][]string {
	rows := make([][]string, 0, len(ds))
	for _, d := range ds {
		rows = append(rows, baseRow(string(government.KindDistrict), d.CouncilBase, d.CouncilLeader, d.CountyCouncilID, d.DistrictType, ""))
	}
	return rows
}

func parishRows(ps []government.ParishCouncil) [][]string {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, baseRow(string(government.KindParish), p.CouncilBase, p.Chairman, p.DistrictCouncilID, p.ParishType, p.Precept.StringFixed(2)))
	}
	return rows
}
