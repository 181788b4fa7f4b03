package catalogue

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/storefront/internal/models"
)

const (
	categoriesSheet = "categories"
	productsSheet   = "products"
)

// decodeXLSX reads a workbook with a "categories" and a "products" sheet.
// The first row of each sheet names the columns; list columns are
// comma-separated.
func decodeXLSX(data []byte) (*File, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	catRows, err := sheetRows(wb, categoriesSheet)
	if err != nil {
		return nil, err
	}
	prodRows, err := sheetRows(wb, productsSheet)
	if err != nil {
		return nil, err
	}

	f := &File{}
	for i, row := range catRows {
		c, err := row.category()
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", categoriesSheet, i+2, err)
		}
		f.Categories = append(f.Categories, c)
	}
	for i, row := range prodRows {
		r, err := row.product()
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", productsSheet, i+2, err)
		}
		f.Products = append(f.Products, r)
	}
	return f, nil
}

// sheetRow maps lowercase header names to cell values of one row.
type sheetRow map[string]string

func sheetRows(wb *excelize.File, want string) ([]sheetRow, error) {
	name := ""
	for _, s := range wb.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			name = s
			break
		}
	}
	if name == "" {
		return nil, fmt.Errorf("workbook has no %q sheet", want)
	}

	rows, err := wb.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	out := make([]sheetRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		row := make(sheetRow, len(header))
		for i, h := range header {
			if h != "" && i < len(cells) {
				row[h] = strings.TrimSpace(cells[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (r sheetRow) category() (*models.Category, error) {
	order, err := r.intCell("order")
	if err != nil {
		return nil, err
	}
	return &models.Category{
		ID:          r["id"],
		Name:        r["name"],
		Slug:        r["slug"],
		Description: r["description"],
		Icon:        r["icon"],
		Order:       order,
		Featured:    r.boolCell("featured"),
		Keywords:    r.listCell("keywords"),
	}, nil
}

func (r sheetRow) product() (ProductRecord, error) {
	id, err := r.intCell("id")
	if err != nil {
		return ProductRecord{}, err
	}
	price, err := r.intCell("price")
	if err != nil {
		return ProductRecord{}, err
	}
	return ProductRecord{
		ID:           id,
		Title:        r["title"],
		Slug:         r["slug"],
		Description:  r["description"],
		Price:        price,
		Images:       r.listCell("images"),
		Category:     r["category"],
		CategoryName: r["category_name"],
		Tags:         r.listCell("tags"),
		Keywords:     r.listCell("keywords"),
		Popular:      r.boolCell("popular"),
		Featured:     r.boolCell("featured"),
		InStock:      r.boolCell("in_stock"),
		CreatedAt:    r["created_at"],
	}, nil
}

func (r sheetRow) intCell(col string) (int, error) {
	v := r[col]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Spreadsheets often store whole numbers as floats.
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("column %q: invalid integer %q", col, v)
		}
		n = int(f)
	}
	return n, nil
}

func (r sheetRow) boolCell(col string) bool {
	switch strings.ToLower(r[col]) {
	case "true", "yes", "y", "1", "x":
		return true
	default:
		return false
	}
}

func (r sheetRow) listCell(col string) []string {
	v := r[col]
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
