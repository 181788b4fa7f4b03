package catalogue

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/storefront/internal/models"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"catalogue.yaml", FormatYAML, false},
		{"catalogue.YML", FormatYAML, false},
		{"/data/catalogue.json", FormatJSON, false},
		{"catalogue.xlsx", FormatXLSX, false},
		{"catalogue.csv", "", true},
		{"catalogue", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, models.ErrUnsupportedFormat) {
				t.Errorf("FormatFromPath(%q) err = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestLoad_YAML(t *testing.T) {
	idx := loadTestdata(t)

	p, ok := idx.ProductByID(22)
	if !ok {
		t.Fatal("product 22 missing")
	}
	if p.Title != "Sunflower Tote Bag" || p.Price != 499 || !p.InStock || !p.Popular {
		t.Errorf("product 22 = %+v", p)
	}
	want := time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC)
	if !p.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt, want)
	}

	legacy, _ := idx.ProductByID(19)
	if !legacy.Category.IsByName() || legacy.Category.Value() != "Candles" {
		t.Errorf("legacy reference = %s", legacy.Category)
	}

	data, err := os.ReadFile("testdata/catalogue.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if idx.Fingerprint() != Fingerprint(data) || len(idx.Fingerprint()) != 64 {
		t.Errorf("Fingerprint = %q", idx.Fingerprint())
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.json")
	doc := `{
  "categories": [{"id": "Candles", "name": "Candles", "slug": "Candles", "order": 2}],
  "products": [
    {"id": 7, "title": "Soy Candle", "price": 300, "category": "Candles", "tags": ["soy"], "created_at": "2024-05-01"}
  ]
}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, ok := idx.ProductByID(7)
	if !ok || p.Title != "Soy Candle" || p.Price != 300 {
		t.Fatalf("product = %+v", p)
	}
	if idx.ProductCount("Candles") != 1 {
		t.Error("product should resolve to Candles")
	}
	if p.CreatedAt.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("CreatedAt = %v", p.CreatedAt)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		is   error
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), nil},
		{"unsupported", write("catalogue.txt", "x"), models.ErrUnsupportedFormat},
		{"bad yaml", write("bad.yaml", "products: [\n"), nil},
		{"bad date", write("date.yaml", "products:\n  - id: 1\n    created_at: yesterday\n"), nil},
		{"duplicate", write("dup.yaml", "products:\n  - id: 1\n  - id: 1\n"), models.ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestLoad_XLSX(t *testing.T) {
	wb := excelize.NewFile()
	defer wb.Close()
	if err := wb.SetSheetName("Sheet1", "Categories"); err != nil {
		t.Fatal(err)
	}
	if _, err := wb.NewSheet("products"); err != nil {
		t.Fatal(err)
	}
	rows := map[string][][]interface{}{
		"Categories": {
			{"id", "name", "slug", "order", "featured", "keywords"},
			{"Handbags", "Handbags", "Handbags", 3, "yes", "bags, bag"},
		},
		"products": {
			{"ID", "Title", "Price", "Category", "Tags", "Popular", "In_Stock"},
			{22, "Sunflower Tote Bag", 499, "Handbags", "tote, bag ,", "TRUE", "1"},
			{},
			{23, "Legacy Sling", "1299.0", "", "", "", ""},
		},
	}
	for sheet, rs := range rows {
		for i, r := range rs {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			row := r
			if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "catalogue.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, ok := idx.CategoryByIDOrSlug("Handbags")
	if !ok || c.Order != 3 || !c.Featured || len(c.Keywords) != 2 {
		t.Errorf("category = %+v", c)
	}
	p, ok := idx.ProductByID(22)
	if !ok {
		t.Fatal("product 22 missing")
	}
	if p.Price != 499 || !p.Popular || !p.InStock || len(p.Tags) != 2 || p.Tags[1] != "bag" {
		t.Errorf("product = %+v", p)
	}
	if idx.ProductCount("Handbags") != 1 {
		t.Error("product 22 should resolve to Handbags")
	}
	sling, ok := idx.ProductByID(23)
	if !ok || sling.Price != 1299 || !sling.Category.IsZero() {
		t.Errorf("sling = %+v", sling)
	}
	if len(idx.Issues()) != 1 {
		t.Errorf("issues = %v, want the uncategorized sling", idx.Issues())
	}
}

func TestLoad_XLSXMissingSheet(t *testing.T) {
	wb := excelize.NewFile()
	defer wb.Close()
	path := filepath.Join(t.TempDir(), "catalogue.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("workbook without catalogue sheets should fail")
	}
}

func TestExportSaveRoundTrip(t *testing.T) {
	idx := loadTestdata(t)
	path := filepath.Join(t.TempDir(), "out", "catalogue.yaml")
	if err := Export(idx).Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(again.Products()) != len(idx.Products()) || again.ProductCount("Candles") != 5 {
		t.Error("exported catalogue lost products or category references")
	}
	p, _ := again.ProductByID(22)
	orig, _ := idx.ProductByID(22)
	if !p.CreatedAt.Equal(orig.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt, orig.CreatedAt)
	}
	legacy, _ := again.ProductByID(19)
	if !legacy.Category.IsByName() {
		t.Error("legacy name reference should survive export")
	}
}
