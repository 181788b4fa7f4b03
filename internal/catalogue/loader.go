package catalogue

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/storefront/internal/models"
)

// Format identifies a catalogue file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// File is the on-disk catalogue layout shared by the YAML and JSON formats.
type File struct {
	Categories []*models.Category `yaml:"categories"`
	Products   []ProductRecord    `yaml:"products"`
}

// ProductRecord is a product as written in a catalogue file. Category holds a
// category id or slug; CategoryName is the legacy display-name reference and
// is used only when Category is empty.
type ProductRecord struct {
	ID           int      `yaml:"id"`
	Title        string   `yaml:"title"`
	Slug         string   `yaml:"slug"`
	Description  string   `yaml:"description"`
	Price        int      `yaml:"price"`
	Images       []string `yaml:"images"`
	Category     string   `yaml:"category"`
	CategoryName string   `yaml:"category_name"`
	Tags         []string `yaml:"tags"`
	Keywords     []string `yaml:"keywords"`
	Popular      bool     `yaml:"popular"`
	Featured     bool     `yaml:"featured"`
	InStock      bool     `yaml:"in_stock"`
	CreatedAt    string   `yaml:"created_at"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Product converts the record into a catalogue product.
func (r ProductRecord) Product() (*models.Product, error) {
	p := &models.Product{
		ID:          r.ID,
		Title:       strings.TrimSpace(r.Title),
		Slug:        strings.TrimSpace(r.Slug),
		Description: r.Description,
		Price:       r.Price,
		Images:      r.Images,
		Tags:        r.Tags,
		Keywords:    r.Keywords,
		Popular:     r.Popular,
		Featured:    r.Featured,
		InStock:     r.InStock,
	}
	switch {
	case strings.TrimSpace(r.Category) != "":
		p.Category = models.CategoryByID(strings.TrimSpace(r.Category))
	case strings.TrimSpace(r.CategoryName) != "":
		p.Category = models.CategoryByName(strings.TrimSpace(r.CategoryName))
	}

	if s := strings.TrimSpace(r.CreatedAt); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", r.ID, err)
		}
		p.CreatedAt = t
	}
	return p, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid created_at %q", s)
}

// Load reads a catalogue file, choosing the decoder by extension, and indexes
// it. The index fingerprint is the SHA-256 of the file bytes.
func Load(path string) (*Index, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}
	idx, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalogue %s: %w", path, err)
	}
	return idx, nil
}

// Parse decodes catalogue bytes in the given format and indexes them.
func Parse(data []byte, format Format) (*Index, error) {
	var (
		f   *File
		err error
	)
	switch format {
	case FormatYAML, FormatJSON:
		f, err = decodeYAML(data)
	case FormatXLSX:
		f, err = decodeXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	idx, err := f.Index()
	if err != nil {
		return nil, err
	}
	idx.fingerprint = Fingerprint(data)
	return idx, nil
}

// Index converts the file records and indexes them.
func (f *File) Index() (*Index, error) {
	products := make([]*models.Product, 0, len(f.Products))
	for _, r := range f.Products {
		p, err := r.Product()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return NewIndex(f.Categories, products)
}

// Fingerprint returns the hex SHA-256 of data.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// decodeYAML also handles JSON, which the YAML decoder accepts as a subset.
func decodeYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}
	return &f, nil
}

// Save writes the file as YAML.
func (f *File) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create catalogue directory: %w", err)
		}
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal catalogue: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalogue: %w", err)
	}
	return nil
}

// Export converts an index back into its file layout.
func Export(idx *Index) *File {
	f := &File{
		Categories: idx.Categories(),
		Products:   make([]ProductRecord, 0, len(idx.products)),
	}
	for _, p := range idx.products {
		r := ProductRecord{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Description,
			Price:       p.Price,
			Images:      p.Images,
			Tags:        p.Tags,
			Keywords:    p.Keywords,
			Popular:     p.Popular,
			Featured:    p.Featured,
			InStock:     p.InStock,
		}
		switch {
		case p.Category.IsByID():
			r.Category = p.Category.Value()
		case p.Category.IsByName():
			r.CategoryName = p.Category.Value()
		}
		if !p.CreatedAt.IsZero() {
			r.CreatedAt = p.CreatedAt.Format(time.RFC3339)
		}
		f.Products = append(f.Products, r)
	}
	return f
}
