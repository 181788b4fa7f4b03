package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hyperjump/storefront/internal/catalogue"
)

// params reads typed query parameters and collects every parse error.
type params struct {
	values url.Values
	errs   []error
}

func newParams(r *http.Request) *params {
	return &params{values: r.URL.Query()}
}

func (p *params) query() string {
	return p.values.Get("q")
}

func (p *params) intParam(name string, def int) int {
	raw := p.values.Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %q", name, raw))
		return def
	}
	return n
}

func (p *params) floatParam(name string, def float64) float64 {
	raw := p.values.Get(name)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %q", name, raw))
		return def
	}
	return f
}

func (p *params) boolParam(name string, def bool) bool {
	raw := p.values.Get(name)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %q", name, raw))
		return def
	}
	return b
}

func (p *params) sort() catalogue.SortType {
	raw := p.values.Get("sort")
	if raw == "" {
		return catalogue.DefaultSort
	}
	st, ok := catalogue.ParseSortType(raw)
	if !ok {
		p.errs = append(p.errs, fmt.Errorf("invalid sort: %q", raw))
	}
	return st
}

func (p *params) err() error {
	return errors.Join(p.errs...)
}
