package nferr

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cottand/nform/util"
)

// Errors is a nil-safe bag of diagnostics
type Errors struct {
	errs []NfError
}

func (r *Errors) With(err ...NfError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil {
		return r
	}
	if len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []NfError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// Messages renders every diagnostic in r, pointing into source
func (r *Errors) Messages(source string) []string {
	return slices.Collect(util.MapIter(slices.Values(r.Errors()), func(e NfError) string {
		return FormatWithSource(e, source)
	}))
}

func (r *Errors) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(r.Errors()))
	for i, e := range r.Errors() {
		attrs = append(attrs, slog.Group(fmt.Sprint("e", i),
			"code", int(e.Code()),
			"offset", int(e.Pos()),
			"msg", e.Error(),
		))
	}
	return slog.GroupValue(attrs...)
}
