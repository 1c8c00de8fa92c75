package cli

import (
	"github.com/amercer/tally/internal/domain"
	"github.com/spf13/pflag"
)

// filterValue adapts domain.TimeFilter to the pflag.Value interface so
// commands can take a validated --filter flag.
type filterValue struct {
	filter *domain.TimeFilter
}

var _ pflag.Value = (*filterValue)(nil)

func newFilterValue(target *domain.TimeFilter, def domain.TimeFilter) *filterValue {
	*target = def
	return &filterValue{filter: target}
}

func (f *filterValue) String() string { return string(*f.filter) }

func (f *filterValue) Set(s string) error {
	parsed, err := domain.ParseTimeFilter(s)
	if err != nil {
		return err
	}
	*f.filter = parsed
	return nil
}

func (f *filterValue) Type() string { return "filter" }

// defaultFilter resolves the starting filter from config, falling back
// to All when unset or unparseable.
func defaultFilter(app *App) domain.TimeFilter {
	if app.Config == nil {
		return domain.FilterAll
	}
	f, err := domain.ParseTimeFilter(app.Config.DefaultFilter)
	if err != nil {
		return domain.FilterAll
	}
	return f
}
