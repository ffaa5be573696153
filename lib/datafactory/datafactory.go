// Package datafactory provides the datapoint lists the suites iterate over:
// valid and invalid entity names, sync plan dates and intervals
package datafactory

import (
	"strings"
	"time"

	"github.com/satelliteqe/robotest/lib/constants"
	"github.com/satelliteqe/robotest/lib/faux"

	"github.com/gravitational/trace"
)

// Factory generates datapoints
type Factory struct {
	// OneDatapoint reduces every list to a single random element
	OneDatapoint bool
	gen          *faux.Generator
}

// New returns a datapoint factory
func New(gen *faux.Generator, oneDatapoint bool) *Factory {
	if gen == nil {
		gen = faux.Default()
	}
	return &Factory{OneDatapoint: oneDatapoint, gen: gen}
}

// Generator returns the random generator backing this factory
func (f *Factory) Generator() *faux.Generator {
	return f.gen
}

// ValidDataList returns one string of every character class
func (f *Factory) ValidDataList() []string {
	values := []string{
		f.gen.MustString(faux.Alpha, f.gen.Integer(1, 255)),
		f.gen.MustString(faux.Alphanumeric, f.gen.Integer(1, 255)),
		f.gen.MustString(faux.CJK, f.gen.Integer(1, 85)),
		f.gen.MustString(faux.HTML, f.gen.Integer(20, 85)),
		f.gen.MustString(faux.Latin1, f.gen.Integer(1, 85)),
		f.gen.MustString(faux.Numeric, f.gen.Integer(1, 255)),
		f.gen.MustString(faux.UTF8, f.gen.Integer(1, 85)),
	}
	return f.filter(values)
}

// InvalidNamesList returns strings which are too long to be entity names
func (f *Factory) InvalidNamesList() []string {
	return f.filter(f.longStrings())
}

// InvalidValuesList returns invalid name values: the empty string, whitespace
// and strings too long to be accepted.
// The empty string is omitted for the UI which disables submission instead
func (f *Factory) InvalidValuesList(iface string) []string {
	var values []string
	if iface != constants.InterfaceUI {
		values = append(values, "")
	}
	values = append(values, " ", "\t")
	values = append(values, f.longStrings()...)
	return f.filter(values)
}

// GenerateStringsList returns one string of length runes for every character
// class except the excluded ones. html is left out when length is below
// faux.MinHTMLLength
func (f *Factory) GenerateStringsList(length int, exclude ...faux.Kind) ([]string, error) {
	var values []string
	for _, kind := range faux.Kinds {
		if hasKind(exclude, kind) {
			continue
		}
		if kind == faux.HTML && length < faux.MinHTMLLength {
			continue
		}
		value, err := f.gen.String(kind, length)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		values = append(values, value)
	}
	return f.filter(values), nil
}

// ValidSyncDates returns sync dates relative to now: now itself, the near
// and far future and the recent past
func (f *Factory) ValidSyncDates(now time.Time) []time.Time {
	dates := []time.Time{
		now,
		now.Add(5 * time.Minute),
		now.Add(5 * 24 * time.Hour),
		now.Add(-24 * time.Hour),
		now.Add(-5 * time.Minute),
	}
	if f.OneDatapoint {
		return dates[f.gen.Integer(0, len(dates)-1):][:1]
	}
	return dates
}

// ValidSyncIntervals returns all sync plan intervals
func (f *Factory) ValidSyncIntervals() []string {
	return f.filter(append([]string(nil), constants.SyncIntervals...))
}

// InvalidSyncIntervals returns interval values the server rejects
func (f *Factory) InvalidSyncIntervals() []string {
	values := []string{"", " ", "yearly", strings.ToUpper(constants.SyncIntervalDay)}
	values = append(values, f.ValidDataList()...)
	return f.filter(values)
}

func (f *Factory) longStrings() []string {
	return []string{
		f.gen.MustString(faux.Alpha, 300),
		f.gen.MustString(faux.Alphanumeric, 300),
		f.gen.MustString(faux.CJK, 300),
		f.gen.MustString(faux.HTML, 300),
		f.gen.MustString(faux.Latin1, 300),
		f.gen.MustString(faux.Numeric, 300),
		f.gen.MustString(faux.UTF8, 300),
	}
}

// filter reduces values to a single random element in one-datapoint mode
func (f *Factory) filter(values []string) []string {
	if !f.OneDatapoint || len(values) < 2 {
		return values
	}
	value, _ := f.gen.Choice(values)
	return []string{value}
}

func hasKind(kinds []faux.Kind, kind faux.Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
