package flagutil

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"

	fwchart "github.com/desweemerl/fwchart/lib"
)

// A File implements the flag.Value interface for an *os.File.
type File struct {
	*os.File
	Mode  os.FileMode
	Flags int
}

// Set parses the given value as filename to open with the defined
// Mode and Flags.
func (f *File) Set(value string) (err error) {
	var file *os.File
	switch value {
	case "stdin":
		file = os.Stdin
	case "stdout":
		file = os.Stdout
	default:
		file, err = os.OpenFile(value, f.Flags, f.Mode)
	}
	*(f.File) = *file
	return
}

// String returns the filename of the file.
func (f File) String() string { return f.Name() }

// A Domain implements the flag.Value interface for a fwchart.Domain.
// Accepted forms are "auto", "min:max", "min:" and ":max".
type Domain struct{ Domain *fwchart.Domain }

// Set parses the given value as a domain specification.
func (d *Domain) Set(value string) error {
	*d.Domain = fwchart.AutoDomain()
	if value == "" || value == "auto" {
		return nil
	}

	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("domain %q has a wrong format", value)
	}
	for i, bound := range []*float64{&d.Domain.Min, &d.Domain.Max} {
		if strings.TrimSpace(parts[i]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return fmt.Errorf("domain %q: %w", value, err)
		}
		*bound = v
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (d Domain) String() string {
	if d.Domain == nil || d.Domain.Auto() {
		return "auto"
	}
	var min, max string
	if !math.IsNaN(d.Domain.Min) {
		min = strconv.FormatFloat(d.Domain.Min, 'f', -1, 64)
	}
	if !math.IsNaN(d.Domain.Max) {
		max = strconv.FormatFloat(d.Domain.Max, 'f', -1, 64)
	}
	return min + ":" + max
}

// A Size implements the flag.Value interface for a byte count with
// human readable units, e.g. "100MB".
type Size struct{ Bytes *int64 }

// Set parses the given value as a byte size.
func (s *Size) Set(value string) error {
	var sz datasize.ByteSize
	if err := sz.UnmarshalText([]byte(value)); err != nil {
		return err
	}
	*s.Bytes = int64(sz.Bytes())
	return nil
}

// String implements the fmt.Stringer interface.
func (s Size) String() string {
	if s.Bytes == nil {
		return ""
	}
	return datasize.ByteSize(*s.Bytes).HumanReadable()
}

// A StringList implements the flag.Value interface for a comma
// separated list of strings.
type StringList struct{ List *[]string }

// Set parses the given value as a comma separated list of values.
func (f *StringList) Set(value string) error {
	*(f.List) = strings.Split(value, ",")
	return nil
}

// String implements the fmt.Stringer interface.
func (f StringList) String() string {
	if f.List == nil {
		return ""
	}
	return strings.Join((*f.List), ",")
}
