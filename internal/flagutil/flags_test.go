package flagutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	fwchart "github.com/desweemerl/fwchart/lib"
)

func TestFile_Set(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "out.txt")
	dst := new(os.File)
	f := File{File: dst, Flags: os.O_WRONLY | os.O_TRUNC | os.O_CREATE, Mode: 0666}
	if err := f.Set(name); err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), name; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if _, err := dst.WriteString("ticks"); err != nil {
		t.Fatal(err)
	}
	if err := dst.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "ticks"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFile_SetStd(t *testing.T) {
	t.Parallel()

	for value, want := range map[string]*os.File{
		"stdin":  os.Stdin,
		"stdout": os.Stdout,
	} {
		dst := new(os.File)
		f := File{File: dst}
		if err := f.Set(value); err != nil {
			t.Fatal(err)
		}
		if got := f.String(); got != want.Name() {
			t.Errorf("%q: got %q, want %q", value, got, want.Name())
		}
	}
}

func TestDomain_Set(t *testing.T) {
	t.Parallel()

	for value, want := range map[string]struct{ min, max float64 }{
		"auto":  {math.NaN(), math.NaN()},
		"":      {math.NaN(), math.NaN()},
		"1:2":   {1, 2},
		"-5:":   {-5, math.NaN()},
		":10.5": {math.NaN(), 10.5},
	} {
		var d fwchart.Domain
		f := Domain{Domain: &d}
		if err := f.Set(value); err != nil {
			t.Fatalf("%q: %v", value, err)
		}
		if !eqOrNaN(d.Min, want.min) || !eqOrNaN(d.Max, want.max) {
			t.Errorf("%q: got %+v, want [%v, %v]", value, d, want.min, want.max)
		}
	}

	for _, value := range []string{"1", "a:b", "1:2:3"} {
		var d fwchart.Domain
		f := Domain{Domain: &d}
		if err := f.Set(value); err == nil {
			t.Errorf("%q: got nil error", value)
		}
	}
}

func TestDomain_String(t *testing.T) {
	t.Parallel()

	d := fwchart.Domain{Min: 1, Max: 2}
	if got, want := (Domain{Domain: &d}).String(), "1:2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	auto := fwchart.AutoDomain()
	if got, want := (Domain{Domain: &auto}).String(), "auto"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	half := fwchart.Domain{Min: math.NaN(), Max: 5}
	if got, want := (Domain{Domain: &half}).String(), ":5"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSize_Set(t *testing.T) {
	t.Parallel()

	var bytes int64
	s := Size{Bytes: &bytes}
	if err := s.Set("2KB"); err != nil {
		t.Fatal(err)
	}
	if got, want := bytes, int64(2048); got != want {
		t.Errorf("got %d, want %d", got, want)
	}
	if err := s.Set("bogus"); err == nil {
		t.Error("bogus size: got nil error")
	}
}

func TestStringList_Set(t *testing.T) {
	t.Parallel()

	var list []string
	f := StringList{List: &list}
	if err := f.Set("a,b,c"); err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0] != "a" || list[2] != "c" {
		t.Errorf("got %v", list)
	}
	if got, want := f.String(), "a,b,c"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func eqOrNaN(got, want float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	return got == want
}
