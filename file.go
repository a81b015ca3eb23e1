package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	fwchart "github.com/desweemerl/fwchart/lib"
)

func file(name string) (*os.File, error) {
	switch name {
	case "stdin":
		return os.Stdin, nil
	default:
		return os.Open(name)
	}
}

// decoder opens every input file and combines them into one Decoder,
// sniffing each file's encoding. maxBytes > 0 caps the bytes read per
// input.
func decoder(files []string, maxBytes int64) (fwchart.Decoder, io.Closer, error) {
	closer := make(multiCloser, 0, len(files))
	decs := make([]fwchart.Decoder, 0, len(files))
	for _, f := range files {
		rc, err := file(f)
		if err != nil {
			return nil, closer, err
		}
		closer = append(closer, rc)

		var r io.Reader = rc
		if maxBytes > 0 {
			r = io.LimitReader(rc, maxBytes)
		}

		dec := fwchart.DecoderFor(r)
		if dec == nil {
			return nil, closer, fmt.Errorf("decode: can't detect encoding of %q", f)
		}
		decs = append(decs, dec)
	}
	return fwchart.NewRoundRobinDecoder(decs...), closer, nil
}

// readSeries drains the given inputs into a single sorted Series.
func readSeries(files []string, maxBytes int64) (fwchart.Series, error) {
	dec, mc, err := decoder(files, maxBytes)
	defer mc.Close()
	if err != nil {
		return nil, err
	}
	return fwchart.ReadSeries(dec)
}

type multiCloser []io.Closer

func (mc multiCloser) Close() error {
	var errs []string
	for _, c := range mc {
		if err := c.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}
