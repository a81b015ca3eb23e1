package fwchart

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/gob"
	"io"
	"strconv"
)

func init() {
	gob.Register(&Sample{})
}

// A Decoder decodes a Sample and returns an error in case of failure.
type Decoder func(*Sample) error

// A DecoderFactory constructs a new Decoder from a given io.Reader.
type DecoderFactory func(io.Reader) Decoder

// DecoderFor automatically detects the encoding of the first few
// bytes in the given io.Reader and then returns the corresponding
// Decoder or nil in case of failing to detect a supported encoding.
func DecoderFor(r io.Reader) Decoder {
	var buf bytes.Buffer
	for _, dec := range []DecoderFactory{
		NewDecoder,
		NewJSONDecoder,
		NewCSVDecoder,
	} {
		rd := io.MultiReader(bytes.NewReader(buf.Bytes()), io.TeeReader(r, &buf))
		if err := dec(rd).Decode(&Sample{}); err == nil {
			return dec(io.MultiReader(&buf, r))
		}
	}
	return nil
}

// NewRoundRobinDecoder returns a new Decoder that round robins across
// the given Decoders on every invocation or decoding error.
func NewRoundRobinDecoder(dec ...Decoder) Decoder {
	// Optimization for single Decoder case.
	if len(dec) == 1 {
		return dec[0]
	}

	var seq uint64
	return func(s *Sample) (err error) {
		for range dec {
			robin := seq % uint64(len(dec))
			seq++
			if err = dec[robin].Decode(s); err != nil {
				continue
			}
			return nil
		}
		return err
	}
}

// NewDecoder returns a new gob Decoder for the given io.Reader.
func NewDecoder(rd io.Reader) Decoder {
	dec := gob.NewDecoder(rd)
	return func(s *Sample) error { return dec.Decode(s) }
}

// Decode is an adapter method calling the Decoder function itself
// with the given parameters.
func (dec Decoder) Decode(s *Sample) error { return dec(s) }

// An Encoder encodes a Sample and returns an error in case of failure.
type Encoder func(*Sample) error

// NewEncoder returns a new gob Encoder for the given io.Writer.
func NewEncoder(w io.Writer) Encoder {
	enc := gob.NewEncoder(w)
	return func(s *Sample) error { return enc.Encode(s) }
}

// Encode is an adapter method calling the Encoder function itself
// with the given parameters.
func (enc Encoder) Encode(s *Sample) error { return enc(s) }

// NewCSVEncoder returns an Encoder that dumps the given *Sample as a
// CSV record with columns x, y.
func NewCSVEncoder(w io.Writer) Encoder {
	enc := csv.NewWriter(w)
	return func(s *Sample) error {
		err := enc.Write([]string{
			strconv.FormatFloat(s.X, 'f', -1, 64),
			strconv.FormatFloat(s.Y, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
		enc.Flush()
		return enc.Error()
	}
}

// NewCSVDecoder returns a Decoder that decodes CSV encoded Samples.
func NewCSVDecoder(r io.Reader) Decoder {
	dec := csv.NewReader(r)
	dec.FieldsPerRecord = 2
	dec.TrimLeadingSpace = true

	return func(s *Sample) error {
		rec, err := dec.Read()
		if err != nil {
			return err
		}
		if s.X, err = strconv.ParseFloat(rec[0], 64); err != nil {
			return err
		}
		s.Y, err = strconv.ParseFloat(rec[1], 64)
		return err
	}
}

// NewJSONDecoder returns a Decoder that decodes newline delimited
// JSON encoded Samples.
func NewJSONDecoder(r io.Reader) Decoder {
	rd := bufio.NewReader(r)
	return func(s *Sample) (err error) {
		var line []byte
		if line, err = rd.ReadBytes('\n'); err != nil && len(line) == 0 {
			return err
		}
		return s.UnmarshalJSON(line)
	}
}

// NewJSONEncoder returns an Encoder that encodes Samples as newline
// delimited JSON.
func NewJSONEncoder(w io.Writer) Encoder {
	var buf bytes.Buffer
	return func(s *Sample) error {
		buf.Reset()
		data, err := s.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
		_, err = w.Write(buf.Bytes())
		return err
	}
}

// ReadSeries drains the given Decoder into a Series ordered by X.
func ReadSeries(dec Decoder) (Series, error) {
	var s Series
	for {
		var p Sample
		if err := dec.Decode(&p); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		s = append(s, p)
	}
	s.Sort()
	return s, nil
}
