// This file has been modified from the original generated code to make it work with
// type aliases jsonSample and jsonPoint so that the methods aren't exposed in the
// public types.
package fwchart

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

type jsonSample Sample

func (out *jsonSample) decode(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "x":
			out.X = float64(in.Float64())
		case "y":
			out.Y = float64(in.Float64())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func (in jsonSample) encode(out *jwriter.Writer) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"x\":"
		if first {
			first = false
			out.RawString(prefix[1:])
		} else {
			out.RawString(prefix)
		}
		out.Float64(float64(in.X))
	}
	{
		const prefix string = ",\"y\":"
		if first {
			first = false
			out.RawString(prefix[1:])
		} else {
			out.RawString(prefix)
		}
		out.Float64(float64(in.Y))
	}
	out.RawByte('}')
}

// MarshalJSON implements the json.Marshaler interface.
func (s Sample) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	jsonSample(s).encode(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Sample) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	(*jsonSample)(s).decode(&r)
	return r.Error()
}

type jsonPoint Point

func (out *jsonPoint) decode(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "x":
			out.X = float64(in.Float64())
		case "y":
			out.Y = float64(in.Float64())
		case "pixel_x":
			out.PixelX = float64(in.Float64())
		case "pixel_y":
			out.PixelY = float64(in.Float64())
		case "is_artifact":
			out.IsArtifact = bool(in.Bool())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func (in jsonPoint) encode(out *jwriter.Writer) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"x\":"
		if first {
			first = false
			out.RawString(prefix[1:])
		} else {
			out.RawString(prefix)
		}
		out.Float64(float64(in.X))
	}
	{
		const prefix string = ",\"y\":"
		if first {
			first = false
			out.RawString(prefix[1:])
		} else {
			out.RawString(prefix)
		}
		out.Float64(float64(in.Y))
	}
	{
		const prefix string = ",\"pixel_x\":"
		if first {
			first = false
			out.RawString(prefix[1:])
		} else {
			out.RawString(prefix)
		}
		out.Float64(float64(in.PixelX))
	}
	{
		const prefix string = ",\"pixel_y\":"
		if first {
			first = false
			out.RawString(prefix[1:])
		} else {
			out.RawString(prefix)
		}
		out.Float64(float64(in.PixelY))
	}
	if in.IsArtifact {
		const prefix string = ",\"is_artifact\":"
		if first {
			first = false
			out.RawString(prefix[1:])
		} else {
			out.RawString(prefix)
		}
		out.Bool(bool(in.IsArtifact))
	}
	out.RawByte('}')
}

// MarshalJSON implements the json.Marshaler interface.
func (p Point) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	jsonPoint(p).encode(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Point) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	(*jsonPoint)(p).decode(&r)
	return r.Error()
}
