package audio

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// PCM is interleaved signed 16-bit audio.
type PCM struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Frames is the number of samples per channel.
func (p *PCM) Frames() int {
	if p.Channels == 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// Seconds is the playing time of p.
func (p *PCM) Seconds() float64 {
	if p.SampleRate == 0 {
		return 0
	}
	return float64(p.Frames()) / float64(p.SampleRate)
}

type riffHeader struct {
	ID   [4]byte
	Size uint32
	Form [4]byte
}

type chunkHeader struct {
	ID   [4]byte
	Size uint32
}

type fmtChunk struct {
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

const wavePCM = 1

// DecodeWAV reads an uncompressed 16-bit RIFF/WAVE stream. Unknown chunks
// are skipped.
func DecodeWAV(r io.Reader) (*PCM, error) {
	var h riffHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "read riff header")
	}
	if string(h.ID[:]) != "RIFF" || string(h.Form[:]) != "WAVE" {
		return nil, errors.Wrap(ErrUnsupportedFormat, "not a RIFF/WAVE stream")
	}

	var format *fmtChunk
	for {
		var c chunkHeader
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.Wrap(ErrUnsupportedFormat, "no data chunk")
			}
			return nil, errors.Wrap(err, "read chunk header")
		}
		switch string(c.ID[:]) {
		case "fmt ":
			var f fmtChunk
			if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
				return nil, errors.Wrap(err, "read fmt chunk")
			}
			if f.Format != wavePCM || f.BitsPerSample != 16 || f.Channels == 0 {
				return nil, errors.Wrapf(ErrUnsupportedFormat, "wav format %d, %d bits, %d channels", f.Format, f.BitsPerSample, f.Channels)
			}
			if err := skip(r, int64(c.Size)-16); err != nil {
				return nil, err
			}
			format = &f
		case "data":
			if format == nil {
				return nil, errors.Wrap(ErrUnsupportedFormat, "data chunk before fmt chunk")
			}
			samples := make([]int16, c.Size/2)
			if err := binary.Read(r, binary.LittleEndian, samples); err != nil {
				return nil, errors.Wrap(err, "read samples")
			}
			return &PCM{SampleRate: int(format.SampleRate), Channels: int(format.Channels), Samples: samples}, nil
		default:
			if err := skip(r, int64(c.Size)+int64(c.Size&1)); err != nil {
				return nil, err
			}
		}
	}
}

// EncodeWAV writes p as a 16-bit PCM RIFF/WAVE stream.
func EncodeWAV(w io.Writer, p *PCM) error {
	data := uint32(len(p.Samples) * 2)
	parts := []any{
		riffHeader{ID: [4]byte{'R', 'I', 'F', 'F'}, Size: 4 + 8 + 16 + 8 + data, Form: [4]byte{'W', 'A', 'V', 'E'}},
		chunkHeader{ID: [4]byte{'f', 'm', 't', ' '}, Size: 16},
		fmtChunk{
			Format:        wavePCM,
			Channels:      uint16(p.Channels),
			SampleRate:    uint32(p.SampleRate),
			ByteRate:      uint32(p.SampleRate * p.Channels * 2),
			BlockAlign:    uint16(p.Channels * 2),
			BitsPerSample: 16,
		},
		chunkHeader{ID: [4]byte{'d', 'a', 't', 'a'}, Size: data},
		p.Samples,
	}
	for _, v := range parts {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return errors.Wrap(err, "write wav")
		}
	}
	return nil
}

func skip(r io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return errors.Wrap(err, "skip chunk")
	}
	return nil
}
