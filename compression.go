package flight

import (
	"bytes"
	"fmt"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Compression encodes and decodes snapshot blocks. Name identifies the
// codec inside a snapshot header so a load picks the right one.
type Compression interface {
	Name() string
	Encode(data []byte) []byte
	Decode(data []byte) ([]byte, error)
}

// resolves the codec recorded in a snapshot header
func compressionByName(name string) (Compression, error) {
	switch name {
	case "none":
		return NewNoCompression(), nil
	case "snappy":
		return NewSnappyCompression(), nil
	case "lz4":
		return NewLZ4Compression(), nil
	case "zstd":
		return NewZstdCompression(), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", name)
	}
}

type NoCompression struct{}

func NewNoCompression() *NoCompression {
	return &NoCompression{}
}

func (c *NoCompression) Name() string {
	return "none"
}

func (c *NoCompression) Encode(data []byte) []byte {
	return data
}

func (c *NoCompression) Decode(data []byte) ([]byte, error) {
	return data, nil
}

type SnappyCompression struct{}

func NewSnappyCompression() *SnappyCompression {
	return &SnappyCompression{}
}

func (c *SnappyCompression) Name() string {
	return "snappy"
}

func (c *SnappyCompression) Encode(data []byte) []byte {
	return snappy.Encode([]byte{}, data)
}

func (c *SnappyCompression) Decode(data []byte) ([]byte, error) {
	res, err := snappy.Decode([]byte{}, data)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type LZ4Compression struct{}

func NewLZ4Compression() *LZ4Compression {
	return &LZ4Compression{}
}

func (c *LZ4Compression) Name() string {
	return "lz4"
}

func (c *LZ4Compression) Encode(data []byte) []byte {
	var b bytes.Buffer
	w := lz4.NewWriter(&b)
	w.Write(data)
	w.Close()
	return b.Bytes()
}

func (c *LZ4Compression) Decode(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewZstdCompression() *ZstdCompression {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder}
}

func (c *ZstdCompression) Name() string {
	return "zstd"
}

func (c *ZstdCompression) Encode(data []byte) []byte {
	return c.encoder.EncodeAll(data, nil)
}

func (c *ZstdCompression) Decode(data []byte) ([]byte, error) {
	return c.decoder.DecodeAll(data, nil)
}
