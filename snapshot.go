package flight

import (
	"bufio"
	"bytes"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// SaveSnapshot writes every stored flight to the file at [path] as one
// compressed block of packed rows behind a small header naming the
// codec and the row count
func (i *FlightDatabase) SaveSnapshot(path string) error {
	var block bytes.Buffer
	count := 0

	itr := i.flights.Entries().GetIterator()
	for itr.MoveNext() {
		if err := itr.GetCurrent().GetValue().PackFlight(&block); err != nil {
			return err
		}
		count++
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := msgpack.NewEncoder(writer)

	if err := encoder.EncodeString(i.option.compression.Name()); err != nil {
		return err
	}
	if err := encoder.EncodeInt(int64(count)); err != nil {
		return err
	}
	if err := encoder.EncodeBytes(i.option.compression.Encode(block.Bytes())); err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	i.logger.Printf("snapshot saved to %s: %d flights, codec %s", path, count, i.option.compression.Name())

	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot and adds every
// flight in it. Flights already stored under the same key are skipped
// the same way AddFlight skips them.
func (i *FlightDatabase) LoadSnapshot(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := msgpack.NewDecoder(bufio.NewReader(file))

	name, err := decoder.DecodeString()
	if err != nil {
		return err
	}

	codec, err := compressionByName(name)
	if err != nil {
		return err
	}

	count, err := decoder.DecodeInt()
	if err != nil {
		return err
	}

	compressed, err := decoder.DecodeBytes()
	if err != nil {
		return err
	}

	block, err := codec.Decode(compressed)
	if err != nil {
		return err
	}

	reader := bytes.NewReader(block)
	for j := 0; j < count; j++ {
		flight, err := ReadFlightFrom(reader)
		if err != nil {
			return err
		}
		i.AddFlight(flight)
	}

	i.logger.Printf("snapshot loaded from %s: %d flights, codec %s", path, count, name)

	return nil
}
