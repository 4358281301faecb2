/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package flight

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/golang-collections/collections/stack"
	"github.com/google/uuid"
)

// FlightDatabase indexes flights by their (origin, destination, date,
// time) key over a single navigable sorted table. A bloom filter over
// the packed keys answers definite misses before the table is searched,
// and every successful booking lands on a history stack so it can be
// undone in reverse order.
type FlightDatabase struct {
	logger  *log.Logger
	option  *DatabaseOption
	flights NavigableMap[FlightKey, *Flight]
	filter  *bloom.BloomFilter
	history *stack.Stack
	id      string
}

// one undoable seat booking
type bookingRecord struct {
	key   FlightKey
	class CabinClass
}

func NewFlightDatabase(option *DatabaseOption) *FlightDatabase {
	if option == nil {
		option = NewDatabaseOption()
	}

	var id string
	if option.id != nil {
		id = *option.id
	} else {
		id = uuid.New().String()
	}

	db := &FlightDatabase{
		option:  option,
		flights: NewSortedTableMap[FlightKey, *Flight](CompareFlightKeys),
		filter:  bloom.NewWithEstimates(option.estimatedFlights, option.falsePositiveRate),
		history: stack.New(),
		id:      id,
	}

	if option.logger != nil {
		db.logger = option.logger
	} else {
		db.logger = log.New(os.Stderr, fmt.Sprintf("[%s] ", id), log.LstdFlags)
	}

	db.logger.Printf("flight database opened with id: %s on %s", id, time.Now().Format(time.RFC3339))

	return db
}

// getter for id
func (i *FlightDatabase) GetID() string {
	return i.id
}

// Returns the number of flights stored
func (i *FlightDatabase) GetSize() int {
	return i.flights.GetSize()
}

// AddFlight indexes [flight] under its key. A flight already stored
// under the same key is kept, the duplicate is logged and skipped.
func (i *FlightDatabase) AddFlight(flight *Flight) {
	key := flight.Key()

	if i.flights.Has(key) {
		i.logger.Printf("duplicate flight for %s, skipping addition", key)
		return
	}

	i.flights.Put(key, flight)
	i.filter.Add([]byte(key.String()))
}

// RemoveFlight drops the flight stored under the key, or returns
// ErrKeyNotFound. The membership filter keeps the stale key, it only
// ever over-approximates.
func (i *FlightDatabase) RemoveFlight(origin string, destination string, date string, departure string) error {
	return i.flights.Delete(FlightKey{Origin: origin, Destination: destination, Date: date, Time: departure})
}

// looks a flight up by key, the filter short-circuits definite misses
func (i *FlightDatabase) lookup(key FlightKey) (*Flight, error) {
	if !i.filter.Test([]byte(key.String())) {
		return nil, ErrKeyNotFound
	}
	return i.flights.Get(key)
}

// GetFlight returns the flight stored under the key, or ErrKeyNotFound
func (i *FlightDatabase) GetFlight(origin string, destination string, date string, departure string) (*Flight, error) {
	return i.lookup(FlightKey{Origin: origin, Destination: destination, Date: date, Time: departure})
}

// FindFlights returns the flights between [origin] and [destination]
// on [date] departing inside [timeStart, timeEnd], both ends included,
// in departure order. The scan is a bounded range walk from the first
// qualifying key, not a sweep of the whole table.
func (i *FlightDatabase) FindFlights(origin string, destination string, date string, timeStart string, timeEnd string) []*Flight {
	start := FlightKey{Origin: origin, Destination: destination, Date: date, Time: timeStart}
	stop := FlightKey{Origin: origin, Destination: destination, Date: date, Time: timeEnd}

	result := make([]*Flight, 0)
	itr := i.flights.Range(&start, nil).GetIterator()
	for itr.MoveNext() {
		entry := itr.GetCurrent()
		if CompareFlightKeys(entry.GetKey(), stop) > 0 {
			break
		}
		result = append(result, entry.GetValue())
	}

	return result
}

// WriteAllFlights prints one report line per stored flight to [w] in
// key order
func (i *FlightDatabase) WriteAllFlights(w io.Writer) {
	fmt.Fprintln(w, "All Flights in the Database:")

	itr := i.flights.Entries().GetIterator()
	for itr.MoveNext() {
		fmt.Fprintln(w, itr.GetCurrent().GetValue().String())
	}
}

// SeatAvailability returns the free seat count for the class on the
// flight stored under the key, or ErrKeyNotFound
func (i *FlightDatabase) SeatAvailability(origin string, destination string, date string, departure string, class CabinClass) (int, error) {
	flight, err := i.lookup(FlightKey{Origin: origin, Destination: destination, Date: date, Time: departure})
	if err != nil {
		return 0, err
	}
	return flight.SeatsAvailable(class), nil
}

// BookSeat takes one seat on the flight stored under the key. Returns
// false when the flight is absent, the class is unknown or the pool is
// empty. A successful booking is recorded for UndoLastBooking.
func (i *FlightDatabase) BookSeat(origin string, destination string, date string, departure string, class CabinClass) bool {
	key := FlightKey{Origin: origin, Destination: destination, Date: date, Time: departure}
	flight, err := i.lookup(key)
	if err != nil {
		return false
	}

	if !flight.Book(class) {
		return false
	}

	i.history.Push(bookingRecord{key: key, class: class})
	return true
}

// CancelBooking returns one seat to the pool on the flight stored
// under the key. Returns false when the flight is absent or the class
// is unknown.
func (i *FlightDatabase) CancelBooking(origin string, destination string, date string, departure string, class CabinClass) bool {
	flight, err := i.lookup(FlightKey{Origin: origin, Destination: destination, Date: date, Time: departure})
	if err != nil {
		return false
	}
	return flight.CancelBooking(class)
}

// UndoLastBooking reverts the most recent successful BookSeat. Returns
// false when there is nothing to undo or the flight has since been
// removed.
func (i *FlightDatabase) UndoLastBooking() bool {
	if i.history.Len() == 0 {
		return false
	}

	record := i.history.Pop().(bookingRecord)
	flight, err := i.lookup(record.key)
	if err != nil {
		return false
	}

	return flight.CancelBooking(record.class)
}

// FlightDuration returns the duration of the flight stored under the
// key, or ErrKeyNotFound
func (i *FlightDatabase) FlightDuration(origin string, destination string, date string, departure string) (time.Duration, error) {
	flight, err := i.lookup(FlightKey{Origin: origin, Destination: destination, Date: date, Time: departure})
	if err != nil {
		return 0, err
	}
	return flight.Duration, nil
}

// LoadFlightsFromCSV reads flight records from the file at [path] and
// adds each one. Records are origin, destination, date, time, number,
// first seats, coach seats, duration, fare.
func (i *FlightDatabase) LoadFlightsFromCSV(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		flight, err := parseFlightRecord(record)
		if err != nil {
			return err
		}

		i.AddFlight(flight)
	}

	return nil
}

// builds a flight from one CSV record
func parseFlightRecord(record []string) (*Flight, error) {
	if len(record) != 9 {
		return nil, fmt.Errorf("flight record has %d fields, want 9", len(record))
	}

	seatsFirst, err := strconv.Atoi(record[5])
	if err != nil {
		return nil, fmt.Errorf("flight %s: bad first class seat count %q: %w", record[4], record[5], err)
	}

	seatsCoach, err := strconv.Atoi(record[6])
	if err != nil {
		return nil, fmt.Errorf("flight %s: bad coach seat count %q: %w", record[4], record[6], err)
	}

	fare, err := strconv.ParseFloat(record[8], 64)
	if err != nil {
		return nil, fmt.Errorf("flight %s: bad fare %q: %w", record[4], record[8], err)
	}

	return NewFlight(record[0], record[1], record[2], record[3], record[4], seatsFirst, seatsCoach, record[7], fare)
}
