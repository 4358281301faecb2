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
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// PackFlight stores the flight to [writer] as a flat msgpack field
// stream, the same order ReadFlightFrom consumes
func (i *Flight) PackFlight(writer io.Writer) error {
	encoder := msgpack.NewEncoder(writer)

	if err := encoder.EncodeString(i.Origin); err != nil {
		return err
	}
	if err := encoder.EncodeString(i.Destination); err != nil {
		return err
	}
	if err := encoder.EncodeString(i.Date); err != nil {
		return err
	}
	if err := encoder.EncodeString(i.Time); err != nil {
		return err
	}
	if err := encoder.EncodeString(i.Number); err != nil {
		return err
	}
	if err := encoder.EncodeInt(int64(i.SeatsFirst)); err != nil {
		return err
	}
	if err := encoder.EncodeInt(int64(i.SeatsCoach)); err != nil {
		return err
	}
	if err := encoder.EncodeInt(int64(i.Duration)); err != nil {
		return err
	}
	return encoder.EncodeFloat64(i.Fare)
}

// parses a flight from a packed field stream
func ReadFlightFrom(reader io.Reader) (*Flight, error) {
	var (
		origin      string
		destination string
		date        string
		departure   string
		number      string
		seatsFirst  int
		seatsCoach  int
		duration    int64
		fare        float64

		err error
	)

	decoder := msgpack.NewDecoder(reader)

	origin, err = decoder.DecodeString()
	if err != nil {
		return nil, err
	}

	destination, err = decoder.DecodeString()
	if err != nil {
		return nil, err
	}

	date, err = decoder.DecodeString()
	if err != nil {
		return nil, err
	}

	departure, err = decoder.DecodeString()
	if err != nil {
		return nil, err
	}

	number, err = decoder.DecodeString()
	if err != nil {
		return nil, err
	}

	seatsFirst, err = decoder.DecodeInt()
	if err != nil {
		return nil, err
	}

	seatsCoach, err = decoder.DecodeInt()
	if err != nil {
		return nil, err
	}

	duration, err = decoder.DecodeInt64()
	if err != nil {
		return nil, err
	}

	fare, err = decoder.DecodeFloat64()
	if err != nil {
		return nil, err
	}

	return &Flight{
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Time:        departure,
		Number:      number,
		SeatsFirst:  seatsFirst,
		SeatsCoach:  seatsCoach,
		Duration:    time.Duration(duration),
		Fare:        fare,
	}, nil
}
