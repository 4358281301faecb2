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
	"log"
)

// DatabaseOption configures a FlightDatabase
type DatabaseOption struct {
	logger            *log.Logger
	id                *string
	compression       Compression
	estimatedFlights  uint
	falsePositiveRate float64
}

func NewDatabaseOption() *DatabaseOption {
	return &DatabaseOption{
		compression:       NewSnappyCompression(),
		estimatedFlights:  10 * 1000,
		falsePositiveRate: 0.01,
	}
}

// SetLogger replaces the default stderr logger
func (i *DatabaseOption) SetLogger(logger *log.Logger) {
	i.logger = logger
}

// SetID fixes the database identity instead of a generated one
func (i *DatabaseOption) SetID(id string) {
	i.id = &id
}

// SetCompression selects the snapshot codec
func (i *DatabaseOption) SetCompression(compression Compression) {
	i.compression = compression
}

// SetEstimatedFlights sizes the membership filter
func (i *DatabaseOption) SetEstimatedFlights(estimatedFlights uint) {
	i.estimatedFlights = estimatedFlights
}

// SetFalsePositiveRate tunes the membership filter accuracy
func (i *DatabaseOption) SetFalsePositiveRate(falsePositiveRate float64) {
	i.falsePositiveRate = falsePositiveRate
}
