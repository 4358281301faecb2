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

// Iterator walks a finite sequence. MoveNext must return true before
// the first GetCurrent call.
type Iterator[V any] interface {
	MoveNext() bool
	GetCurrent() V
}

type IterableInterface[V any] interface {
	GetIterator() Iterator[V]
}

// EnhancedIterator adds collection helpers on top of any iterable
type EnhancedIterator[V any] struct {
	base IterableInterface[V]
}

// drains a fresh iterator into a slice
func (v EnhancedIterator[V]) ToList() []V {
	ary := make([]V, 0)
	itr := v.base.GetIterator()
	for itr.MoveNext() {
		ary = append(ary, itr.GetCurrent())
	}
	return ary
}

func (v EnhancedIterator[V]) Where(filter FilterCallback[V]) Iterable[V] {
	itr := Iterable[V]{
		recreaterCallback: func() Iterator[V] {
			return &FilterIterator[V]{
				itr:      v.base.GetIterator(),
				callback: filter,
				current:  nil,
			}
		},
	}
	itr.base = itr
	return itr
}

type FilterCallback[V any] func(a V) bool

type FilterIterator[V any] struct {
	itr      Iterator[V]
	callback FilterCallback[V]
	current  *V
}

func (i *FilterIterator[V]) MoveNext() bool {
	var cur V
	for i.itr.MoveNext() {
		cur = i.itr.GetCurrent()

		if i.callback(cur) {
			i.current = &cur
			return true
		}
	}
	return false
}

func (i *FilterIterator[V]) GetCurrent() V {
	if i.current == nil {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}
	return *i.current
}

type CreateIteratorCallback[V any] func() Iterator[V]

// Iterable is a restartable sequence: every GetIterator call recreates
// a fresh iterator over the same view of the backing data
type Iterable[V any] struct {
	EnhancedIterator[V]
	recreaterCallback CreateIteratorCallback[V]
}

func (i Iterable[V]) GetIterator() Iterator[V] {
	return i.recreaterCallback()
}
