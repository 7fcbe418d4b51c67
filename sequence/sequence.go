package sequence

import (
	"math"
	"strings"

	"github.com/sarchlab/dynseq/hooking"
	"github.com/sarchlab/dynseq/naming"
)

// DefaultCapacity is the capacity used when no positive capacity is given.
const DefaultCapacity = 4

const defaultName = "Sequence"

// HookPosInsert marks when a value is appended to the sequence.
var HookPosInsert = &hooking.HookPos{Name: "Seq Insert"}

// HookPosRemove marks when a value is removed from the sequence.
var HookPosRemove = &hooking.HookPos{Name: "Seq Remove"}

// HookPosResize marks when the backing store grows by one slot.
var HookPosResize = &hooking.HookPos{Name: "Seq Resize"}

// OpDetail is the hook detail of every sequence hook position. Length and
// Capacity are observed after the operation.
type OpDetail struct {
	Index    int
	Length   int
	Capacity int
}

// Sequence is a resizable array of text values.
type Sequence struct {
	hooking.HookableBase
	naming.NamedBase

	storage []string
	length  int
}

// New creates a sequence with the given capacity. A capacity that is not
// positive falls back to DefaultCapacity.
func New(capacity int) *Sequence {
	return MakeBuilder().WithCapacity(capacity).Build(defaultName)
}

// NewDefault creates a sequence with DefaultCapacity.
func NewDefault() *Sequence {
	return New(DefaultCapacity)
}

// FromSlice creates a sequence whose backing store is data itself. The
// sequence takes ownership of data: the slice is not copied, and the caller
// must not keep writing through it. An empty data behaves like NewDefault.
func FromSlice(data []string) *Sequence {
	return MakeBuilder().WithData(data).Build(defaultName)
}

// Len returns the number of slots in use.
func (s *Sequence) Len() int {
	return s.length
}

// Capacity returns the number of slots in the backing store.
func (s *Sequence) Capacity() int {
	return len(s.storage)
}

// Contains reports whether target is among the slots in use. The empty string
// is never contained.
func (s *Sequence) Contains(target string) bool {
	return s.IndexOf(target) >= 0
}

// IndexOf returns the index of the first slot in use that equals value, or -1
// if value is empty or not found.
func (s *Sequence) IndexOf(value string) int {
	if value == "" {
		return -1
	}

	for i := 0; i < s.length; i++ {
		if s.storage[i] == value {
			return i
		}
	}

	return -1
}

// Get returns the value in the slot at index. Any index inside the capacity
// is valid, including slots past the length, which hold "". The boolean is
// false if index is outside the capacity.
func (s *Sequence) Get(index int) (string, bool) {
	if index < 0 || index >= len(s.storage) {
		return "", false
	}

	return s.storage[index], true
}

// Remove takes the value at index out of the sequence, shifts the following
// values one slot to the left, and returns the removed value. It returns
// ("", false) without mutation if the sequence is empty or index is outside
// the capacity.
//
// An index inside the capacity but past the length is accepted: it removes
// nothing from the middle, yet the last slot in use is still cleared and the
// length still drops by one.
func (s *Sequence) Remove(index int) (string, bool) {
	if s.length == 0 || index < 0 || index >= len(s.storage) {
		return "", false
	}

	value := s.storage[index]
	s.storage[index] = ""

	if index < s.length {
		copy(s.storage[index:s.length-1], s.storage[index+1:s.length])
	}

	s.storage[s.length-1] = ""
	s.length--

	s.invokeHook(HookPosRemove, value, index)

	return value, true
}

// Delete is Remove without the removed value.
func (s *Sequence) Delete(index int) {
	s.Remove(index)
}

// Insert appends value after the last slot in use, growing the backing store
// by one slot if it is full. Inserting "" does nothing.
func (s *Sequence) Insert(value string) {
	if value == "" {
		return
	}

	if s.length == len(s.storage) {
		s.resize()
	}

	index := s.length
	s.storage[index] = value
	s.length++

	s.invokeHook(HookPosInsert, value, index)
}

// resize reallocates the backing store with exactly one more slot.
func (s *Sequence) resize() {
	grown := make([]string, len(s.storage)+1)
	copy(grown, s.storage)
	s.storage = grown

	s.invokeHook(HookPosResize, nil, len(s.storage)-1)
}

// Usage returns the length as a percentage of the capacity, rounded half away
// from zero to two decimal places.
func (s *Sequence) Usage() float64 {
	percent := float64(s.length) / float64(len(s.storage)) * 100

	return math.Round(percent*100) / 100
}

// String renders the slots in use as "[A, B, C]". An empty sequence renders
// as "[]".
func (s *Sequence) String() string {
	return "[" + strings.Join(s.storage[:s.length], ", ") + "]"
}

func (s *Sequence) invokeHook(pos *hooking.HookPos, item interface{}, index int) {
	if s.NumHooks() == 0 {
		return
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    pos,
		Item:   item,
		Detail: OpDetail{
			Index:    index,
			Length:   s.length,
			Capacity: len(s.storage),
		},
	})
}
