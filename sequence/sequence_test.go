package sequence

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sequence", func() {
	var seq *Sequence

	BeforeEach(func() {
		seq = New(4)
	})

	Context("when newly created", func() {
		It("should have the requested capacity", func() {
			Expect(seq.Capacity()).To(Equal(4))
		})

		It("should be empty", func() {
			Expect(seq.Len()).To(Equal(0))
			Expect(seq.String()).To(Equal("[]"))
			Expect(seq.Usage()).To(Equal(0.0))
		})

		It("should fall back to the default capacity", func() {
			Expect(New(0).Capacity()).To(Equal(DefaultCapacity))
			Expect(New(-3).Capacity()).To(Equal(DefaultCapacity))
			Expect(NewDefault().Capacity()).To(Equal(DefaultCapacity))
		})

		It("should have the default name", func() {
			Expect(seq.Name()).To(Equal("Sequence"))
		})

		It("should refuse to remove", func() {
			v, ok := seq.Remove(0)
			Expect(ok).To(BeFalse())
			Expect(v).To(BeEmpty())
			Expect(seq.Len()).To(Equal(0))
		})

		It("should not contain the empty value", func() {
			Expect(seq.Contains("")).To(BeFalse())
			Expect(seq.IndexOf("")).To(Equal(-1))
		})
	})

	Context("when values are inserted", func() {
		BeforeEach(func() {
			seq.Insert("A")
			seq.Insert("B")
		})

		It("should append in order", func() {
			Expect(seq.Len()).To(Equal(2))
			Expect(seq.String()).To(Equal("[A, B]"))

			v, ok := seq.Get(1)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("B"))
		})

		It("should report half usage", func() {
			Expect(seq.Usage()).To(Equal(50.0))
		})

		It("should place a new unique value at the last index", func() {
			seq.Insert("C")
			Expect(seq.IndexOf("C")).To(Equal(seq.Len() - 1))
		})

		It("should ignore the empty value", func() {
			seq.Insert("")
			Expect(seq.Len()).To(Equal(2))
			Expect(seq.String()).To(Equal("[A, B]"))
		})

		It("should find values", func() {
			Expect(seq.Contains("A")).To(BeTrue())
			Expect(seq.Contains("Z")).To(BeFalse())
			Expect(seq.IndexOf("B")).To(Equal(1))
			Expect(seq.IndexOf("Z")).To(Equal(-1))
		})

		It("should return the first match", func() {
			seq.Insert("A")
			Expect(seq.IndexOf("A")).To(Equal(0))
		})

		It("should not contain the empty value next to empty slots", func() {
			Expect(seq.Contains("")).To(BeFalse())
		})

		It("should read slots past the length but inside the capacity", func() {
			v, ok := seq.Get(3)
			Expect(ok).To(BeTrue())
			Expect(v).To(BeEmpty())
		})

		It("should not read outside the capacity", func() {
			_, ok := seq.Get(4)
			Expect(ok).To(BeFalse())

			_, ok = seq.Get(-1)
			Expect(ok).To(BeFalse())
		})
	})

	Context("when the store is full", func() {
		BeforeEach(func() {
			for i := 0; i < 4; i++ {
				seq.Insert("V" + strconv.Itoa(i))
			}
		})

		It("should be fully used", func() {
			Expect(seq.Usage()).To(Equal(100.0))
		})

		It("should grow by exactly one slot", func() {
			seq.Insert("V4")

			Expect(seq.Capacity()).To(Equal(5))
			Expect(seq.Len()).To(Equal(5))
			Expect(seq.String()).To(Equal("[V0, V1, V2, V3, V4]"))
		})

		It("should grow by one slot per overflow", func() {
			for i := 4; i < 10; i++ {
				seq.Insert("V" + strconv.Itoa(i))
				Expect(seq.Capacity()).To(Equal(i + 1))
			}
		})

		It("should never shrink", func() {
			seq.Insert("V4")
			seq.Delete(0)
			seq.Delete(0)

			Expect(seq.Capacity()).To(Equal(5))
			Expect(seq.Len()).To(Equal(3))
		})
	})

	Context("when removing", func() {
		BeforeEach(func() {
			seq.Insert("A")
			seq.Insert("B")
			seq.Insert("C")
		})

		It("should shift the following values left", func() {
			v, ok := seq.Remove(0)

			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("A"))
			Expect(seq.Len()).To(Equal(2))
			Expect(seq.String()).To(Equal("[B, C]"))

			next, _ := seq.Get(0)
			Expect(next).To(Equal("B"))
		})

		It("should clear the previous last slot", func() {
			seq.Remove(1)

			last, ok := seq.Get(2)
			Expect(ok).To(BeTrue())
			Expect(last).To(BeEmpty())
		})

		It("should remove the last value", func() {
			v, ok := seq.Remove(2)

			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("C"))
			Expect(seq.String()).To(Equal("[A, B]"))
		})

		It("should not mutate on an index outside the capacity", func() {
			_, ok := seq.Remove(4)
			Expect(ok).To(BeFalse())

			_, ok = seq.Remove(-1)
			Expect(ok).To(BeFalse())

			Expect(seq.Len()).To(Equal(3))
			Expect(seq.String()).To(Equal("[A, B, C]"))
		})

		It("should drop the last value on an index past the length", func() {
			v, ok := seq.Remove(3)

			Expect(ok).To(BeTrue())
			Expect(v).To(BeEmpty())
			Expect(seq.Len()).To(Equal(2))
			Expect(seq.String()).To(Equal("[A, B]"))
		})

		It("should delete like remove", func() {
			seq.Delete(1)

			Expect(seq.Len()).To(Equal(2))
			Expect(seq.String()).To(Equal("[A, C]"))
		})

		It("should keep values consistent over mixed operations", func() {
			seq.Insert("D")
			seq.Insert("E")
			seq.Remove(1)
			seq.Insert("F")
			seq.Remove(0)

			expected := []string{"C", "D", "E", "F"}
			Expect(seq.Len()).To(Equal(len(expected)))
			for i, e := range expected {
				v, ok := seq.Get(i)
				Expect(ok).To(BeTrue())
				Expect(v).To(Equal(e))
			}
		})
	})

	Context("when built from a slice", func() {
		var data []string

		BeforeEach(func() {
			data = []string{"Java", "Python", "C", "C++", "Fortran"}
			seq = FromSlice(data)
		})

		It("should render the values", func() {
			Expect(seq.String()).To(Equal("[Java, Python, C, C++, Fortran]"))
		})

		It("should take the slice length as length and capacity", func() {
			Expect(seq.Len()).To(Equal(5))
			Expect(seq.Capacity()).To(Equal(5))
			Expect(seq.Usage()).To(Equal(100.0))
		})

		It("should find values", func() {
			Expect(seq.IndexOf("C")).To(Equal(2))
			Expect(seq.IndexOf("COBOL")).To(Equal(-1))
		})

		It("should share the backing store with the caller", func() {
			data[0] = "Go"
			v, _ := seq.Get(0)
			Expect(v).To(Equal("Go"))

			seq.Remove(0)
			Expect(data[0]).To(Equal("Python"))
			Expect(data[4]).To(BeEmpty())
		})

		It("should stop sharing after growing", func() {
			seq.Insert("Rust")
			data[0] = "Go"

			v, _ := seq.Get(0)
			Expect(v).To(Equal("Java"))
		})

		It("should treat empty slots as holes", func() {
			seq = FromSlice([]string{"A", "", "B"})

			Expect(seq.Len()).To(Equal(3))
			Expect(seq.Contains("")).To(BeFalse())
			Expect(seq.IndexOf("B")).To(Equal(2))
		})

		It("should fall back to the default on empty input", func() {
			Expect(FromSlice(nil).Capacity()).To(Equal(DefaultCapacity))
			Expect(FromSlice([]string{}).Len()).To(Equal(0))
		})
	})

	Context("when computing usage", func() {
		It("should round to two decimal places", func() {
			seq = New(3)
			seq.Insert("A")
			Expect(seq.Usage()).To(Equal(33.33))

			seq.Insert("B")
			Expect(seq.Usage()).To(Equal(66.67))
		})
	})
})
