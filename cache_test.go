package boundcache_test

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/emmaagwu/boundcache"
)

// recorder collects evicted keys in order.
type recorder struct {
	mu   sync.Mutex
	keys []string
}

func (r *recorder) evicted(key string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = append(r.keys, key)
}

func (r *recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.keys...)
}

func newCache(policy boundcache.Policy, capacity int, r *recorder) *boundcache.Cache[string, int] {
	return boundcache.New[string, int](
		boundcache.WithPolicy(policy),
		boundcache.WithCapacity(capacity),
		boundcache.WithEvictionHandler(r.evicted),
	)
}

var _ = Describe("eviction order", func() {
	type step func(c *boundcache.Cache[string, int])

	put := func(key string, value int) step {
		return func(c *boundcache.Cache[string, int]) {
			c.Put(key, value)
		}
	}

	get := func(key string) step {
		return func(c *boundcache.Cache[string, int]) {
			_, ok := c.Get(key)
			Expect(ok).To(BeTrue())
		}
	}

	DescribeTable(
		"a single overflow evicts the policy's victim",
		func(policy boundcache.Policy, capacity int, steps []step, evicted string, present []string) {
			r := &recorder{}
			c := newCache(policy, capacity, r)

			for _, s := range steps {
				s(c)
			}

			Expect(r.Keys()).To(Equal([]string{evicted}))
			Expect(c.Keys()).To(ConsistOf(present))
			Expect(c.Len()).To(Equal(capacity))
		},
		Entry("FIFO", boundcache.FIFO, 4,
			[]step{put("A", 1), put("B", 2), put("C", 3), put("D", 4), put("E", 5)},
			"A", []string{"B", "C", "D", "E"},
		),
		Entry("LIFO", boundcache.LIFO, 4,
			[]step{put("A", 1), put("B", 2), put("C", 3), put("D", 4), put("E", 5)},
			"D", []string{"A", "B", "C", "E"},
		),
		Entry("LRU", boundcache.LRU, 2,
			[]step{put("A", 1), put("B", 2), get("A"), put("C", 3)},
			"B", []string{"A", "C"},
		),
		Entry("MRU", boundcache.MRU, 2,
			[]step{put("A", 1), put("B", 2), get("A"), put("C", 3)},
			"A", []string{"B", "C"},
		),
		Entry("LFU", boundcache.LFU, 2,
			[]step{put("A", 1), put("B", 2), get("A"), get("A"), put("C", 3)},
			"B", []string{"A", "C"},
		),
		Entry("LFU tie evicts the least recently touched", boundcache.LFU, 2,
			[]step{put("A", 1), put("B", 2), get("B"), get("A"), put("C", 3)},
			"B", []string{"A", "C"},
		),
		Entry("LFU update counts as a use", boundcache.LFU, 2,
			[]step{put("A", 1), put("B", 2), put("A", 10), put("C", 3)},
			"B", []string{"A", "C"},
		),
		Entry("LRU update counts as a use", boundcache.LRU, 2,
			[]step{put("A", 1), put("B", 2), put("A", 10), put("C", 3)},
			"B", []string{"A", "C"},
		),
		Entry("FIFO get does not reorder", boundcache.FIFO, 2,
			[]step{put("A", 1), put("B", 2), get("A"), put("C", 3)},
			"A", []string{"B", "C"},
		),
		Entry("LIFO update keeps the insertion position", boundcache.LIFO, 2,
			[]step{put("A", 1), put("B", 2), put("A", 10), put("C", 3)},
			"B", []string{"A", "C"},
		),
	)

	Specify("FIFO keeps evicting in insertion order", func() {
		r := &recorder{}
		c := newCache(boundcache.FIFO, 4, r)

		for i, k := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			c.Put(k, i)
		}

		Expect(r.Keys()).To(Equal([]string{"A", "B", "C"}))
		Expect(c.Keys()).To(Equal([]string{"D", "E", "F", "G"}))
	})

	Specify("LIFO keeps evicting the newest key", func() {
		r := &recorder{}
		c := newCache(boundcache.LIFO, 4, r)

		for i, k := range []string{"A", "B", "C", "D", "E", "F"} {
			c.Put(k, i)
		}

		Expect(r.Keys()).To(Equal([]string{"D", "E"}))
		Expect(c.Keys()).To(ConsistOf("A", "B", "C", "F"))
	})

	Specify("LFU evicts by count then by recency", func() {
		r := &recorder{}
		c := newCache(boundcache.LFU, 3, r)

		c.Put("A", 1)
		c.Put("B", 2)
		c.Put("C", 3)
		c.Get("A")
		c.Get("A")
		c.Get("B")
		c.Get("C")

		// A=3, B=2, C=2 with C touched after B.
		c.Put("D", 4)
		Expect(r.Keys()).To(Equal([]string{"B"}))

		// D=1 is now the minimum.
		c.Put("E", 5)
		Expect(r.Keys()).To(Equal([]string{"B", "D"}))
		Expect(c.Keys()).To(Equal([]string{"E", "C", "A"}))
	})
})

var _ = Describe("cache invariants", func() {
	DescribeTable(
		"random operations",
		func(policy boundcache.Policy) {
			const capacity = 4

			r := &recorder{}
			c := newCache(policy, capacity, r)
			rng := rand.New(rand.NewSource(1))
			inserted := map[string]bool{}

			for i := 0; i < 1000; i++ {
				key := fmt.Sprint(rng.Intn(10))

				if rng.Intn(2) == 0 {
					before := c.Len()
					existed := c.Exists(key)
					evictedBefore := len(r.Keys())

					c.Put(key, i)

					inserted[key] = true
					value, ok := c.Get(key)
					Expect(ok).To(BeTrue())
					Expect(value).To(Equal(i))

					if existed {
						Expect(c.Len()).To(Equal(before), "re-insertion never changes the count")
						Expect(r.Keys()).To(HaveLen(evictedBefore), "re-insertion never evicts")
					}
				} else {
					c.Get(key)
				}

				Expect(c.Len()).To(BeNumerically("<=", capacity))
				Expect(c.Keys()).To(HaveLen(c.Len()))
			}

			// Every key ever inserted is either present or was reported evicted.
			evicted := map[string]bool{}
			for _, k := range r.Keys() {
				evicted[k] = true
			}
			for k := range inserted {
				Expect(c.Exists(k) || evicted[k]).To(BeTrue())
			}
		},
		Entry("FIFO", boundcache.FIFO),
		Entry("LIFO", boundcache.LIFO),
		Entry("LRU", boundcache.LRU),
		Entry("MRU", boundcache.MRU),
		Entry("LFU", boundcache.LFU),
	)

	When("the key is absent", func() {
		Specify("get returns absent and does not mutate", func() {
			r := &recorder{}
			c := newCache(boundcache.LFU, 2, r)
			c.Put("A", 1)

			for i := 0; i < 3; i++ {
				value, ok := c.Get("missing")
				Expect(ok).To(BeFalse())
				Expect(value).To(BeZero())
			}

			Expect(c.Len()).To(Equal(1))
			Expect(c.Keys()).To(Equal([]string{"A"}))
			Expect(r.Keys()).To(BeEmpty())
		})
	})

	When("the key or value is nil", func() {
		Specify("put is ignored", func() {
			var evictions int
			c := boundcache.New[any, *int](
				boundcache.WithCapacity(1),
				boundcache.WithEvictionHandler(func(any, *int) {
					evictions++
				}),
			)

			one := 1
			c.Put("A", &one)
			c.Put(nil, &one)
			c.Put("B", nil)

			Expect(c.Len()).To(Equal(1))
			Expect(evictions).To(BeZero())

			value, ok := c.Get("A")
			Expect(ok).To(BeTrue())
			Expect(*value).To(Equal(1))

			_, ok = c.Get(nil)
			Expect(ok).To(BeFalse())
			Expect(c.Exists(nil)).To(BeFalse())
		})

		Specify("interface values are judged by what they hold", func() {
			c := boundcache.New[string, any](boundcache.WithCapacity(4))

			var nilPtr *int
			var nilMap map[string]int
			c.Put("ptr", nilPtr)
			c.Put("map", nilMap)
			c.Put("iface", nil)
			Expect(c.Len()).To(BeZero())

			c.Put("err", errors.New("boom"))
			c.Put("zero", 0)
			Expect(c.Keys()).To(ConsistOf("err", "zero"))
		})
	})

	When("the value exists", func() {
		Specify("it is overwritten", func() {
			c := boundcache.New[string, string]()

			c.Put("key", "value")
			c.Put("key", "newValue")
			Expect(c.Len()).To(Equal(1))

			value, ok := c.Get("key")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("newValue"))
		})

		DescribeTable("an update keeps the insertion position",
			func(policy boundcache.Policy, victim string) {
				r := &recorder{}
				c := newCache(policy, 2, r)

				c.Put("A", 1)
				c.Put("B", 2)
				c.Put("A", 10)
				c.Put("C", 3)

				Expect(r.Keys()).To(Equal([]string{victim}))
			},
			Entry("FIFO still evicts the first insert", boundcache.FIFO, "A"),
			Entry("LIFO still evicts the last insert", boundcache.LIFO, "B"),
		)
	})
})

var _ = Describe("reading without a use", func() {
	Specify("peek and range do not change the LRU order", func() {
		r := &recorder{}
		c := newCache(boundcache.LRU, 2, r)
		c.Put("A", 1)
		c.Put("B", 2)

		value, ok := c.Peek("A")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(1))
		Expect(c.Exists("A")).To(BeTrue())

		var seen []string
		c.Range(func(key string, _ int) bool {
			seen = append(seen, key)
			return true
		})
		Expect(seen).To(Equal([]string{"A", "B"}))

		c.Put("C", 3)
		Expect(r.Keys()).To(Equal([]string{"A"}))
	})

	Specify("range stops when f returns false", func() {
		c := boundcache.New[int, int](boundcache.WithCapacity(3))
		c.Put(1, 1)
		c.Put(2, 2)
		c.Put(3, 3)

		var seen []int
		c.Range(func(key, _ int) bool {
			seen = append(seen, key)
			return len(seen) < 2
		})
		Expect(seen).To(Equal([]int{1, 2}))
	})
})

var _ = Describe("eviction notifications", func() {
	Specify("the logger receives a DISCARD event", func() {
		var buf bytes.Buffer
		c := boundcache.New[string, int](
			boundcache.WithCapacity(1),
			boundcache.WithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)),
		)

		c.Put("A", 1)
		Expect(buf.String()).To(BeEmpty())

		c.Put("B", 2)
		Expect(buf.String()).To(ContainSubstring(`"message":"DISCARD"`))
		Expect(buf.String()).To(ContainSubstring(`"key":"A"`))
		Expect(buf.String()).To(ContainSubstring(`"policy":"fifo"`))
	})

	Specify("inserts and updates are logged at debug level", func() {
		var buf bytes.Buffer
		c := boundcache.New[string, int](
			boundcache.WithCapacity(1),
			boundcache.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
		)

		c.Put("A", 1)
		Expect(buf.String()).To(ContainSubstring(`"level":"debug"`))
		Expect(buf.String()).To(ContainSubstring(`"message":"insert"`))
		Expect(buf.String()).To(ContainSubstring(`"key":"A"`))
		Expect(buf.String()).NotTo(ContainSubstring(`"message":"update"`))

		buf.Reset()
		c.Put("A", 2)
		Expect(buf.String()).To(ContainSubstring(`"message":"update"`))
		Expect(buf.String()).NotTo(ContainSubstring(`"message":"insert"`))
		Expect(buf.String()).NotTo(ContainSubstring("DISCARD"))

		buf.Reset()
		c.Put("B", 3)
		Expect(buf.String()).To(ContainSubstring(`"message":"insert"`))
		Expect(buf.String()).To(ContainSubstring(`"message":"DISCARD"`))
	})

	Specify("the handler may use the cache", func() {
		var c *boundcache.Cache[string, int]
		var called bool

		c = boundcache.New[string, int](
			boundcache.WithCapacity(2),
			boundcache.WithEvictionHandler(func(key string, _ int) {
				_, ok := c.Get(key)
				Expect(ok).To(BeFalse())
				called = true
			}),
		)

		c.Put("A", 1)
		c.Put("B", 2)
		c.Put("C", 3)
		Expect(called).To(BeTrue())
	})

	Specify("concurrent puts report every eviction once", func() {
		r := &recorder{}
		c := newCache(boundcache.LRU, 8, r)

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			g := g
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for i := 0; i < 100; i++ {
					c.Put(fmt.Sprintf("%d-%d", g, i), i)
				}
			}()
		}
		wg.Wait()

		Expect(c.Len()).To(Equal(8))
		Expect(r.Keys()).To(HaveLen(800 - 8))
	})
})

var _ = Describe("configuration", func() {
	Specify("defaults", func() {
		c := boundcache.New[string, int]()
		Expect(c.Cap()).To(Equal(boundcache.DefaultCapacity))
		Expect(c.Policy()).To(Equal(boundcache.FIFO))
	})

	Specify("invalid options panic", func() {
		Expect(func() {
			boundcache.WithCapacity(0)
		}).To(Panic())

		Expect(func() {
			boundcache.New[string, int](boundcache.WithPolicy("random"))
		}).To(Panic())

		Expect(func() {
			boundcache.New[string, int](boundcache.WithEvictionHandler(func(int, int) {}))
		}).To(Panic())
	})

	DescribeTable(
		"parsing policy names",
		func(name string, expected boundcache.Policy, valid bool) {
			p, err := boundcache.ParsePolicy(name)
			if !valid {
				Expect(errors.Is(err, boundcache.ErrUnknownPolicy)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring(name))
				return
			}
			Expect(err).To(BeNil())
			Expect(p).To(Equal(expected))
		},
		Entry("empty", "", boundcache.FIFO, true),
		Entry("upper case", "LRU", boundcache.LRU, true),
		Entry("padded", " mru ", boundcache.MRU, true),
		Entry("lfu", "lfu", boundcache.LFU, true),
		Entry("unknown", "arc", boundcache.Policy(""), false),
	)
})
