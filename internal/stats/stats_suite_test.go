package stats_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"shufflelab/internal/deck"
	"shufflelab/internal/shuffle"
	"shufflelab/internal/stats"
)

func TestStats(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Stats Suite")
}

var _ = Describe("Store", func() {
	var (
		store    *stats.Store
		original deck.Deck
		shuffled deck.Deck
	)

	BeforeEach(func() {
		store = stats.NewStore("exchange", "riffle")

		var err error
		original, err = deck.New(10)
		Expect(err).NotTo(HaveOccurred())
		shuffled, err = shuffle.NewExchange().Shuffle(original, shuffle.NewSource(3))
		Expect(err).NotTo(HaveOccurred())
	})

	It("initializes zeroed records", func() {
		st, ok := store.Get("exchange")
		Expect(ok).To(BeTrue())
		Expect(st.ShuffleCount).To(BeZero())
		Expect(st.AverageStepCount).To(BeZero())
		Expect(st.RandomnessScore).To(BeZero())
		Expect(st.ExecutionTimes).To(BeEmpty())
	})

	It("rejects updates for unregistered algorithms", func() {
		err := store.Update("bogosort", original, shuffled, 1.0, 5)
		Expect(err).To(MatchError(deck.ErrInvalidInput))
	})

	It("keeps unweighted running means over all samples", func() {
		stepCounts := []int{10, 20, 60}
		for i, sc := range stepCounts {
			err := store.Update("exchange", original, shuffled, float64(i+1), sc)
			Expect(err).NotTo(HaveOccurred())
		}

		st, _ := store.Get("exchange")
		Expect(st.ShuffleCount).To(Equal(3))
		Expect(st.AverageStepCount).To(BeNumerically("~", 30.0, 1e-9))
		Expect(st.ExecutionTimes).To(Equal([]float64{1, 2, 3}))

		// Identical decks every time, so the running mean equals the
		// single-sample score.
		single := store
		single.Clear()
		Expect(single.Update("exchange", original, shuffled, 1, 1)).To(Succeed())
		one, _ := single.Get("exchange")
		Expect(st.RandomnessScore).To(BeNumerically("~", one.RandomnessScore, 1e-9))
	})

	It("clears every algorithm at once", func() {
		Expect(store.Update("exchange", original, shuffled, 1, 5)).To(Succeed())
		Expect(store.Update("riffle", original, shuffled, 2, 7)).To(Succeed())

		store.Clear()

		for _, name := range []string{"exchange", "riffle"} {
			st, _ := store.Get(name)
			Expect(st.ShuffleCount).To(BeZero())
			Expect(st.ExecutionTimes).To(BeEmpty())
		}
	})

	It("returns copies that do not alias internal state", func() {
		Expect(store.Update("exchange", original, shuffled, 1, 5)).To(Succeed())
		st, _ := store.Get("exchange")
		st.ExecutionTimes[0] = 999

		fresh, _ := store.Get("exchange")
		Expect(fresh.ExecutionTimes[0]).To(Equal(1.0))
	})

	It("round-trips through a snapshot", func() {
		Expect(store.Update("exchange", original, shuffled, 1, 5)).To(Succeed())

		rebuilt := stats.FromList(store.All())
		st, ok := rebuilt.Get("exchange")
		Expect(ok).To(BeTrue())
		Expect(st.ShuffleCount).To(Equal(1))
	})
})

var _ = Describe("Compare", func() {
	mk := func(name string, score, avgSteps float64, times ...float64) stats.Stats {
		return stats.Stats{
			Algorithm:        name,
			RandomnessScore:  score,
			AverageStepCount: avgSteps,
			ExecutionTimes:   times,
		}
	}

	It("picks the higher randomness score", func() {
		c := stats.Compare(mk("a", 90, 50, 1), mk("b", 70, 50, 1))
		Expect(c.Randomness).To(Equal("a"))

		c = stats.Compare(mk("a", 70, 50, 1), mk("b", 90, 50, 1))
		Expect(c.Randomness).To(Equal("b"))
	})

	It("picks the lower mean execution time and step count", func() {
		c := stats.Compare(mk("a", 50, 40, 2, 4), mk("b", 50, 60, 1, 1))
		Expect(c.Speed).To(Equal("b"))
		Expect(c.StepCount).To(Equal("a"))
	})

	It("awards ties to the first argument", func() {
		c := stats.Compare(mk("a", 80, 30, 2), mk("b", 80, 30, 2))
		Expect(c.Randomness).To(Equal("a"))
		Expect(c.Speed).To(Equal("a"))
		Expect(c.StepCount).To(Equal("a"))
	})
})
