// Package report bulk loads a dataset into the hashtab containers and
// collects their timings and metrics.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/homier/hashtab"
	"github.com/homier/hashtab/internal/dataset"
)

const (
	MissingTitle = "Nonexistent Title XYZ123"
	MissingISBN  = int64(999999999)
)

type Lookup struct {
	Key      string
	Found    bool
	Value    string
	Duration time.Duration
}

type Container struct {
	Name         string
	LoadDuration time.Duration
	Stats        hashtab.Stats

	// Hit is nil when the dataset had nothing to look up.
	Hit  *Lookup
	Miss Lookup
}

type Report struct {
	Titles int
	Pairs  int

	Set Container
	Map Container
}

// Build loads the titles into a ProbingSet and the normalised pairs into a
// ChainingMap, both sized up front for their input, and times one present
// and one absent lookup on each.
func Build(ds dataset.Dataset) (*Report, error) {
	r := &Report{
		Titles: len(ds.Titles),
		Pairs:  len(ds.Pairs),
	}

	set, err := buildSet(ds.Titles)
	if err != nil {
		return nil, err
	}
	r.Set = set

	r.Map = buildMap(ds.Pairs)

	return r, nil
}

func buildSet(titles []string) (Container, error) {
	c := Container{Name: "ProbingSet"}

	start := time.Now()
	ps := hashtab.NewSet(hashtab.CapacityFor(len(titles)))
	for _, title := range titles {
		if _, err := ps.Put(title); err != nil {
			return Container{}, fmt.Errorf("put %q: %w", title, err)
		}
	}
	c.LoadDuration = time.Since(start)
	c.Stats = ps.Stats()

	contains := func(key string) Lookup {
		start := time.Now()
		found := ps.Contains(key)

		return Lookup{Key: key, Found: found, Duration: time.Since(start)}
	}

	if len(titles) > 0 {
		hit := contains(titles[0])
		c.Hit = &hit
	}
	c.Miss = contains(MissingTitle)

	return c, nil
}

func buildMap(pairs []dataset.Pair) Container {
	c := Container{Name: "ChainingMap"}

	start := time.Now()
	cm := hashtab.NewMap(hashtab.CapacityFor(len(pairs)))
	for _, p := range pairs {
		cm.Add(dataset.NormalizeISBN(p.ISBN), p.Title)
	}
	c.LoadDuration = time.Since(start)
	c.Stats = cm.Stats()

	get := func(key int64) Lookup {
		start := time.Now()
		value, found := cm.Get(key)

		return Lookup{
			Key:      strconv.FormatInt(key, 10),
			Found:    found,
			Value:    value,
			Duration: time.Since(start),
		}
	}

	if len(pairs) > 0 {
		hit := get(dataset.NormalizeISBN(pairs[0].ISBN))
		c.Hit = &hit
	}
	c.Miss = get(MissingISBN)

	return c
}

// Print writes the report in a human-readable form.
func (r *Report) Print(w io.Writer) error {
	p := &printer{w: w}

	p.printf("Dataset: %d titles, %d ISBN-title pairs\n", r.Titles, r.Pairs)

	p.printf("\n=== METRICS ===\n")
	for _, c := range []Container{r.Set, r.Map} {
		p.printf("%s:\n", c.Name)
		p.printf("  - load time: %.4f s\n", c.LoadDuration.Seconds())
		p.printf("  - collisions: %d\n", c.Stats.Collisions)
		p.printf("  - footprint: %d bytes\n", c.Stats.Footprint)
		p.printf("  - entries: %d\n", c.Stats.Size)
		p.printf("  - capacity: %d\n", c.Stats.Capacity)
		p.printf("  - load factor: %.2f\n", c.Stats.LoadFactor)
	}

	p.printf("\n=== LOOKUPS ===\n")
	for _, c := range []Container{r.Set, r.Map} {
		if c.Hit != nil {
			p.lookup(c.Name, "existing", *c.Hit)
		}
		p.lookup(c.Name, "missing", c.Miss)
	}

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) lookup(name, kind string, l Lookup) {
	p.printf("%s %s key %q: %.6f s - found: %t", name, kind, l.Key, l.Duration.Seconds(), l.Found)
	if l.Value != "" {
		p.printf(" - value: %q", l.Value)
	}
	p.printf("\n")
}
