// Package catalog keeps a small set of named lists of one record
// type, and moves each of them to and from record files.
package catalog

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/recordkit/reclist/dt"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
)

// MaxLists is the number of named lists a catalog can hold.
const MaxLists = 10

// Option configures a Catalog.
type Option func(*settings)

type settings struct {
	logger   *zap.Logger
	format   recfile.Format
	capacity int
}

// WithLogger sets the logger used to report list lifecycle events.
func WithLogger(logger *zap.Logger) Option { return func(s *settings) { s.logger = logger } }

// WithFormat sets the file format used by Save and Load.
func WithFormat(format recfile.Format) Option { return func(s *settings) { s.format = format } }

// WithCapacity sets the node budget for every list the catalog
// creates or loads.
func WithCapacity(n int) Option { return func(s *settings) { s.capacity = n } }

// Catalog holds up to MaxLists named lists sharing a topology and a
// codec. Catalogs are not safe for concurrent use.
type Catalog[T any] struct {
	topology dt.Topology
	codec    recfile.Codec[T]
	conf     settings
	lists    map[string]*dt.List[T]
	order    []string
}

// New returns an empty catalog whose lists use the given topology
// and are persisted with codec.
func New[T any](topology dt.Topology, codec recfile.Codec[T], opts ...Option) *Catalog[T] {
	c := &Catalog[T]{
		topology: topology,
		codec:    codec,
		lists:    map[string]*dt.List[T]{},
	}
	for _, opt := range opts {
		opt(&c.conf)
	}
	if c.conf.logger == nil {
		c.conf.logger = zap.NewNop()
	}
	c.conf.logger = c.conf.logger.With(zap.Stringer("topology", topology))
	return c
}

// Len returns the number of named lists.
func (c *Catalog[T]) Len() int { return len(c.order) }

// Names returns the list names in creation order.
func (c *Catalog[T]) Names() []string { return slices.Clone(c.order) }

// Topology returns the topology of the catalog's lists.
func (c *Catalog[T]) Topology() dt.Topology { return c.topology }

// Create adds an empty list under name.
func (c *Catalog[T]) Create(name string) (*dt.List[T], error) {
	if err := c.admit(name); err != nil {
		return nil, err
	}

	list := c.newList()
	c.insert(name, list)
	c.conf.logger.Debug("created list", zap.String("list", name))
	return list, nil
}

// Get returns the list stored under name.
func (c *Catalog[T]) Get(name string) (*dt.List[T], error) {
	list, ok := c.lists[name]
	if !ok {
		return nil, fmt.Errorf("list %q: %w", name, ers.ErrNotFound)
	}
	return list, nil
}

// Drop destroys the list stored under name and forgets it.
func (c *Catalog[T]) Drop(name string) error {
	list, err := c.Get(name)
	if err != nil {
		return err
	}

	list.Destroy()
	delete(c.lists, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
	c.conf.logger.Debug("dropped list", zap.String("list", name))
	return nil
}

// Save persists the named list to path.
func (c *Catalog[T]) Save(name, path string) (int, error) {
	list, err := c.Get(name)
	if err != nil {
		return 0, err
	}

	n, err := recfile.Save(path, list, c.codec, c.conf.format)
	if err != nil {
		c.conf.logger.Warn("save failed", zap.String("list", name), zap.String("path", path), zap.Int("records", n), zap.Error(err))
		return n, err
	}

	c.conf.logger.Info("saved list", zap.String("list", name), zap.String("path", path), zap.Int("records", n))
	return n, nil
}

// Load reads path into the list stored under name, replacing its
// contents, or into a new list when the name is unused. On failure
// the catalog is unchanged.
func (c *Catalog[T]) Load(name, path string) (*dt.List[T], error) {
	_, exists := c.lists[name]
	if !exists {
		if err := c.admit(name); err != nil {
			return nil, err
		}
	}

	list := c.newList()
	n, err := recfile.LoadInto(path, list, c.codec, c.conf.format)
	if err != nil {
		list.Destroy()
		c.conf.logger.Warn("load failed", zap.String("list", name), zap.String("path", path), zap.Error(err))
		return nil, err
	}

	if exists {
		c.lists[name].Destroy()
		c.lists[name] = list
	} else {
		c.insert(name, list)
	}

	c.conf.logger.Info("loaded list", zap.String("list", name), zap.String("path", path), zap.Int("records", n))
	return list, nil
}

// Open is Load, except that a missing file yields a new empty list
// under name.
func (c *Catalog[T]) Open(name, path string) (*dt.List[T], error) {
	list, err := c.Load(name, path)
	if ers.Is(err, ers.ErrNotFound) {
		if existing, ok := c.lists[name]; ok {
			return existing, nil
		}
		return c.Create(name)
	}
	return list, err
}

func (c *Catalog[T]) admit(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty list name: %w", ers.ErrInvalidInput)
	case c.lists[name] != nil:
		return fmt.Errorf("list %q already exists: %w", name, ers.ErrInvalidInput)
	case len(c.order) >= MaxLists:
		return fmt.Errorf("catalog holds %d lists: %w", MaxLists, ers.ErrLimitExceeded)
	}
	return nil
}

func (c *Catalog[T]) insert(name string, list *dt.List[T]) {
	c.lists[name] = list
	c.order = append(c.order, name)
}

func (c *Catalog[T]) newList() *dt.List[T] {
	return dt.New[T](c.topology).SetCapacity(c.conf.capacity)
}
