package collection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/conduit/internal/client/client"
	"github.com/dmitrijs2005/conduit/internal/logging"
)

// DefaultPageSize is used when a collection is created with page size 0.
const DefaultPageSize = 10

// Unpaged puts every item the fetcher returns on a single page.
const Unpaged = -1

var (
	ErrNotMounted     = errors.New("collection has not been loaded yet")
	ErrPageOutOfRange = errors.New("page out of range")
	ErrItemNotFound   = errors.New("item is not on the current page")
)

type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Offset is the number of items before page. Pages start at 1.
func Offset(page, size int) int {
	if page < 1 || size <= 0 {
		return 0
	}
	return (page - 1) * size
}

// TotalPages is ceil(total/size); 0 when there is nothing to show. A
// non-positive size means everything fits on one page.
func TotalPages(total, size int) int {
	if total <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Fetcher loads one page for filter. It returns the page items and the total
// number of items matching filter.
type Fetcher[F comparable, T any] func(ctx context.Context, filter F, limit, offset int) ([]T, int, error)

// State is a snapshot of a collection. Items is never shared with the
// synchronizer.
type State[T any] struct {
	Status   Status
	Items    []T
	Total    int
	Page     int
	PageSize int
	Err      error
}

func (s State[T]) Pages() int {
	return TotalPages(s.Total, s.PageSize)
}

// Message renders Err as a single display line.
func (s State[T]) Message() string {
	if s.Err == nil {
		return ""
	}
	return strings.Join(client.Messages(s.Err), "; ")
}

// Synchronizer holds one page of a remote collection selected by a filter
// of type F.
type Synchronizer[F comparable, T any] struct {
	fetch  Fetcher[F, T]
	key    func(T) string
	logger logging.Logger

	mu        sync.Mutex
	filter    F
	mounted   bool
	gen       uint64
	state     State[T]
	observers []func(State[T])
}

// NewSynchronizer builds an idle synchronizer. key identifies an item for
// Replace and Remove. pageSize 0 selects DefaultPageSize; Unpaged disables
// paging.
func NewSynchronizer[F comparable, T any](fetch Fetcher[F, T], key func(T) string, pageSize int, logger logging.Logger) *Synchronizer[F, T] {
	switch {
	case pageSize == 0:
		pageSize = DefaultPageSize
	case pageSize < 0:
		pageSize = 0
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Synchronizer[F, T]{
		fetch:  fetch,
		key:    key,
		logger: logger,
		state:  State[T]{Status: Idle, Page: 1, PageSize: pageSize},
	}
}

// OnChange registers fn to be called with a snapshot after every state
// change.
func (s *Synchronizer[F, T]) OnChange(fn func(State[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Synchronizer[F, T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Filter returns the active filter and whether the collection was mounted.
func (s *Synchronizer[F, T]) Filter() (F, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter, s.mounted
}

// Mount performs the initial load for filter at page 1.
func (s *Synchronizer[F, T]) Mount(ctx context.Context, filter F) error {
	return s.load(ctx, func() error {
		s.filter = filter
		s.mounted = true
		s.state.Page = 1
		return nil
	})
}

// SetFilter switches to filter and refetches. A different filter always
// starts again from page 1.
func (s *Synchronizer[F, T]) SetFilter(ctx context.Context, filter F) error {
	return s.load(ctx, func() error {
		if !s.mounted || s.filter != filter {
			s.state.Page = 1
		}
		s.filter = filter
		s.mounted = true
		return nil
	})
}

// SetPage selects page under the current filter and refetches.
func (s *Synchronizer[F, T]) SetPage(ctx context.Context, page int) error {
	return s.load(ctx, func() error {
		if !s.mounted {
			return ErrNotMounted
		}
		if page < 1 {
			return fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
		}
		if pages := s.state.Pages(); s.state.Status == Loaded && pages > 0 && page > pages {
			return fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, page, pages)
		}
		s.state.Page = page
		return nil
	})
}

// Reload refetches the current filter and page.
func (s *Synchronizer[F, T]) Reload(ctx context.Context) error {
	return s.load(ctx, func() error {
		if !s.mounted {
			return ErrNotMounted
		}
		return nil
	})
}

// request is one fetch started by begin.
type request[F comparable] struct {
	gen    uint64
	filter F
	page   int
	size   int
}

// begin must be called with mu held. It enters Loading and returns the
// fetch to run.
func (s *Synchronizer[F, T]) begin() request[F] {
	s.gen++
	s.state.Status = Loading
	s.state.Err = nil
	return request[F]{gen: s.gen, filter: s.filter, page: s.state.Page, size: s.state.PageSize}
}

// load applies change under the lock, enters Loading and fetches. The
// result is applied only if no other load started in the meantime; a
// superseded load returns nil.
func (s *Synchronizer[F, T]) load(ctx context.Context, change func() error) error {
	s.mu.Lock()
	if err := change(); err != nil {
		s.mu.Unlock()
		return err
	}
	req := s.begin()
	loading := s.snapshot()
	observers := s.observers
	s.mu.Unlock()

	emit(observers, loading)
	return s.run(ctx, req, true)
}

// run fetches req and applies the result. When the total shrank below the
// requested page and clamp is set, the last page is fetched instead.
func (s *Synchronizer[F, T]) run(ctx context.Context, req request[F], clamp bool) error {
	items, total, err := s.fetch(ctx, req.filter, req.size, Offset(req.page, req.size))

	s.mu.Lock()
	if req.gen != s.gen {
		s.mu.Unlock()
		s.logger.Debug(ctx, "discarding superseded result", "filter", fmt.Sprint(req.filter), "page", req.page)
		return nil
	}
	if pages := TotalPages(total, req.size); err == nil && clamp && total > 0 && req.page > pages {
		s.state.Page = pages
		next := s.begin()
		s.mu.Unlock()
		s.logger.Debug(ctx, "page out of range, moving to last page", "page", req.page, "pages", pages)
		return s.run(ctx, next, false)
	}
	if err != nil {
		s.state = State[T]{Status: Failed, Page: req.page, PageSize: req.size, Err: err}
	} else {
		s.state = State[T]{Status: Loaded, Items: items, Total: total, Page: req.page, PageSize: req.size}
	}
	done := s.snapshot()
	observers := s.observers
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn(ctx, "load failed", "filter", fmt.Sprint(req.filter), "page", req.page, "error", err)
	} else {
		s.logger.Debug(ctx, "loaded", "filter", fmt.Sprint(req.filter), "page", req.page, "items", len(items), "total", total)
	}
	emit(observers, done)
	return err
}

// Find returns the item with key k from the current page.
func (s *Synchronizer[F, T]) Find(k string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(k); i >= 0 {
		return s.state.Items[i], true
	}
	var zero T
	return zero, false
}

// Replace swaps the item with key k for item. Total and page are left as
// they are. It reports whether k was on the page.
func (s *Synchronizer[F, T]) Replace(k string, item T) bool {
	return s.patch(func() bool { return s.replaceLocked(k, item) })
}

// Prepend puts item at the head of the page and counts it in the total. An
// item already on the page is replaced instead.
func (s *Synchronizer[F, T]) Prepend(item T) bool {
	return s.patch(func() bool { return s.prependLocked(item) })
}

// Remove drops the item with key k and uncounts it from the total. If that
// leaves the page empty while other items remain, the page is refetched,
// stepping back when it no longer exists.
func (s *Synchronizer[F, T]) Remove(ctx context.Context, k string) (bool, error) {
	if !s.patch(func() bool { return s.removeLocked(k) }) {
		return false, nil
	}
	return true, s.settle(ctx)
}

// prependFor is Prepend restricted to the collection mounted with filter.
func (s *Synchronizer[F, T]) prependFor(filter F, item T) bool {
	return s.patch(func() bool { return s.mountedWith(filter) && s.prependLocked(item) })
}

// removeFor is Remove restricted to the collection mounted with filter.
func (s *Synchronizer[F, T]) removeFor(ctx context.Context, filter F, k string) (bool, error) {
	if !s.patch(func() bool { return s.mountedWith(filter) && s.removeLocked(k) }) {
		return false, nil
	}
	return true, s.settle(ctx)
}

// settle refetches when the current page is empty but the collection is
// not, keeping (page-1)*size below the total.
func (s *Synchronizer[F, T]) settle(ctx context.Context) error {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()
	if st.Status != Loaded || len(st.Items) > 0 || st.Total <= 0 {
		return nil
	}
	return s.load(ctx, func() error {
		s.state.Page = max(min(s.state.Page, s.state.Pages()), 1)
		return nil
	})
}

func (s *Synchronizer[F, T]) mountedWith(filter F) bool {
	return s.mounted && s.filter == filter
}

func (s *Synchronizer[F, T]) replaceLocked(k string, item T) bool {
	i := s.index(k)
	if i < 0 {
		return false
	}
	items := append([]T(nil), s.state.Items...)
	items[i] = item
	s.state.Items = items
	return true
}

func (s *Synchronizer[F, T]) prependLocked(item T) bool {
	if s.state.Status != Loaded {
		return false
	}
	if s.replaceLocked(s.key(item), item) {
		return true
	}
	items := make([]T, 0, len(s.state.Items)+1)
	items = append(items, item)
	s.state.Items = append(items, s.state.Items...)
	s.state.Total++
	return true
}

func (s *Synchronizer[F, T]) removeLocked(k string) bool {
	i := s.index(k)
	if i < 0 {
		return false
	}
	items := make([]T, 0, len(s.state.Items)-1)
	items = append(items, s.state.Items[:i]...)
	s.state.Items = append(items, s.state.Items[i+1:]...)
	if s.state.Total > 0 {
		s.state.Total--
	}
	return true
}

// patch runs fn under the lock and notifies observers if it changed
// anything.
func (s *Synchronizer[F, T]) patch(fn func() bool) bool {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return false
	}
	snap := s.snapshot()
	observers := s.observers
	s.mu.Unlock()

	emit(observers, snap)
	return true
}

// index must be called with mu held.
func (s *Synchronizer[F, T]) index(k string) int {
	for i, it := range s.state.Items {
		if s.key(it) == k {
			return i
		}
	}
	return -1
}

// snapshot must be called with mu held.
func (s *Synchronizer[F, T]) snapshot() State[T] {
	st := s.state
	st.Items = append([]T(nil), s.state.Items...)
	return st
}

func emit[T any](observers []func(State[T]), st State[T]) {
	for _, fn := range observers {
		fn(st)
	}
}
