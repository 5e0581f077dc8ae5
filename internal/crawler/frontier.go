package crawler

// Entry is a single unit of crawl work: an address awaiting fetch and the
// depth it was discovered at. Depth is assigned at enqueue time.
type Entry struct {
	// URL is the normalized address to fetch.
	URL string

	// Depth is the link distance from the seed at enqueue time.
	Depth int
}

// Frontier holds the queue of not-yet-fetched entries and the set of
// addresses ever enqueued. It owns deduplication: an address enters the
// visited set at most once, checked before enqueue, never after, so two
// links to the same address discovered in the same batch collapse even
// before either is fetched.
//
// Design decision: The frontier carries no mutex. It is owned exclusively
// by the crawl loop, which only touches it between batches, so locking
// would guard nothing. The page budget is enforced here at enqueue time
// rather than at dequeue, which bounds memory independent of how heavily
// pages link to each other.
type Frontier struct {
	// queue holds pending entries in strict insertion order.
	queue []Entry

	// visited tracks every address ever enqueued, including the seed.
	// Its size never exceeds the page budget.
	visited map[string]struct{}

	// budget is the hard cap on total addresses ever added.
	budget int

	// maxDepth is the deepest entry DequeueBatch will return.
	// Entries beyond it are discarded at dequeue.
	maxDepth int
}

// NewFrontier creates an empty frontier with the given page budget and
// maximum depth.
func NewFrontier(budget, maxDepth int) *Frontier {
	return &Frontier{
		queue:    make([]Entry, 0, budget),
		visited:  make(map[string]struct{}),
		budget:   budget,
		maxDepth: maxDepth,
	}
}

// Enqueue adds an entry if and only if the address has never been
// enqueued and the budget has not been reached. The address is marked
// visited immediately, not upon successful fetch. Returns true when the
// entry was accepted.
func (f *Frontier) Enqueue(addr string, depth int) bool {
	if _, seen := f.visited[addr]; seen {
		return false
	}
	if len(f.visited) >= f.budget {
		return false
	}

	f.visited[addr] = struct{}{}
	f.queue = append(f.queue, Entry{URL: addr, Depth: depth})
	return true
}

// DequeueBatch removes and returns up to maxCount entries in FIFO order,
// silently discarding entries whose depth exceeds the maximum depth.
// Returns an empty slice when the queue is exhausted. No entry is ever
// returned twice.
func (f *Frontier) DequeueBatch(maxCount int) []Entry {
	batch := make([]Entry, 0, maxCount)

	for len(f.queue) > 0 && len(batch) < maxCount {
		entry := f.queue[0]
		f.queue = f.queue[1:]

		if entry.Depth > f.maxDepth {
			continue
		}
		batch = append(batch, entry)
	}

	return batch
}

// Pending returns the number of entries waiting in the queue.
func (f *Frontier) Pending() int {
	return len(f.queue)
}

// VisitedCount returns the number of unique addresses ever enqueued.
func (f *Frontier) VisitedCount() int {
	return len(f.visited)
}

// Visited reports whether an address has ever been enqueued.
func (f *Frontier) Visited(addr string) bool {
	_, ok := f.visited[addr]
	return ok
}
