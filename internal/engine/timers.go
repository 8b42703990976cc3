package engine

import "sort"

// timer is a delayed callback bound to the cycle epoch that scheduled it.
type timer struct {
	due   float64
	seq   uint64
	epoch uint64
	fn    func()
}

// timerQueue keeps timers ordered by due time, then scheduling order.
type timerQueue struct {
	items []timer
	seq   uint64
}

func (q *timerQueue) schedule(due float64, epoch uint64, fn func()) {
	q.seq++
	t := timer{due: due, seq: q.seq, epoch: epoch, fn: fn}
	i := sort.Search(len(q.items), func(i int) bool {
		it := q.items[i]
		return it.due > due || (it.due == due && it.seq > t.seq)
	})
	q.items = append(q.items, timer{})
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = t
}

// popDue removes and returns the earliest timer due at or before now.
func (q *timerQueue) popDue(now float64) (timer, bool) {
	if len(q.items) == 0 || q.items[0].due > now {
		return timer{}, false
	}
	t := q.items[0]
	q.items = q.items[1:]
	return t, true
}

func (q *timerQueue) clear() { q.items = nil }

func (q *timerQueue) len() int { return len(q.items) }
