package util

import (
	"cmp"
	"container/heap"
)

//*******************************************
// priority queue
//*******************************************

// Min-heap keyed by priority. Items with equal priority are dequeued in
// no particular order.
type PriorityQueue[T any, P cmp.Ordered] struct {
	items *_HeapItems[T, P]
}

func NewPriorityQueue[T any, P cmp.Ordered](cap int) PriorityQueue[T, P] {
	items := make(_HeapItems[T, P], 0, cap)
	return PriorityQueue[T, P]{
		items: &items,
	}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	heap.Push(self.items, _HeapItem[T, P]{item: item, priority: priority})
}

// Removes the item with the smallest priority. Returns false if the queue is empty.
func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Len() == 0 {
		var t T
		return t, false
	}
	item := heap.Pop(self.items).(_HeapItem[T, P])
	return item.item, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.items.Len()
}

func (self *PriorityQueue[T, P]) Clear() {
	*self.items = (*self.items)[:0]
}

type _HeapItem[T any, P cmp.Ordered] struct {
	item     T
	priority P
}

type _HeapItems[T any, P cmp.Ordered] []_HeapItem[T, P]

func (self _HeapItems[T, P]) Len() int           { return len(self) }
func (self _HeapItems[T, P]) Less(i, j int) bool { return self[i].priority < self[j].priority }
func (self _HeapItems[T, P]) Swap(i, j int)      { self[i], self[j] = self[j], self[i] }
func (self *_HeapItems[T, P]) Push(x any) {
	*self = append(*self, x.(_HeapItem[T, P]))
}
func (self *_HeapItems[T, P]) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
