// internal/entity/list.go
package entity

// List — упорядоченный список сущностей, разделяемый системами по указателю.
// Порядок вставки сохраняется при удалении: от него зависит выбор цели башней.
type List[T comparable] struct {
	items []T
}

func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Add(v T) {
	l.items = append(l.items, v)
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Items возвращает срез элементов. Вызывающий не должен его изменять.
func (l *List[T]) Items() []T {
	return l.items
}

// RemoveAt удаляет элемент по индексу, сохраняя порядок остальных.
func (l *List[T]) RemoveAt(i int) T {
	v := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return v
}

// Remove удаляет первое вхождение v.
func (l *List[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

func (l *List[T]) IndexOf(v T) int {
	for i, item := range l.items {
		if item == v {
			return i
		}
	}
	return -1
}

func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}
