package types

import (
	"fmt"
	"sync"
)

// Future is a value computed on first use and cached until Reset.
type Future[T any] interface {
	Get() (T, error)
	GetOrPanic() T
	Reset()
	String() string
}

type lazy[T any] struct {
	mtx    sync.Mutex
	load   func() (T, error)
	value  T
	err    error
	loaded bool
}

func (l *lazy[T]) Get() (T, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if !l.loaded {
		l.value, l.err = l.load()
		l.loaded = true
	}

	return l.value, l.err
}

func (l *lazy[T]) GetOrPanic() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// Reset drops the cached value and error; the next Get loads again.
func (l *lazy[T]) Reset() {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	var zero T
	l.value, l.err, l.loaded = zero, nil, false
}

func (l *lazy[T]) String() string {
	v, err := l.Get()
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}

	return fmt.Sprint(v)
}

func FutureFrom[T any](v T) Future[T] {
	return FutureFromFuncErr(func() (T, error) { return v, nil })
}

func FutureFromFuncErr[T any](load func() (T, error)) Future[T] {
	return &lazy[T]{load: load}
}

// FutureInterfacerArray converts every element of a slice future to I.
func FutureInterfacerArray[T any, I any](f Future[[]T]) Future[[]I] {
	return FutureFromFuncErr(func() ([]I, error) {
		items, err := f.Get()
		if err != nil {
			return nil, err
		}

		out := make([]I, 0, len(items))
		for _, item := range items {
			v, ok := any(item).(I)
			if !ok {
				return nil, fmt.Errorf("%T does not implement %T", item, (*I)(nil))
			}
			out = append(out, v)
		}

		return out, nil
	})
}
