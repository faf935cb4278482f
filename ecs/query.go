package ecs

import (
	"fmt"
	"reflect"
)

// Join queries yield the entities present in every requested store. The
// smallest requested store drives the iteration so cost is proportional to
// the smallest operand; ties fall to the earlier type parameter, keeping
// results reproducible. A query never hands out two mutable references into
// the same store, which is why repeating a type parameter panics.

// Each calls fn for every entity holding a component of type A, until fn
// returns false.
func Each[A any](w *World, fn func(Entity, *A) bool) {
	store := existingStore[A](w)
	if store == nil {
		return
	}
	store.Each(fn)
}

// Each2 calls fn for every entity holding components of both type A and
// type B, until fn returns false.
func Each2[A, B any](w *World, fn func(Entity, *A, *B) bool) {
	if reflect.TypeOf((*A)(nil)).Elem() == reflect.TypeOf((*B)(nil)).Elem() {
		panic(fmt.Sprintf("ecs: query repeats component type %s", reflect.TypeOf((*A)(nil)).Elem()))
	}
	sa := existingStore[A](w)
	sb := existingStore[B](w)
	if sa == nil || sb == nil {
		return
	}
	var driver []Entity
	if sa.Len() <= sb.Len() {
		driver = sa.Entities()
	} else {
		driver = sb.Entities()
	}
	for _, e := range driver {
		a := sa.Ref(e)
		if a == nil {
			continue
		}
		b := sb.Ref(e)
		if b == nil {
			continue
		}
		if !fn(e, a, b) {
			return
		}
	}
}

// Each3 calls fn for every entity holding components of types A, B and C,
// until fn returns false.
func Each3[A, B, C any](w *World, fn func(Entity, *A, *B, *C) bool) {
	ta, tb, tc := reflect.TypeOf((*A)(nil)).Elem(), reflect.TypeOf((*B)(nil)).Elem(), reflect.TypeOf((*C)(nil)).Elem()
	if ta == tb || ta == tc || tb == tc {
		panic("ecs: query repeats a component type")
	}
	sa := existingStore[A](w)
	sb := existingStore[B](w)
	sc := existingStore[C](w)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	driver := sa.Entities()
	if sb.Len() < len(driver) {
		driver = sb.Entities()
	}
	if sc.Len() < len(driver) {
		driver = sc.Entities()
	}
	for _, e := range driver {
		a := sa.Ref(e)
		if a == nil {
			continue
		}
		b := sb.Ref(e)
		if b == nil {
			continue
		}
		c := sc.Ref(e)
		if c == nil {
			continue
		}
		if !fn(e, a, b, c) {
			return
		}
	}
}

// Count2 returns the number of entities a {A, B} join would yield.
func Count2[A, B any](w *World) int {
	n := 0
	Each2[A, B](w, func(Entity, *A, *B) bool {
		n++
		return true
	})
	return n
}
