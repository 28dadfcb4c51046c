package stablehash

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"sync"
	"unsafe"
)

// Any hashes v by its dynamic type. Category mapping:
//
//   - string, []byte            byte-sequence scheme (CRC-32C)
//   - all int/uint widths, bool integer scheme (named integer types too)
//   - float32/64, complex       float scheme on normalized bit patterns
//   - uintptr, unsafe.Pointer   address as integer (in-process stability only)
//   - struct                    seeded left-to-right field fold (tuple rule)
//   - [N]E array                seeded element fold; [0]E hashes to the seed
//   - []E slice                 length is folded in first, then elements
//   - *T pointer                optional rule: nil and &v hash differently,
//     and a present value is hashed by payload, not by address
//   - interface (and nil)       variant rule: dynamic type tags the payload
//   - other comparable kinds    runtime maphash fallback, stirred with the
//     seed; stable within a process only
//
// Maps, funcs, and other non-comparable kinds panic: a silently weak hash
// is worse than a loud failure. Unexported struct fields are folded like
// any other field, read kind-wise. The exception is a fallback-kind value
// (a channel, say) inside an unexported field: boxing is required there
// and reflection refuses it for unexported fields, so the walk panics
// with a message naming the restriction.
//
// The typed methods (String, Uint64, ...) are the allocation-free spellings
// of the same schemes; Any may allocate when boxing or reflecting.
func (h Hasher[H]) Any(v any) H {
	switch x := v.(type) {
	case nil:
		return Combine(h.seed, 0)
	case string:
		return hashBytes(h.seed, stringBytes(x))
	case []byte:
		return hashBytes(h.seed, x)
	case bool:
		if x {
			return hashUint64(h.seed, 1)
		}

		return hashUint64(h.seed, 0)
	case int:
		return hashUint64(h.seed, uint64(x))
	case int8:
		return hashUint64(h.seed, signedBits[H](int32(x)))
	case int16:
		return hashUint64(h.seed, signedBits[H](int32(x)))
	case int32:
		return hashUint64(h.seed, signedBits[H](x))
	case int64:
		return hashUint64(h.seed, uint64(x))
	case uint:
		return hashUint64(h.seed, uint64(x))
	case uint8:
		return hashUint64(h.seed, uint64(x))
	case uint16:
		return hashUint64(h.seed, uint64(x))
	case uint32:
		return hashUint64(h.seed, uint64(x))
	case uint64:
		return hashUint64(h.seed, x)
	case uintptr:
		return hashUint64(h.seed, uint64(x))
	case float32:
		return hashFloat32(h.seed, x)
	case float64:
		return hashFloat64(h.seed, x)
	case complex64:
		return Combine(hashFloat32(h.seed, real(x)), hashFloat32(h.seed, imag(x)))
	case complex128:
		return Combine(hashFloat64(h.seed, real(x)), hashFloat64(h.seed, imag(x)))
	case unsafe.Pointer:
		return hashUint64(h.seed, uint64(uintptr(x)))
	}

	return h.hashReflect(reflect.ValueOf(v))
}

// hashReflect handles everything the type switch in Any does not: named
// scalar types, structs, arrays, slices, pointers, nested interfaces.
// It reads field values kind-wise and never calls Interface() on them, so
// unexported fields hash like exported ones.
func (h Hasher[H]) hashReflect(rv reflect.Value) H {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return hashUint64(h.seed, 1)
		}

		return hashUint64(h.seed, 0)
	case reflect.Int, reflect.Int64:
		return hashUint64(h.seed, uint64(rv.Int()))
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return hashUint64(h.seed, signedBits[H](int32(rv.Int())))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashUint64(h.seed, rv.Uint())
	case reflect.Float32:
		return hashFloat32(h.seed, float32(rv.Float()))
	case reflect.Float64:
		return hashFloat64(h.seed, rv.Float())
	case reflect.Complex64:
		c := rv.Complex()

		return Combine(hashFloat32(h.seed, float32(real(c))), hashFloat32(h.seed, float32(imag(c))))
	case reflect.Complex128:
		c := rv.Complex()

		return Combine(hashFloat64(h.seed, real(c)), hashFloat64(h.seed, imag(c)))
	case reflect.String:
		return hashBytes(h.seed, stringBytes(rv.String()))
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return hashByteLike(h.seed, rv)
		}
		n := rv.Len()
		result := Combine(h.seed, hashUint64(h.seed, uint64(n)))
		for i := 0; i < n; i++ {
			result = Combine(result, h.hashReflect(rv.Index(i)))
		}

		return result
	case reflect.Array:
		result := h.seed
		for i := 0; i < rv.Len(); i++ {
			result = Combine(result, h.hashReflect(rv.Index(i)))
		}

		return result
	case reflect.Struct:
		result := h.seed
		for i := 0; i < rv.NumField(); i++ {
			result = Combine(result, h.hashReflect(rv.Field(i)))
		}

		return result
	case reflect.Pointer:
		if rv.IsNil() {
			return Combine(h.seed, 0)
		}

		return Combine(h.hashReflect(rv.Elem()), 1)
	case reflect.Interface:
		if rv.IsNil() {
			return Combine(h.seed, 0)
		}
		elem := rv.Elem()
		tag := hashBytes(h.seed, stringBytes(elem.Type().String()))

		return Combine(tag, h.hashReflect(elem))
	case reflect.UnsafePointer:
		return hashUint64(h.seed, uint64(rv.Pointer()))
	}

	return h.hashFallback(rv)
}

// hashByteLike folds the byte-sequence scheme over a reflected slice whose
// element kind is uint8, without materializing a []byte view (the view is
// not reachable for slices read out of unexported fields).
func hashByteLike[H Value](seed H, rv reflect.Value) H {
	n := rv.Len()
	if n == 0 {
		return 0
	}

	if is32[H]() {
		state := uint32(seed)
		for i := 0; i < n; i++ {
			state = Crc32c(state, byte(rv.Index(i).Uint()))
		}

		return H(state)
	}

	lo := uint32(seed)
	hi := uint32(uint64(seed) >> 32)
	for i := 0; i < n; i++ {
		ch := byte(rv.Index(i).Uint())
		lo = Crc32c(lo, ch)
		hi = Crc32c(hi, ch^0xFF)
	}

	return H(uint64(hi)<<32 | uint64(lo))
}

// fallbackSeed is the process-wide maphash seed for the comparable-kind
// fallback. One seed per process keeps the fallback deterministic within a
// run; it is not stable across runs, matching what the runtime's own map
// hashing guarantees.
var fallbackSeed = sync.OnceValue(maphash.MakeSeed)

// hashFallback covers kinds with no structural scheme (channels, for
// instance). Comparable values borrow the runtime's maphash under one
// process-wide seed, folded to width and stirred with the hasher seed.
// The value must be boxable: fallback kinds read out of unexported fields
// cannot be, and panic.
func (h Hasher[H]) hashFallback(rv reflect.Value) H {
	if !rv.Type().Comparable() {
		panic(fmt.Sprintf("stablehash: unhashable %s value of type %s", rv.Kind(), rv.Type()))
	}
	if !rv.CanInterface() {
		panic(fmt.Sprintf("stablehash: cannot fallback-hash %s value of type %s from an unexported field", rv.Kind(), rv.Type()))
	}

	sum := maphash.Comparable(fallbackSeed(), rv.Interface())
	if is32[H]() {
		return H(uint32(sum^(sum>>32))) ^ h.seed
	}

	return H(sum) ^ h.seed
}
