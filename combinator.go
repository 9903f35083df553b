// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

// A Pair holds the values of two parsers run in sequence by [And].
type Pair[T, U any] struct {
	First  T
	Second U
}

// Map returns a parser that runs p and transforms its value with f.
// Failures of p are reported unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Cursor) (Cursor, U, *Error) {
		out, v, err := p(in)
		if err != nil {
			var zero U
			return in, zero, err
		}
		return out, f(v), nil
	}
}

// Bind returns a parser that runs p, passes its value to f, and runs the
// parser returned by f from where p stopped.
//
// If p consumed input, a failure of the second parser is committed
// (Retry == false). If p consumed nothing, the failure keeps its own Retry
// flag. The same rule applies to [Then], [And], and [Skip].
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in Cursor) (Cursor, U, *Error) {
		mid, v, err := p(in)
		if err != nil {
			var zero U
			return in, zero, err
		}
		out, w, err := f(v)(mid)
		if err != nil {
			return in, w, committed(in, mid, err)
		}
		return out, w, nil
	}
}

// Then returns a parser that runs p and then q, yielding the value of q.
func Then[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return func(in Cursor) (Cursor, U, *Error) {
		mid, _, err := p(in)
		if err != nil {
			var zero U
			return in, zero, err
		}
		out, w, err := q(mid)
		if err != nil {
			return in, w, committed(in, mid, err)
		}
		return out, w, nil
	}
}

// ThenLazy is like [Then], but calls f to construct q only when p succeeds.
func ThenLazy[T, U any](p Parser[T], f func() Parser[U]) Parser[U] { return Then(p, Lazy(f)) }

// And returns a parser that runs p and then q, yielding both values.
func And[T, U any](p Parser[T], q Parser[U]) Parser[Pair[T, U]] {
	return func(in Cursor) (Cursor, Pair[T, U], *Error) {
		mid, v, err := p(in)
		if err != nil {
			return in, Pair[T, U]{}, err
		}
		out, w, err := q(mid)
		if err != nil {
			return in, Pair[T, U]{}, committed(in, mid, err)
		}
		return out, Pair[T, U]{First: v, Second: w}, nil
	}
}

// AndLazy is like [And], but calls f to construct q only when p succeeds.
func AndLazy[T, U any](p Parser[T], f func() Parser[U]) Parser[Pair[T, U]] { return And(p, Lazy(f)) }

// Skip returns a parser that runs p and then q, yielding the value of p.
// Although its value is discarded, q must succeed.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return func(in Cursor) (Cursor, T, *Error) {
		mid, v, err := p(in)
		if err != nil {
			return in, v, err
		}
		out, _, err := q(mid)
		if err != nil {
			return in, v, committed(in, mid, err)
		}
		return out, v, nil
	}
}

// Or returns a parser that runs p, and if p fails with a retryable error,
// runs q from the same starting position. A committed failure of p is
// reported without trying q.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return func(in Cursor) (Cursor, T, *Error) {
		out, v, err := p(in)
		if err != nil && err.Retry {
			return q(in)
		}
		return out, v, err
	}
}

// OrLazy is like [Parser.Or], but calls f to construct the alternative only
// when it is needed.
func (p Parser[T]) OrLazy(f func() Parser[T]) Parser[T] { return p.Or(Lazy(f)) }

// Try returns a parser that behaves like p, except that any failure is made
// retryable and is reported at the position where p started. This makes p
// safe to use as a branch of [Parser.Or] even if it fails after consuming
// input: the alternation treats p as a single atomic unit.
func (p Parser[T]) Try() Parser[T] {
	return func(in Cursor) (Cursor, T, *Error) {
		out, v, err := p(in)
		if err != nil {
			return in, v, &Error{Retry: true, Message: err.Message, Pos: in.pos}
		}
		return out, v, nil
	}
}

// OrNot returns a parser that runs p and yields a pointer to its value.
// If p fails for any reason, the parser succeeds without consuming input and
// yields nil.
func OrNot[T any](p Parser[T]) Parser[*T] {
	return func(in Cursor) (Cursor, *T, *Error) {
		out, v, err := p(in)
		if err != nil {
			return in, nil, nil
		}
		return out, &v, nil
	}
}

// Many returns a parser that runs p zero or more times, yielding the values
// in order. Repetition stops at the first retryable failure of p; a committed
// failure is reported. A repetition that succeeds without consuming input
// also stops the loop, and its value is not recorded.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Cursor) (Cursor, []T, *Error) {
		var vs []T
		cur := in
		for {
			next, v, err := p(cur)
			if err != nil {
				if err.Retry {
					break
				}
				return in, nil, err
			} else if next.pos == cur.pos {
				break
			}
			vs = append(vs, v)
			cur = next
		}
		return cur, vs, nil
	}
}

// SepBy returns a parser for a possibly-empty sequence of p separated by
// delim, yielding the values of p in order.
//
// If the first element fails with a retryable error, the result is empty.
// Once a delimiter has been consumed an element must follow: a failure there
// is committed regardless of its own Retry flag, so a trailing delimiter is
// an error. A retryable failure of delim ends the sequence before the
// delimiter.
func SepBy[T, D any](p Parser[T], delim Parser[D]) Parser[[]T] {
	return func(in Cursor) (Cursor, []T, *Error) {
		cur, v, err := p(in)
		if err != nil {
			if err.Retry {
				return in, nil, nil
			}
			return in, nil, err
		}
		vs := []T{v}
		for {
			next, _, err := delim(cur)
			if err != nil {
				if err.Retry {
					break
				}
				return in, nil, err
			}
			after, w, err := p(next)
			if err != nil {
				return in, nil, err.withRetry(false)
			}
			vs = append(vs, w)
			cur = after
		}
		return cur, vs, nil
	}
}

// SurroundedBy returns a parser that skips zero or more matches of ws, runs
// p, and again skips zero or more matches of ws. Failures are retryable and
// are reported where the combined parser started (see [Parser.Try]).
func SurroundedBy[T, W any](p Parser[T], ws Parser[W]) Parser[T] {
	return Skip(Then(Many(ws), p), Many(ws)).Try()
}

// SurroundedBySpaces is shorthand for [SurroundedBy] with ASCII spaces.
func (p Parser[T]) SurroundedBySpaces() Parser[T] { return SurroundedBy(p, Char(' ')) }

// OrFrom returns a parser that tries each of ps in order, yielding the value
// of the first that succeeds. Each alternative is wrapped with [Parser.Try],
// so any failure moves on to the next alternative. OrFrom panics if ps is
// empty.
func OrFrom[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("pcomb.OrFrom: no alternatives")
	}
	acc := ps[0].Try()
	for _, p := range ps[1:] {
		acc = acc.Or(p.Try())
	}
	return acc
}
