// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package vectorscript drives a vector.Vector[int] from a line-oriented
// command language. Commands use the datadriven directive syntax, e.g.
//
//	new values=(10,20,30)
//	find name=c v=30
//	insert at=c v=25 ret=d
//
// See Interpreter.Exec for the list of commands.
package vectorscript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/containers/pkg/util/vector"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
)

const mainVector = "main"

// errStaleCursor is reported when a cursor is used against a buffer it does
// not reference.
var errStaleCursor = errors.New("cursor does not reference the current buffer")

// Interpreter runs commands against a set of named vectors, one of which is
// current, and a set of named cursors.
type Interpreter struct {
	vecs     map[string]*vector.Vector[int]
	cur      string
	cursors  map[string]vector.Iterator[int]
	failures int
}

// NewInterpreter returns an Interpreter whose current vector, "main", is
// empty.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		vecs:    map[string]*vector.Vector[int]{mainVector: vector.New[int]()},
		cur:     mainVector,
		cursors: make(map[string]vector.Iterator[int]),
	}
}

// Vector returns the current vector.
func (in *Interpreter) Vector() *vector.Vector[int] {
	return in.vecs[in.cur]
}

// Failures returns the number of commands the vector has rejected so far.
func (in *Interpreter) Failures() int {
	return in.failures
}

// ExecLine parses line as a datadriven directive and runs it.
func (in *Interpreter) ExecLine(line string) (string, error) {
	cmd, cmdArgs, err := datadriven.ParseLine(line)
	if err != nil {
		return "", errors.Wrapf(err, "parsing %q", line)
	}
	return in.Exec(cmd, cmdArgs)
}

// Exec runs a single command and returns its output. A command that the
// vector rejects (out of range, underflow, bounds) or that uses a stale
// cursor is not an error: the output is "error: <message>" and Failures is
// incremented. The returned error reports malformed commands only.
//
// Commands:
//
//	new [cap=N] [values=(a,b,...)]   replace the current vector
//	push v=N | pop | clear | reserve n=N | shrink
//	get i=N | set i=N v=N
//	begin name=C | end name=C | next name=C | find name=C v=N
//	insert at=C v=N [ret=C] | erase at=C [ret=C]
//	deref name=C | dist a=C b=C | eq a=C b=C
//	clone name=K | switch name=K
//	print | state
func (in *Interpreter) Exec(cmd string, cmdArgs []datadriven.CmdArg) (string, error) {
	out, err := in.exec(cmd, args(cmdArgs))
	if err != nil {
		if !errors.IsAny(err, vector.ErrOutOfRange, vector.ErrUnderflow, vector.ErrBounds, errStaleCursor) {
			return "", err
		}
		in.failures++
		return fmt.Sprintf("error: %v", err), nil
	}
	return out, nil
}

func (in *Interpreter) exec(cmd string, a args) (string, error) {
	v := in.Vector()
	switch cmd {
	case "new":
		vals, hasVals, err := a.maybeIntVals("values")
		if err != nil {
			return "", err
		}
		capacity, hasCap, err := a.maybeIntVal("cap")
		if err != nil {
			return "", err
		}
		switch {
		case hasVals && hasCap:
			return "", errors.New("new accepts either cap or values, not both")
		case hasVals:
			v = vector.Of(vals...)
		case hasCap:
			v = vector.NewWithCapacity[int](capacity)
		default:
			v = vector.New[int]()
		}
		in.vecs[in.cur] = v
		return state(v), nil

	case "push":
		x, err := a.intVal("v")
		if err != nil {
			return "", err
		}
		v.PushBack(x)
		return state(v), nil

	case "pop":
		x, err := v.PopBack()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("popped %d\n%s", x, state(v)), nil

	case "clear":
		v.Clear()
		return state(v), nil

	case "reserve":
		n, err := a.intVal("n")
		if err != nil {
			return "", err
		}
		v.Reserve(n)
		return state(v), nil

	case "shrink":
		v.ShrinkToFit()
		return state(v), nil

	case "get":
		i, err := a.intVal("i")
		if err != nil {
			return "", err
		}
		x, err := v.Get(i)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x), nil

	case "set":
		i, err := a.intVal("i")
		if err != nil {
			return "", err
		}
		x, err := a.intVal("v")
		if err != nil {
			return "", err
		}
		if err := v.Set(i, x); err != nil {
			return "", err
		}
		return state(v), nil

	case "begin", "end", "next", "find":
		name, err := a.str("name")
		if err != nil {
			return "", err
		}
		var it vector.Iterator[int]
		switch cmd {
		case "begin":
			it = v.Begin()
		case "end":
			it = v.End()
		case "next":
			if it, err = in.cursor(name); err != nil {
				return "", err
			}
			it = it.Next()
		case "find":
			x, err := a.intVal("v")
			if err != nil {
				return "", err
			}
			it = find(v, x)
		}
		in.cursors[name] = it
		return in.describe(name), nil

	case "insert", "erase":
		at, err := a.str("at")
		if err != nil {
			return "", err
		}
		pos, err := in.cursor(at)
		if err != nil {
			return "", err
		}
		var it vector.Iterator[int]
		if cmd == "insert" {
			x, err := a.intVal("v")
			if err != nil {
				return "", err
			}
			it, err = v.Insert(pos, x)
			if err != nil {
				return "", err
			}
		} else {
			if it, err = v.Erase(pos); err != nil {
				return "", err
			}
		}
		out := state(v)
		if ret, ok := a.maybeStr("ret"); ok {
			in.cursors[ret] = it
			out += "\n" + in.describe(ret)
		}
		return out, nil

	case "deref":
		name, err := a.str("name")
		if err != nil {
			return "", err
		}
		i, err := in.index(name)
		if err != nil {
			return "", err
		}
		if i < 0 || i >= v.Len() {
			return "", errors.Wrapf(vector.ErrOutOfRange, "cursor %s at %d with length %d", name, i, v.Len())
		}
		return strconv.Itoa(in.cursors[name].Value()), nil

	case "dist", "eq":
		a1, err := a.str("a")
		if err != nil {
			return "", err
		}
		b1, err := a.str("b")
		if err != nil {
			return "", err
		}
		ca, err := in.cursor(a1)
		if err != nil {
			return "", err
		}
		cb, err := in.cursor(b1)
		if err != nil {
			return "", err
		}
		if cmd == "eq" {
			return strconv.FormatBool(ca.Equal(cb)), nil
		}
		if !ca.Const().SameBuffer(cb) {
			return "", errors.Wrapf(errStaleCursor, "%s and %s", a1, b1)
		}
		return strconv.Itoa(ca.Const().Sub(cb.Const())), nil

	case "clone":
		name, err := a.str("name")
		if err != nil {
			return "", err
		}
		c := v.Clone()
		in.vecs[name] = c
		return fmt.Sprintf("%s: %s", name, state(c)), nil

	case "switch":
		name, err := a.str("name")
		if err != nil {
			return "", err
		}
		if _, ok := in.vecs[name]; !ok {
			return "", errors.Newf("unknown vector %q", name)
		}
		in.cur = name
		return fmt.Sprintf("%s: %s", name, state(in.Vector())), nil

	case "print":
		return v.String(), nil

	case "state":
		return state(v), nil

	default:
		return "", errors.Newf("unknown command %q", cmd)
	}
}

func (in *Interpreter) cursor(name string) (vector.Iterator[int], error) {
	it, ok := in.cursors[name]
	if !ok {
		return vector.Iterator[int]{}, errors.Newf("unknown cursor %q", name)
	}
	return it, nil
}

// index returns the position of the named cursor in the current vector.
func (in *Interpreter) index(name string) (int, error) {
	it, err := in.cursor(name)
	if err != nil {
		return 0, err
	}
	begin := in.Vector().CBegin()
	if !it.Const().SameBuffer(begin) {
		return 0, errors.Wrapf(errStaleCursor, "cursor %s", name)
	}
	return it.Const().Sub(begin), nil
}

// describe renders a cursor as name@index, marking the end position and
// cursors that no longer reference the current buffer.
func (in *Interpreter) describe(name string) string {
	i, err := in.index(name)
	switch {
	case err != nil:
		return name + "@stale"
	case i == in.Vector().Len():
		return fmt.Sprintf("%s@%d (end)", name, i)
	default:
		return fmt.Sprintf("%s@%d", name, i)
	}
}

func find(v *vector.Vector[int], x int) vector.Iterator[int] {
	end := v.End()
	it := v.Begin()
	for ; !it.Equal(end); it = it.Next() {
		if it.Value() == x {
			break
		}
	}
	return it
}

func state(v *vector.Vector[int]) string {
	return fmt.Sprintf("len=%d cap=%d %s", v.Len(), v.Cap(), v)
}

type args []datadriven.CmdArg

func (a args) lookup(key string) (datadriven.CmdArg, bool) {
	for _, arg := range a {
		if arg.Key == key {
			return arg, true
		}
	}
	return datadriven.CmdArg{}, false
}

func (a args) maybeStr(key string) (string, bool) {
	arg, ok := a.lookup(key)
	if !ok || len(arg.Vals) == 0 {
		return "", false
	}
	return arg.Vals[0], true
}

func (a args) str(key string) (string, error) {
	s, ok := a.maybeStr(key)
	if !ok {
		return "", errors.Newf("missing argument %s", key)
	}
	return s, nil
}

func (a args) maybeIntVal(key string) (int, bool, error) {
	s, ok := a.maybeStr(key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, errors.Wrapf(err, "argument %s", key)
	}
	return n, true, nil
}

func (a args) intVal(key string) (int, error) {
	n, ok, err := a.maybeIntVal(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.Newf("missing argument %s", key)
	}
	return n, nil
}

func (a args) maybeIntVals(key string) ([]int, bool, error) {
	arg, ok := a.lookup(key)
	if !ok {
		return nil, false, nil
	}
	vals := make([]int, 0, len(arg.Vals))
	for _, s := range arg.Vals {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, false, errors.Wrapf(err, "argument %s", key)
		}
		vals = append(vals, n)
	}
	return vals, true, nil
}
