// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package linkeddeque_test

import (
	"fmt"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/deque/core/deque"
	dequeerrors "github.com/juju/deque/core/deque/errors"
	"github.com/juju/deque/core/deque/linkeddeque"
	dequetesting "github.com/juju/deque/core/deque/testing"
)

type contractSuite struct {
	dequetesting.ContractSuite
}

var _ = gc.Suite(&contractSuite{})

func (s *contractSuite) SetUpTest(c *gc.C) {
	s.ContractSuite.SetUpTest(c)
	s.NewDeque = func() deque.Deque[string] {
		return linkeddeque.New[string]()
	}
	s.NewPointerDeque = func() deque.Deque[*string] {
		return &linkeddeque.Deque[*string]{}
	}
}

type linkedDequeSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&linkedDequeSuite{})

// checkChain walks the chain in both directions and verifies that it holds
// exactly the expected values, with consistent links at each node.
func checkChain[T comparable](c *gc.C, d *linkeddeque.Deque[T], expected ...T) {
	c.Assert(d.Size(), gc.Equals, len(expected))
	if len(expected) == 0 {
		c.Assert(d.Head(), gc.IsNil)
		c.Assert(d.Tail(), gc.IsNil)
		return
	}

	head, tail := d.Head(), d.Tail()
	c.Assert(head, gc.NotNil)
	c.Assert(tail, gc.NotNil)
	c.Assert(head.Previous(), gc.IsNil)
	c.Assert(tail.Next(), gc.IsNil)

	seen := set.NewStrings()
	var forward []T
	var prev *linkeddeque.Node[T]
	for n := head; n != nil; n = n.Next() {
		id := fmt.Sprintf("%p", n)
		c.Assert(seen.Contains(id), jc.IsFalse, gc.Commentf("cycle at %v", n.Data()))
		seen.Add(id)
		c.Assert(n.Previous(), gc.Equals, prev)
		forward = append(forward, n.Data())
		prev = n
	}
	c.Assert(prev, gc.Equals, tail)
	c.Assert(forward, jc.DeepEquals, expected)

	var backward []T
	for n := tail; n != nil; n = n.Previous() {
		backward = append(backward, n.Data())
	}
	c.Assert(len(backward), gc.Equals, len(expected))
	for i, v := range backward {
		c.Assert(v, gc.Equals, expected[len(expected)-1-i])
	}
	c.Assert(d.Values(), jc.DeepEquals, expected)
}

func (s *linkedDequeSuite) TestZeroValueIsEmpty(c *gc.C) {
	var d linkeddeque.Deque[string]
	checkChain(c, &d)

	c.Assert(d.AddLast("a"), jc.ErrorIsNil)
	checkChain(c, &d, "a")
}

func (s *linkedDequeSuite) TestAddFirstEmpty(c *gc.C) {
	d := linkeddeque.New[string]()
	c.Assert(d.AddFirst("lilies"), jc.ErrorIsNil)

	c.Check(d.Head(), gc.Equals, d.Tail())
	c.Check(d.Head().Data(), gc.Equals, "lilies")
	checkChain(c, d, "lilies")
}

func (s *linkedDequeSuite) TestAddLastEmpty(c *gc.C) {
	d := linkeddeque.New[string]()
	c.Assert(d.AddLast("lilies"), jc.ErrorIsNil)

	c.Check(d.Head(), gc.Equals, d.Tail())
	c.Check(d.Tail().Data(), gc.Equals, "lilies")
	checkChain(c, d, "lilies")
}

func (s *linkedDequeSuite) TestRemoveFirstSizeOne(c *gc.C) {
	d := linkeddeque.New[string]()
	c.Assert(d.AddFirst("phlox"), jc.ErrorIsNil)

	value, err := d.RemoveFirst()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, "phlox")
	checkChain(c, d)
}

func (s *linkedDequeSuite) TestRemoveLastSizeOne(c *gc.C) {
	d := linkeddeque.New[string]()
	c.Assert(d.AddLast("goldenrod"), jc.ErrorIsNil)

	value, err := d.RemoveLast()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, "goldenrod")
	checkChain(c, d)
}

func (s *linkedDequeSuite) TestAddFirstBuildsChain(c *gc.C) {
	d := linkeddeque.New[string]()
	c.Assert(d.AddFirst("b0"), jc.ErrorIsNil)
	c.Assert(d.AddFirst("b1"), jc.ErrorIsNil)
	c.Assert(d.AddFirst("b2"), jc.ErrorIsNil)

	first, err := d.GetFirst()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(first, gc.Equals, "b2")
	last, err := d.GetLast()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(last, gc.Equals, "b0")
	checkChain(c, d, "b2", "b1", "b0")
}

func (s *linkedDequeSuite) TestManyAdds(c *gc.C) {
	first := linkeddeque.New[string]()
	last := linkeddeque.New[string]()
	var forward, reversed []string
	for i := 0; i < 15; i++ {
		v := fmt.Sprintf("b%d", i)
		c.Assert(first.AddFirst(v), jc.ErrorIsNil)
		c.Assert(last.AddLast(v), jc.ErrorIsNil)
		c.Check(first.Head().Data(), gc.Equals, v)
		c.Check(last.Tail().Data(), gc.Equals, v)
		forward = append(forward, v)
		reversed = append([]string{v}, reversed...)
	}
	checkChain(c, first, reversed...)
	checkChain(c, last, forward...)
}

func (s *linkedDequeSuite) TestRemoveToSingleNodeClearsOutwardLinks(c *gc.C) {
	d := linkeddeque.New[string]()
	for _, v := range []string{"a", "b", "c"} {
		c.Assert(d.AddLast(v), jc.ErrorIsNil)
	}

	_, err := d.RemoveFirst()
	c.Assert(err, jc.ErrorIsNil)
	checkChain(c, d, "b", "c")

	_, err = d.RemoveLast()
	c.Assert(err, jc.ErrorIsNil)
	checkChain(c, d, "b")
	c.Check(d.Head(), gc.Equals, d.Tail())
	c.Check(d.Head().Previous(), gc.IsNil)
	c.Check(d.Head().Next(), gc.IsNil)
}

func (s *linkedDequeSuite) TestRemovedNodeIsUnlinked(c *gc.C) {
	d := linkeddeque.New[string]()
	for _, v := range []string{"a", "b", "c"} {
		c.Assert(d.AddLast(v), jc.ErrorIsNil)
	}
	head, tail := d.Head(), d.Tail()

	_, err := d.RemoveFirst()
	c.Assert(err, jc.ErrorIsNil)
	_, err = d.RemoveLast()
	c.Assert(err, jc.ErrorIsNil)

	c.Check(head.Next(), gc.IsNil)
	c.Check(head.Previous(), gc.IsNil)
	c.Check(tail.Next(), gc.IsNil)
	c.Check(tail.Previous(), gc.IsNil)
	checkChain(c, d, "b")
}

func (s *linkedDequeSuite) TestInterleavedOperationsKeepChainConsistent(c *gc.C) {
	d := linkeddeque.New[int]()
	var expected []int
	for i := 0; i < 50; i++ {
		switch i % 5 {
		case 0, 3:
			c.Assert(d.AddFirst(i), jc.ErrorIsNil)
			expected = append([]int{i}, expected...)
		case 1:
			c.Assert(d.AddLast(i), jc.ErrorIsNil)
			expected = append(expected, i)
		case 2:
			v, err := d.RemoveLast()
			c.Assert(err, jc.ErrorIsNil)
			c.Check(v, gc.Equals, expected[len(expected)-1])
			expected = expected[:len(expected)-1]
		case 4:
			v, err := d.RemoveFirst()
			c.Assert(err, jc.ErrorIsNil)
			c.Check(v, gc.Equals, expected[0])
			expected = expected[1:]
		}
		checkChain(c, d, expected...)
	}
}

func (s *linkedDequeSuite) TestEmptyCycleResetsEnds(c *gc.C) {
	d := linkeddeque.New[string]()
	for round := 0; round < 3; round++ {
		c.Assert(d.AddFirst("x"), jc.ErrorIsNil)
		c.Assert(d.AddLast("y"), jc.ErrorIsNil)
		_, err := d.RemoveLast()
		c.Assert(err, jc.ErrorIsNil)
		_, err = d.RemoveLast()
		c.Assert(err, jc.ErrorIsNil)
		checkChain(c, d)
	}
	c.Assert(d.AddLast("z"), jc.ErrorIsNil)
	checkChain(c, d, "z")
}

func (s *linkedDequeSuite) TestFailedOperationsLeaveChainUntouched(c *gc.C) {
	d := linkeddeque.New[*string]()
	_, err := d.GetLast()
	c.Check(errors.Is(err, dequeerrors.EmptyCollection), jc.IsTrue)
	c.Check(d.Head(), gc.IsNil)

	value := "aster"
	c.Assert(d.AddFirst(&value), jc.ErrorIsNil)
	c.Check(errors.Is(d.AddLast(nil), dequeerrors.InvalidArgument), jc.IsTrue)
	c.Check(errors.Is(d.AddFirst(nil), dequeerrors.InvalidArgument), jc.IsTrue)
	checkChain(c, d, &value)
}
