// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package testing

import (
	"fmt"
	"math/rand"

	collectionsdeque "github.com/juju/collections/deque"
	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/deque/core/deque"
	dequeerrors "github.com/juju/deque/core/deque/errors"
)

// ContractSuite holds the behaviour every deque.Deque implementation must
// share. Embed it in an implementation suite and set the constructors in
// SetUpTest.
type ContractSuite struct {
	jujutesting.IsolationSuite

	// NewDeque returns an empty deque of strings.
	NewDeque func() deque.Deque[string]

	// NewPointerDeque returns an empty deque of string pointers, used to
	// offer absent values.
	NewPointerDeque func() deque.Deque[*string]
}

func (s *ContractSuite) TestEmptyDequeOperationsFail(c *gc.C) {
	d := s.NewDeque()

	_, err := d.RemoveFirst()
	c.Check(errors.Is(err, dequeerrors.EmptyCollection), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, "remove first: empty collection")
	_, err = d.RemoveLast()
	c.Check(errors.Is(err, dequeerrors.EmptyCollection), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, "remove last: empty collection")
	_, err = d.GetFirst()
	c.Check(errors.Is(err, dequeerrors.EmptyCollection), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, "get first: empty collection")
	_, err = d.GetLast()
	c.Check(errors.Is(err, dequeerrors.EmptyCollection), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, "get last: empty collection")

	c.Check(d.Size(), gc.Equals, 0)
}

func (s *ContractSuite) TestAddNilFails(c *gc.C) {
	d := s.NewPointerDeque()

	err := d.AddFirst(nil)
	c.Check(errors.Is(err, dequeerrors.InvalidArgument), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, "add first: nil value: invalid argument")
	err = d.AddLast(nil)
	c.Check(errors.Is(err, dequeerrors.InvalidArgument), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, "add last: nil value: invalid argument")
	c.Check(d.Size(), gc.Equals, 0)

	value := "peony"
	c.Assert(d.AddLast(&value), jc.ErrorIsNil)
	c.Check(d.AddFirst(nil), gc.NotNil)
	c.Check(d.AddLast(nil), gc.NotNil)
	c.Check(d.Size(), gc.Equals, 1)

	first, err := d.GetFirst()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(first, gc.Equals, &value)
	last, err := d.GetLast()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(last, gc.Equals, &value)
}

func (s *ContractSuite) TestEmptyStringIsAccepted(c *gc.C) {
	d := s.NewDeque()
	c.Assert(d.AddFirst(""), jc.ErrorIsNil)
	c.Check(d.Size(), gc.Equals, 1)

	value, err := d.RemoveLast()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, "")
}

func (s *ContractSuite) TestAddFirstOrder(c *gc.C) {
	d := s.NewDeque()
	for i := 0; i < 3; i++ {
		c.Assert(d.AddFirst(fmt.Sprintf("b%d", i)), jc.ErrorIsNil)
		c.Check(d.Size(), gc.Equals, i+1)
	}
	s.checkEnds(c, d, "b2", "b0")

	for _, expected := range []string{"b2", "b1", "b0"} {
		value, err := d.RemoveFirst()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(value, gc.Equals, expected)
	}
	c.Check(d.Size(), gc.Equals, 0)
}

func (s *ContractSuite) TestAddLastOrder(c *gc.C) {
	d := s.NewDeque()
	for i := 0; i < 3; i++ {
		c.Assert(d.AddLast(fmt.Sprintf("b%d", i)), jc.ErrorIsNil)
		c.Check(d.Size(), gc.Equals, i+1)
	}
	s.checkEnds(c, d, "b0", "b2")

	for _, expected := range []string{"b2", "b1", "b0"} {
		value, err := d.RemoveLast()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(value, gc.Equals, expected)
	}
	c.Check(d.Size(), gc.Equals, 0)
}

func (s *ContractSuite) TestSingleElement(c *gc.C) {
	d := s.NewDeque()
	c.Assert(d.AddLast("tulips"), jc.ErrorIsNil)
	s.checkEnds(c, d, "tulips", "tulips")
	c.Check(d.Size(), gc.Equals, 1)
}

func (s *ContractSuite) TestRoundTrip(c *gc.C) {
	d := s.NewDeque()
	for _, v := range []string{"a", "b", "c"} {
		c.Assert(d.AddLast(v), jc.ErrorIsNil)
	}

	c.Assert(d.AddFirst("x"), jc.ErrorIsNil)
	value, err := d.RemoveFirst()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, "x")
	c.Check(d.Size(), gc.Equals, 3)

	c.Assert(d.AddLast("y"), jc.ErrorIsNil)
	value, err = d.RemoveLast()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, "y")
	c.Check(d.Size(), gc.Equals, 3)

	s.checkEnds(c, d, "a", "c")
}

func (s *ContractSuite) TestEmptiedDequeIsReusable(c *gc.C) {
	d := s.NewDeque()
	for round := 0; round < 3; round++ {
		c.Assert(d.AddFirst("b"), jc.ErrorIsNil)
		c.Assert(d.AddFirst("a"), jc.ErrorIsNil)
		c.Assert(d.AddLast("c"), jc.ErrorIsNil)

		_, err := d.RemoveLast()
		c.Assert(err, jc.ErrorIsNil)
		_, err = d.RemoveFirst()
		c.Assert(err, jc.ErrorIsNil)
		_, err = d.RemoveLast()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(d.Size(), gc.Equals, 0)

		_, err = d.RemoveFirst()
		c.Check(errors.Is(err, dequeerrors.EmptyCollection), jc.IsTrue)
		c.Check(d.Size(), gc.Equals, 0)
	}

	c.Assert(d.AddLast("fresh"), jc.ErrorIsNil)
	s.checkEnds(c, d, "fresh", "fresh")
}

func (s *ContractSuite) TestMatchesReferenceModel(c *gc.C) {
	d := s.NewDeque()
	model := collectionsdeque.New()
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		value := fmt.Sprintf("v%d", i)
		switch op := rnd.Intn(4); op {
		case 0:
			c.Assert(d.AddFirst(value), jc.ErrorIsNil)
			model.PushFront(value)
		case 1:
			c.Assert(d.AddLast(value), jc.ErrorIsNil)
			model.PushBack(value)
		case 2:
			got, err := d.RemoveFirst()
			expected, ok := model.PopFront()
			s.checkRemoved(c, got, err, expected, ok)
		case 3:
			got, err := d.RemoveLast()
			expected, ok := model.PopBack()
			s.checkRemoved(c, got, err, expected, ok)
		}
		c.Assert(d.Size(), gc.Equals, model.Len(), gc.Commentf("step %d", i))
	}

	for model.Len() > 0 {
		expected, _ := model.PopFront()
		got, err := d.RemoveFirst()
		c.Assert(err, jc.ErrorIsNil)
		c.Check(got, gc.Equals, expected)
	}
	c.Check(d.Size(), gc.Equals, 0)
}

func (s *ContractSuite) checkRemoved(c *gc.C, got string, err error, expected interface{}, ok bool) {
	if !ok {
		c.Assert(errors.Is(err, dequeerrors.EmptyCollection), jc.IsTrue)
		return
	}
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(got, gc.Equals, expected)
}

func (s *ContractSuite) checkEnds(c *gc.C, d deque.Deque[string], first, last string) {
	value, err := d.GetFirst()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, first)

	value, err = d.GetLast()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, last)
}
