// Package matcher asserts conditions on outcome.Result values.
//
// Every matcher comes in two forms. The Check form returns nil
// when the condition holds and a *Failure naming the violated
// condition otherwise:
//
//	if err := matcher.CheckErrorsFor(result, "email"); err != nil {
//	    log.Println(matcher.ReasonOf(err))
//	}
//
// The Should form takes a testing.T (or any require.TestingT)
// and fails the test through testify:
//
//	matcher.ShouldHaveResultObject(t, result)
//	matcher.ShouldBeCreatedBy(t, result, admin.ID)
//
// Expect wraps a result for chained assertions:
//
//	matcher.Expect(t, result).
//	    ShouldHaveErrors().
//	    ShouldHaveBasicError()
//
// Preconditions are checked in a fixed order (outcome, value,
// errors collection, content) and each call reports exactly one
// failure. An absent errors collection is always reported with
// ErrorsListIsNullMessage, distinct from an empty one.
//
// Matchers never mutate the result and keep no state, so they
// are safe to call from parallel tests on independent results.
package matcher
