// Package scenario evaluates outcome matchers described in YAML
// or JSON files.
//
// A scenario file lists outcomes and the matcher verdicts
// expected for them:
//
//	version: "1"
//	scenarios:
//	  - name: lookup of a missing user
//	    outcome:
//	      value: null
//	      errors:
//	        - key: resource_not_found
//	          message: user 7 not found
//	    expect:
//	      - matcher: should_have_resource_not_found_error
//	      - matcher: should_have_result_object
//	        pass: false
//	        reason: value_absent
//
// An omitted outcome is the absent outcome. An omitted or null
// errors list is absent, [] is empty. A bool value makes the
// outcome bool-valued; a mapping makes it a Record.
//
// Files are validated against a CUE schema before decoding and
// evaluated by an Engine, whose registry can be extended with
// custom matchers.
package scenario
