// Package config loads refery test files.
//
// A test file is a YAML document with an optional set of default test
// fields and a list of test suites:
//
//	default:
//	  binary: ./my-program
//	  timeout: 2
//
//	testsuites:
//	  - name: basics
//	    setup: touch /tmp/state
//	    teardown: rm -f /tmp/state
//	    fatal: false
//	    tests:
//	      - name: hello
//	        args: [hi]
//	        stdout: "hi\n"
//	      - name: quiet
//	        stdout_mode: exists
//	        stdout: ""
//	        exit_code: 0
//	      - name: like the reference
//	        ref: ./reference-program
//
// Test fields are name, binary, args, ref, stdin, stdout, stderr, exit_code,
// stdout_mode, stderr_mode, skipped and timeout. A field present in a test
// overrides the default one, even when its value is empty. Unknown fields
// are rejected.
//
// BuildSuites turns a loaded Document into runner suites and resolves the
// expectations of tests that have a reference binary.
package config
