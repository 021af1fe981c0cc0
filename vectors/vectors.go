// Package vectors loads BIPSchnorr test vector fixtures and checks them
// against the schnorr package.
//
// A fixture is a CSV file with the columns
//
//	index, secret key, public key, message, signature, verification result, comment
//
// Byte fields are hex encoded. The secret key may be empty, in which case the
// row only exercises verification.
package vectors

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"schnorr.mleku.dev"
)

// defaultFixture is the bundled fixture returned by Default.
//
//go:embed test-vectors.csv
var defaultFixture []byte

// numColumns is the number of fields in every fixture row.
const numColumns = 7

// Vector is a single fixture row.
type Vector struct {
	Index     int
	SecretKey []byte // nil when the row has no secret key
	PublicKey []byte
	Message   []byte
	Signature []byte
	Expected  bool
	Comment   string
}

// Result is the outcome of checking a single Vector. Failures lists every
// check that did not hold; it is empty when the row passed.
type Result struct {
	Index    int
	Comment  string
	Failures []string
}

// Passed reports whether every check of the row held.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Report collects the results of a fixture run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every row passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Add records a result.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	if res.Passed() {
		r.Passed++
	} else {
		r.Failed++
	}
}

// Parse reads a fixture. The first record is the header and is skipped.
func Parse(r io.Reader) ([]Vector, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = numColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read fixture: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("fixture has no header")
	}

	vectors := make([]Vector, 0, len(records)-1)
	for i, record := range records[1:] {
		v, err := parseRecord(record)
		if err != nil {
			// Line numbers are 1-based and the header is line 1.
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		vectors = append(vectors, v)
	}

	return vectors, nil
}

// parseRecord converts a CSV record into a Vector.
func parseRecord(record []string) (Vector, error) {
	var v Vector

	index, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return v, fmt.Errorf("invalid index %q: %w", record[0], err)
	}
	v.Index = index

	fields := []struct {
		name string
		dst  *[]byte
	}{
		{"secret key", &v.SecretKey},
		{"public key", &v.PublicKey},
		{"message", &v.Message},
		{"signature", &v.Signature},
	}
	for i, f := range fields {
		s := strings.TrimSpace(record[i+1])
		if s == "" {
			continue
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return v, fmt.Errorf("invalid %s %q: %w", f.name, s, err)
		}
		*f.dst = b
	}

	switch strings.ToUpper(strings.TrimSpace(record[5])) {
	case "TRUE":
		v.Expected = true
	case "FALSE":
		v.Expected = false
	default:
		return v, fmt.Errorf("invalid verification result %q", record[5])
	}

	v.Comment = strings.TrimSpace(record[6])
	return v, nil
}

// Load reads the fixture at path.
func Load(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Default returns the bundled fixture.
func Default() ([]Vector, error) {
	return Parse(bytes.NewReader(defaultFixture))
}

// Check runs a single vector. When the row carries a secret key, key
// generation and signing must reproduce the public key and signature
// exactly. Verification must always match the expected result.
func Check(v Vector) Result {
	res := Result{Index: v.Index, Comment: v.Comment}
	fail := func(format string, args ...interface{}) {
		res.Failures = append(res.Failures, fmt.Sprintf(format, args...))
	}

	log.Tracef("Checking vector %v", newLogClosure(func() string {
		return spew.Sdump(v)
	}))

	if v.SecretKey != nil {
		pk, err := schnorr.KeyGen(v.SecretKey)
		switch {
		case err != nil:
			fail("KeyGen: %v", err)
		case !bytes.Equal(pk, v.PublicKey):
			fail("KeyGen: public key %x, want %x", pk, v.PublicKey)
		}

		sig, err := schnorr.Sign(v.Message, v.SecretKey)
		switch {
		case err != nil:
			fail("Sign: %v", err)
		case !bytes.Equal(sig, v.Signature):
			fail("Sign: signature %x, want %x", sig, v.Signature)
		}
	}

	if got := schnorr.Verify(v.Message, v.PublicKey, v.Signature); got != v.Expected {
		fail("Verify: got %v, want %v", got, v.Expected)
	}

	if res.Passed() {
		log.Debugf("Vector %d passed", v.Index)
	} else {
		for _, f := range res.Failures {
			log.Errorf("Vector %d (%s): %s", v.Index, v.Comment, f)
		}
	}

	return res
}

// Run checks every vector and returns the combined report.
func Run(vectors []Vector) Report {
	var report Report
	for _, v := range vectors {
		report.Add(Check(v))
	}

	log.Infof("Checked %d vectors: %d passed, %d failed", len(vectors),
		report.Passed, report.Failed)
	return report
}
