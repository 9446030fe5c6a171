package career

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// Careers are addressable by two identifier forms: the native 24-hex record id
// assigned by this service and the legacy opaque guid carried over from the
// old platform. RecordID is the tagged union; ParseRecordID is the single
// place the classification rule lives.
type IDKind int

const (
	KindNative IDKind = iota
	KindLegacy
)

type RecordID struct {
	kind  IDKind
	value string
}

var (
	ErrEmptyID = errors.New("career identifier is required")

	nativeIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// ParseRecordID classifies an identifier: a 24-character hex string is a
// native record id, anything else is a legacy guid.
func ParseRecordID(s string) (RecordID, error) {
	if s == "" {
		return RecordID{}, ErrEmptyID
	}
	if nativeIDPattern.MatchString(s) {
		return RecordID{kind: KindNative, value: s}, nil
	}
	return RecordID{kind: KindLegacy, value: s}, nil
}

func (id RecordID) Kind() IDKind   { return id.kind }
func (id RecordID) Value() string  { return id.value }
func (id RecordID) IsNative() bool { return id.kind == KindNative }
func (id RecordID) String() string { return id.value }

// NewNativeID returns a fresh 24-hex record id.
func NewNativeID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("career: rand.Read: %v", err))
	}
	return hex.EncodeToString(b)
}

// NewLegacyID returns a fresh guid in the legacy identifier format.
func NewLegacyID() string {
	return uuid.NewString()
}
