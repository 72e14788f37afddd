// Package uuid builds random identifiers from the bytes of a generator.
package uuid

import (
	"strings"

	gouuid "github.com/google/uuid"
	"github.com/zeebo/errs"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("uuid")

// Source fills byte slices with random bytes, such as *v8rand.T.
type Source interface {
	Fill(p []byte)
}

// Setter stamps fixed bits into an identifier.
type Setter func(u *gouuid.UUID)

// V4 marks the identifier as version 4.
func V4(u *gouuid.UUID) { u[6] = u[6]&0x0F | 0x40 }

// RFC4122Variant marks the identifier with the RFC 4122 variant.
func RFC4122Variant(u *gouuid.UUID) { u[8] = u[8]&0x3F | 0x80 }

// MicrosoftVariant marks the identifier with the reserved Microsoft variant.
func MicrosoftVariant(u *gouuid.UUID) { u[8] = u[8]&0x1F | 0xC0 }

// Builder stamps random bytes with a version and a variant. A nil setter
// leaves its bits random.
type Builder struct {
	Version Setter
	Variant Setter
}

// Default builds RFC 4122 version 4 identifiers.
var Default = Builder{Version: V4, Variant: RFC4122Variant}

// Build fills 16 bytes from src and applies the setters.
func (b Builder) Build(src Source) gouuid.UUID {
	var u gouuid.UUID
	src.Fill(u[:])
	if b.Version != nil {
		b.Version(&u)
	}
	if b.Variant != nil {
		b.Variant(&u)
	}
	return u
}

// New returns a version 4 identifier built from src.
func New(src Source) gouuid.UUID { return Default.Build(src) }

// FromBytes returns the identifier holding p, which must be 16 bytes long.
func FromBytes(p []byte) (gouuid.UUID, error) {
	u, err := gouuid.FromBytes(p)
	if err != nil {
		return gouuid.Nil, Error.New("must be 16 bytes long, got %d", len(p))
	}
	return u, nil
}

// Format renders u as 36 uppercase characters with hyphens, the form the
// reference engine prints. u.String() gives the lowercase form.
func Format(u gouuid.UUID) string { return strings.ToUpper(u.String()) }
