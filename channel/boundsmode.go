package channel

// BoundsMode is the offset checking policy selected at build time.
type BoundsMode int

//go:generate go tool stringer -linecomment -type=BoundsMode
const (
	Checked   BoundsMode = iota // checked
	Unchecked                   // unchecked
)

// Mode reports whether point access checks offsets in this build. Builds
// with the lattice_nocheck tag are Unchecked.
func Mode() BoundsMode {
	return boundsMode
}
