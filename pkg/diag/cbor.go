package diag

import "github.com/fxamacker/cbor/v2"

// recordEncoding writes each Record as a definite-length canonical map so
// identical reports produce identical bytes. Times use RFC 3339 with
// nanoseconds.
var recordEncoding = mustEncMode(cbor.EncOptions{
	Sort:        cbor.SortCanonical,
	IndefLength: cbor.IndefLengthForbidden,
	Time:        cbor.TimeRFC3339Nano,
})

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	mode, err := opts.EncMode()
	if err != nil {
		panic("diag: invalid record encoding: " + err.Error())
	}
	return mode
}
