// Package session defines the identity of a protocol session.
//
// A session is identified by its begin string (protocol version), the
// sender and target identifiers, and an optional qualifier used to tell
// apart several sessions between the same counterparties:
//
//	id := session.ID{BeginString: "FIX.4.2", SenderCompID: "BUY", TargetCompID: "SELL"}
//	fmt.Println(id) // FIX.4.2:BUY->SELL
//
// IDs are plain values. Consumers such as the file log treat them as
// read-only and never re-validate them.
package session
