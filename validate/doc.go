// Package validate provides stateless rule checks for document edits.
//
// Every function is pure and returns (ok, message): message is empty when
// the check passes and names the violated constraint when it fails. The
// package holds the client-side policy constants (row/column ceilings,
// font-size bounds) mirrored from the document service so invalid requests
// fail before a network round trip.
package validate
